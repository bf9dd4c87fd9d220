package blade

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders b in e-notation: "0" for the vanishing blade, otherwise an
// optional "-" for a negative sign followed by "i" for the pseudoscalar or by
// "e" and the ascending generator indices ("e", "e2", "-e01").
func (b Basis[D]) String() string {
	if !b.nonzero {
		return "0"
	}

	var sb strings.Builder
	sb.WriteString(b.sign.String())
	if b.IsPseudoscalar() {
		sb.WriteByte('i')
		return sb.String()
	}
	sb.WriteByte('e')
	n := DimOf[D]()
	for i := 0; i < n; i++ {
		if b.bits&(uint64(1)<<uint(i)) != 0 {
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}

// Parse reads a blade written in e-notation, the inverse of String.
//
// Accepted forms: "0", "i", "-i", "e" (the scalar unit), "e<digits>" and
// "-e<digits>". Indices are single decimal digits and may appear in any order;
// the permutation sign of the written order is applied, so "e10" equals "-e01".
//
// Errors: ErrSyntax for malformed input or a repeated index, ErrIndexOutOfRange
// for an index at or above N.
func Parse[D Dim](s string) (Basis[D], error) {
	text := strings.TrimSpace(s)
	if text == "0" {
		return Basis[D]{}, nil
	}

	sign := Pos
	if rest, ok := strings.CutPrefix(text, "-"); ok {
		sign, text = Neg, rest
	}

	switch {
	case text == "i":
		return I[D]().withSign(sign), nil
	case strings.HasPrefix(text, "e"):
		return parseFactors[D](s, text[1:], sign)
	default:
		return Basis[D]{}, errorf(fmt.Sprintf("Parse(%q)", s), ErrSyntax)
	}
}

// MustParse is like Parse but panics on error. Intended for constants in tests
// and examples.
func MustParse[D Dim](s string) Basis[D] {
	b, err := Parse[D](s)
	if err != nil {
		panic(err)
	}

	return b
}

// parseFactors multiplies the listed generators left to right. The wedge of
// distinct generators never collapses, so the metric plays no part.
func parseFactors[D Dim](src, digits string, sign Sign) (Basis[D], error) {
	n := DimOf[D]()
	acc := One[D]()
	var seen uint64
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Basis[D]{}, errorf(fmt.Sprintf("Parse(%q)", src), ErrSyntax)
		}
		i := int(r - '0')
		if i >= n {
			return Basis[D]{}, errorf(fmt.Sprintf("Parse(%q): index %d", src, i), ErrIndexOutOfRange)
		}
		bit := uint64(1) << uint(i)
		if seen&bit != 0 {
			return Basis[D]{}, errorf(fmt.Sprintf("Parse(%q): repeated index %d", src, i), ErrSyntax)
		}
		seen |= bit
		acc = acc.Exterior(Basis[D]{bits: bit, nonzero: true}, Metric[D]{})
	}

	return acc.withSign(acc.sign.Mul(sign)), nil
}

func (b Basis[D]) withSign(sign Sign) Basis[D] {
	b.sign = sign

	return b
}
