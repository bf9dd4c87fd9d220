package signature

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/clifford/blade"
)

// Signature counts the generators of a Clifford algebra by square class.
type Signature struct {
	P int // generators with eᵢ² = +1
	Q int // generators with eᵢ² = -1
	R int // generators with eᵢ² = 0
}

// New validates the counts and returns the signature Cl(p,q,r).
//
// Errors: ErrNegativeCount, ErrTooManyDimensions.
func New(p, q, r int) (Signature, error) {
	s := Signature{P: p, Q: q, R: r}
	if err := s.Validate(); err != nil {
		return Signature{}, err
	}

	return s, nil
}

// Validate reports whether the counts describe a supported algebra.
func (s Signature) Validate() error {
	if s.P < 0 || s.Q < 0 || s.R < 0 {
		return fmt.Errorf("%s: %w", s, ErrNegativeCount)
	}
	if s.Dim() > blade.MaxDim {
		return fmt.Errorf("%s: N=%d above %d: %w", s, s.Dim(), blade.MaxDim, ErrTooManyDimensions)
	}

	return nil
}

// Dim returns N = P+Q+R.
func (s Signature) Dim() int {
	return s.P + s.Q + s.R
}

// Squares lists the square class of every generator in index order.
func (s Signature) Squares() []blade.Square {
	out := make([]blade.Square, 0, max(s.Dim(), 0))
	for i := 0; i < s.P; i++ {
		out = append(out, blade.SquarePos)
	}
	for i := 0; i < s.Q; i++ {
		out = append(out, blade.SquareNeg)
	}
	for i := 0; i < s.R; i++ {
		out = append(out, blade.SquareZero)
	}

	return out
}

// BladeCount returns 2^N, the number of basis blades. It saturates at
// math.MaxUint64 for N = 64, which has 2^64 blades.
func (s Signature) BladeCount() uint64 {
	n := s.Dim()
	if n >= 64 {
		return ^uint64(0)
	}

	return uint64(1) << uint(n)
}

// GradeSize returns binomial(N, k), the number of blades of grade k; zero for k
// outside [0, N].
func (s Signature) GradeSize(k int) uint64 {
	n := s.Dim()
	if k < 0 || k > n {
		return 0
	}

	return new(big.Int).Binomial(int64(n), int64(k)).Uint64()
}

// IsDegenerate reports whether any generator squares to zero.
func (s Signature) IsDegenerate() bool {
	return s.R > 0
}

// String renders the signature as "Cl(p,q,r)".
func (s Signature) String() string {
	return fmt.Sprintf("Cl(%d,%d,%d)", s.P, s.Q, s.R)
}

// Metric builds the metric of s for the dimension type D.
// Returns blade.ErrDimensionMismatch if D.Len() != s.Dim().
func Metric[D blade.Dim](s Signature) (blade.Metric[D], error) {
	if err := s.Validate(); err != nil {
		return blade.Metric[D]{}, err
	}
	m, err := blade.NewMetric[D](s.Squares()...)
	if err != nil {
		return blade.Metric[D]{}, fmt.Errorf("%s: %w", s, err)
	}

	return m, nil
}

// Parse reads a signature written as "Cl(p,q,r)", "(p,q,r)" or "p,q,r";
// a missing r ("Cl(3,1)") defaults to zero.
//
// Errors: ErrSyntax, plus the errors of New.
func Parse(text string) (Signature, error) {
	body := strings.TrimSpace(text)
	body = strings.TrimPrefix(body, "Cl")
	body = strings.TrimPrefix(strings.TrimSuffix(body, ")"), "(")

	fields := strings.Split(body, ",")
	if len(fields) < 2 || len(fields) > 3 {
		return Signature{}, fmt.Errorf("Parse(%q): %w", text, ErrSyntax)
	}
	counts := [3]int{}
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Signature{}, fmt.Errorf("Parse(%q): %w", text, ErrSyntax)
		}
		counts[i] = v
	}

	return New(counts[0], counts[1], counts[2])
}
