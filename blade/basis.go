package blade

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"
)

// Basis is a basis blade of the algebra of dimension N: either vanishing (the
// zero blade) or a signed set of generators.
//
// The presence encoding is order-independent: it records which generators are
// factors, not the order they were multiplied in. The sign is therefore carried
// separately and transposition parity is recomputed from the operands' presence
// bits at product time.
//
// Basis is a comparable value. Two blades are equal (==) iff both vanish, or both
// are non-vanishing with the same sign and presence. The zero value is the
// vanishing blade.
type Basis[D Dim] struct {
	bits    uint64 // bit i set ⇔ eᵢ is a factor
	sign    Sign
	nonzero bool // false ⇔ vanishing; bits and sign are then zero
}

// Zero returns the vanishing blade.
func Zero[D Dim]() Basis[D] {
	return Basis[D]{}
}

// One returns the scalar unit: no factors, positive sign.
func One[D Dim]() Basis[D] {
	return Basis[D]{nonzero: true}
}

// I returns the unit pseudoscalar: every generator a factor, positive sign.
func I[D Dim]() Basis[D] {
	return Basis[D]{bits: fullMask[D](), nonzero: true}
}

// New builds a positive blade from an explicit presence vector of length N,
// presence[i] meaning eᵢ is a factor.
// Returns ErrDimensionMismatch if len(presence) != N.
func New[D Dim](presence ...bool) (Basis[D], error) {
	return NewSigned[D](Pos, presence...)
}

// NewSigned builds a blade with the given sign from a presence vector of length N.
//
// Errors: ErrInvalidSign, ErrDimensionMismatch.
func NewSigned[D Dim](sign Sign, presence ...bool) (Basis[D], error) {
	if !sign.Valid() {
		return Basis[D]{}, errorf("NewSigned", ErrInvalidSign)
	}
	n := DimOf[D]()
	if len(presence) != n {
		return Basis[D]{}, errorf(fmt.Sprintf("NewSigned: got %d flags for N=%d", len(presence), n), ErrDimensionMismatch)
	}

	var mask uint64
	for i, set := range presence {
		if set {
			mask |= uint64(1) << uint(i)
		}
	}

	return Basis[D]{bits: mask, sign: sign, nonzero: true}, nil
}

// FromBits builds a blade from a presence encoding, bit i standing for eᵢ.
// This is the index a multivector uses for the blade's coefficient.
//
// Errors: ErrInvalidSign, ErrIndexOutOfRange if a bit at or above N is set.
func FromBits[D Dim](sign Sign, mask uint64) (Basis[D], error) {
	if !sign.Valid() {
		return Basis[D]{}, errorf("FromBits", ErrInvalidSign)
	}
	if mask&^fullMask[D]() != 0 {
		return Basis[D]{}, errorf(fmt.Sprintf("FromBits(%#x)", mask), ErrIndexOutOfRange)
	}

	return Basis[D]{bits: mask, sign: sign, nonzero: true}, nil
}

// Generator returns the positive grade-1 blade eᵢ.
// Returns ErrIndexOutOfRange if i is outside [0, N).
func Generator[D Dim](i int) (Basis[D], error) {
	if i < 0 || i >= DimOf[D]() {
		return Basis[D]{}, errorf(fmt.Sprintf("Generator(%d)", i), ErrIndexOutOfRange)
	}

	return Basis[D]{bits: uint64(1) << uint(i), nonzero: true}, nil
}

// All returns every positive basis blade of the algebra, 2^N in total, ordered
// by grade and, within a grade, by presence encoding:
//
//	N=3: e, e0, e1, e2, e01, e02, e12, i
//
// The slice grows as 2^N; callers are expected to keep N small.
func All[D Dim]() []Basis[D] {
	n := DimOf[D]()
	count := uint64(1) << uint(n)
	out := make([]Basis[D], 0, count)
	for mask := uint64(0); mask < count; mask++ {
		out = append(out, Basis[D]{bits: mask, nonzero: true})
	}
	slices.SortFunc(out, func(a, b Basis[D]) int {
		if c := cmp.Compare(bits.OnesCount64(a.bits), bits.OnesCount64(b.bits)); c != 0 {
			return c
		}
		return cmp.Compare(a.bits, b.bits)
	})

	return out
}

// IsZero reports whether b is the vanishing blade.
func (b Basis[D]) IsZero() bool {
	return !b.nonzero
}

// Sign returns the sign of b; ok is false for the vanishing blade.
func (b Basis[D]) Sign() (sign Sign, ok bool) {
	return b.sign, b.nonzero
}

// Bits returns the presence encoding of b; ok is false for the vanishing blade.
func (b Basis[D]) Bits() (mask uint64, ok bool) {
	return b.bits, b.nonzero
}

// Presence returns the presence vector of b as N flags, or nil if b vanishes.
func (b Basis[D]) Presence() []bool {
	if !b.nonzero {
		return nil
	}
	out := make([]bool, DimOf[D]())
	for i := range out {
		out[i] = b.bits&(uint64(1)<<uint(i)) != 0
	}

	return out
}

// Has reports whether eᵢ is a factor of b. It is false for a vanishing blade
// and for i outside [0, N).
func (b Basis[D]) Has(i int) bool {
	if !b.nonzero || i < 0 || i >= DimOf[D]() {
		return false
	}

	return b.bits&(uint64(1)<<uint(i)) != 0
}

// Unit returns b with a positive sign; a vanishing blade stays vanishing.
func (b Basis[D]) Unit() Basis[D] {
	if !b.nonzero {
		return b
	}
	b.sign = Pos

	return b
}

// Neg flips the sign of b; a vanishing blade stays vanishing.
func (b Basis[D]) Neg() Basis[D] {
	if !b.nonzero {
		return b
	}
	b.sign = b.sign.Neg()

	return b
}
