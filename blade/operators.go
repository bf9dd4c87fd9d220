package blade

import "math/bits"

// Grade returns the number of distinct factors of b (its step); ok is false for
// the vanishing blade, whose grade is undefined.
func (b Basis[D]) Grade() (grade int, ok bool) {
	if !b.nonzero {
		return 0, false
	}

	return b.grade(), true
}

// AntiGrade returns N - grade(b); ok is false for the vanishing blade.
func (b Basis[D]) AntiGrade() (antiGrade int, ok bool) {
	if !b.nonzero {
		return 0, false
	}

	return DimOf[D]() - b.grade(), true
}

// IsScalar reports whether b is a non-vanishing grade-0 blade (±1).
func (b Basis[D]) IsScalar() bool {
	return b.nonzero && b.bits == 0
}

// IsPseudoscalar reports whether b is a non-vanishing grade-N blade (±I).
func (b Basis[D]) IsPseudoscalar() bool {
	return b.nonzero && b.bits == fullMask[D]()
}

// Dual is the Poincaré duality operator J: the complement of the presence
// vector with the sign unchanged. J(J(A)) == A for every N.
func (b Basis[D]) Dual() Basis[D] {
	if !b.nonzero {
		return b
	}
	b.bits ^= fullMask[D]()

	return b
}

// Reverse writes the factors of b in reverse order: rev(eᵢⱼ) = eⱼᵢ = -eᵢⱼ.
// The sign flips iff r(r-1)/2 is odd for grade r, i.e. r ≡ 2, 3 (mod 4).
func (b Basis[D]) Reverse() Basis[D] {
	if !b.nonzero {
		return b
	}
	r := b.grade()
	b.sign = b.sign.flipIf((r*(r-1)/2)&1 == 1)

	return b
}

// Involute is the grade involution: the sign of odd-grade blades flips.
func (b Basis[D]) Involute() Basis[D] {
	if !b.nonzero {
		return b
	}
	b.sign = b.sign.flipIf(b.grade()&1 == 1)

	return b
}

// Conjugate is the Clifford conjugate, Involute(Reverse(b)).
func (b Basis[D]) Conjugate() Basis[D] {
	return b.Reverse().Involute()
}

// grade assumes b is non-vanishing.
func (b Basis[D]) grade() int {
	return bits.OnesCount64(b.bits)
}
