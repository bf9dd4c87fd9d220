package blade

// Derived products. Each evaluates the geometric product first and keeps it
// only when its grade passes the product's filter; a vanishing geometric
// product stays vanishing and is never grade-tested.

// Exterior computes the exterior (wedge) product b ∧ rhs.
//
//   - eᵢ ∧ eᵢ = 0
//   - eᵢ ∧ eⱼ = eᵢⱼ = -(eⱼ ∧ eᵢ) for i ≠ j
//
// Kept iff grade(b) + grade(rhs) == grade(b·rhs).
func (b Basis[D]) Exterior(rhs Basis[D], m Metric[D]) Basis[D] {
	p := b.Geometric(rhs, m)
	if p.IsZero() {
		return p
	}
	if b.grade()+rhs.grade() != p.grade() {
		return Basis[D]{}
	}

	return p
}

// Regressive computes the regressive (vee) product b ∨ rhs through the
// Poincaré duality identity A ∨ B = J(J(A) ∧ J(B)).
func (b Basis[D]) Regressive(rhs Basis[D], m Metric[D]) Basis[D] {
	return b.Dual().Exterior(rhs.Dual(), m).Dual()
}

// LeftContraction computes b >> rhs, the contraction of b onto rhs: the part of
// rhs perpendicular to b.
// Kept iff grade(rhs) - grade(b) == grade(b·rhs); vanishes when
// grade(rhs) < grade(b).
func (b Basis[D]) LeftContraction(rhs Basis[D], m Metric[D]) Basis[D] {
	p := b.Geometric(rhs, m)
	if p.IsZero() {
		return p
	}
	l, r := b.grade(), rhs.grade()
	if r < l || r-l != p.grade() {
		return Basis[D]{}
	}

	return p
}

// RightContraction computes b << rhs, the contraction of b by rhs, through the
// identity A << B = rev(rev(B) >> rev(A)).
func (b Basis[D]) RightContraction(rhs Basis[D], m Metric[D]) Basis[D] {
	return rhs.Reverse().LeftContraction(b.Reverse(), m).Reverse()
}

// Inner computes the bidirectional inner product b | rhs.
// Kept iff |grade(b) - grade(rhs)| == grade(b·rhs) and neither operand is a
// scalar.
func (b Basis[D]) Inner(rhs Basis[D], m Metric[D]) Basis[D] {
	if b.nonzero && rhs.nonzero && (b.grade() == 0 || rhs.grade() == 0) {
		return Basis[D]{}
	}

	return b.Dot(rhs, m)
}

// Dot computes the bidirectional contraction b · rhs without special-casing
// scalars: kept iff |grade(b) - grade(rhs)| == grade(b·rhs).
func (b Basis[D]) Dot(rhs Basis[D], m Metric[D]) Basis[D] {
	p := b.Geometric(rhs, m)
	if p.IsZero() {
		return p
	}
	if absDiff(b.grade(), rhs.grade()) != p.grade() {
		return Basis[D]{}
	}

	return p
}

// Scalar computes the scalar product b * rhs, non-vanishing only when the
// geometric product is a scalar. rev(A) * A is the squared norm of A.
func (b Basis[D]) Scalar(rhs Basis[D], m Metric[D]) Basis[D] {
	p := b.Geometric(rhs, m)
	if p.IsZero() || p.grade() != 0 {
		return Basis[D]{}
	}

	return p
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
