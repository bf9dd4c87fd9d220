// Package blade implements exact symbolic arithmetic on the basis blades of a
// finite-dimensional Clifford (geometric) algebra with an arbitrary metric
// signature.
//
// What:
//
//   - Sign: the two-element group {Pos, Neg} tracking accumulated parity.
//   - Square, Metric: the per-axis square classification {+1, -1, 0} of every
//     orthogonal generator, fixed once per algebra.
//   - Basis: a single basis blade, either vanishing (the zero blade) or a
//     (Sign, presence) pair where bit i of presence means generator eᵢ is a factor.
//   - Products: geometric (the core), exterior ∧, regressive ∨, left contraction >>,
//     right contraction <<, inner |, dot · and scalar *.
//   - Operators: grade, anti-grade, Poincaré dual, reversion, grade involution,
//     Clifford conjugation.
//
// Dimension:
//
// The algebra dimension N is a type parameter implementing Dim. Every type is
// parametrized on it, so combining blades of different algebras, or a blade with
// a metric of another dimension, does not compile:
//
//	m := blade.Euclidean[blade.D3]()
//	e0, _ := blade.Generator[blade.D3](0)
//	e1, _ := blade.Generator[blade.D3](1)
//	fmt.Println(e0.Geometric(e1, m)) // e01
//
// Vanishing:
//
// An annihilated product (a shared generator squaring to zero) or a failed grade
// filter yields the vanishing blade. It is an ordinary value, the additive
// identity, and every operation maps a vanishing operand to a vanishing result.
// The zero value of Basis is the vanishing blade; the zero value of Metric is the
// Euclidean metric.
//
// Conventions:
//
//   - Dual is the plain complement of the presence vector with the sign kept, so
//     Dual(Dual(A)) == A for every N.
//   - Inner excludes grade-0 operands; Dot is the same filter without that exclusion.
//
// Complexity:
//
//   - Grade, Dual, Reverse, Involute, Conjugate: O(1) word operations.
//   - Geometric and every derived product: O(N) popcounts.
//
// Errors:
//
//   - ErrDimensionMismatch  presence vector or square list length differs from N
//   - ErrIndexOutOfRange    generator index or presence bit outside [0, N)
//   - ErrInvalidSign        sign value other than Pos or Neg
//   - ErrInvalidSquare      square value other than SquarePos, SquareNeg, SquareZero
//   - ErrSyntax             malformed e-notation passed to Parse
//   - ErrUnknownOp          product name not recognized by ParseOp
package blade
