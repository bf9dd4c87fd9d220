package blade

import "math/bits"

// Geometric computes the geometric product b·rhs under metric m.
//
//   - eᵢeⱼ = eᵢⱼ and eⱼeᵢ = -eᵢⱼ for i ≠ j
//   - eᵢeᵢ = 1, -1 or 0 as m classifies eᵢ
//
// The result sign starts as the product of the operand signs. Merging the two
// unordered factor sets into ascending order moves every factor eᵢ of b past
// each factor eⱼ of rhs with j < i; each such transposition of distinct
// anticommuting generators flips the sign once. Factors present in both
// operands collapse through the metric: a positive square drops the factor, a
// negative square drops it and flips the sign, and a zero square annihilates the
// whole product.
//
// The product is associative but not commutative. A vanishing operand gives a
// vanishing result.
func (b Basis[D]) Geometric(rhs Basis[D], m Metric[D]) Basis[D] {
	if !b.nonzero || !rhs.nonzero {
		return Basis[D]{}
	}

	shared := b.bits & rhs.bits
	if shared&m.null != 0 {
		// eᵢeᵢ = 0 for some shared factor
		return Basis[D]{}
	}

	flips := transpositions(b.bits, rhs.bits) + bits.OnesCount64(shared&m.neg)
	sign := b.sign.Mul(rhs.sign).flipIf(flips&1 == 1)

	return Basis[D]{bits: b.bits ^ rhs.bits, sign: sign, nonzero: true}
}

// transpositions counts the pairs (i, j) with j < i, bit i set in lhs and bit j
// set in rhs: the swaps needed to sort the concatenated factor lists of lhs and
// rhs into ascending order.
func transpositions(lhs, rhs uint64) int {
	count := 0
	for rest := lhs; rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros64(rest)
		below := uint64(1)<<uint(i) - 1
		count += bits.OnesCount64(rhs & below)
	}

	return count
}
