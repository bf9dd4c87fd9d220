// Package signature derives the dimension and metric of a Clifford algebra
// Cl(p,q,r) from its generator counts.
//
// What:
//
//   - Signature{P, Q, R}: P generators square to +1, Q to -1 and R to 0.
//     N = P+Q+R; generators [0,P) are positive, [P,P+Q) negative, [P+Q,N) null.
//   - Metric[D]: the blade.Metric of the signature for a dimension type D.
//   - Counting: BladeCount (2^N) and GradeSize (binomial(N, k)).
//   - Named algebras: Complex, Quaternion, Dual, VGA2, VGA3, PGA2, PGA3, STA, CGA3.
//
// Errors:
//
//   - ErrNegativeCount      a negative generator count
//   - ErrTooManyDimensions  N above blade.MaxDim
//   - ErrSyntax             malformed text passed to Parse
//   - ErrUnknownAlgebra     name not found by Lookup
//   - blade.ErrDimensionMismatch  Metric[D] with D.Len() != N
package signature
