// Package clifford is an exact, allocation-light kernel for basis-blade
// arithmetic in Clifford (geometric) algebras of any signature Cl(p,q,r).
//
// 🚀 What is clifford?
//
//	A pure-Go library that answers, symbolically and without floating point,
//	how two basis blades combine:
//		• Geometric product with permutation-parity sign tracking
//		• Exterior, regressive, left/right contraction, inner, dot, scalar products
//		• Grade, anti-grade, Poincaré dual, reversion, grade involution, conjugation
//		• Any mix of generators squaring to +1, -1 and 0 (degenerate metrics, PGA)
//		• Cayley tables over all 2^N blades for multivector implementations
//
// ✨ Why choose clifford?
//
//   - Dimension checked by the compiler – blades and metrics carry N as a type parameter
//   - Vanishing is a value – annihilated products propagate, they never error
//   - Deterministic – pure functions, no shared state, safe for concurrent use
//
// Packages:
//
//	blade/      - Sign, Square, Metric, Basis, every product and operator, e-notation
//	signature/  - Cl(p,q,r) → dimension & Metric, blade counting, named algebras
//	cayley/     - parallel product tables with roaring-bitmap support sets
//	cmd/gablade - command-line calculator
//
// Quick example:
//
//	m := blade.Euclidean[blade.D2]()
//	e0 := blade.MustParse[blade.D2]("e0")
//	e1 := blade.MustParse[blade.D2]("e1")
//	e0.Geometric(e1, m) // e01, printed "i" in two dimensions
//	e1.Geometric(e0, m) // -i
//
//	go get github.com/katalvlaran/clifford
package clifford
