// Package cayley tabulates a blade product over every pair of basis blades of
// an algebra: the multiplication table a multivector implementation consumes to
// combine coefficients.
//
// What:
//
//   - Build evaluates one blade.Op for all 2^N × 2^N ordered pairs of positive
//     basis blades, rows in parallel.
//   - Table answers per-pair lookups by blade or by index, exposes the blade
//     order (grade, then presence encoding) and renders an aligned text grid.
//   - Support and Grade expose sparse index sets as roaring bitmaps: the pairs
//     whose product does not vanish, and the blades of one grade.
//
// Why:
//
//   - Sparse multivector products iterate Support instead of all K² pairs.
//   - Degenerate metrics (PGA) and filtered products (∧, >>, |) are mostly zero;
//     Density reports how much.
//
// Complexity:
//
//   - Build: Time O(4^N · N), Memory O(4^N); rows are spread over the workers.
//   - At, Cell, IndexOf: O(1).
//
// Options:
//
//   - WithWorkers(n): number of rows computed concurrently (default GOMAXPROCS).
//   - WithMaxDim(n):  refuse algebras above n generators (default 10).
//
// Errors:
//
//   - ErrTooLarge          N above the configured maximum
//   - ErrOutOfRange        index outside [0, K)
//   - ErrNotPositiveBlade  IndexOf called with a vanishing or negative blade
//   - context errors       Build canceled through its context
package cayley
