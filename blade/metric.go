package blade

import (
	"fmt"
	"strings"
)

// Square classifies how one orthogonal generator squares under the geometric
// product: eᵢeᵢ = 1, -1 or 0.
type Square uint8

const (
	// SquarePos marks a generator with eᵢeᵢ = 1.
	SquarePos Square = iota
	// SquareNeg marks a generator with eᵢeᵢ = -1.
	SquareNeg
	// SquareZero marks a degenerate generator with eᵢeᵢ = 0.
	SquareZero
)

// Valid reports whether q is one of the three square classes.
func (q Square) Valid() bool {
	return q <= SquareZero
}

// String renders the value of eᵢeᵢ: "1", "-1" or "0".
func (q Square) String() string {
	switch q {
	case SquarePos:
		return "1"
	case SquareNeg:
		return "-1"
	case SquareZero:
		return "0"
	default:
		return fmt.Sprintf("Square(%d)", uint8(q))
	}
}

// Metric is the signature of an algebra of dimension N: one Square per
// generator, fixed at construction.
//
// The squares are kept as two presence masks so the geometric product can
// classify every shared factor with word operations. A Metric is an immutable
// value; the zero value is the Euclidean metric (every generator squares to 1).
type Metric[D Dim] struct {
	neg  uint64 // generators with eᵢeᵢ = -1
	null uint64 // generators with eᵢeᵢ = 0
}

// NewMetric builds a metric from exactly N squares, squares[i] classifying eᵢ.
//
// Errors: ErrDimensionMismatch if len(squares) != N, ErrInvalidSquare for an
// unknown square value.
func NewMetric[D Dim](squares ...Square) (Metric[D], error) {
	n := DimOf[D]()
	if len(squares) != n {
		return Metric[D]{}, errorf(fmt.Sprintf("NewMetric: got %d squares for N=%d", len(squares), n), ErrDimensionMismatch)
	}

	var m Metric[D]
	for i, q := range squares {
		switch q {
		case SquarePos:
			// nothing to record: Pos is the zero classification
		case SquareNeg:
			m.neg |= uint64(1) << uint(i)
		case SquareZero:
			m.null |= uint64(1) << uint(i)
		default:
			return Metric[D]{}, errorf(fmt.Sprintf("NewMetric: squares[%d]", i), ErrInvalidSquare)
		}
	}

	return m, nil
}

// Euclidean returns the metric in which every generator squares to 1.
func Euclidean[D Dim]() Metric[D] {
	return Metric[D]{}
}

// Len returns the dimension N.
func (m Metric[D]) Len() int {
	return DimOf[D]()
}

// At returns the square of generator eᵢ.
// Returns ErrIndexOutOfRange if i is outside [0, N).
func (m Metric[D]) At(i int) (Square, error) {
	if i < 0 || i >= DimOf[D]() {
		return SquarePos, errorf(fmt.Sprintf("Metric.At(%d)", i), ErrIndexOutOfRange)
	}

	return m.square(i), nil
}

// Squares returns a fresh copy of the per-generator squares.
func (m Metric[D]) Squares() []Square {
	n := DimOf[D]()
	out := make([]Square, n)
	for i := range out {
		out[i] = m.square(i)
	}

	return out
}

// IsDegenerate reports whether any generator squares to zero.
func (m Metric[D]) IsDegenerate() bool {
	return m.null != 0
}

// String renders the metric as "e0²=1 e1²=-1 e2²=0".
func (m Metric[D]) String() string {
	n := DimOf[D]()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("e%d²=%s", i, m.square(i))
	}

	return strings.Join(parts, " ")
}

func (m Metric[D]) square(i int) Square {
	bit := uint64(1) << uint(i)
	switch {
	case m.null&bit != 0:
		return SquareZero
	case m.neg&bit != 0:
		return SquareNeg
	default:
		return SquarePos
	}
}
