// Package blade: sentinel error set.
// Algebraic failure is never an error here: it is the vanishing blade. These
// sentinels only cover malformed construction input. Callers match them with
// errors.Is; constructors wrap them with the offending value for context.

package blade

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a presence vector or a list of squares whose
	// length differs from the algebra dimension N.
	ErrDimensionMismatch = errors.New("blade: dimension mismatch")

	// ErrIndexOutOfRange indicates a generator index outside [0, N).
	ErrIndexOutOfRange = errors.New("blade: generator index out of range")

	// ErrInvalidSign indicates a Sign value other than Pos or Neg.
	ErrInvalidSign = errors.New("blade: invalid sign")

	// ErrInvalidSquare indicates a Square value other than SquarePos, SquareNeg or SquareZero.
	ErrInvalidSquare = errors.New("blade: invalid square")

	// ErrSyntax indicates malformed e-notation.
	ErrSyntax = errors.New("blade: invalid blade notation")

	// ErrUnknownOp indicates a product name that ParseOp does not recognize.
	ErrUnknownOp = errors.New("blade: unknown product")
)

// errorf wraps err with the tag of the failing constructor.
func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
