package cayley

import "errors"

var (
	// ErrTooLarge indicates an algebra above the configured maximum dimension.
	ErrTooLarge = errors.New("cayley: algebra too large to tabulate")

	// ErrOutOfRange indicates a blade index outside [0, K).
	ErrOutOfRange = errors.New("cayley: index out of range")

	// ErrNotPositiveBlade indicates a lookup operand that is vanishing or has a
	// negative sign; tables are indexed by positive unit blades only.
	ErrNotPositiveBlade = errors.New("cayley: operand is not a positive basis blade")
)
