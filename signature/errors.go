package signature

import "errors"

var (
	// ErrNegativeCount indicates a negative P, Q or R.
	ErrNegativeCount = errors.New("signature: negative generator count")

	// ErrTooManyDimensions indicates P+Q+R above blade.MaxDim.
	ErrTooManyDimensions = errors.New("signature: too many dimensions")

	// ErrSyntax indicates text that is not of the form "Cl(p,q,r)" or "p,q,r".
	ErrSyntax = errors.New("signature: invalid signature notation")

	// ErrUnknownAlgebra indicates a name with no registered algebra.
	ErrUnknownAlgebra = errors.New("signature: unknown algebra")
)
