package circledrawer

import "github.com/pkg/errors"

var (
	// ErrInvalidOperation is returned when the list operation is not allowed for its arguments.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvariantViolation is returned when the list structure is found broken.
	ErrInvariantViolation = errors.New("list invariant violated")
)
