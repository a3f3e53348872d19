package numeric

import "github.com/pkg/errors"

var (
	// ErrInvalidType is returned when an invalid type conversion is attempted
	ErrInvalidType = errors.New("invalid type conversion")
	// ErrDivisionByZero is returned when the divisor is the additive identity
	ErrDivisionByZero = errors.New("division by zero")
	// ErrKindMismatch is returned when operands have different kinds
	ErrKindMismatch = errors.New("numeric kind mismatch")
)
