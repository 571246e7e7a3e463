package code

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownValue matches every *UnknownValueError.
	ErrUnknownValue = errors.New("unknown enum value")
	// ErrUnbound is returned by number conversions on a family without an enum.
	ErrUnbound = errors.New("family is not bound to an enum")
)

// UnknownValueError reports a coded field whose token has no counterpart in the
// target vocabulary after normalization.
type UnknownValueError struct {
	// Field is the field being converted (may be empty outside a record).
	Field string
	// Family is the enum family name.
	Family string
	// Token is the raw source token: a code, a constant name or a number.
	Token string
}

// Error omits Field; callers that wrap the error already name the field.
func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown %s value %q", e.Family, e.Token)
}

// Is reports whether target is ErrUnknownValue.
func (e *UnknownValueError) Is(target error) bool {
	return target == ErrUnknownValue
}
