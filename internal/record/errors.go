package record

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	// ErrSchema marks schema shape problems: unknown proto fields, kind
	// mismatches, converters handed the wrong message type.
	ErrSchema = errors.New("schema error")
	// ErrNilElement is returned for a nil element inside an object-model slice.
	ErrNilElement = errors.New("nil element in repeated field")
)

// FieldError attaches the record and field to a conversion failure.
type FieldError struct {
	Record string
	Field  protoreflect.Name
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Record, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

func schemaErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSchema, fmt.Sprintf(format, args...))
}
