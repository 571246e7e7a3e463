package choice

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// ErrUnmatchedVariant matches every *UnmatchedVariantError.
var ErrUnmatchedVariant = errors.New("unmatched choice variant")

// UnmatchedVariantError reports a choice field for which no variant applies:
// no predicate accepted the object-model value, the protocol buffer oneof
// named a member the registry does not know, or a required choice was empty.
type UnmatchedVariantError struct {
	// Field is the registry's field name.
	Field string
	// Tag is the unknown oneof member, when dispatching by tag.
	Tag protoreflect.Name
	// Value describes the rejected object-model value, when resolving.
	Value string
}

func (e *UnmatchedVariantError) Error() string {
	switch {
	case e.Tag != "":
		return fmt.Sprintf("%s: no variant for oneof member %q", e.Field, e.Tag)
	case e.Value != "":
		return fmt.Sprintf("%s: no variant matches %s", e.Field, e.Value)
	default:
		return fmt.Sprintf("%s: no variant populated", e.Field)
	}
}

// Is reports whether target is ErrUnmatchedVariant.
func (e *UnmatchedVariantError) Is(target error) bool {
	return target == ErrUnmatchedVariant
}
