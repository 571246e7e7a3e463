package choice

import (
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Variant is one alternative of a choice field.
type Variant[V any] struct {
	// Tag is the oneof member field name, e.g. "string_value".
	Tag protoreflect.Name
	// Match reports whether an object-model value is this variant.
	Match func(V) bool
	// Construct writes v into m, a fresh message of the member's type.
	Construct func(v V, m protoreflect.Message) error
	// Extract reads a member message back into an object-model value.
	Extract func(m protoreflect.Message) (V, error)
}

// Is reports whether v holds a T. With a concrete T this is an exact type
// test; with an interface T it accepts every implementation, which is how
// structurally ambiguous variants arise.
func Is[V, T any](v V) bool {
	_, ok := any(v).(T)

	return ok
}
