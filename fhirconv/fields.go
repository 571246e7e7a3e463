package fhirconv

import (
	"reflect"

	"google.golang.org/protobuf/reflect/protoreflect"

	"fhir-caster/internal/choice"
	"fhir-caster/internal/code"
	"fhir-caster/internal/record"
	"fhir-caster/model"
)

// The helpers below adapt pointer-to-field accessors to the record field
// constructors. A nil pointer, an empty code and a nil choice are absent.

func scalar[T, E any](name protoreflect.Name, field func(*T) **E, codec record.Codec[*E]) record.Field[T] {
	return record.Scalar(name,
		func(t *T) (*E, bool) {
			v := *field(t)
			return v, v != nil
		},
		func(t *T, v *E) { *field(t) = v },
		codec,
	)
}

func nested[T, E any](name protoreflect.Name, field func(*T) **E, schema *record.Schema[E]) record.Field[T] {
	return record.Nested(name,
		func(t *T) (*E, bool) {
			v := *field(t)
			return v, v != nil
		},
		func(t *T, v *E) { *field(t) = v },
		schema,
	)
}

func list[T, E any](name protoreflect.Name, field func(*T) *[]*E, codec record.Codec[*E]) record.Field[T] {
	return record.Repeated(name,
		func(t *T) []*E { return *field(t) },
		func(t *T, v []*E) { *field(t) = v },
		codec,
	)
}

func records[T, E any](name protoreflect.Name, field func(*T) *[]*E, schema *record.Schema[E]) record.Field[T] {
	return list(name, field, record.Codec[*E](schema))
}

func coded[T any, E ~string](name protoreflect.Name, field func(*T) *E, family *code.Family) record.Field[T] {
	return record.Code(name,
		func(t *T) (E, bool) {
			v := *field(t)
			return v, v != ""
		},
		func(t *T, v E) { *field(t) = v },
		family,
	)
}

func oneOf[T any](name protoreflect.Name, field func(*T) *model.Type, registry *choice.Registry[model.Type], required bool) record.Field[T] {
	return record.Choice(name,
		func(t *T) (model.Type, bool) {
			v := *field(t)
			return v, present(v)
		},
		func(t *T, v model.Type) { *field(t) = v },
		registry,
		required,
	)
}

// present reports whether a choice or resource holds a value. Every
// model.Type and model.Resource is a pointer, so a typed nil counts as absent.
func present(v any) bool {
	return v != nil && !reflect.ValueOf(v).IsNil()
}
