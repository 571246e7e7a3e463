package record

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"

	"fhir-caster/internal/choice"
)

type choiceField[T, V any] struct {
	name     protoreflect.Name
	get      func(*T) (V, bool)
	set      func(*T, V)
	registry *choice.Registry[V]
	required bool

	// wrapper is the message field holding the oneof, nil when the oneof is
	// declared on the record itself.
	wrapper   protoreflect.FieldDescriptor
	oneof     protoreflect.OneofDescriptor
	uncovered []protoreflect.Name
}

// Choice maps a choice field through a variant registry. name is either a
// message field whose type declares a single oneof, or a oneof of the record.
// A required choice with no populated variant fails with
// *choice.UnmatchedVariantError in both directions.
func Choice[T, V any](name protoreflect.Name, get func(*T) (V, bool), set func(*T, V), registry *choice.Registry[V], required bool) Field[T] {
	return &choiceField[T, V]{name: name, get: get, set: set, registry: registry, required: required}
}

func (f *choiceField[T, V]) Name() protoreflect.Name { return f.name }
func (f *choiceField[T, V]) Strategy() Strategy      { return StrategyChoice }

func (f *choiceField[T, V]) Info() FieldInfo {
	info := FieldInfo{
		Name:      f.name,
		Strategy:  StrategyChoice,
		Required:  f.required,
		Variants:  f.registry.Tags(),
		Uncovered: f.uncovered,
	}

	if f.oneof != nil {
		info.Type = f.oneof.FullName()
	}

	return info
}

func (f *choiceField[T, V]) bind(_ string, md protoreflect.MessageDescriptor) error {
	if od := md.Oneofs().ByName(f.name); od != nil {
		f.oneof = od
	} else {
		fd := md.Fields().ByName(f.name)
		if fd == nil {
			return schemaErrorf("%s has no field or oneof %q", md.FullName(), f.name)
		}

		if fd.IsList() || fd.Message() == nil {
			return schemaErrorf("choice field %q is not a singular message", f.name)
		}

		if n := fd.Message().Oneofs().Len(); n != 1 {
			return schemaErrorf("choice field %q: %s declares %d oneofs", f.name, fd.Message().FullName(), n)
		}

		f.wrapper = fd
		f.oneof = fd.Message().Oneofs().Get(0)
	}

	uncovered, err := f.registry.Bind(f.oneof)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}

	f.uncovered = uncovered

	return nil
}

func (f *choiceField[T, V]) missing() error {
	if f.required {
		return &choice.UnmatchedVariantError{Field: f.registry.Field()}
	}

	return nil
}

func (f *choiceField[T, V]) encode(src *T, dst protoreflect.Message) error {
	v, ok := f.get(src)
	if !ok {
		return f.missing()
	}

	if f.wrapper == nil {
		_, err := f.registry.Write(v, dst, f.oneof)
		return err
	}

	w := dst.NewField(f.wrapper).Message()
	if _, err := f.registry.Write(v, w, f.oneof); err != nil {
		return err
	}

	dst.Set(f.wrapper, protoreflect.ValueOfMessage(w))

	return nil
}

func (f *choiceField[T, V]) decode(src protoreflect.Message, dst *T) error {
	holder := src
	if f.wrapper != nil {
		if !src.Has(f.wrapper) {
			return f.missing()
		}

		holder = src.Get(f.wrapper).Message()
	}

	v, ok, err := f.registry.Read(holder, f.oneof)
	if err != nil {
		return err
	}

	// A wrapper without a populated member equals the default instance.
	if !ok {
		return f.missing()
	}

	f.set(dst, v)

	return nil
}

// Variant builds a choice variant backed by a Codec. The variant matches
// values whose dynamic type is E (see choice.Is).
func Variant[V, E any](tag protoreflect.Name, codec Codec[E]) choice.Variant[V] {
	return VariantFunc[V](tag, choice.Is[V, E], codec)
}

// VariantFunc is Variant with an explicit predicate.
func VariantFunc[V, E any](tag protoreflect.Name, match func(V) bool, codec Codec[E]) choice.Variant[V] {
	return choice.Variant[V]{
		Tag:   tag,
		Match: match,
		Construct: func(v V, m protoreflect.Message) error {
			e, ok := any(v).(E)
			if !ok {
				return schemaErrorf("variant %q cannot hold %T", tag, v)
			}

			return codec.Encode(e, m)
		},
		Extract: func(m protoreflect.Message) (V, error) {
			var zero V

			e, err := codec.Decode(m)
			if err != nil {
				return zero, err
			}

			v, ok := any(e).(V)
			if !ok {
				return zero, schemaErrorf("variant %q produced %T", tag, e)
			}

			return v, nil
		},
	}
}
