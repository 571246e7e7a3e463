package record

import (
	"fmt"
	"reflect"

	"google.golang.org/protobuf/reflect/protoreflect"
)

type singular[T, E any] struct {
	name     protoreflect.Name
	strategy Strategy
	get      func(*T) (E, bool)
	set      func(*T, E)
	codec    Codec[E]
	fd       protoreflect.FieldDescriptor
}

// Scalar maps a singular field through a one-to-one sub-converter.
// get reports presence; set is called only when the source has the field.
func Scalar[T, E any](name protoreflect.Name, get func(*T) (E, bool), set func(*T, E), codec Codec[E]) Field[T] {
	return &singular[T, E]{name: name, strategy: StrategyScalar, get: get, set: set, codec: codec}
}

// Nested maps a singular embedded record through its schema.
func Nested[T, E any](name protoreflect.Name, get func(*T) (*E, bool), set func(*T, *E), schema *Schema[E]) Field[T] {
	return &singular[T, *E]{name: name, strategy: StrategyNested, get: get, set: set, codec: schema}
}

func (f *singular[T, E]) Name() protoreflect.Name { return f.name }
func (f *singular[T, E]) Strategy() Strategy      { return f.strategy }

func (f *singular[T, E]) Info() FieldInfo {
	return FieldInfo{Name: f.name, Strategy: f.strategy, Type: f.codec.Descriptor().FullName()}
}

func (f *singular[T, E]) bind(_ string, md protoreflect.MessageDescriptor) error {
	fd, err := messageField(md, f.name, f.codec.Descriptor())
	if err != nil {
		return err
	}

	if fd.IsList() {
		return schemaErrorf("field %q is repeated", f.name)
	}

	f.fd = fd

	return nil
}

func (f *singular[T, E]) encode(src *T, dst protoreflect.Message) error {
	v, ok := f.get(src)
	if !ok {
		return nil
	}

	m := dst.NewField(f.fd).Message()
	if err := f.codec.Encode(v, m); err != nil {
		return err
	}

	dst.Set(f.fd, protoreflect.ValueOfMessage(m))

	return nil
}

func (f *singular[T, E]) decode(src protoreflect.Message, dst *T) error {
	if !src.Has(f.fd) {
		return nil
	}

	v, err := f.codec.Decode(src.Get(f.fd).Message())
	if err != nil {
		return err
	}

	f.set(dst, v)

	return nil
}

type repeated[T, E any] struct {
	name  protoreflect.Name
	get   func(*T) []E
	set   func(*T, []E)
	codec Codec[E]
	fd    protoreflect.FieldDescriptor
}

// Repeated maps a list field element by element, keeping length and order.
// The codec is a sub-converter for scalar elements or a *Schema for records.
// An empty source slice produces no elements; an empty list leaves the
// object-model slice nil.
func Repeated[T, E any](name protoreflect.Name, get func(*T) []E, set func(*T, []E), codec Codec[E]) Field[T] {
	return &repeated[T, E]{name: name, get: get, set: set, codec: codec}
}

func (f *repeated[T, E]) Name() protoreflect.Name { return f.name }
func (f *repeated[T, E]) Strategy() Strategy      { return StrategyRepeated }

func (f *repeated[T, E]) Info() FieldInfo {
	return FieldInfo{Name: f.name, Strategy: StrategyRepeated, Type: f.codec.Descriptor().FullName()}
}

func (f *repeated[T, E]) bind(_ string, md protoreflect.MessageDescriptor) error {
	fd, err := messageField(md, f.name, f.codec.Descriptor())
	if err != nil {
		return err
	}

	if !fd.IsList() {
		return schemaErrorf("field %q is not repeated", f.name)
	}

	f.fd = fd

	return nil
}

func (f *repeated[T, E]) encode(src *T, dst protoreflect.Message) error {
	values := f.get(src)
	if len(values) == 0 {
		return nil
	}

	list := dst.NewField(f.fd).List()

	for i, v := range values {
		if isNil(v) {
			return fmt.Errorf("[%d]: %w", i, ErrNilElement)
		}

		elem := list.NewElement()
		if err := f.codec.Encode(v, elem.Message()); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}

		list.Append(elem)
	}

	dst.Set(f.fd, protoreflect.ValueOfList(list))

	return nil
}

func (f *repeated[T, E]) decode(src protoreflect.Message, dst *T) error {
	if !src.Has(f.fd) {
		return nil
	}

	list := src.Get(f.fd).List()
	out := make([]E, list.Len())

	for i := 0; i < list.Len(); i++ {
		v, err := f.codec.Decode(list.Get(i).Message())
		if err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}

		out[i] = v
	}

	f.set(dst, out)

	return nil
}

// messageField looks up a message-kind field and checks its message type.
func messageField(md protoreflect.MessageDescriptor, name protoreflect.Name, want protoreflect.MessageDescriptor) (protoreflect.FieldDescriptor, error) {
	fd := md.Fields().ByName(name)
	if fd == nil {
		return nil, schemaErrorf("%s has no field %q", md.FullName(), name)
	}

	if fd.IsMap() || fd.Message() == nil {
		return nil, schemaErrorf("field %q is not a message field", name)
	}

	if got := fd.Message().FullName(); got != want.FullName() {
		return nil, schemaErrorf("field %q holds %s, codec handles %s", name, got, want.FullName())
	}

	return fd, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
