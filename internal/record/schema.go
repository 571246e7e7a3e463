package record

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"fhir-caster/internal/code"
)

// Field is one entry of a Schema's field list. Implementations are created by
// Scalar, Nested, Repeated, Choice and Code.
type Field[T any] interface {
	// Name is the protocol buffer field or oneof name.
	Name() protoreflect.Name
	// Strategy is the conversion strategy.
	Strategy() Strategy
	// Info describes the bound field.
	Info() FieldInfo

	bind(record string, md protoreflect.MessageDescriptor) error
	encode(src *T, dst protoreflect.Message) error
	decode(src protoreflect.Message, dst *T) error
}

// FieldInfo describes a bound field for listings and diagnostics.
type FieldInfo struct {
	Name     protoreflect.Name
	Strategy Strategy
	// Type is the full name of the element message or enum.
	Type protoreflect.FullName
	// Required is set for required choice fields.
	Required bool
	// Variants lists choice variant tags in declaration order.
	Variants []protoreflect.Name
	// Uncovered lists oneof members without a variant.
	Uncovered []protoreflect.Name
	// Family is the bound code family of code fields.
	Family *code.Family
}

// Schema maps the object-model struct T onto one protocol buffer message type.
type Schema[T any] struct {
	name    string
	mt      protoreflect.MessageType
	fields  []Field[T]
	defined bool
}

// Declare creates an empty schema named name for the message type of msg.
// msg may be a typed nil pointer. Fields are added with Define.
func Declare[T any](name string, msg proto.Message) *Schema[T] {
	return &Schema[T]{
		name: name,
		mt:   msg.ProtoReflect().Type(),
	}
}

// Define sets and binds the field list. It fails on unknown or duplicate
// fields and on kind or type mismatches, and may be called only once.
func (s *Schema[T]) Define(fields ...Field[T]) error {
	if s.defined {
		return schemaErrorf("%s: already defined", s.name)
	}

	md := s.mt.Descriptor()
	seen := make(map[protoreflect.Name]struct{}, len(fields))

	var errs []error

	for _, f := range fields {
		if _, dup := seen[f.Name()]; dup {
			errs = append(errs, schemaErrorf("%s: duplicate field %q", s.name, f.Name()))
			continue
		}

		seen[f.Name()] = struct{}{}

		if err := f.bind(s.name, md); err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", s.name, f.Name(), err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.fields = fields
	s.defined = true

	return nil
}

// MustDefine is like Define but panics on error. For static schema data.
func (s *Schema[T]) MustDefine(fields ...Field[T]) *Schema[T] {
	if err := s.Define(fields...); err != nil {
		panic(err)
	}

	return s
}

// Name returns the record name.
func (s *Schema[T]) Name() string { return s.name }

// Descriptor returns the protocol buffer message descriptor.
func (s *Schema[T]) Descriptor() protoreflect.MessageDescriptor { return s.mt.Descriptor() }

// Fields describes the field list in declaration order.
func (s *Schema[T]) Fields() []FieldInfo {
	out := make([]FieldInfo, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Info()
	}

	return out
}

// Encode writes src into m field by field. A nil src leaves m empty.
func (s *Schema[T]) Encode(src *T, m protoreflect.Message) error {
	if !s.defined {
		return schemaErrorf("%s: not defined", s.name)
	}

	if src == nil {
		return nil
	}

	for _, f := range s.fields {
		if err := f.encode(src, m); err != nil {
			return &FieldError{Record: s.name, Field: f.Name(), Err: err}
		}
	}

	return nil
}

// Decode reads m into a new T.
func (s *Schema[T]) Decode(m protoreflect.Message) (*T, error) {
	if !s.defined {
		return nil, schemaErrorf("%s: not defined", s.name)
	}

	dst := new(T)

	for _, f := range s.fields {
		if err := f.decode(m, dst); err != nil {
			return nil, &FieldError{Record: s.name, Field: f.Name(), Err: err}
		}
	}

	return dst, nil
}

// ToProto converts src into a new message. A nil src gives a nil message.
// On error the message is nil.
func (s *Schema[T]) ToProto(src *T) (proto.Message, error) {
	if src == nil {
		return nil, nil
	}

	m := s.mt.New()
	if err := s.Encode(src, m); err != nil {
		return nil, err
	}

	return m.Interface(), nil
}

// FromProto converts msg into a new T. A nil msg gives a nil T.
// On error the result is nil.
func (s *Schema[T]) FromProto(msg proto.Message) (*T, error) {
	if msg == nil {
		return nil, nil
	}

	m := msg.ProtoReflect()
	if !m.IsValid() {
		return nil, nil
	}

	if got, want := m.Descriptor().FullName(), s.mt.Descriptor().FullName(); got != want {
		return nil, schemaErrorf("%s: expected %s, got %s", s.name, want, got)
	}

	return s.Decode(m)
}

// ToProtoAs is ToProto returning the concrete message type.
func ToProtoAs[M proto.Message, T any](s *Schema[T], src *T) (M, error) {
	var zero M

	msg, err := s.ToProto(src)
	if err != nil || msg == nil {
		return zero, err
	}

	typed, ok := msg.(M)
	if !ok {
		return zero, schemaErrorf("%s: produced %T", s.name, msg)
	}

	return typed, nil
}
