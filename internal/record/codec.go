package record

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Codec converts between an object-model value and a protocol buffer message
// of one fixed type. Every *Schema is a Codec; Message adapts hand-written
// sub-converters for primitives.
type Codec[E any] interface {
	// Descriptor is the message type the codec reads and writes.
	Descriptor() protoreflect.MessageDescriptor
	// Encode writes v into m, a fresh message of Descriptor's type.
	Encode(v E, m protoreflect.Message) error
	// Decode reads m into a new value.
	Decode(m protoreflect.Message) (E, error)
}

type messageCodec[E any, M proto.Message] struct {
	desc   protoreflect.MessageDescriptor
	encode func(E, M) error
	decode func(M) (E, error)
}

// Message builds a Codec from functions over a generated message type M.
func Message[E any, M proto.Message](encode func(E, M) error, decode func(M) (E, error)) Codec[E] {
	var zero M

	return &messageCodec[E, M]{
		desc:   zero.ProtoReflect().Descriptor(),
		encode: encode,
		decode: decode,
	}
}

func (c *messageCodec[E, M]) Descriptor() protoreflect.MessageDescriptor {
	return c.desc
}

func (c *messageCodec[E, M]) Encode(v E, m protoreflect.Message) error {
	typed, ok := m.Interface().(M)
	if !ok {
		return schemaErrorf("codec for %s got %s", c.desc.FullName(), m.Descriptor().FullName())
	}

	return c.encode(v, typed)
}

func (c *messageCodec[E, M]) Decode(m protoreflect.Message) (E, error) {
	typed, ok := m.Interface().(M)
	if !ok {
		var zero E
		return zero, schemaErrorf("codec for %s got %s", c.desc.FullName(), m.Descriptor().FullName())
	}

	return c.decode(typed)
}
