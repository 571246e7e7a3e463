package record

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"fhir-caster/internal/code"
)

type codeField[T any, E ~string] struct {
	name   protoreflect.Name
	get    func(*T) (E, bool)
	set    func(*T, E)
	family *code.Family

	path  string
	fd    protoreflect.FieldDescriptor
	value protoreflect.FieldDescriptor // enum field inside a code wrapper, or nil
}

// Code maps a coded enum. name is either an enum field or a code wrapper
// message whose "value" field is an enum. The family is bound to that enum.
func Code[T any, E ~string](name protoreflect.Name, get func(*T) (E, bool), set func(*T, E), family *code.Family) Field[T] {
	return &codeField[T, E]{name: name, get: get, set: set, family: family}
}

func (f *codeField[T, E]) Name() protoreflect.Name { return f.name }
func (f *codeField[T, E]) Strategy() Strategy      { return StrategyCode }

func (f *codeField[T, E]) Info() FieldInfo {
	info := FieldInfo{Name: f.name, Strategy: StrategyCode, Family: f.family}
	if enum := f.family.Enum(); enum != nil {
		info.Type = enum.FullName()
	}

	return info
}

func (f *codeField[T, E]) bind(record string, md protoreflect.MessageDescriptor) error {
	fd := md.Fields().ByName(f.name)
	if fd == nil {
		return schemaErrorf("%s has no field %q", md.FullName(), f.name)
	}

	if fd.IsList() || fd.IsMap() {
		return schemaErrorf("code field %q is not singular", f.name)
	}

	var enum protoreflect.EnumDescriptor

	switch {
	case fd.Enum() != nil:
		enum = fd.Enum()
	case fd.Message() != nil:
		vf := fd.Message().Fields().ByName("value")
		if vf == nil || vf.Enum() == nil {
			return schemaErrorf("code field %q: %s has no enum value field", f.name, fd.Message().FullName())
		}

		f.value = vf
		enum = vf.Enum()
	default:
		return schemaErrorf("code field %q is neither an enum nor a code wrapper", f.name)
	}

	if bound := f.family.Enum(); bound != nil && bound.FullName() != enum.FullName() {
		return schemaErrorf("code field %q holds %s, family %s is bound to %s",
			f.name, enum.FullName(), f.family.Name(), bound.FullName())
	}

	f.family = f.family.Bind(enum)
	f.fd = fd
	f.path = record + "." + string(f.name)

	return nil
}

func (f *codeField[T, E]) encode(src *T, dst protoreflect.Message) error {
	token, ok := f.get(src)
	if !ok {
		return nil
	}

	n, err := f.family.ToNumber(f.path, string(token))
	if err != nil {
		return err
	}

	if f.value == nil {
		dst.Set(f.fd, protoreflect.ValueOfEnum(n))
		return nil
	}

	w := dst.NewField(f.fd).Message()
	w.Set(f.value, protoreflect.ValueOfEnum(n))
	dst.Set(f.fd, protoreflect.ValueOfMessage(w))

	return nil
}

func (f *codeField[T, E]) decode(src protoreflect.Message, dst *T) error {
	if !src.Has(f.fd) {
		return nil
	}

	var n protoreflect.EnumNumber
	if f.value == nil {
		n = src.Get(f.fd).Enum()
	} else {
		n = src.Get(f.fd).Message().Get(f.value).Enum()
	}

	token, err := f.family.FromNumber(f.path, n)
	if err != nil {
		return err
	}

	f.set(dst, E(token))

	return nil
}
