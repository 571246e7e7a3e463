package choice

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Registry is the closed, ordered variant list of one choice field.
// A Registry is immutable after New and safe for concurrent use.
type Registry[V any] struct {
	field    string
	variants []Variant[V]
	index    map[protoreflect.Name]int
}

// Resolution is the outcome of resolving an object-model value.
type Resolution[V any] struct {
	// Variant is the matched variant.
	Variant Variant[V]
	// Position is the variant's index in declaration order.
	Position int
	// Value is the resolved value.
	Value V
}

// Tag returns the matched variant's oneof member name.
func (r Resolution[V]) Tag() protoreflect.Name {
	return r.Variant.Tag
}

// New creates a registry for the named field. Variants keep the given order.
func New[V any](field string, variants ...Variant[V]) (*Registry[V], error) {
	if field == "" {
		return nil, errors.New("choice field name is required")
	}

	if len(variants) == 0 {
		return nil, fmt.Errorf("%s: at least one variant is required", field)
	}

	r := &Registry[V]{
		field:    field,
		variants: make([]Variant[V], 0, len(variants)),
		index:    make(map[protoreflect.Name]int, len(variants)),
	}

	for i, v := range variants {
		if v.Tag == "" {
			return nil, fmt.Errorf("%s: variant %d has no tag", field, i)
		}

		if v.Match == nil || v.Construct == nil || v.Extract == nil {
			return nil, fmt.Errorf("%s: variant %q is missing a function", field, v.Tag)
		}

		if _, dup := r.index[v.Tag]; dup {
			return nil, fmt.Errorf("%s: duplicate variant %q", field, v.Tag)
		}

		r.index[v.Tag] = i
		r.variants = append(r.variants, v)
	}

	return r, nil
}

// MustNew is like New but panics on error. For static schema data.
func MustNew[V any](field string, variants ...Variant[V]) *Registry[V] {
	r, err := New(field, variants...)
	if err != nil {
		panic(err)
	}

	return r
}

// Field returns the field name used in errors.
func (r *Registry[V]) Field() string { return r.field }

// Len returns the number of variants.
func (r *Registry[V]) Len() int { return len(r.variants) }

// Tags returns the variant tags in declaration order.
func (r *Registry[V]) Tags() []protoreflect.Name {
	tags := make([]protoreflect.Name, len(r.variants))
	for i, v := range r.variants {
		tags[i] = v.Tag
	}

	return tags
}

// Resolve finds the first variant, in declaration order, whose predicate
// accepts v.
func (r *Registry[V]) Resolve(v V) (Resolution[V], error) {
	for i, variant := range r.variants {
		if variant.Match(v) {
			return Resolution[V]{Variant: variant, Position: i, Value: v}, nil
		}
	}

	return Resolution[V]{}, &UnmatchedVariantError{Field: r.field, Value: fmt.Sprintf("%T", v)}
}

// Dispatch returns the variant for an explicit oneof member name.
func (r *Registry[V]) Dispatch(tag protoreflect.Name) (Variant[V], error) {
	i, ok := r.index[tag]
	if !ok {
		return Variant[V]{}, &UnmatchedVariantError{Field: r.field, Tag: tag}
	}

	return r.variants[i], nil
}

// Bind checks the registry against a oneof: every tag must name a
// message-typed member. It returns the members no variant covers, in
// declaration order of the oneof.
func (r *Registry[V]) Bind(od protoreflect.OneofDescriptor) ([]protoreflect.Name, error) {
	fields := od.Fields()

	for _, v := range r.variants {
		fd := fields.ByName(v.Tag)
		if fd == nil {
			return nil, fmt.Errorf("%s: oneof %s has no member %q", r.field, od.FullName(), v.Tag)
		}

		if fd.Message() == nil {
			return nil, fmt.Errorf("%s: oneof member %q is not a message", r.field, v.Tag)
		}
	}

	var uncovered []protoreflect.Name

	for i := 0; i < fields.Len(); i++ {
		name := fields.Get(i).Name()
		if _, ok := r.index[name]; !ok {
			uncovered = append(uncovered, name)
		}
	}

	return uncovered, nil
}

// Write resolves v and stores it in the matching member of the oneof od on
// dst. dst is only modified when construction succeeds.
func (r *Registry[V]) Write(v V, dst protoreflect.Message, od protoreflect.OneofDescriptor) (protoreflect.Name, error) {
	res, err := r.Resolve(v)
	if err != nil {
		return "", err
	}

	fd := od.Fields().ByName(res.Tag())
	if fd == nil {
		return "", fmt.Errorf("%s: oneof %s has no member %q", r.field, od.FullName(), res.Tag())
	}

	m := dst.NewField(fd).Message()
	if err := res.Variant.Construct(v, m); err != nil {
		return "", fmt.Errorf("%s.%s: %w", r.field, res.Tag(), err)
	}

	dst.Set(fd, protoreflect.ValueOfMessage(m))

	return res.Tag(), nil
}

// Read dispatches on the populated member of the oneof od on src. It reports
// false when no member is populated.
func (r *Registry[V]) Read(src protoreflect.Message, od protoreflect.OneofDescriptor) (V, bool, error) {
	var zero V

	fd := src.WhichOneof(od)
	if fd == nil {
		return zero, false, nil
	}

	variant, err := r.Dispatch(fd.Name())
	if err != nil {
		return zero, false, err
	}

	v, err := variant.Extract(src.Get(fd).Message())
	if err != nil {
		return zero, false, fmt.Errorf("%s.%s: %w", r.field, fd.Name(), err)
	}

	return v, true, nil
}
