package choice

import (
	"errors"
	"testing"

	d "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/datatypes_go_proto"
	ppb "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/resources/patient_go_proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Named is satisfied by both Plain and Special, like a supertype test.
type Named interface{ Name() string }

type Plain struct{ N string }

func (p Plain) Name() string { return p.N }

type Special struct{ Plain }

func noConstruct(any, protoreflect.Message) error { return nil }
func noExtract(protoreflect.Message) (any, error) { return nil, nil }
func variant(tag protoreflect.Name, match func(any) bool) Variant[any] {
	return Variant[any]{Tag: tag, Match: match, Construct: noConstruct, Extract: noExtract}
}

func deceasedOneof() protoreflect.OneofDescriptor {
	return (&ppb.Patient_DeceasedX{}).ProtoReflect().Descriptor().Oneofs().ByName("choice")
}

func deceasedVariants() []Variant[any] {
	return []Variant[any]{
		{
			Tag:   "boolean",
			Match: Is[any, bool],
			Construct: func(v any, m protoreflect.Message) error {
				m.Interface().(*d.Boolean).Value = v.(bool)
				return nil
			},
			Extract: func(m protoreflect.Message) (any, error) {
				return m.Interface().(*d.Boolean).GetValue(), nil
			},
		},
		{
			Tag:   "date_time",
			Match: Is[any, int64],
			Construct: func(v any, m protoreflect.Message) error {
				if v.(int64) < 0 {
					return errors.New("negative instant")
				}

				dt := m.Interface().(*d.DateTime)
				dt.ValueUs = v.(int64)
				dt.Precision = d.DateTime_SECOND
				dt.Timezone = "UTC"

				return nil
			},
			Extract: func(m protoreflect.Message) (any, error) {
				return m.Interface().(*d.DateTime).GetValueUs(), nil
			},
		},
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		variants []Variant[any]
		errMsg   string
	}{
		{"no field", "", []Variant[any]{variant("a", Is[any, int])}, "field name is required"},
		{"no variants", "f", nil, "at least one variant"},
		{"empty tag", "f", []Variant[any]{variant("", Is[any, int])}, "has no tag"},
		{"missing func", "f", []Variant[any]{{Tag: "a", Match: Is[any, int]}}, "missing a function"},
		{"duplicate", "f", []Variant[any]{variant("a", Is[any, int]), variant("a", Is[any, string])}, "duplicate variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.field, tt.variants...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.Panics(t, func() { MustNew[any]("f") })
}

func TestResolve_FirstMatchWins(t *testing.T) {
	r := MustNew("Thing.value[x]",
		variant("special", Is[any, Special]),
		variant("named", Is[any, Named]),
		variant("plain", Is[any, Plain]),
	)

	tests := []struct {
		name     string
		value    any
		tag      protoreflect.Name
		position int
	}{
		{"exact type declared first", Special{Plain{"s"}}, "special", 0},
		{"supertype test shadows later exact test", Plain{"p"}, "named", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Resolve(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, res.Tag())
			assert.Equal(t, tt.position, res.Position)
			assert.Equal(t, tt.value, res.Value)
		})
	}
}

func TestResolve_AmbiguityIsDeterministic(t *testing.T) {
	first := MustNew("f", variant("a", Is[any, Named]), variant("b", Is[any, Named]))
	swapped := MustNew("f", variant("b", Is[any, Named]), variant("a", Is[any, Named]))

	for i := 0; i < 100; i++ {
		res, err := first.Resolve(Special{})
		require.NoError(t, err)
		assert.Equal(t, protoreflect.Name("a"), res.Tag())

		res, err = swapped.Resolve(Special{})
		require.NoError(t, err)
		assert.Equal(t, protoreflect.Name("b"), res.Tag())
	}
}

func TestResolve_Unmatched(t *testing.T) {
	r := MustNew("Patient.deceased[x]", deceasedVariants()...)

	_, err := r.Resolve("yes")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnmatchedVariant)

	var uerr *UnmatchedVariantError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "Patient.deceased[x]", uerr.Field)
	assert.Equal(t, "Patient.deceased[x]: no variant matches string", err.Error())
}

func TestDispatch(t *testing.T) {
	r := MustNew("Patient.deceased[x]", deceasedVariants()...)

	v, err := r.Dispatch("date_time")
	require.NoError(t, err)
	assert.Equal(t, protoreflect.Name("date_time"), v.Tag)

	_, err = r.Dispatch("string_value")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnmatchedVariant)
	assert.Equal(t, `Patient.deceased[x]: no variant for oneof member "string_value"`, err.Error())
}

func TestBind(t *testing.T) {
	full := MustNew("Patient.deceased[x]", deceasedVariants()...)
	uncovered, err := full.Bind(deceasedOneof())
	require.NoError(t, err)
	assert.Empty(t, uncovered)

	partial := MustNew("Patient.deceased[x]", deceasedVariants()[0])
	uncovered, err = partial.Bind(deceasedOneof())
	require.NoError(t, err)
	assert.Equal(t, []protoreflect.Name{"date_time"}, uncovered)

	wrong := MustNew("Patient.deceased[x]", variant("string_value", Is[any, string]))
	_, err = wrong.Bind(deceasedOneof())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no member "string_value"`)
}

func TestWriteRead(t *testing.T) {
	r := MustNew("Patient.deceased[x]", deceasedVariants()...)
	od := deceasedOneof()

	tests := []struct {
		name  string
		value any
		tag   protoreflect.Name
	}{
		{"boolean", true, "boolean"},
		{"false is still present", false, "boolean"},
		{"date_time", int64(1_600_000_000_000_000), "date_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &ppb.Patient_DeceasedX{}

			tag, err := r.Write(tt.value, msg.ProtoReflect(), od)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, tt.tag, msg.ProtoReflect().WhichOneof(od).Name())

			back, ok, err := r.Read(msg.ProtoReflect(), od)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.value, back)
		})
	}
}

func TestWrite_FailureLeavesMessageUntouched(t *testing.T) {
	r := MustNew("Patient.deceased[x]", deceasedVariants()...)
	msg := &ppb.Patient_DeceasedX{}

	_, err := r.Write(int64(-1), msg.ProtoReflect(), deceasedOneof())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Patient.deceased[x].date_time: negative instant")
	assert.Nil(t, msg.ProtoReflect().WhichOneof(deceasedOneof()))
}

func TestRead_EmptyAndUnknown(t *testing.T) {
	od := deceasedOneof()

	empty := &ppb.Patient_DeceasedX{}
	_, ok, err := MustNew("Patient.deceased[x]", deceasedVariants()...).Read(empty.ProtoReflect(), od)
	require.NoError(t, err)
	assert.False(t, ok)

	populated := &ppb.Patient_DeceasedX{
		Choice: &ppb.Patient_DeceasedX_DateTime{DateTime: &d.DateTime{ValueUs: 1}},
	}
	booleanOnly := MustNew("Patient.deceased[x]", deceasedVariants()[0])
	_, _, err = booleanOnly.Read(populated.ProtoReflect(), od)
	assert.ErrorIs(t, err, ErrUnmatchedVariant)
}

func TestTags(t *testing.T) {
	r := MustNew("Patient.deceased[x]", deceasedVariants()...)
	assert.Equal(t, []protoreflect.Name{"boolean", "date_time"}, r.Tags())
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "Patient.deceased[x]", r.Field())
}
