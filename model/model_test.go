package model

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		value Type
		want  string
	}{
		{NewBoolean(true), "boolean"},
		{NewString("s"), "string"},
		{NewCode("c"), "code"},
		{NewID("i"), "id"},
		{NewMarkdown("m"), "markdown"},
		{NewURI("u"), "uri"},
		{NewURL("u"), "url"},
		{NewCanonical("u"), "canonical"},
		{NewOID("urn:oid:1.2"), "oid"},
		{NewUUID("urn:uuid:1"), "uuid"},
		{NewBase64Binary([]byte("x")), "base64Binary"},
		{&PositiveInt{Value: 1}, "positiveInt"},
		{&DateTime{}, "dateTime"},
		{&Age{}, "Age"},
		{&Duration{}, "Duration"},
		{&Reference{}, "Reference"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.TypeName())
		})
	}
}

func TestInheritedViews(t *testing.T) {
	values := []Type{NewCode("final"), NewURL("http://x"), &Age{Quantity: Quantity{Value: NewDecimal("3")}}, &UnsignedInt{Value: 7}}

	s, ok := values[0].(StringLike)
	require.True(t, ok)
	assert.Equal(t, "final", s.StringValue())

	u, ok := values[1].(URILike)
	require.True(t, ok)
	assert.Equal(t, "http://x", u.URIValue())

	q, ok := values[2].(QuantityLike)
	require.True(t, ok)
	assert.Equal(t, "3", q.AsQuantity().Value.Value)

	i, ok := values[3].(IntegerLike)
	require.True(t, ok)
	assert.Equal(t, int64(7), i.Int64())

	_, ok = values[0].(URILike)
	assert.False(t, ok)

	for _, v := range []Type{NewOID("urn:oid:1.2.3"), NewUUID("urn:uuid:1")} {
		u, ok := v.(URILike)
		require.True(t, ok, v.TypeName())
		assert.Contains(t, u.URIValue(), "urn:")
	}
}

func TestDecimal_Float(t *testing.T) {
	f, err := NewDecimal("72.50").Float()
	require.NoError(t, err)
	assert.InDelta(t, 72.5, f, 1e-9)

	_, err = NewDecimal("seventy").Float()
	assert.Error(t, err)
}

func TestPrecision_String(t *testing.T) {
	assert.Equal(t, "day", PrecisionDay.String())
	assert.Equal(t, "microsecond", PrecisionMicrosecond.String())
	assert.Equal(t, "unspecified", Precision(42).String())
}

func TestJSON(t *testing.T) {
	p := &Patient{
		DomainResource: DomainResource{ID: NewID("p1")},
		Active:         NewBoolean(false),
		Name:           []*HumanName{{Given: []*String{NewString("Peter"), NewString("James")}}},
		Gender:         GenderFemale,
		BirthDate:      &Date{Value: time.Date(1974, 12, 25, 0, 0, 0, 0, time.UTC), Precision: PrecisionDay},
		Deceased:       NewBoolean(false),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"id":{"value":"p1"}`)
	assert.Contains(t, out, `"active":{"value":false}`)
	assert.Contains(t, out, `"given":[{"value":"Peter"},{"value":"James"}]`)
	assert.Contains(t, out, `"gender":"female"`)
	assert.Contains(t, out, `"deceased":{"value":false}`)
	assert.NotContains(t, out, "maritalStatus")
	assert.NotContains(t, out, "multipleBirth")
}
