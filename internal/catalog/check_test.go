package catalog

import (
	"testing"

	"github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fhir-caster/internal/code"
)

func TestCheck_CoreFamiliesAreLossless(t *testing.T) {
	set := MustBuild(Default())

	for _, name := range []string{"AdministrativeGender", "TaskStatus", "QuantityComparator", "FHIRVersion"} {
		t.Run(name, func(t *testing.T) {
			res := Check(family(t, set, name))
			assert.Empty(t, res.WithCode("roundtrip_mismatch"), "%v", res.All())
		})
	}
}

func TestCheck_StripCollision(t *testing.T) {
	f := code.MustFamily("Collide", code.Rule{Inverse: code.InverseStrip}, "ab", "a-b")

	res := Check(f)

	mismatches := res.WithCode("roundtrip_mismatch")
	require.Len(t, mismatches, 1)
	assert.Equal(t, "a-b", mismatches[0].Path)
	assert.Equal(t, "Collide", mismatches[0].Subject)
	assert.Len(t, res.WithCode("unbound_family"), 1)
}

func TestCheck_UncoveredConstants(t *testing.T) {
	enum := codes_go_proto.TaskStatusCode_DRAFT.Descriptor()
	f := code.MustFamily("TaskStatus", code.Rule{}, "draft", "in-progress").Bind(enum)

	res := Check(f)

	assert.False(t, res.HasWarnings())
	// every initialized constant except the two listed codes
	assert.Len(t, res.WithCode("uncovered_constant"), enum.Values().Len()-3)
}
