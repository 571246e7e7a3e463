package catalog

import (
	"testing"

	"github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoregistry"

	"fhir-caster/internal/code"
)

func TestBuild_Default(t *testing.T) {
	set, res := Build(Default(), nil)
	require.NoError(t, res.Error())
	require.NotNil(t, set)
	assert.Equal(t, len(Default().Families), set.Len())

	status := family(t, set, "TaskStatus")
	require.NotNil(t, status.Enum())
	assert.Equal(t, codes_go_proto.TaskStatusCode_DRAFT.Descriptor().FullName(), status.Enum().FullName())

	n, err := status.ToNumber("Task.status", "in-progress")
	require.NoError(t, err)
	assert.EqualValues(t, codes_go_proto.TaskStatusCode_IN_PROGRESS, n)

	token, err := status.FromNumber("Task.status", n)
	require.NoError(t, err)
	assert.Equal(t, "in-progress", token)

	gender := family(t, set, "AdministrativeGender")
	token, err = gender.FromNumber("Patient.gender", codes_go_proto.AdministrativeGenderCode_FEMALE.Number())
	require.NoError(t, err)
	assert.Equal(t, "female", token)
}

func TestBuild_Order(t *testing.T) {
	set, res := Build(&Catalog{Families: []FamilyDef{
		{Name: "B"},
		{Name: "A"},
	}}, nil)
	require.NoError(t, res.Error())

	var names []string
	for _, f := range set.Families() {
		names = append(names, f.Name())
	}

	assert.Equal(t, []string{"B", "A"}, names)
	assert.Len(t, res.WithCode("unbound_family"), 2)
}

func TestBuild_EnumNotFound(t *testing.T) {
	set, res := Build(&Catalog{Families: []FamilyDef{
		{Name: "TaskStatus", Enum: "google.fhir.r4.core.TaskStatusCode.Value", Codes: StringArray{"draft"}},
	}}, new(protoregistry.Types))

	require.NoError(t, res.Error())
	require.NotNil(t, set)
	assert.Len(t, res.WithCode("enum_not_found"), 1)

	f, ok := set.Family("TaskStatus")
	require.True(t, ok)
	assert.Nil(t, f.Enum())
}

func TestBuild_Invalid(t *testing.T) {
	set, res := Build(&Catalog{Families: []FamilyDef{{Name: "A", Inverse: "strip"}}}, nil)

	assert.Nil(t, set)
	assert.True(t, res.HasErrors())
}

func TestSet_MissingFamily(t *testing.T) {
	set := MustBuild(&Catalog{})

	_, ok := set.Family("Missing")
	assert.False(t, ok)
	assert.Zero(t, set.Len())
}

func family(t *testing.T, set *Set, name string) *code.Family {
	t.Helper()

	f, ok := set.Family(name)
	require.True(t, ok, name)

	return f
}
