package code

import (
	"testing"

	codes "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Lossless(t *testing.T) {
	for _, rule := range []Rule{{}, {Inverse: InverseStrip}} {
		t.Run(rule.Inverse.String(), func(t *testing.T) {
			assert.Empty(t, taskStatus(t, rule).Check())
		})
	}
}

func TestCheck_StripCollision(t *testing.T) {
	f := MustFamily("Collide", Rule{Inverse: InverseStrip}, "a-b", "ab")

	mismatches := f.Check()
	require.Len(t, mismatches, 1)
	assert.Equal(t, FromCode, mismatches[0].Direction)
	assert.Equal(t, "ab", mismatches[0].Input)
	assert.Equal(t, "a-b", mismatches[0].Output)
	assert.Equal(t, `code "ab" came back as "a-b"`, mismatches[0].String())
}

func TestCheck_JoinLosesCamel(t *testing.T) {
	f := MustFamily("Types", Rule{SplitCamel: true}, "dateTime", "string")

	mismatches := f.Check()
	require.Len(t, mismatches, 1)
	assert.Equal(t, "dateTime", mismatches[0].Input)
	// DATE_TIME comes back as "date-time", which is not in the vocabulary
	assert.ErrorIs(t, mismatches[0].Err, ErrUnknownValue)

	camel := MustFamily("Types", Rule{SplitCamel: true, Inverse: InverseCamel}, "dateTime", "string")
	assert.Empty(t, camel.Check())
}

func TestCheck_UncoveredConstant(t *testing.T) {
	f, err := NewFamily("TaskStatus", Rule{}, taskStatusCodes[:len(taskStatusCodes)-1]...)
	require.NoError(t, err)

	mismatches := f.Bind(codes.TaskStatusCode_DRAFT.Descriptor()).Check()
	require.Len(t, mismatches, 1)
	assert.Equal(t, FromConstant, mismatches[0].Direction)
	assert.Equal(t, "ENTERED_IN_ERROR", mismatches[0].Input)
	assert.ErrorIs(t, mismatches[0].Err, ErrUnknownValue)
}
