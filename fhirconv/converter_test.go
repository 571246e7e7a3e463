package fhirconv

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fhir-caster/internal/choice"
	"fhir-caster/model"
)

func newTestConverter(t *testing.T) *Converter {
	t.Helper()

	c, err := NewConverter(Default(), Options{Timezone: "UTC"})
	require.NoError(t, err)

	return c
}

func TestNewConverter(t *testing.T) {
	_, err := NewConverter(nil, Options{})
	require.Error(t, err)

	_, err = NewConverter(Default(), Options{Timezone: "Nowhere/Special"})
	require.Error(t, err)

	c, err := NewConverter(Default(), Options{})
	require.NoError(t, err)
	assert.Same(t, Default(), c.Schemas())
}

func TestConverter_RoundTripFixtures(t *testing.T) {
	tests := []struct {
		file     string
		resource string
	}{
		{"patient.json", "Patient"},
		{"observation.json", "Observation"},
		{"task.json", "Task"},
	}

	c := newTestConverter(t)

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", tt.file))
			require.NoError(t, err)

			cr, err := c.ParseJSON(data)
			require.NoError(t, err)

			res, err := c.ToModel(cr)
			require.NoError(t, err)
			assert.Equal(t, tt.resource, res.ResourceType())

			diff, err := c.RoundTrip(cr)
			require.NoError(t, err)
			assert.Empty(t, diff)
		})
	}
}

func TestConverter_DecodeJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "task.json"))
	require.NoError(t, err)

	res, err := newTestConverter(t).DecodeJSON(data)
	require.NoError(t, err)

	task, ok := res.(*model.Task)
	require.True(t, ok)
	assert.Equal(t, model.TaskInProgress, task.Status)
	assert.Equal(t, model.PriorityASAP, task.Priority)
	require.Len(t, task.Input, 3)
	assert.IsType(t, &model.String{}, task.Input[0].Value)
	assert.IsType(t, &model.Age{}, task.Input[1].Value)
	assert.IsType(t, &model.Reference{}, task.Input[2].Value)
	assert.Equal(t, "+01:00", task.AuthoredOn.Value.Location().String())
}

func TestConverter_EncodeJSON(t *testing.T) {
	c := newTestConverter(t)

	for _, res := range []model.Resource{samplePatient(), sampleObservation(), sampleTask()} {
		t.Run(res.ResourceType(), func(t *testing.T) {
			data, err := c.EncodeJSON(res)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"resourceType":"`+res.ResourceType()+`"`)

			back, err := c.DecodeJSON(data)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(res, back))
		})
	}

	_, err := c.EncodeJSON(nil)
	assert.Error(t, err)

	_, err = c.EncodeJSON((*model.Patient)(nil))
	assert.Error(t, err)
}

func TestConverter_Failures(t *testing.T) {
	var buf bytes.Buffer

	c, err := NewConverter(Default(), Options{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)})
	require.NoError(t, err)

	_, err = c.ParseJSON([]byte(`{"resourceType": "Patient", "gender": 7}`))
	require.Error(t, err)

	task := sampleTask()
	task.Output[0].Value = nil

	_, err = c.EncodeJSON(task)
	require.ErrorIs(t, err, choice.ErrUnmatchedVariant)
	assert.Contains(t, buf.String(), "encode failed")
}

func TestConverter_Indent(t *testing.T) {
	c, err := NewConverter(Default(), Options{Indent: true})
	require.NoError(t, err)

	data, err := c.EncodeJSON(sampleTask())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"")
}
