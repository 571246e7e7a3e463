package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fhir-caster/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(&buf, config.Log{Level: "warn", Format: config.LogJSON})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Str("family", "TaskStatus").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"family":"TaskStatus"`)
	assert.Contains(t, out, `"message":"shown"`)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(&buf, config.Log{Format: config.LogConsole})
	require.NoError(t, err)

	log.Info().Str("file", "patient.json").Msg("decoded")
	assert.Contains(t, buf.String(), "decoded")
	assert.Contains(t, buf.String(), "file=patient.json")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, config.Log{Level: "chatty"})
	assert.Error(t, err)
}
