package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, LogConsole, cfg.Log.Format)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
	assert.Equal(t, "UTC", cfg.FHIR.Timezone)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("FHIR_CASTER_LOG_LEVEL", "debug")
	t.Setenv("FHIR_CASTER_OUTPUT_FORMAT", "spew")
	t.Setenv("FHIR_CASTER_FHIR_TIMEZONE", "Europe/Berlin")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, OutputSpew, cfg.Output.Format)
	assert.Equal(t, "Europe/Berlin", cfg.FHIR.Timezone)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fhir-caster.yaml")
	content := "log:\n  format: json\ncatalog:\n  path: /etc/codes.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, LogJSON, cfg.Log.Format)
	assert.Equal(t, "/etc/codes.yaml", cfg.Catalog.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		set  func(t *testing.T) string
		want string
	}{
		{
			name: "missing file",
			set:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			want: "read config",
		},
		{
			name: "bad output format",
			set: func(t *testing.T) string {
				t.Setenv("FHIR_CASTER_OUTPUT_FORMAT", "xml")
				return ""
			},
			want: "output.format",
		},
		{
			name: "bad log format",
			set: func(t *testing.T) string {
				t.Setenv("FHIR_CASTER_LOG_FORMAT", "logfmt")
				return ""
			},
			want: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(New(), tt.set(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	err := (&Config{}).Validate()
	require.Error(t, err)

	for _, key := range []string{KeyLogFormat, KeyOutputFormat, KeyTimezone} {
		assert.Contains(t, err.Error(), key)
	}
}
