// Package config loads the fhir-caster command line configuration from
// defaults, FHIR_CASTER_* environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. FHIR_CASTER_LOG_LEVEL.
const EnvPrefix = "FHIR_CASTER"

// Keys.
const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyCatalogPath  = "catalog.path"
	KeyOutputFormat = "output.format"
	KeyTimezone     = "fhir.timezone"
)

// Output formats for decoded models.
const (
	OutputJSON  = "json"
	OutputSpew  = "spew"
	OutputProto = "proto"
)

// Log formats.
const (
	LogJSON    = "json"
	LogConsole = "console"
)

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Catalog struct {
	// Path replaces the embedded code catalog when set.
	Path string `mapstructure:"path"`
}

type Output struct {
	Format string `mapstructure:"format"`
}

type FHIR struct {
	// Timezone is the zone assumed for FHIR JSON values without one.
	Timezone string `mapstructure:"timezone"`
}

// Config is the resolved configuration.
type Config struct {
	Log     Log     `mapstructure:"log"`
	Catalog Catalog `mapstructure:"catalog"`
	Output  Output  `mapstructure:"output"`
	FHIR    FHIR    `mapstructure:"fhir"`
}

// New returns a viper instance with defaults and environment binding.
// Callers bind flags into it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, LogConsole)
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyOutputFormat, OutputJSON)
	v.SetDefault(KeyTimezone, "UTC")

	return v
}

// Load reads the optional config file and resolves v into a Config.
// An empty file name skips the file.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	var errs []error

	switch c.Log.Format {
	case LogJSON, LogConsole:
	default:
		errs = append(errs, fmt.Errorf("%s must be %q or %q, got %q", KeyLogFormat, LogJSON, LogConsole, c.Log.Format))
	}

	switch c.Output.Format {
	case OutputJSON, OutputSpew, OutputProto:
	default:
		errs = append(errs, fmt.Errorf("%s must be %q, %q or %q, got %q",
			KeyOutputFormat, OutputJSON, OutputSpew, OutputProto, c.Output.Format))
	}

	if c.FHIR.Timezone == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyTimezone))
	}

	return errors.Join(errs...)
}
