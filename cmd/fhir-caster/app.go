package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fhir-caster/fhirconv"
	"fhir-caster/internal/catalog"
	"fhir-caster/internal/config"
	"fhir-caster/internal/logging"
)

type app struct {
	out     io.Writer
	errOut  io.Writer
	v       *viper.Viper
	cfgFile string

	cfg     *config.Config
	log     zerolog.Logger
	catalog *catalog.Catalog
	schemas *fhirconv.Schemas
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		v:      config.New(),
		log:    zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: true}),
	}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "fhir-caster",
		Short:             "Convert FHIR R4 resources between protocol buffers and the object model",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.setup() },
	}

	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "info", "log level")
	flags.String("log-format", config.LogConsole, "log format: json or console")
	flags.String("catalog", "", "code catalog file replacing the built-in one")
	flags.StringP("output", "o", config.OutputJSON, "decode output: json, spew or proto")
	flags.String("timezone", "UTC", "zone assumed for FHIR JSON values without one")

	for key, flag := range map[string]string{
		config.KeyLogLevel:     "log-level",
		config.KeyLogFormat:    "log-format",
		config.KeyCatalogPath:  "catalog",
		config.KeyOutputFormat: "output",
		config.KeyTimezone:     "timezone",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	cmd.AddCommand(a.decodeCmd(), a.encodeCmd(), a.roundTripCmd(), a.codesCmd(), a.schemasCmd())

	return cmd
}

// setup resolves the configuration, the logger and the schemas.
func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	log, err := logging.New(a.errOut, cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log

	schemas, err := a.loadSchemas()
	if err != nil {
		return err
	}

	a.schemas = schemas

	return nil
}

func (a *app) loadSchemas() (*fhirconv.Schemas, error) {
	if a.cfg.Catalog.Path == "" {
		a.catalog = catalog.Default()
		return fhirconv.Default(), nil
	}

	c, err := catalog.LoadFile(a.cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	a.catalog = c

	set, res := catalog.Build(c, nil)
	for _, d := range res.All() {
		a.log.Debug().Str("severity", d.Severity.String()).Msg(d.String())
	}

	if err := res.Error(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", a.cfg.Catalog.Path, err)
	}

	schemas, err := fhirconv.NewSchemas(set)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", a.cfg.Catalog.Path, err)
	}

	a.log.Info().Str("path", a.cfg.Catalog.Path).Int("families", set.Len()).Msg("catalog loaded")

	return schemas, nil
}

func (a *app) converter() (*fhirconv.Converter, error) {
	return fhirconv.NewConverter(a.schemas, fhirconv.Options{
		Timezone: a.cfg.FHIR.Timezone,
		Indent:   true,
		Logger:   a.log,
	})
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return data, nil
}
