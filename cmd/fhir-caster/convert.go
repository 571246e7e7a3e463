package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/prototext"

	"fhir-caster/fhirconv"
	"fhir-caster/internal/config"
)

// errRoundTrip is returned when at least one file does not round-trip.
var errRoundTrip = errors.New("round trip failed")

func (a *app) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Convert a FHIR R4 JSON resource into the object model",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.converter()
			if err != nil {
				return err
			}

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			res, err := c.DecodeJSON(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			switch a.cfg.Output.Format {
			case config.OutputSpew:
				_, err = fmt.Fprint(a.out, spew.Sdump(res))
			case config.OutputProto:
				cr, encErr := c.ToProto(res)
				if encErr != nil {
					return encErr
				}

				_, err = fmt.Fprint(a.out, prototext.MarshalOptions{Multiline: true}.Format(cr))
			default:
				var out []byte

				out, err = json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("render model: %w", err)
				}

				_, err = fmt.Fprintln(a.out, string(out))
			}

			return err
		},
	}
}

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode FILE",
		Short: "Convert a FHIR R4 JSON resource through the object model back to FHIR JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.converter()
			if err != nil {
				return err
			}

			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			res, err := c.DecodeJSON(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out, err := c.EncodeJSON(res)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			_, err = fmt.Fprintln(a.out, string(out))

			return err
		},
	}
}

func (a *app) roundTripCmd() *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "roundtrip FILE...",
		Short: "Check that FHIR R4 JSON resources survive conversion to the object model and back",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.converter()
			if err != nil {
				return err
			}

			failed := 0

			for _, name := range args {
				diff, err := a.roundTripFile(c, name)

				switch {
				case err != nil:
					failed++
					a.log.Error().Err(err).Str("file", name).Msg("conversion failed")
					fmt.Fprintf(a.out, "FAIL %s: %v\n", name, err)
				case diff != "":
					failed++
					a.log.Warn().Str("file", name).Msg("round trip differs")
					fmt.Fprintf(a.out, "DIFF %s\n", name)

					if showDiff {
						fmt.Fprintln(a.out, diff)
					}
				default:
					fmt.Fprintf(a.out, "ok   %s\n", name)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errRoundTrip, failed, len(args))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print the difference for files that do not round-trip")

	return cmd
}

func (a *app) roundTripFile(c *fhirconv.Converter, name string) (string, error) {
	data, err := readInput(name)
	if err != nil {
		return "", err
	}

	cr, err := c.ParseJSON(data)
	if err != nil {
		return "", err
	}

	return c.RoundTrip(cr)
}
