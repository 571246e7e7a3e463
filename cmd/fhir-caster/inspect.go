package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fhir-caster/internal/catalog"
	"fhir-caster/internal/record"
)

// errCodesCheck is returned when a code family does not round-trip.
var errCodesCheck = errors.New("code families do not round-trip")

func (a *app) codesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List the code families and their normalization rules",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FAMILY\tENUM\tPREFIX\tSEPARATORS\tINVERSE\tCODES")

			for _, f := range a.schemas.Families() {
				enum := "-"
				if f.Enum() != nil {
					enum = string(f.Enum().FullName())
				}

				rule := f.Rule()
				fmt.Fprintf(w, "%s\t%s\t%s\t%q\t%s\t%d\n",
					f.Name(), enum, orDash(rule.Prefix), rule.Separators, rule.Inverse, len(f.Vocabulary()))
			}

			return w.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Check that every code family round-trips",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			res := catalog.Check(a.schemas.Families()...)

			for _, d := range res.All() {
				fmt.Fprintf(a.out, "%-7s %s\n", d.Severity, d)
			}

			if res.HasErrors() || res.HasWarnings() {
				return fmt.Errorf("%w: %d findings", errCodesCheck, len(res.Errors)+len(res.Warnings))
			}

			fmt.Fprintf(a.out, "%d families round-trip\n", len(a.schemas.Families()))

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dump [FILE]",
		Short: "Write the code catalog in use as YAML, to FILE or standard output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				return catalog.WriteFile(a.catalog, args[0])
			}

			data, err := catalog.Marshal(a.catalog)
			if err != nil {
				return err
			}

			_, err = a.out.Write(data)

			return err
		},
	})

	return cmd
}

func (a *app) schemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the record schemas with their fields and strategies",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)

			for _, r := range a.schemas.Records() {
				fmt.Fprintf(w, "%s (%s)\n", r.Name(), r.Descriptor().FullName())

				for _, f := range r.Fields() {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, f.Strategy, describe(f))
				}
			}

			return w.Flush()
		},
	}
}

func describe(f record.FieldInfo) string {
	switch f.Strategy {
	case record.StrategyChoice:
		tags := make([]string, len(f.Variants))
		for i, t := range f.Variants {
			tags[i] = string(t)
		}

		s := strings.Join(tags, "|")
		if f.Required {
			s += " required"
		}

		if len(f.Uncovered) > 0 {
			s += fmt.Sprintf(" (%d uncovered)", len(f.Uncovered))
		}

		return s
	case record.StrategyCode:
		if f.Family != nil {
			return f.Family.Name()
		}
	}

	return string(f.Type)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
