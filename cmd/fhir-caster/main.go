// Package main provides the fhir-caster command line.
//
// fhir-caster converts FHIR R4 resources between the google/fhir protocol
// buffers and the fhir-caster object model:
//   - decode: FHIR JSON to the object model
//   - encode: FHIR JSON through the object model back to FHIR JSON
//   - roundtrip: check that resources survive the conversion unchanged
//   - codes, schemas: inspect the code catalog and record schemas
package main

import (
	"os"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)

	if err := a.root().Execute(); err != nil {
		a.log.Error().Err(err).Msg("fhir-caster failed")
		os.Exit(1)
	}
}
