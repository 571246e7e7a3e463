package catalog

import (
	"errors"

	"fhir-caster/internal/code"
	"fhir-caster/internal/diagnostic"
)

// Check round-trips every family. Lossy rules are reported as
// roundtrip_mismatch warnings; bound enum constants that the vocabulary does
// not list are reported as uncovered_constant infos.
func Check(families ...*code.Family) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, f := range families {
		if f.Enum() == nil {
			res.AddInfo("unbound_family", "enum constants not checked", f.Name(), "")
		}

		for _, m := range f.Check() {
			if m.Direction == code.FromConstant && len(f.Vocabulary()) > 0 &&
				errors.Is(m.Err, code.ErrUnknownValue) {
				res.AddInfo("uncovered_constant", "constant has no code in the vocabulary", f.Name(), m.Input)
				continue
			}

			res.AddWarning("roundtrip_mismatch", m.String(), f.Name(), m.Input)
		}
	}

	return res
}
