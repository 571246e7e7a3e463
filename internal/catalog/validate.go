package catalog

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"

	"fhir-caster/internal/code"
	"fhir-caster/internal/diagnostic"
)

// Validate checks a catalog for structural problems. It does not resolve enums.
func Validate(c *Catalog) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError("catalog_is_nil", "catalog is nil", "", "")
		return res
	}

	if c.Version != "" && c.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported catalog version %q", c.Version), "", "version")
	}

	seen := map[string]struct{}{}

	for i := range c.Families {
		def := &c.Families[i]
		path := fmt.Sprintf("families[%d]", i)

		if def.Name == "" {
			res.AddError("missing_name", "family name is required", "", path)
			continue
		}

		if _, dup := seen[def.Name]; dup {
			res.AddError("duplicate_family", fmt.Sprintf("duplicate family %q", def.Name), def.Name, path)
			continue
		}

		seen[def.Name] = struct{}{}

		validateFamily(res, def)
	}

	return res
}

func validateFamily(res *diagnostic.Diagnostics, def *FamilyDef) {
	if def.Enum != "" && !protoreflect.FullName(def.Enum).IsValid() {
		res.AddError("invalid_enum_name", fmt.Sprintf("invalid enum name %q", def.Enum), def.Name, "enum")
	}

	inv, err := code.ParseInverse(def.Inverse)
	if err != nil {
		res.AddError("invalid_inverse", err.Error(), def.Name, "inverse")
	} else if inv == code.InverseStrip && len(def.Codes) == 0 {
		res.AddError("strip_without_codes", "strip rule requires a vocabulary", def.Name, "codes")
	}

	codes := map[string]struct{}{}

	for i, token := range def.Codes {
		path := fmt.Sprintf("codes[%d]", i)

		if token == "" {
			res.AddError("empty_code", "code is empty", def.Name, path)
			continue
		}

		if _, dup := codes[token]; dup {
			res.AddError("duplicate_code", fmt.Sprintf("duplicate code %q", token), def.Name, path)
			continue
		}

		codes[token] = struct{}{}
	}

	for token, name := range def.Overrides {
		if !protoreflect.Name(name).IsValid() {
			res.AddError("invalid_override", fmt.Sprintf("override %q -> %q is not a constant name", token, name), def.Name, token)
		}

		if _, ok := codes[token]; !ok && len(codes) > 0 {
			res.AddWarning("override_unused", fmt.Sprintf("override for %q has no code", token), def.Name, token)
		}
	}
}
