package catalog

import (
	"errors"
	"fmt"

	"fhir-caster/internal/code"
)

// Catalog is the root of a code catalog file.
type Catalog struct {
	// Version is the catalog format version.
	Version string `yaml:"version"`
	// Families lists the code families in declaration order.
	Families []FamilyDef `yaml:"families"`
}

// FamilyDef declares one code family.
type FamilyDef struct {
	// Name identifies the family, e.g. "TaskStatus".
	Name string `yaml:"name"`
	// Enum is the full name of the protocol buffer enum (optional).
	Enum string `yaml:"enum,omitempty"`
	// Prefix is prepended to every constant name.
	Prefix string `yaml:"prefix,omitempty"`
	// Separators lists the code runes that become "_".
	Separators string `yaml:"separators,omitempty"`
	// SplitCamel splits camelCase codes into words.
	SplitCamel bool `yaml:"split_camel,omitempty"`
	// Inverse is "join", "camel" or "strip".
	Inverse string `yaml:"inverse,omitempty"`
	// Overrides maps codes to constant names verbatim.
	Overrides map[string]string `yaml:"overrides,omitempty"`
	// Codes is the closed vocabulary.
	Codes StringArray `yaml:"codes,omitempty"`
}

// Rule converts the definition into a normalization rule.
func (d *FamilyDef) Rule() (code.Rule, error) {
	inv, err := code.ParseInverse(d.Inverse)
	if err != nil {
		return code.Rule{}, fmt.Errorf("family %s: %w", d.Name, err)
	}

	return code.Rule{
		Prefix:     d.Prefix,
		Separators: d.Separators,
		SplitCamel: d.SplitCamel,
		Inverse:    inv,
		Overrides:  d.Overrides,
	}, nil
}

// Family builds the unbound family.
func (d *FamilyDef) Family() (*code.Family, error) {
	rule, err := d.Rule()
	if err != nil {
		return nil, err
	}

	return code.NewFamily(d.Name, rule, d.Codes...)
}

// StringArray is a list of strings that also accepts a single string.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected string or list of strings")
}
