package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed codes.yaml
var defaultCatalog []byte

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}

	return c
}

// LoadFile loads and parses a YAML catalog file from the given path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Catalog) {
	if c.Version == "" {
		c.Version = "1"
	}

	for i := range c.Families {
		f := &c.Families[i]
		if f.Inverse == "" {
			f.Inverse = "join"
		}
	}
}

// Marshal serializes a Catalog to YAML.
func Marshal(c *Catalog) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Catalog to the given path.
func WriteFile(c *Catalog, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file %s: %w", path, err)
	}

	return nil
}
