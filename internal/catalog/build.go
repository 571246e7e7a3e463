package catalog

import (
	"fmt"

	// Linked for their enum registrations.
	_ "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/codes_go_proto"
	_ "github.com/google/fhir/go/proto/google/fhir/proto/r4/core/valuesets_go_proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"fhir-caster/internal/code"
	"fhir-caster/internal/diagnostic"
)

// EnumResolver finds enum types by full name; *protoregistry.Types implements it.
type EnumResolver interface {
	FindEnumByName(protoreflect.FullName) (protoreflect.EnumType, error)
}

// Set is an ordered, immutable set of code families.
type Set struct {
	families []*code.Family
	byName   map[string]*code.Family
}

// Build validates the catalog and builds its families, binding each one whose
// enum the resolver knows. A nil resolver means protoregistry.GlobalTypes.
// The set is nil when the diagnostics hold errors.
func Build(c *Catalog, resolver EnumResolver) (*Set, *diagnostic.Diagnostics) {
	res := Validate(c)
	if res.HasErrors() {
		return nil, res
	}

	if resolver == nil {
		resolver = protoregistry.GlobalTypes
	}

	set := &Set{byName: make(map[string]*code.Family, len(c.Families))}

	for i := range c.Families {
		def := &c.Families[i]

		f, err := def.Family()
		if err != nil {
			res.AddError("invalid_family", err.Error(), def.Name, "")
			continue
		}

		if def.Enum == "" {
			res.AddInfo("unbound_family", "no enum declared", def.Name, "")
		} else {
			et, err := resolver.FindEnumByName(protoreflect.FullName(def.Enum))
			if err != nil {
				res.AddWarning("enum_not_found", fmt.Sprintf("enum %s: %v", def.Enum, err), def.Name, "enum")
			} else {
				f = f.Bind(et.Descriptor())
			}
		}

		set.families = append(set.families, f)
		set.byName[f.Name()] = f
	}

	if res.HasErrors() {
		return nil, res
	}

	return set, res
}

// MustBuild builds the catalog and panics on errors. For the built-in catalog.
func MustBuild(c *Catalog) *Set {
	set, res := Build(c, nil)
	if err := res.Error(); err != nil {
		panic(err)
	}

	return set
}

// Family returns the family with the given name.
func (s *Set) Family(name string) (*code.Family, bool) {
	f, ok := s.byName[name]

	return f, ok
}

// Families returns the families in declaration order.
func (s *Set) Families() []*code.Family {
	out := make([]*code.Family, len(s.families))
	copy(out, s.families)

	return out
}

// Len returns the number of families.
func (s *Set) Len() int { return len(s.families) }
