package code

import (
	"fmt"
	"strings"

	"fhir-caster/internal/common"
)

// Inverse selects how a protocol buffer constant name is turned back into a code.
type Inverse int

const (
	// InverseJoin lower-cases the name and turns "_" back into the first separator.
	InverseJoin Inverse = iota
	// InverseCamel lower-cases the name and joins its words as lowerCamelCase.
	InverseCamel
	// InverseStrip removes every "_" and resolves the result through the vocabulary.
	InverseStrip
)

// String returns the catalog name of the inverse rule.
func (i Inverse) String() string {
	switch i {
	case InverseJoin:
		return "join"
	case InverseCamel:
		return "camel"
	case InverseStrip:
		return "strip"
	default:
		return common.UnknownStr
	}
}

// ParseInverse parses a catalog inverse name. The empty string means InverseJoin.
func ParseInverse(s string) (Inverse, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "join":
		return InverseJoin, nil
	case "camel":
		return InverseCamel, nil
	case "strip":
		return InverseStrip, nil
	default:
		return 0, fmt.Errorf("unknown inverse rule %q", s)
	}
}

// Rule is the normalization data of one enum family.
type Rule struct {
	// Prefix is prepended to every protocol buffer constant name (e.g. "V_").
	Prefix string
	// Separators lists the code runes that become "_" (default "-").
	Separators string
	// SplitCamel splits camelCase codes into words before upper-casing.
	SplitCamel bool
	// Inverse selects the constant name to code transform.
	Inverse Inverse
	// Overrides maps codes to constant names verbatim, for symbolic codes such as "<".
	Overrides map[string]string
}

// DefaultSeparators is used when a rule declares none.
const DefaultSeparators = "-"

func (r Rule) separators() string {
	if r.Separators == "" {
		return DefaultSeparators
	}

	return r.Separators
}

// Forward converts a code into a constant name. It never fails; whether the
// name exists is decided by the family's enum.
func (r Rule) Forward(token string) string {
	if name, ok := r.Overrides[token]; ok {
		return name
	}

	s := token
	if r.SplitCamel {
		s = Screaming(Words(s, r.separators(), true))
	}

	for _, sep := range r.separators() {
		s = strings.ReplaceAll(s, string(sep), "_")
	}

	return r.Prefix + strings.ToUpper(s)
}

// overridden returns the code whose override produces name.
func (r Rule) overridden(name string) (string, bool) {
	for token, n := range r.Overrides {
		if n == name {
			return token, true
		}
	}

	return "", false
}

// Backward converts a constant name into a code, or into the stripped symbol
// for InverseStrip rules. It reports false when the name lacks the rule's prefix.
// Overrides are not consulted here; see Family.FromProto.
func (r Rule) Backward(name string) (string, bool) {
	if !strings.HasPrefix(name, r.Prefix) {
		return "", false
	}

	name = strings.TrimPrefix(name, r.Prefix)
	if name == "" {
		return "", false
	}

	switch r.Inverse {
	case InverseCamel:
		return LowerCamel(strings.Split(name, "_")), true
	case InverseStrip:
		return Strip(name), true
	default:
		sep := []rune(r.separators())[0]
		return strings.ReplaceAll(strings.ToLower(name), "_", string(sep)), true
	}
}

// symbol is the stripped form a code is indexed by under InverseStrip.
func (r Rule) symbol(token string) string {
	return Strip(strings.TrimPrefix(r.Forward(token), r.Prefix))
}
