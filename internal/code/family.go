package code

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"google.golang.org/protobuf/reflect/protoreflect"
)

// Family is a closed vocabulary of codes plus the rule that normalizes them.
// A Family is immutable and safe for concurrent use.
type Family struct {
	name    string
	rule    Rule
	vocab   []string
	members map[string]struct{}
	// symbols indexes the vocabulary by stripped symbol for InverseStrip rules.
	// On collision the first declared code wins; Check reports the loser.
	symbols map[string]string
	enum    protoreflect.EnumDescriptor
}

// NewFamily creates a family. The vocabulary may be empty for join and camel
// rules, in which case membership is decided by the bound enum alone.
func NewFamily(name string, rule Rule, vocabulary ...string) (*Family, error) {
	if name == "" {
		return nil, errors.New("family name is required")
	}

	if rule.Inverse == InverseStrip && len(vocabulary) == 0 {
		return nil, fmt.Errorf("family %s: strip rule requires a vocabulary", name)
	}

	f := &Family{
		name:    name,
		rule:    rule,
		vocab:   slices.Clone(vocabulary),
		members: make(map[string]struct{}, len(vocabulary)),
	}

	if rule.Inverse == InverseStrip {
		f.symbols = make(map[string]string, len(vocabulary))
	}

	for _, token := range vocabulary {
		if _, dup := f.members[token]; dup {
			return nil, fmt.Errorf("family %s: duplicate code %q", name, token)
		}

		f.members[token] = struct{}{}

		if f.symbols != nil {
			sym := rule.symbol(token)
			if _, taken := f.symbols[sym]; !taken {
				f.symbols[sym] = token
			}
		}
	}

	return f, nil
}

// MustFamily is like NewFamily but panics on error. For static schema data.
func MustFamily(name string, rule Rule, vocabulary ...string) *Family {
	f, err := NewFamily(name, rule, vocabulary...)
	if err != nil {
		panic(err)
	}

	return f
}

// Bind returns a copy of the family bound to the given enum.
func (f *Family) Bind(enum protoreflect.EnumDescriptor) *Family {
	bound := *f
	bound.enum = enum

	return &bound
}

// Name returns the family name.
func (f *Family) Name() string { return f.name }

// Rule returns the normalization rule.
func (f *Family) Rule() Rule { return f.rule }

// Vocabulary returns the codes in declared order.
func (f *Family) Vocabulary() []string { return slices.Clone(f.vocab) }

// Enum returns the bound enum, or nil.
func (f *Family) Enum() protoreflect.EnumDescriptor { return f.enum }

// Contains reports whether token is in the vocabulary. A family without a
// vocabulary contains every token.
func (f *Family) Contains(token string) bool {
	if len(f.members) == 0 {
		return true
	}

	_, ok := f.members[token]

	return ok
}

func (f *Family) unknown(field, token string) error {
	return &UnknownValueError{Field: field, Family: f.name, Token: token}
}

// ToProto converts a code into its constant name.
func (f *Family) ToProto(field, token string) (string, error) {
	if !f.Contains(token) {
		return "", f.unknown(field, token)
	}

	name := f.rule.Forward(token)
	if f.enum != nil && f.enum.Values().ByName(protoreflect.Name(name)) == nil {
		return "", f.unknown(field, token)
	}

	return name, nil
}

// FromProto converts a constant name into its code.
func (f *Family) FromProto(field, name string) (string, error) {
	if f.enum != nil && f.enum.Values().ByName(protoreflect.Name(name)) == nil {
		return "", f.unknown(field, name)
	}

	token, ok := f.rule.overridden(name)
	if !ok {
		token, ok = f.rule.Backward(name)
		if ok && f.symbols != nil {
			token, ok = f.symbols[token]
		}
	}

	if !ok || !f.Contains(token) {
		return "", f.unknown(field, name)
	}

	return token, nil
}

// ToNumber converts a code into the bound enum's number.
func (f *Family) ToNumber(field, token string) (protoreflect.EnumNumber, error) {
	if f.enum == nil {
		return 0, fmt.Errorf("family %s: %w", f.name, ErrUnbound)
	}

	name, err := f.ToProto(field, token)
	if err != nil {
		return 0, err
	}

	return f.enum.Values().ByName(protoreflect.Name(name)).Number(), nil
}

// FromNumber converts a bound enum number into its code.
// Zero is the uninitialized sentinel in every FHIR enum and is never a code.
func (f *Family) FromNumber(field string, n protoreflect.EnumNumber) (string, error) {
	if f.enum == nil {
		return "", fmt.Errorf("family %s: %w", f.name, ErrUnbound)
	}

	v := f.enum.Values().ByNumber(n)
	if v == nil || n == 0 {
		raw := strconv.Itoa(int(n))
		if v != nil {
			raw = string(v.Name())
		}

		return "", f.unknown(field, raw)
	}

	return f.FromProto(field, string(v.Name()))
}
