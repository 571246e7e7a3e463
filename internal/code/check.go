package code

import (
	"fmt"

	"fhir-caster/internal/common"
)

// Direction names the side a round trip starts from.
type Direction int

const (
	// FromCode is code -> constant -> code.
	FromCode Direction = iota
	// FromConstant is constant -> code -> constant.
	FromConstant
)

// String returns a short direction label.
func (d Direction) String() string {
	switch d {
	case FromCode:
		return "code"
	case FromConstant:
		return "constant"
	default:
		return common.UnknownStr
	}
}

// Mismatch is one failed round trip.
type Mismatch struct {
	Direction Direction
	// Input is the starting code or constant name.
	Input string
	// Output is what came back, empty when Err is set.
	Output string
	// Err is the conversion failure, if any.
	Err error
}

// String returns a human-readable description of the mismatch.
func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("%s %q: %v", m.Direction, m.Input, m.Err)
	}

	return fmt.Sprintf("%s %q came back as %q", m.Direction, m.Input, m.Output)
}

// Check round-trips every code of the vocabulary and, when bound, every
// initialized constant of the enum. An empty result means the rule is lossless
// over the family.
func (f *Family) Check() []Mismatch {
	var out []Mismatch

	for _, token := range f.vocab {
		name, err := f.ToProto("", token)
		if err != nil {
			out = append(out, Mismatch{Direction: FromCode, Input: token, Err: err})
			continue
		}

		back, err := f.FromProto("", name)
		if err != nil {
			out = append(out, Mismatch{Direction: FromCode, Input: token, Err: err})
			continue
		}

		if back != token {
			out = append(out, Mismatch{Direction: FromCode, Input: token, Output: back})
		}
	}

	if f.enum == nil {
		return out
	}

	values := f.enum.Values()
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		if v.Number() == 0 {
			continue
		}

		name := string(v.Name())

		token, err := f.FromProto("", name)
		if err != nil {
			out = append(out, Mismatch{Direction: FromConstant, Input: name, Err: err})
			continue
		}

		back, err := f.ToProto("", token)
		if err != nil {
			out = append(out, Mismatch{Direction: FromConstant, Input: name, Err: err})
			continue
		}

		if back != name {
			out = append(out, Mismatch{Direction: FromConstant, Input: name, Output: back})
		}
	}

	return out
}
