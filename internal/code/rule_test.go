package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var comparatorOverrides = map[string]string{
	"<":  "LESS_THAN",
	"<=": "LESS_THAN_OR_EQUAL_TO",
	">=": "GREATER_THAN_OR_EQUAL_TO",
	">":  "GREATER_THAN",
}

func TestRuleForward(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		token    string
		expected string
	}{
		{"kebab", Rule{}, "in-progress", "IN_PROGRESS"},
		{"single word", Rule{}, "final", "FINAL"},
		{"three words", Rule{}, "entered-in-error", "ENTERED_IN_ERROR"},
		{"camel without split", Rule{}, "dateTime", "DATETIME"},
		{"camel with split", Rule{SplitCamel: true}, "dateTime", "DATE_TIME"},
		{"version prefix", Rule{Prefix: "V_", Separators: "."}, "4.0.1", "V_4_0_1"},
		{"override", Rule{Overrides: comparatorOverrides}, "<=", "LESS_THAN_OR_EQUAL_TO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule.Forward(tt.token))
		})
	}
}

func TestRuleBackward(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		constant string
		expected string
		ok       bool
	}{
		{"join", Rule{}, "IN_PROGRESS", "in-progress", true},
		{"camel", Rule{Inverse: InverseCamel}, "DATE_TIME", "dateTime", true},
		{"strip", Rule{Inverse: InverseStrip}, "IN_PROGRESS", "INPROGRESS", true},
		{"version", Rule{Prefix: "V_", Separators: "."}, "V_4_0_1", "4.0.1", true},
		{"missing prefix", Rule{Prefix: "V_"}, "4_0_1", "", false},
		{"prefix only", Rule{Prefix: "V_"}, "V_", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.rule.Backward(tt.constant)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseInverse(t *testing.T) {
	tests := []struct {
		input    string
		expected Inverse
		wantErr  bool
	}{
		{"", InverseJoin, false},
		{"join", InverseJoin, false},
		{"Camel", InverseCamel, false},
		{" strip ", InverseStrip, false},
		{"hyphen", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInverse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInverseString(t *testing.T) {
	assert.Equal(t, "join", InverseJoin.String())
	assert.Equal(t, "camel", InverseCamel.String())
	assert.Equal(t, "strip", InverseStrip.String())
	assert.Equal(t, "unknown", Inverse(42).String())
}
