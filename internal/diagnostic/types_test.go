package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics

	d.AddError("missing_name", "family name is required", "", "families[0]")
	d.AddWarning("roundtrip_mismatch", `"ab" came back as "a-b"`, "Collide", "ab")
	d.AddInfo("uncovered_constant", "no code for constant", "TaskStatus", "ON_HOLD")

	assert.True(t, d.HasErrors())
	assert.True(t, d.HasWarnings())
	assert.False(t, d.IsValid())
	require.Len(t, d.All(), 3)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.Equal(t, SeverityWarning, d.All()[1].Severity)
	assert.Equal(t, SeverityInfo, d.All()[2].Severity)
	assert.Len(t, d.WithCode("roundtrip_mismatch"), 1)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("e1", "first", "", "")
	b.AddError("e2", "second", "", "")
	b.AddInfo("i1", "note", "", "")

	a.Merge(&b)
	a.Merge(nil)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddWarning("w", "only a warning", "", "")
	assert.NoError(t, d.Error())

	d.AddError("duplicate_family", "duplicate family", "TaskStatus", "")
	d.AddError("empty_code", "empty code", "TaskStatus", "codes[3]")

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[TaskStatus]: [duplicate_family] duplicate family; [TaskStatus] codes[3]: [empty_code] empty code",
		err.Error())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{"message only", Diagnostic{Message: "msg"}, "msg"},
		{"with code", Diagnostic{Code: "c", Message: "msg"}, "[c] msg"},
		{"with subject", Diagnostic{Subject: "Patient", Message: "msg"}, "[Patient]: msg"},
		{"with path", Diagnostic{Path: "gender", Message: "msg"}, "gender: msg"},
		{"all", Diagnostic{Code: "c", Subject: "Patient", Path: "gender", Message: "msg"}, "[Patient] gender: [c] msg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
