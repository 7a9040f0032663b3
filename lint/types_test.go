package lint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		want     string
	}{
		{
			name:     "error severity",
			severity: SeverityError,
			want:     "error",
		},
		{
			name:     "warning severity",
			severity: SeverityWarning,
			want:     "warning",
		},
		{
			name:     "info severity",
			severity: SeverityInfo,
			want:     "info",
		},
		{
			name:     "unknown severity",
			severity: Severity(999),
			want:     "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.severity.String()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity("warn")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning, s)

	s, err = ParseSeverity(" ERROR ")
	require.NoError(t, err)
	assert.Equal(t, SeverityError, s)

	_, err = ParseSeverity("fatal")
	assert.Error(t, err)
}

func TestNewDiagnostic(t *testing.T) {
	t.Run("keeps valid coordinates", func(t *testing.T) {
		d := NewDiagnostic("msg", 3, 5, 9)
		assert.Equal(t, Diagnostic{
			Message:           "msg",
			LineNumber:        3,
			StartColumnNumber: 5,
			EndColumnNumber:   9,
			Severity:          SeverityWarning,
		}, d)
	})

	t.Run("clamps invalid coordinates", func(t *testing.T) {
		d := NewDiagnostic("msg", 0, -1, 0)
		assert.Equal(t, 1, d.LineNumber)
		assert.Equal(t, 1, d.StartColumnNumber)
		assert.Equal(t, 1, d.EndColumnNumber)
	})
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name: "issue with file",
			issue: Issue{
				Rule:       "test-rule",
				File:       "macros/util.sas",
				Diagnostic: NewDiagnostic("test message", 10, 5, 8),
			},
			want: "macros/util.sas:10:5 [test-rule] test message",
		},
		{
			name: "issue without file",
			issue: Issue{
				Rule:       "test-rule",
				Diagnostic: NewDiagnostic("test message", 2, 1, 1),
			},
			want: "2:1 [test-rule] test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}

func TestIssueIsValid(t *testing.T) {
	valid := Issue{Rule: "r", Diagnostic: NewDiagnostic("m", 1, 1, 2)}
	assert.True(t, valid.IsValid())

	noRule := valid
	noRule.Rule = ""
	assert.False(t, noRule.IsValid())

	badSpan := valid
	badSpan.EndColumnNumber = 0
	assert.False(t, badSpan.IsValid())
}

func TestIssueJSON(t *testing.T) {
	issue := Issue{Rule: "noTabs", File: "a.sas", Diagnostic: NewDiagnostic("tab", 1, 1, 1)}

	data, err := json.Marshal(issue)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"rule": "noTabs",
		"file": "a.sas",
		"message": "tab",
		"lineNumber": 1,
		"startColumnNumber": 1,
		"endColumnNumber": 1,
		"severity": "warning"
	}`, string(data))

	var back Issue
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, issue, back)
}

func TestSummarize(t *testing.T) {
	issues := []Issue{
		{Diagnostic: Diagnostic{Severity: SeverityError}},
		{Diagnostic: Diagnostic{Severity: SeverityWarning}},
		{Diagnostic: Diagnostic{Severity: SeverityWarning}},
		{Diagnostic: Diagnostic{Severity: SeverityInfo}},
	}

	s := Summarize(issues)
	assert.Equal(t, Summary{Errors: 1, Warnings: 2, Infos: 1}, s)
	assert.Equal(t, "1 error, 2 warnings", s.String())
}
