package lint

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIssues() []Issue {
	warn := NewDiagnostic("Macro definition missing parentheses", 2, 8, 10)
	err := NewDiagnostic("Line contains encoded password", 1, 10, 20)
	err.Severity = SeverityError
	return []Issue{
		{Rule: "hasMacroParentheses", File: "b.sas", Diagnostic: warn},
		{Rule: "noEncodedPasswords", File: "a.sas", Diagnostic: err},
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "sarif", "pretty"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestReporterText(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, FormatText)

	require.NoError(t, reporter.Report(sampleIssues()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "a.sas:1:10 error [noEncodedPasswords] Line contains encoded password", lines[0])
	assert.Equal(t, "b.sas:2:8 warning [hasMacroParentheses] Macro definition missing parentheses", lines[1])
}

func TestReporterTextColor(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, FormatText, WithColor(true))

	require.NoError(t, reporter.Report(sampleIssues()))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestReporterPretty(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, FormatPretty, WithSources(map[string]string{
		"b.sas": "/** header */\n%macro foo;\n",
	}))

	issues := sampleIssues()[:1]
	require.NoError(t, reporter.Report(issues))

	out := buf.String()
	assert.Contains(t, out, "warning[hasMacroParentheses] Macro definition missing parentheses")
	assert.Contains(t, out, "  --> b.sas:2:8")
	assert.Contains(t, out, "2 | %macro foo;")
	assert.Contains(t, out, "  |        ^^^")
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, "  ^^", underline("abcdef", 3, 4))
	assert.Equal(t, "\t ^", underline("\tab", 3, 3))
	assert.Equal(t, "^", underline("", 1, 5))
	assert.Equal(t, "    ^^", underline("日本語", 3*2+1, 9))
}

func TestReporterJSON(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, FormatJSON)

	require.NoError(t, reporter.Report(sampleIssues()))

	var out struct {
		Issues  []Issue `json:"issues"`
		Summary struct {
			Errors   int `json:"errors"`
			Warnings int `json:"warnings"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Issues, 2)
	assert.Equal(t, "a.sas", out.Issues[0].File)
	assert.Equal(t, 1, out.Summary.Errors)
	assert.Equal(t, 1, out.Summary.Warnings)
}

func TestReporterJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatJSON).Report(nil))
	assert.Contains(t, buf.String(), `"issues": []`)
}

func TestReporterSARIF(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, FormatSARIF)

	require.NoError(t, reporter.Report(sampleIssues()))

	var sarif struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &sarif))

	assert.Equal(t, "2.1.0", sarif.Version)
	require.Len(t, sarif.Runs, 1)
	assert.Equal(t, "sasjslint", sarif.Runs[0].Tool.Driver.Name)
	assert.Len(t, sarif.Runs[0].Tool.Driver.Rules, 2)
	require.Len(t, sarif.Runs[0].Results, 2)
	assert.Equal(t, "error", sarif.Runs[0].Results[0].Level)
	assert.Equal(t, "warning", sarif.Runs[0].Results[1].Level)
}

func TestReporterSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText).ReportSummary(sampleIssues()))
	assert.Equal(t, "1 error, 1 warning\n", buf.String())

	buf.Reset()
	require.NoError(t, NewReporter(&buf, FormatJSON).ReportSummary(sampleIssues()))
	assert.Empty(t, buf.String())
}
