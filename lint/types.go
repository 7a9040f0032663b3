// Package lint provides the rule evaluation engine for SAS macro source files.
// It defines the diagnostic model, the file and line rule contract, the
// per-file Engine, the multi-file Runner and the Reporter.
package lint

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a linting issue.
type Severity int

const (
	// SeverityError indicates an issue that should fail the lint run.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be addressed.
	SeverityWarning
	// SeverityInfo indicates a suggestion or style improvement.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity parses a severity name. "warn" is accepted as an alias of
// "warning" to match configuration files.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warn", "warning":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityWarning, fmt.Errorf("unknown severity %q", s)
	}
}

// Diagnostic is a single finding produced by a rule. Lines and columns are
// 1-based and the column range is inclusive.
type Diagnostic struct {
	Message           string   `json:"message"`
	LineNumber        int      `json:"lineNumber"`
	StartColumnNumber int      `json:"startColumnNumber"`
	EndColumnNumber   int      `json:"endColumnNumber"`
	Severity          Severity `json:"severity"`
}

// NewDiagnostic creates a Warning diagnostic. Coordinates are clamped so that
// line and start column are at least 1 and the end column is not before the start.
func NewDiagnostic(message string, line, startColumn, endColumn int) Diagnostic {
	line = max(line, 1)
	startColumn = max(startColumn, 1)
	endColumn = max(endColumn, startColumn)
	return Diagnostic{
		Message:           message,
		LineNumber:        line,
		StartColumnNumber: startColumn,
		EndColumnNumber:   endColumn,
		Severity:          SeverityWarning,
	}
}

// Issue is a Diagnostic attributed to a rule and a file.
type Issue struct {
	// Rule is the name of the rule that found this issue.
	Rule string `json:"rule"`
	// File is the path of the linted file.
	File string `json:"file"`

	Diagnostic
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d [%s] %s",
			i.File,
			i.LineNumber,
			i.StartColumnNumber,
			i.Rule,
			i.Message)
	}
	return fmt.Sprintf("%d:%d [%s] %s", i.LineNumber, i.StartColumnNumber, i.Rule, i.Message)
}

// IsValid checks if the issue has all required fields.
func (i Issue) IsValid() bool {
	return i.Rule != "" && i.Message != "" && i.LineNumber >= 1 &&
		i.StartColumnNumber >= 1 && i.EndColumnNumber >= i.StartColumnNumber
}

// Summary counts issues by severity.
type Summary struct {
	Errors   int
	Warnings int
	Infos    int
}

// Summarize counts issues by severity.
func Summarize(issues []Issue) Summary {
	var s Summary
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			s.Errors++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Infos++
		}
	}
	return s
}

// String renders the summary as "N error(s), M warning(s)".
func (s Summary) String() string {
	return fmt.Sprintf("%d %s, %d %s",
		s.Errors, plural(s.Errors, "error"),
		s.Warnings, plural(s.Warnings, "warning"))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
