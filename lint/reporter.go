package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/cjdinger/lint-sasjs/errors"
	"github.com/cjdinger/lint-sasjs/sas"
)

// Format represents the output format for reporting issues.
type Format int

const (
	// FormatText outputs one issue per line.
	FormatText Format = iota
	// FormatJSON outputs issues in JSON format.
	FormatJSON
	// FormatSARIF outputs issues in SARIF (Static Analysis Results Interchange Format).
	FormatSARIF
	// FormatPretty outputs issues with the offending source line underlined.
	FormatPretty
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	case FormatPretty:
		return "pretty"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	case "pretty":
		return FormatPretty, nil
	default:
		return FormatText, errors.Newf(errors.CodeUnsupportedFormat, "unsupported format: %s", s)
	}
}

// Reporter handles formatting and outputting linting issues.
type Reporter struct {
	writer  io.Writer
	format  Format
	color   bool
	sources map[string]string
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithColor enables ANSI colours in text and pretty output.
func WithColor(enabled bool) ReporterOption {
	return func(r *Reporter) {
		r.color = enabled
	}
}

// WithSources provides file contents keyed by path, used by the pretty
// format to print the offending lines.
func WithSources(sources map[string]string) ReporterOption {
	return func(r *Reporter) {
		r.sources = sources
	}
}

// NewReporter creates a new Reporter with the specified output writer and format.
func NewReporter(writer io.Writer, format Format, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		writer: writer,
		format: format,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes the issues to the output writer in the specified format.
// Issues are sorted by location before reporting.
func (r *Reporter) Report(issues []Issue) error {
	sortedIssues := make([]Issue, len(issues))
	copy(sortedIssues, issues)
	SortIssues(sortedIssues)

	switch r.format {
	case FormatText:
		return r.reportText(sortedIssues)
	case FormatJSON:
		return r.reportJSON(sortedIssues)
	case FormatSARIF:
		return r.reportSARIF(sortedIssues)
	case FormatPretty:
		return r.reportPretty(sortedIssues)
	default:
		return errors.Newf(errors.CodeUnsupportedFormat, "unsupported format: %s", r.format)
	}
}

// ReportSummary writes a one-line count of errors and warnings. It writes
// nothing for machine-readable formats.
func (r *Reporter) ReportSummary(issues []Issue) error {
	if r.format == FormatJSON || r.format == FormatSARIF {
		return nil
	}
	summary := Summarize(issues)
	text := summary.String()
	switch {
	case summary.Errors > 0:
		text = r.paint(color.FgRed, color.Bold).Sprint(text)
	case summary.Warnings > 0:
		text = r.paint(color.FgYellow, color.Bold).Sprint(text)
	default:
		text = r.paint(color.FgGreen).Sprint(text)
	}
	if _, err := fmt.Fprintln(r.writer, text); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// paint returns a colour honouring the reporter's colour setting.
func (r *Reporter) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (r *Reporter) severityColor(s Severity) *color.Color {
	switch s {
	case SeverityError:
		return r.paint(color.FgRed, color.Bold)
	case SeverityWarning:
		return r.paint(color.FgYellow, color.Bold)
	default:
		return r.paint(color.FgCyan)
	}
}

// reportText outputs issues in human-readable text format.
func (r *Reporter) reportText(issues []Issue) error {
	for _, issue := range issues {
		line := fmt.Sprintf("%s:%d:%d %s [%s] %s",
			issue.File,
			issue.LineNumber,
			issue.StartColumnNumber,
			r.severityColor(issue.Severity).Sprint(issue.Severity),
			issue.Rule,
			issue.Message)
		if _, err := fmt.Fprintln(r.writer, line); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
	}
	return nil
}

// reportPretty outputs each issue followed by the source line and a caret
// underline of the reported columns.
func (r *Reporter) reportPretty(issues []Issue) error {
	var b strings.Builder
	for _, issue := range issues {
		fmt.Fprintf(&b, "%s%s %s\n",
			r.severityColor(issue.Severity).Sprint(issue.Severity),
			r.paint(color.Faint).Sprintf("[%s]", issue.Rule),
			r.paint(color.Bold).Sprint(issue.Message))
		fmt.Fprintf(&b, "  --> %s:%d:%d\n", issue.File, issue.LineNumber, issue.StartColumnNumber)

		if line, ok := r.sourceLine(issue.File, issue.LineNumber); ok {
			gutter := fmt.Sprintf("%d", issue.LineNumber)
			pad := strings.Repeat(" ", len(gutter))
			fmt.Fprintf(&b, "%s |\n", pad)
			fmt.Fprintf(&b, "%s | %s\n", gutter, line)
			fmt.Fprintf(&b, "%s | %s\n", pad,
				r.severityColor(issue.Severity).Sprint(underline(line, issue.StartColumnNumber, issue.EndColumnNumber)))
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(r.writer, b.String()); err != nil {
		return fmt.Errorf("failed to write pretty output: %w", err)
	}
	return nil
}

func (r *Reporter) sourceLine(path string, lineNumber int) (string, bool) {
	contents, ok := r.sources[path]
	if !ok {
		return "", false
	}
	lines := sas.SplitLines(contents)
	if lineNumber < 1 || lineNumber > len(lines) {
		return "", false
	}
	return lines[lineNumber-1], true
}

// underline builds the caret line for the 1-based inclusive column range.
// Columns are byte offsets; the caret line is aligned by display width and
// tabs in the prefix are reproduced so it lines up under the source.
func underline(line string, start, end int) string {
	start = min(max(start, 1), len(line)+1)
	end = min(max(end, start), len(line))

	var b strings.Builder
	for _, r := range line[:start-1] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	width := 1
	if end >= start {
		width = max(runewidth.StringWidth(line[start-1:end]), 1)
	}
	b.WriteString(strings.Repeat("^", width))
	return b.String()
}

// reportJSON outputs issues in JSON format.
func (r *Reporter) reportJSON(issues []Issue) error {
	output := struct {
		Issues  []Issue `json:"issues"`
		Summary struct {
			Errors   int `json:"errors"`
			Warnings int `json:"warnings"`
		} `json:"summary"`
	}{
		Issues: issues,
	}
	if output.Issues == nil {
		output.Issues = []Issue{}
	}
	summary := Summarize(issues)
	output.Summary.Errors = summary.Errors
	output.Summary.Warnings = summary.Warnings

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// sarifLevel maps a severity to a SARIF result level.
func sarifLevel(s Severity) string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// reportSARIF outputs issues in SARIF (Static Analysis Results Interchange Format).
func (r *Reporter) reportSARIF(issues []Issue) error {
	// Rules appear in order of first occurrence
	rules := []map[string]interface{}{}
	seen := make(map[string]bool)
	for _, issue := range issues {
		if seen[issue.Rule] {
			continue
		}
		seen[issue.Rule] = true
		rules = append(rules, map[string]interface{}{
			"id":   issue.Rule,
			"name": issue.Rule,
			"help": map[string]interface{}{
				"text": issue.Message,
			},
		})
	}

	results := []map[string]interface{}{}
	for _, issue := range issues {
		results = append(results, map[string]interface{}{
			"ruleId":  issue.Rule,
			"level":   sarifLevel(issue.Severity),
			"message": map[string]interface{}{"text": issue.Message},
			"locations": []map[string]interface{}{
				{
					"physicalLocation": map[string]interface{}{
						"artifactLocation": map[string]interface{}{
							"uri": getFileURI(issue.File),
						},
						"region": map[string]interface{}{
							"startLine":   issue.LineNumber,
							"startColumn": issue.StartColumnNumber,
							"endLine":     issue.LineNumber,
							// SARIF end columns are exclusive
							"endColumn": issue.EndColumnNumber + 1,
						},
					},
				},
			},
		})
	}

	sarif := map[string]interface{}{
		"version": "2.1.0",
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"runs": []map[string]interface{}{
			{
				"tool": map[string]interface{}{
					"driver": map[string]interface{}{
						"name":           "sasjslint",
						"informationUri": "https://github.com/cjdinger/lint-sasjs",
						"rules":          rules,
					},
				},
				"results": results,
			},
		},
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sarif); err != nil {
		return fmt.Errorf("failed to encode SARIF output: %w", err)
	}
	return nil
}

// getFileURI returns the file URI for SARIF output.
func getFileURI(path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("file://%s", strings.TrimPrefix(path, "/"))
}
