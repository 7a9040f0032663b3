package lint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cjdinger/lint-sasjs/errors"
	"github.com/cjdinger/lint-sasjs/sas"
)

// Engine applies a fixed set of rules to the contents of one file at a time.
// An Engine holds no per-file state and may be shared across goroutines.
type Engine struct {
	rules      []Rule
	severities map[string]Severity
	logger     *slog.Logger
}

// NewEngine creates an Engine evaluating rules in the given order.
func NewEngine(rules []Rule, opts ...Option) *Engine {
	o := applyOptions(defaultOptions(), opts)
	return &Engine{
		rules:      append([]Rule(nil), rules...),
		severities: o.severities,
		logger:     o.logger,
	}
}

// Rules returns the rules of the engine in evaluation order.
func (e *Engine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Lint evaluates every rule against contents and returns the issues sorted
// by location. File rules receive the whole text; line rules receive each
// physical line with its 1-based number.
//
// A rule that panics does not prevent the other rules from reporting: its
// failure is returned as a RULE_FAILED error alongside the issues found by
// the remaining rules.
func (e *Engine) Lint(path, contents string) ([]Issue, error) {
	lines := sas.SplitLines(contents)

	var (
		issues []Issue
		errs   []error
	)
	for _, rule := range e.rules {
		diags, err := e.evaluate(rule, path, contents, lines)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, d := range diags {
			if s, ok := e.severities[rule.Name()]; ok {
				d.Severity = s
			}
			issues = append(issues, Issue{Rule: rule.Name(), File: path, Diagnostic: d})
		}
	}

	SortIssues(issues)
	return issues, errors.Join(errs...)
}

// evaluate runs a single rule, converting a panic into an error.
func (e *Engine) evaluate(rule Rule, path, contents string, lines []string) (diags []Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			diags = nil
			err = errors.WrapWithContext(
				fmt.Errorf("%v", r),
				errors.CodeRuleFailed,
				fmt.Sprintf("rule %s failed", rule.Name()),
				map[string]interface{}{
					"rule": rule.Name(),
					"file": path,
				},
			)
			if e.logger != nil {
				e.logger.Error("rule panicked", "rule", rule.Name(), "file", path, "panic", r)
			}
		}
	}()

	switch rule.Kind() {
	case KindFile:
		return rule.Check(NewFileContext(path, contents)), nil
	case KindLine:
		for i, line := range lines {
			diags = append(diags, rule.Check(NewLineContext(path, line, i+1))...)
		}
		return diags, nil
	default:
		return nil, errors.WrapWithContext(
			fmt.Errorf("unknown rule kind %d", rule.Kind()),
			errors.CodeInternal,
			"cannot evaluate rule",
			map[string]interface{}{"rule": rule.Name()},
		)
	}
}

// Fingerprint identifies the engine configuration: rule names, kinds,
// descriptions and severity overrides. Two engines with the same fingerprint
// report the same issues for the same input.
func (e *Engine) Fingerprint() string {
	h := sha256.New()
	for _, rule := range e.rules {
		fmt.Fprintf(h, "%s\x00%s\x00%s\x00", rule.Name(), rule.Kind(), rule.Description())
	}

	names := make([]string, 0, len(e.severities))
	for name := range e.severities {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(h, "%s=%s\x00", name, e.severities[name])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// SortIssues orders issues by file, line, start column and rule name.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return compareIssuesByLocation(issues[i], issues[j])
	})
}

// compareIssuesByLocation compares two issues by their location for sorting.
func compareIssuesByLocation(a, b Issue) bool {
	if a.File != b.File {
		return a.File < b.File
	}
	if a.LineNumber != b.LineNumber {
		return a.LineNumber < b.LineNumber
	}
	if a.StartColumnNumber != b.StartColumnNumber {
		return a.StartColumnNumber < b.StartColumnNumber
	}
	return a.Rule < b.Rule
}
