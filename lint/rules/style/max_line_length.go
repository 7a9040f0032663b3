package style

import (
	"fmt"
	"unicode/utf8"

	"github.com/cjdinger/lint-sasjs/lint"
)

// DefaultMaxLineLength is the default maximum line length for the rule.
const DefaultMaxLineLength = 80

// MaxLineLengthName is the name of the maxLineLength rule.
const MaxLineLengthName = "maxLineLength"

// MaxLineLengthRule enforces a maximum line length measured in characters.
type MaxLineLengthRule struct {
	maxLength int
}

// NewMaxLineLengthRule creates a new max line length rule.
// If maxLength is 0 or negative, it uses the default value of 80.
func NewMaxLineLengthRule(maxLength int) *MaxLineLengthRule {
	if maxLength <= 0 {
		maxLength = DefaultMaxLineLength
	}
	return &MaxLineLengthRule{
		maxLength: maxLength,
	}
}

// Name returns the unique identifier for this rule.
func (r *MaxLineLengthRule) Name() string {
	return MaxLineLengthName
}

// Description returns a human-readable description of what this rule checks.
func (r *MaxLineLengthRule) Description() string {
	if r.getEffectiveMaxLength() != DefaultMaxLineLength {
		return fmt.Sprintf("Enforces a maximum line length of %d characters (default: %d).",
			r.getEffectiveMaxLength(), DefaultMaxLineLength)
	}
	return fmt.Sprintf("Enforces a maximum line length of %d characters.", DefaultMaxLineLength)
}

// Message returns the canonical diagnostic message.
func (r *MaxLineLengthRule) Message() string {
	return "Line exceeds maximum length"
}

// Kind reports that the rule runs once per line.
func (r *MaxLineLengthRule) Kind() lint.Kind {
	return lint.KindLine
}

// Check reports the line when its character count is over the limit.
func (r *MaxLineLengthRule) Check(ctx *lint.Context) []lint.Diagnostic {
	if ctx == nil || !ctx.IsLineLevel() {
		return nil
	}

	length := utf8.RuneCountInString(ctx.Line)
	excess := length - r.getEffectiveMaxLength()
	if excess <= 0 {
		return nil
	}

	return []lint.Diagnostic{lint.NewDiagnostic(
		fmt.Sprintf("Line exceeds maximum length by %d characters", excess),
		ctx.LineNumber, 1, len(ctx.Line),
	)}
}

// getEffectiveMaxLength returns the effective maximum line length,
// using the default if not configured.
func (r *MaxLineLengthRule) getEffectiveMaxLength() int {
	if r.maxLength <= 0 {
		return DefaultMaxLineLength
	}
	return r.maxLength
}
