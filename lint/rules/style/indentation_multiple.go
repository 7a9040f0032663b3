package style

import (
	"fmt"
	"strings"

	"github.com/cjdinger/lint-sasjs/lint"
)

// DefaultIndentationMultiple is the default indentation step in spaces.
const DefaultIndentationMultiple = 2

// IndentationMultipleName is the name of the indentationMultiple rule.
const IndentationMultipleName = "indentationMultiple"

// IndentationMultipleRule requires space indentation to be a multiple of a
// fixed step. Blank and tab-indented lines are not checked.
type IndentationMultipleRule struct {
	multiple int
}

// NewIndentationMultipleRule creates the rule. A multiple of 0 or less
// disables it.
func NewIndentationMultipleRule(multiple int) *IndentationMultipleRule {
	return &IndentationMultipleRule{multiple: multiple}
}

// Name returns the unique identifier for this rule.
func (r *IndentationMultipleRule) Name() string {
	return IndentationMultipleName
}

// Description returns a human-readable description of what this rule checks.
func (r *IndentationMultipleRule) Description() string {
	return fmt.Sprintf("Ensure indentation by a multiple of %d spaces.", r.multiple)
}

// Message returns the canonical diagnostic message.
func (r *IndentationMultipleRule) Message() string {
	return "Line has incorrect indentation"
}

// Kind reports that the rule runs once per line.
func (r *IndentationMultipleRule) Kind() lint.Kind {
	return lint.KindLine
}

// Check counts the leading spaces of the line.
func (r *IndentationMultipleRule) Check(ctx *lint.Context) []lint.Diagnostic {
	if ctx == nil || !ctx.IsLineLevel() || r.multiple <= 0 {
		return nil
	}

	line := ctx.Line
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "\t") {
		return nil
	}

	spaces := len(line) - len(strings.TrimLeft(line, " "))
	if spaces%r.multiple == 0 {
		return nil
	}

	unit := "spaces"
	if spaces == 1 {
		unit = "space"
	}
	return []lint.Diagnostic{lint.NewDiagnostic(
		fmt.Sprintf("Line has incorrect indentation - %d %s", spaces, unit),
		ctx.LineNumber, 1, spaces,
	)}
}
