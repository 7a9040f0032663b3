package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjdinger/lint-sasjs/lint"
)

func checkLine(rule lint.Rule, line string) []lint.Diagnostic {
	return rule.Check(lint.NewLineContext("test.sas", line, 4))
}

func TestMaxLineLengthRule(t *testing.T) {
	t.Run("detects lines exceeding max length", func(t *testing.T) {
		rule := NewMaxLineLengthRule(80)

		longLine := "data " + strings.Repeat("x", 80) + ";"
		issues := checkLine(rule, longLine)

		require.Len(t, issues, 1)
		assert.Equal(t, "maxLineLength", rule.Name())
		assert.Equal(t, lint.SeverityWarning, issues[0].Severity)
		assert.Equal(t, "Line exceeds maximum length by 6 characters", issues[0].Message)
		assert.Equal(t, 4, issues[0].LineNumber)
		assert.Equal(t, 1, issues[0].StartColumnNumber)
		assert.Equal(t, len(longLine), issues[0].EndColumnNumber)
	})

	t.Run("accepts lines within max length", func(t *testing.T) {
		rule := NewMaxLineLengthRule(80)

		assert.Empty(t, checkLine(rule, strings.Repeat("x", 80)))
		assert.Empty(t, checkLine(rule, ""))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		rule := NewMaxLineLengthRule(3)

		assert.Empty(t, checkLine(rule, "日本語"))
		assert.Len(t, checkLine(rule, "日本語x"), 1)
	})

	t.Run("uses default for invalid values", func(t *testing.T) {
		rule0 := NewMaxLineLengthRule(0)
		ruleNeg := NewMaxLineLengthRule(-10)

		assert.Equal(t, DefaultMaxLineLength, rule0.getEffectiveMaxLength())
		assert.Equal(t, DefaultMaxLineLength, ruleNeg.getEffectiveMaxLength())
	})

	t.Run("description mentions the limit", func(t *testing.T) {
		assert.Contains(t, NewMaxLineLengthRule(0).Description(), "80")
		assert.Contains(t, NewMaxLineLengthRule(100).Description(), "100")
	})

	t.Run("ignores file contexts", func(t *testing.T) {
		rule := NewMaxLineLengthRule(1)
		assert.Empty(t, rule.Check(lint.NewFileContext("test.sas", "long line")))
	})
}
