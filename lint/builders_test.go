package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRule(t *testing.T) {
	t.Run("creates rule with correct properties", func(t *testing.T) {
		rule := FileRule("test-rule", "test description", "test message", func(string) []Diagnostic {
			return nil
		})

		assert.Equal(t, "test-rule", rule.Name())
		assert.Equal(t, "test description", rule.Description())
		assert.Equal(t, "test message", rule.Message())
		assert.Equal(t, KindFile, rule.Kind())
	})

	t.Run("receives whole file contents", func(t *testing.T) {
		var got string
		rule := FileRule("test-rule", "d", "m", func(contents string) []Diagnostic {
			got = contents
			return []Diagnostic{NewDiagnostic("found", 1, 1, 1)}
		})

		diags := rule.Check(NewFileContext("a.sas", "line1\nline2"))

		assert.Equal(t, "line1\nline2", got)
		require.Len(t, diags, 1)
		assert.Equal(t, "found", diags[0].Message)
	})

	t.Run("ignores line contexts", func(t *testing.T) {
		called := false
		rule := FileRule("test-rule", "d", "m", func(string) []Diagnostic {
			called = true
			return nil
		})

		assert.Empty(t, rule.Check(NewLineContext("a.sas", "x", 1)))
		assert.False(t, called)
	})
}

func TestLineRule(t *testing.T) {
	t.Run("receives line and number", func(t *testing.T) {
		var gotLine string
		var gotNumber int
		rule := LineRule("line-rule", "d", "m", func(line string, n int) []Diagnostic {
			gotLine, gotNumber = line, n
			return nil
		})

		assert.Equal(t, KindLine, rule.Kind())
		rule.Check(NewLineContext("a.sas", "%let x=1;", 7))

		assert.Equal(t, "%let x=1;", gotLine)
		assert.Equal(t, 7, gotNumber)
	})

	t.Run("ignores file contexts", func(t *testing.T) {
		rule := LineRule("line-rule", "d", "m", func(string, int) []Diagnostic {
			return []Diagnostic{NewDiagnostic("x", 1, 1, 1)}
		})

		assert.Empty(t, rule.Check(NewFileContext("a.sas", "x")))
		assert.Empty(t, rule.Check(nil))
	})
}

func TestContextLevels(t *testing.T) {
	fileCtx := NewFileContext("a.sas", "x")
	assert.True(t, fileCtx.IsFileLevel())
	assert.False(t, fileCtx.IsLineLevel())

	lineCtx := NewLineContext("a.sas", "x", 1)
	assert.True(t, lineCtx.IsLineLevel())
	assert.False(t, lineCtx.IsFileLevel())
}
