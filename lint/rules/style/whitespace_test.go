package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjdinger/lint-sasjs/lint"
)

func TestNoTrailingSpaces(t *testing.T) {
	rule := NoTrailingSpaces()

	t.Run("clean line", func(t *testing.T) {
		assert.Empty(t, checkLine(rule, "data a;"))
		assert.Empty(t, checkLine(rule, ""))
	})

	t.Run("trailing spaces and tabs", func(t *testing.T) {
		got := checkLine(rule, "data a; \t ")
		require.Len(t, got, 1)
		assert.Equal(t, lint.NewDiagnostic("Line contains trailing spaces", 4, 8, 10), got[0])
	})

	t.Run("whitespace only line", func(t *testing.T) {
		got := checkLine(rule, "   ")
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].StartColumnNumber)
		assert.Equal(t, 3, got[0].EndColumnNumber)
	})
}

func TestNoTabs(t *testing.T) {
	rule := NoTabs()

	t.Run("space indentation", func(t *testing.T) {
		assert.Empty(t, checkLine(rule, "  set b;"))
		assert.Empty(t, checkLine(rule, "x\ty"))
	})

	t.Run("tab indentation", func(t *testing.T) {
		got := checkLine(rule, "\t  set b;")
		require.Len(t, got, 1)
		assert.Equal(t, lint.NewDiagnostic("Line is indented with a tab", 4, 1, 3), got[0])
	})
}
