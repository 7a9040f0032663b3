package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjdinger/lint-sasjs/config"
	"github.com/cjdinger/lint-sasjs/lint"
)

func names(rules []lint.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.Name()
	}
	return out
}

func TestAll(t *testing.T) {
	got := names(All())
	assert.ElementsMatch(t, config.RuleNames(), got, "every configurable rule is built in")
}

func TestFromConfig(t *testing.T) {
	t.Run("only enabled rules", func(t *testing.T) {
		cfg := &config.Config{HasMacroParentheses: true, StrictMacroDefinition: true}
		assert.Equal(t, []string{"strictMacroDefinition", "hasMacroParentheses"}, names(FromConfig(cfg)))
	})

	t.Run("numeric rules enabled by value", func(t *testing.T) {
		cfg := &config.Config{MaxLineLength: 100}
		rules := FromConfig(cfg)
		require.Len(t, rules, 1)
		assert.Contains(t, rules[0].Description(), "100")
	})

	t.Run("nil uses defaults", func(t *testing.T) {
		assert.Len(t, FromConfig(nil), len(config.RuleNames()))
	})
}

func TestNewEngine(t *testing.T) {
	cfg := &config.Config{
		HasMacroParentheses:   true,
		StrictMacroDefinition: true,
		SeverityLevel:         map[string]string{config.RuleHasMacroParentheses: "error"},
	}
	engine, err := NewEngine(cfg)
	require.NoError(t, err)

	issues, err := engine.Lint("m.sas", "%macro foo;\n%macro bar(a b) / nope;\n")
	require.NoError(t, err)
	require.Len(t, issues, 3)

	assert.Equal(t, "hasMacroParentheses", issues[0].Rule)
	assert.Equal(t, lint.SeverityError, issues[0].Severity)
	assert.Equal(t, "Macro definition missing parentheses", issues[0].Message)

	assert.Equal(t, "Param 'a b' cannot have space", issues[1].Message)
	assert.Equal(t, lint.SeverityWarning, issues[1].Severity)
	assert.Equal(t, "Option 'nope' is not valid", issues[2].Message)

	t.Run("bad severity", func(t *testing.T) {
		_, err := NewEngine(&config.Config{SeverityLevel: map[string]string{"noTabs": "loud"}})
		assert.Error(t, err)
	})
}
