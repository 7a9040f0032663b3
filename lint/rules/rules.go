// Package rules assembles the built-in rule set from a configuration.
package rules

import (
	"github.com/cjdinger/lint-sasjs/config"
	"github.com/cjdinger/lint-sasjs/lint"
	"github.com/cjdinger/lint-sasjs/lint/rules/macro"
	"github.com/cjdinger/lint-sasjs/lint/rules/style"
)

// All returns every built-in rule with its default settings, in a stable order.
func All() []lint.Rule {
	return FromConfig(config.Default())
}

// FromConfig returns the rules enabled by cfg. Line rules come first, then
// file rules, each group in a fixed order.
func FromConfig(cfg *config.Config) []lint.Rule {
	if cfg == nil {
		cfg = config.Default()
	}

	var rules []lint.Rule
	add := func(name string, build func() lint.Rule) {
		if cfg.Enabled(name) {
			rules = append(rules, build())
		}
	}

	add(config.RuleNoTrailingSpaces, style.NoTrailingSpaces)
	add(config.RuleNoEncodedPasswords, style.NoEncodedPasswords)
	add(config.RuleNoTabs, style.NoTabs)
	add(config.RuleMaxLineLength, func() lint.Rule {
		return style.NewMaxLineLengthRule(cfg.MaxLineLength)
	})
	add(config.RuleIndentationMultiple, func() lint.Rule {
		return style.NewIndentationMultipleRule(cfg.IndentationMultiple)
	})
	add(config.RuleStrictMacroDefinition, macro.StrictMacroDefinition)

	add(config.RuleHasDoxygenHeader, style.HasDoxygenHeader)
	add(config.RuleHasMacroNameInMend, macro.HasMacroNameInMend)
	add(config.RuleNoNestedMacros, macro.NoNestedMacros)
	add(config.RuleHasMacroParentheses, macro.HasMacroParentheses)

	return rules
}

// NewEngine builds an engine for cfg, applying its severity overrides.
func NewEngine(cfg *config.Config, opts ...lint.Option) (*lint.Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	severities, err := cfg.Severities()
	if err != nil {
		return nil, err
	}
	opts = append([]lint.Option{lint.WithSeverities(severities)}, opts...)
	return lint.NewEngine(FromConfig(cfg), opts...), nil
}
