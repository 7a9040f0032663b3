package config

import (
	"fmt"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/cjdinger/lint-sasjs/errors"
	"github.com/cjdinger/lint-sasjs/workspace"
)

// severityLevels are the accepted values of severityLevel entries.
var severityLevels = []string{"warn", "error"}

// Validate checks a decoded configuration. Field problems are collected
// into one CodeInvalidConfig error. When version is not empty it must
// satisfy RequiredVersion, otherwise a CodeVersionMismatch error is returned.
func Validate(cfg *Config, version string) error {
	if cfg == nil {
		return errors.New(errors.CodeInvalidInput, "configuration is nil")
	}

	var validationErrors []string

	if cfg.MaxLineLength < 0 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("maxLineLength must not be negative (got %d)", cfg.MaxLineLength))
	}
	if cfg.IndentationMultiple < 0 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("indentationMultiple must not be negative (got %d)", cfg.IndentationMultiple))
	}
	validationErrors = append(validationErrors, validateSeverityLevels(cfg.SeverityLevel)...)
	validationErrors = append(validationErrors, validateIgnoreList(cfg.IgnoreList)...)
	validationErrors = append(validationErrors, validateExtensions(cfg.Extensions)...)

	if cfg.Encoding != "" {
		if _, err := workspace.LookupEncoding(cfg.Encoding); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("encoding %q is not supported", cfg.Encoding))
		}
	}

	if cfg.RequiredVersion != "" && !validConstraint(cfg.RequiredVersion) {
		validationErrors = append(validationErrors, fmt.Sprintf("requiredVersion %q is not a valid constraint", cfg.RequiredVersion))
	}

	if len(validationErrors) > 0 {
		return errors.New(
			errors.CodeInvalidConfig,
			fmt.Sprintf("configuration validation failed: %s", strings.Join(validationErrors, "; ")),
		)
	}

	if cfg.RequiredVersion != "" && version != "" {
		return CheckVersion(cfg.RequiredVersion, version)
	}
	return nil
}

// validateSeverityLevels ensures every entry names a known rule and a known level.
func validateSeverityLevels(levels map[string]string) []string {
	known := RuleNames()

	rules := make([]string, 0, len(levels))
	for rule := range levels {
		rules = append(rules, rule)
	}
	sort.Strings(rules)

	var problems []string
	for _, rule := range rules {
		if !slices.Contains(known, rule) {
			problems = append(problems, fmt.Sprintf("severityLevel references unknown rule %q (available rules: %s)",
				rule, strings.Join(known, ", ")))
			continue
		}
		if level := levels[rule]; !slices.Contains(severityLevels, level) {
			problems = append(problems, fmt.Sprintf("severityLevel for %q must be one of %s (got %q)",
				rule, strings.Join(severityLevels, ", "), level))
		}
	}
	return problems
}

func validateIgnoreList(patterns []string) []string {
	var problems []string
	for _, p := range patterns {
		if _, err := path.Match(strings.TrimSuffix(p, "/"), ""); err != nil {
			problems = append(problems, fmt.Sprintf("ignoreList pattern %q is malformed", p))
		}
	}
	return problems
}

func validateExtensions(exts []string) []string {
	var problems []string
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			problems = append(problems, fmt.Sprintf("extension %q must start with '.'", ext))
		}
	}
	return problems
}
