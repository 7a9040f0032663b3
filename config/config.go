// Package config provides loading, discovery and validation of sasjslint
// configuration files.
//
// A configuration enables rules by name and tunes the numeric ones. It can be
// written as JSON (the .sasjslint file), CUE, YAML or TOML:
//
//	{
//	    "noTrailingSpaces": true,
//	    "maxLineLength": 100,
//	    "hasMacroParentheses": true,
//	    "severityLevel": {"hasMacroParentheses": "error"},
//	    "ignoreList": ["vendor/**", "*.generated.sas"]
//	}
//
// # Basic Usage
//
//	fs := billy.NewBaseOSFS()
//	path, found, err := config.Find(fs, ".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := config.Default()
//	if found {
//	    cfg, err = config.Load(ctx, fs, path)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// When no file is found every rule is enabled with default settings. When a
// file is found, rules it does not mention are disabled.
package config

import (
	"context"
	"sort"

	"github.com/cjdinger/lint-sasjs/fs"
	"github.com/cjdinger/lint-sasjs/lint"
)

// Rule names recognised in configuration files.
const (
	RuleNoTrailingSpaces      = "noTrailingSpaces"
	RuleNoEncodedPasswords    = "noEncodedPasswords"
	RuleHasDoxygenHeader      = "hasDoxygenHeader"
	RuleNoTabs                = "noTabs"
	RuleMaxLineLength         = "maxLineLength"
	RuleIndentationMultiple   = "indentationMultiple"
	RuleHasMacroNameInMend    = "hasMacroNameInMend"
	RuleNoNestedMacros        = "noNestedMacros"
	RuleHasMacroParentheses   = "hasMacroParentheses"
	RuleStrictMacroDefinition = "strictMacroDefinition"
)

// Defaults applied by Default and, for Extensions, by Load.
const (
	DefaultMaxLineLength       = 80
	DefaultIndentationMultiple = 2
	DefaultEncoding            = "utf-8"
	DefaultExtension           = ".sas"
)

// RuleNames returns every configurable rule name, sorted.
func RuleNames() []string {
	names := []string{
		RuleNoTrailingSpaces,
		RuleNoEncodedPasswords,
		RuleHasDoxygenHeader,
		RuleNoTabs,
		RuleMaxLineLength,
		RuleIndentationMultiple,
		RuleHasMacroNameInMend,
		RuleNoNestedMacros,
		RuleHasMacroParentheses,
		RuleStrictMacroDefinition,
	}
	sort.Strings(names)
	return names
}

// Config is a sasjslint configuration.
type Config struct {
	NoTrailingSpaces      bool `json:"noTrailingSpaces" yaml:"noTrailingSpaces" toml:"noTrailingSpaces"`
	NoEncodedPasswords    bool `json:"noEncodedPasswords" yaml:"noEncodedPasswords" toml:"noEncodedPasswords"`
	HasDoxygenHeader      bool `json:"hasDoxygenHeader" yaml:"hasDoxygenHeader" toml:"hasDoxygenHeader"`
	NoTabs                bool `json:"noTabs" yaml:"noTabs" toml:"noTabs"`
	HasMacroNameInMend    bool `json:"hasMacroNameInMend" yaml:"hasMacroNameInMend" toml:"hasMacroNameInMend"`
	NoNestedMacros        bool `json:"noNestedMacros" yaml:"noNestedMacros" toml:"noNestedMacros"`
	HasMacroParentheses   bool `json:"hasMacroParentheses" yaml:"hasMacroParentheses" toml:"hasMacroParentheses"`
	StrictMacroDefinition bool `json:"strictMacroDefinition" yaml:"strictMacroDefinition" toml:"strictMacroDefinition"`

	// MaxLineLength enables maxLineLength when positive.
	MaxLineLength int `json:"maxLineLength" yaml:"maxLineLength" toml:"maxLineLength"`
	// IndentationMultiple enables indentationMultiple when positive.
	IndentationMultiple int `json:"indentationMultiple" yaml:"indentationMultiple" toml:"indentationMultiple"`

	// SeverityLevel maps rule names to "warn" or "error".
	SeverityLevel map[string]string `json:"severityLevel,omitempty" yaml:"severityLevel,omitempty" toml:"severityLevel,omitempty"`

	// IgnoreList holds glob patterns of files and directories to skip.
	IgnoreList []string `json:"ignoreList,omitempty" yaml:"ignoreList,omitempty" toml:"ignoreList,omitempty"`
	// Extensions lists the file extensions to lint.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
	// Encoding is the IANA name of the source charset.
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty" toml:"encoding,omitempty"`
	// RequiredVersion is a semver constraint on the linter version.
	RequiredVersion string `json:"requiredVersion,omitempty" yaml:"requiredVersion,omitempty" toml:"requiredVersion,omitempty"`
}

// Default returns the configuration used when no file is present:
// every rule enabled with default settings.
func Default() *Config {
	return &Config{
		NoTrailingSpaces:      true,
		NoEncodedPasswords:    true,
		HasDoxygenHeader:      true,
		NoTabs:                true,
		HasMacroNameInMend:    true,
		NoNestedMacros:        true,
		HasMacroParentheses:   true,
		StrictMacroDefinition: true,
		MaxLineLength:         DefaultMaxLineLength,
		IndentationMultiple:   DefaultIndentationMultiple,
		Extensions:            []string{DefaultExtension},
		Encoding:              DefaultEncoding,
	}
}

// LoadOptions configures the behavior of configuration loading operations.
type LoadOptions struct {
	// SkipValidation disables validation after decoding.
	SkipValidation bool
	// Version is the linter version checked against RequiredVersion.
	// Empty skips the check.
	Version string
}

// Load reads, decodes and validates the configuration at path.
// The format is chosen from the file name.
func Load(ctx context.Context, filesystem fs.ReadFS, path string) (*Config, error) {
	return LoadWithOptions(ctx, filesystem, path, LoadOptions{})
}

// LoadWithOptions is Load with custom options.
func LoadWithOptions(ctx context.Context, filesystem fs.ReadFS, path string, opts LoadOptions) (*Config, error) {
	return loadConfig(ctx, filesystem, path, opts)
}

// Enabled reports whether the named rule is switched on.
func (c *Config) Enabled(rule string) bool {
	switch rule {
	case RuleNoTrailingSpaces:
		return c.NoTrailingSpaces
	case RuleNoEncodedPasswords:
		return c.NoEncodedPasswords
	case RuleHasDoxygenHeader:
		return c.HasDoxygenHeader
	case RuleNoTabs:
		return c.NoTabs
	case RuleMaxLineLength:
		return c.MaxLineLength > 0
	case RuleIndentationMultiple:
		return c.IndentationMultiple > 0
	case RuleHasMacroNameInMend:
		return c.HasMacroNameInMend
	case RuleNoNestedMacros:
		return c.NoNestedMacros
	case RuleHasMacroParentheses:
		return c.HasMacroParentheses
	case RuleStrictMacroDefinition:
		return c.StrictMacroDefinition
	default:
		return false
	}
}

// Severities converts SeverityLevel into per-rule severity overrides.
func (c *Config) Severities() (map[string]lint.Severity, error) {
	if len(c.SeverityLevel) == 0 {
		return nil, nil
	}
	out := make(map[string]lint.Severity, len(c.SeverityLevel))
	for rule, level := range c.SeverityLevel {
		sev, err := lint.ParseSeverity(level)
		if err != nil {
			return nil, err
		}
		out[rule] = sev
	}
	return out, nil
}

func (c *Config) applyDefaults() {
	if len(c.Extensions) == 0 {
		c.Extensions = []string{DefaultExtension}
	}
	if c.Encoding == "" {
		c.Encoding = DefaultEncoding
	}
}
