package style

import (
	"strings"

	"github.com/cjdinger/lint-sasjs/lint"
)

const (
	// NoTrailingSpacesName is the name of the noTrailingSpaces rule.
	NoTrailingSpacesName = "noTrailingSpaces"
	// NoTabsName is the name of the noTabs rule.
	NoTabsName = "noTabs"

	trailingSpacesMessage = "Line contains trailing spaces"
	tabIndentMessage      = "Line is indented with a tab"
)

// NoTrailingSpaces creates a line rule flagging whitespace at the end of a line.
//
//nolint:ireturn // Rule constructors return the lint.Rule interface
func NoTrailingSpaces() lint.Rule {
	return lint.LineRule(
		NoTrailingSpacesName,
		"Disallow trailing spaces on lines.",
		trailingSpacesMessage,
		func(line string, lineNumber int) []lint.Diagnostic {
			trimmed := strings.TrimRight(line, " \t")
			if len(trimmed) == len(line) {
				return nil
			}
			return []lint.Diagnostic{
				lint.NewDiagnostic(trailingSpacesMessage, lineNumber, len(trimmed)+1, len(line)),
			}
		},
	)
}

// NoTabs creates a line rule flagging lines indented with a tab.
//
//nolint:ireturn // Rule constructors return the lint.Rule interface
func NoTabs() lint.Rule {
	return lint.LineRule(
		NoTabsName,
		"Disallow indenting with tabs.",
		tabIndentMessage,
		func(line string, lineNumber int) []lint.Diagnostic {
			if !strings.HasPrefix(line, "\t") {
				return nil
			}
			indent := len(line) - len(strings.TrimLeft(line, " \t"))
			return []lint.Diagnostic{
				lint.NewDiagnostic(tabIndentMessage, lineNumber, 1, indent),
			}
		},
	)
}
