package style

import (
	"strings"

	"github.com/cjdinger/lint-sasjs/lint"
	"github.com/cjdinger/lint-sasjs/sas"
)

// HasDoxygenHeaderName is the name of the hasDoxygenHeader rule.
const HasDoxygenHeaderName = "hasDoxygenHeader"

const (
	doxygenMissingMessage  = "File missing Doxygen header"
	doxygenNotFirstMessage = "File not beginning with a Doxygen header"
	doxygenOpener          = "/**"
)

// HasDoxygenHeader creates a file rule requiring files to open with a /** comment.
//
//nolint:ireturn // Rule constructors return the lint.Rule interface
func HasDoxygenHeader() lint.Rule {
	return lint.FileRule(
		HasDoxygenHeaderName,
		"Enforce the presence of a Doxygen header at the start of each file.",
		doxygenMissingMessage,
		checkDoxygenHeader,
	)
}

func checkDoxygenHeader(contents string) []lint.Diagnostic {
	trimmed := strings.TrimSpace(contents)
	if trimmed == "" || strings.HasPrefix(trimmed, doxygenOpener) {
		return nil
	}

	first := ""
	if lines := sas.SplitLines(contents); len(lines) > 0 {
		first = lines[0]
	}
	span := sas.WholeLine(first)

	message := doxygenNotFirstMessage
	if !strings.Contains(contents, doxygenOpener) {
		message = doxygenMissingMessage
	}
	return []lint.Diagnostic{lint.NewDiagnostic(message, 1, span.Start, span.End)}
}
