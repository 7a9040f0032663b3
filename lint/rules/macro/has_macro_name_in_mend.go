package macro

import (
	"fmt"
	"strings"

	"github.com/cjdinger/lint-sasjs/lint"
	"github.com/cjdinger/lint-sasjs/sas"
)

// HasMacroNameInMendName is the name of the hasMacroNameInMend rule.
const HasMacroNameInMendName = "hasMacroNameInMend"

const (
	mendMissingNameMessage    = "%mend statement is missing macro name"
	mendMismatchedNameMessage = "%mend statement has mismatched macro name"
	mendWithoutMacroMessage   = "%mend statement with no corresponding macro"
	missingMendMessage        = "Missing %%mend statement for macro - %s"
)

// HasMacroNameInMend creates a file rule requiring each %mend to repeat the
// name of the macro it closes.
//
//nolint:ireturn // Rule constructors return the lint.Rule interface
func HasMacroNameInMend() lint.Rule {
	return lint.FileRule(
		HasMacroNameInMendName,
		"Enforces the presence of the macro name in each %mend statement.",
		mendMissingNameMessage,
		checkMacroNameInMend,
	)
}

func checkMacroNameInMend(contents string) []lint.Diagnostic {
	scan := sas.ScanMacros(contents)

	var diags []lint.Diagnostic
	for _, m := range scan.Macros {
		switch {
		case !m.HasMend:
			span := sas.SpanOf(m.Source, sas.MacroKeyword, 0)
			diags = append(diags, lint.NewDiagnostic(
				fmt.Sprintf(missingMendMessage, m.Name), m.StartLine, span.Start, span.End))

		case m.MendName == "":
			span := sas.SpanOf(m.MendSource, sas.MendKeyword, 0)
			diags = append(diags, lint.NewDiagnostic(mendMissingNameMessage, m.MendLine, span.Start, span.End))

		case !strings.EqualFold(m.MendName, m.Name):
			span := sas.SpanOf(m.MendSource, m.MendName, 0)
			diags = append(diags, lint.NewDiagnostic(mendMismatchedNameMessage, m.MendLine, span.Start, span.End))
		}
	}

	for _, orphan := range scan.OrphanMends {
		span := sas.SpanOf(orphan.Source, sas.MendKeyword, 0)
		diags = append(diags, lint.NewDiagnostic(mendWithoutMacroMessage, orphan.Line, span.Start, span.End))
	}

	return diags
}
