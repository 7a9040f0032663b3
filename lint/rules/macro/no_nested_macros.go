package macro

import (
	"fmt"

	"github.com/cjdinger/lint-sasjs/lint"
	"github.com/cjdinger/lint-sasjs/sas"
)

// NoNestedMacrosName is the name of the noNestedMacros rule.
const NoNestedMacrosName = "noNestedMacros"

// NoNestedMacros creates a file rule forbidding macro definitions inside
// other macro definitions.
//
//nolint:ireturn // Rule constructors return the lint.Rule interface
func NoNestedMacros() lint.Rule {
	return lint.FileRule(
		NoNestedMacrosName,
		"Enforces the absence of nested macro definitions.",
		"Macro definition present inside another macro",
		checkNestedMacros,
	)
}

func checkNestedMacros(contents string) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, m := range sas.ScanMacros(contents).Macros {
		if m.Parent == "" {
			continue
		}
		span := sas.SpanOf(m.Source, sas.MacroKeyword, 0)
		diags = append(diags, lint.NewDiagnostic(
			fmt.Sprintf("Macro definition for '%s' present in macro '%s'", m.Name, m.Parent),
			m.StartLine, span.Start, span.End,
		))
	}
	return diags
}
