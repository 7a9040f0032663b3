package macro

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cjdinger/lint-sasjs/lint"
	"github.com/cjdinger/lint-sasjs/sas"
)

const (
	// StrictMacroDefinitionName is the name of the strictMacroDefinition rule.
	StrictMacroDefinitionName = "strictMacroDefinition"

	strictMacroDefinitionDescription = "Enforce strictly rules of macro definition syntax."
	strictMacroDefinitionMessage     = "Incorrect Macro Definition Syntax"
)

// ValidOptions lists the option keywords accepted after '/' in a macro definition.
var ValidOptions = []string{
	"CMD",
	"DES",
	"MINDELIMITER",
	"MINOPERATOR",
	"NOMINOPERATOR",
	"PARMBUFF",
	"SECURE",
	"NOSECURE",
	"STMT",
	"SOURCE",
	"SRC",
	"STORE",
}

var validOptionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(ValidOptions))
	for _, o := range ValidOptions {
		set[o] = struct{}{}
	}
	return set
}()

// StrictMacroDefinition creates a line rule checking that macro parameter
// names contain no spaces and that every option is a known keyword.
// Macro signatures spanning several lines are not checked.
//
//nolint:ireturn // Rule constructors return the lint.Rule interface
func StrictMacroDefinition() lint.Rule {
	return lint.LineRule(
		StrictMacroDefinitionName,
		strictMacroDefinitionDescription,
		strictMacroDefinitionMessage,
		checkStrictMacroDefinition,
	)
}

func checkStrictMacroDefinition(line string, lineNumber int) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, decl := range sas.ParseMacros(line) {
		from := max(decl.Offset, 0)

		for _, param := range decl.Params() {
			if !strings.ContainsFunc(param.Name, unicode.IsSpace) {
				continue
			}
			span, ok := sas.LocateParam(line, param.Name, from)
			if !ok {
				span = sas.WholeLine(line)
			}
			diags = append(diags, lint.NewDiagnostic(
				fmt.Sprintf("Param '%s' cannot have space", param.Name),
				lineNumber, span.Start, span.End,
			))
		}

		for _, option := range decl.Options() {
			if isValidOption(option) {
				continue
			}
			span := sas.SpanOf(line, option, from)
			diags = append(diags, lint.NewDiagnostic(
				fmt.Sprintf("Option '%s' is not valid", option),
				lineNumber, span.Start, span.End,
			))
		}
	}

	return diags
}

// isValidOption reports whether the whole option token is in the allow-list,
// ignoring case.
func isValidOption(option string) bool {
	_, ok := validOptionSet[strings.ToUpper(option)]
	return ok
}
