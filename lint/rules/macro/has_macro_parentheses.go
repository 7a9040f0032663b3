package macro

import (
	"strings"
	"unicode"

	"github.com/cjdinger/lint-sasjs/lint"
	"github.com/cjdinger/lint-sasjs/sas"
)

const (
	// HasMacroParenthesesName is the name of the hasMacroParentheses rule.
	HasMacroParenthesesName = "hasMacroParentheses"

	hasMacroParenthesesDescription = "Enforces the presence of parentheses in macro definitions."
	hasMacroParenthesesMessage     = "Macro definition missing parentheses"
	macroContainsSpacesMessage     = "Macro definition contains space(s)"
)

// HasMacroParentheses creates a file rule requiring every %macro definition
// to have a name immediately followed by '('.
//
//nolint:ireturn // Rule constructors return the lint.Rule interface
func HasMacroParentheses() lint.Rule {
	return lint.FileRule(
		HasMacroParenthesesName,
		hasMacroParenthesesDescription,
		hasMacroParenthesesMessage,
		checkMacroParentheses,
	)
}

func checkMacroParentheses(contents string) []lint.Diagnostic {
	var diags []lint.Diagnostic

	// next search offset for %macro per line, so repeated keywords on one
	// line resolve to their own columns
	offsets := make(map[int]int)

	for _, stmt := range sas.Statements(contents) {
		if !sas.IsMacroStatement(stmt.Text) {
			continue
		}

		from := offsets[stmt.Line]
		keywordCol := sas.ColumnNumberFrom(stmt.Source, sas.MacroKeyword, from)
		if keywordCol != sas.NotFound {
			from = keywordCol - 1
			offsets[stmt.Line] = from + len(sas.MacroKeyword)
		}

		raw := strings.TrimLeftFunc(stmt.Raw, unicode.IsSpace)[len(sas.MacroKeyword):]
		raw = strings.TrimLeftFunc(raw, unicode.IsSpace)
		definition := strings.TrimSpace(raw)
		name, _, hasParen := strings.Cut(definition, "(")

		switch {
		case name == "":
			span := sas.WholeLine(stmt.Source)
			if keywordCol != sas.NotFound {
				span = sas.Span{Start: keywordCol, End: keywordCol + len(stmt.Text) - 1}
			}
			diags = append(diags, lint.NewDiagnostic(macroContainsSpacesMessage, stmt.Line, span.Start, span.End))

		case !hasParen:
			// a lone name padded before the terminator, e.g. "%macro foo ;"
			spaced := stmt.Terminated && raw != definition &&
				!strings.ContainsFunc(definition, func(r rune) bool { return r == '/' || unicode.IsSpace(r) })
			message := hasMacroParenthesesMessage
			if spaced {
				message = macroContainsSpacesMessage
			}
			span := sas.SpanOf(stmt.Source, definition, from)
			diags = append(diags, lint.NewDiagnostic(message, stmt.Line, span.Start, span.End))

		case strings.ContainsFunc(name, unicode.IsSpace):
			span := sas.SpanOf(stmt.Source, definition, from)
			diags = append(diags, lint.NewDiagnostic(macroContainsSpacesMessage, stmt.Line, span.Start, span.End))
		}
	}

	return diags
}
