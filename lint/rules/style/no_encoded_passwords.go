package style

import (
	"regexp"

	"github.com/cjdinger/lint-sasjs/lint"
)

// NoEncodedPasswordsName is the name of the noEncodedPasswords rule.
const NoEncodedPasswordsName = "noEncodedPasswords"

const encodedPasswordMessage = "Line contains encoded password"

// encodedPassword matches PWENCODE output such as {SAS002}1D57933958C58006.
var encodedPassword = regexp.MustCompile(`(?i)\{sas(\d{2,3})?\}[^\s;"']+`)

// NoEncodedPasswords creates a line rule flagging every encoded password token.
//
//nolint:ireturn // Rule constructors return the lint.Rule interface
func NoEncodedPasswords() lint.Rule {
	return lint.LineRule(
		NoEncodedPasswordsName,
		"Disallow encoded passwords in SAS code.",
		encodedPasswordMessage,
		func(line string, lineNumber int) []lint.Diagnostic {
			var diags []lint.Diagnostic
			for _, loc := range encodedPassword.FindAllStringIndex(line, -1) {
				diags = append(diags, lint.NewDiagnostic(encodedPasswordMessage, lineNumber, loc[0]+1, loc[1]))
			}
			return diags
		},
	)
}
