package sas

import (
	"strings"
	"unicode"
)

const (
	// MacroKeyword opens a macro definition.
	MacroKeyword = "%macro"
	// MendKeyword closes a macro definition.
	MendKeyword = "%mend"
)

// Declaration is a macro header found on a line.
type Declaration struct {
	// Text is the statement text following %macro, with comments removed.
	Text string
	// Offset is the byte offset of the %macro keyword in the original line,
	// or -1 when it could not be located there.
	Offset int
}

// Param is one entry of a macro parameter list.
type Param struct {
	// Raw is the entry as written between the separating commas.
	Raw string
	// Name is the part before '=', trimmed.
	Name string
	// Default is the part after '=', trimmed. It is empty when absent.
	Default string
}

// ParseMacros extracts every macro declaration on line. Each declaration
// runs from just after %macro to the end of its statement. The keyword is
// matched case-sensitively. Lines without %macro yield no declarations.
func ParseMacros(line string) []Declaration {
	stripped := StripComments(line, false).Statement

	var decls []Declaration
	searchFrom := 0
	for _, stmt := range SplitStatements(stripped) {
		idx := keywordIndex(stmt, MacroKeyword)
		if idx < 0 {
			continue
		}

		offset := -1
		if col := ColumnNumberFrom(line, MacroKeyword, searchFrom); col != NotFound {
			offset = col - 1
			searchFrom = offset + len(MacroKeyword)
		}

		decls = append(decls, Declaration{
			Text:   strings.TrimSpace(stmt[idx+len(MacroKeyword):]),
			Offset: offset,
		})
	}
	return decls
}

// IsMacroStatement reports whether a trimmed statement opens a macro definition.
func IsMacroStatement(text string) bool {
	return keywordIndex(text, MacroKeyword) == 0
}

// IsMendStatement reports whether a trimmed statement closes a macro definition.
func IsMendStatement(text string) bool {
	return keywordIndex(text, MendKeyword) == 0
}

// keywordIndex returns the index of the first occurrence of keyword in s
// that is not immediately followed by an identifier character.
func keywordIndex(s, keyword string) int {
	from := 0
	for {
		idx := strings.Index(s[from:], keyword)
		if idx < 0 {
			return -1
		}
		idx += from
		end := idx + len(keyword)
		if end == len(s) || !isIdentByte(s[end]) {
			return idx
		}
		from = end
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// Name returns the macro name: the text before the parameter list, the
// option separator or the first whitespace.
func (d Declaration) Name() string {
	end := strings.IndexFunc(d.Text, func(r rune) bool {
		return r == '(' || r == '/' || unicode.IsSpace(r)
	})
	if end < 0 {
		return d.Text
	}
	return d.Text[:end]
}

// ParamList returns the content of the first parenthesised span, which runs
// from the first '(' to the first ')' after it. Nested parentheses are not
// balanced. ok is false when there is no complete span.
func (d Declaration) ParamList() (inner string, ok bool) {
	open, closing, ok := d.paramBounds()
	if !ok {
		return "", false
	}
	return d.Text[open+1 : closing], true
}

func (d Declaration) paramBounds() (open, closing int, ok bool) {
	open = strings.IndexByte(d.Text, '(')
	if open < 0 {
		return 0, 0, false
	}
	rel := strings.IndexByte(d.Text[open+1:], ')')
	if rel < 0 {
		return 0, 0, false
	}
	return open, open + 1 + rel, true
}

// Params splits the parameter list on commas.
func (d Declaration) Params() []Param {
	inner, ok := d.ParamList()
	if !ok {
		return nil
	}

	raw := strings.Split(strings.TrimSpace(inner), ",")
	params := make([]Param, 0, len(raw))
	for _, r := range raw {
		name, def, _ := strings.Cut(r, "=")
		params = append(params, Param{
			Raw:     r,
			Name:    strings.TrimSpace(name),
			Default: strings.TrimSpace(def),
		})
	}
	return params
}

// Remainder returns the declaration text following the parameter list,
// or the whole text when there is none.
func (d Declaration) Remainder() string {
	_, closing, ok := d.paramBounds()
	if !ok {
		return d.Text
	}
	return d.Text[closing+1:]
}

// Options returns the option tokens: the second /-separated segment of the
// remainder split on whitespace. Quotes are not special, so DES="a b" yields
// two tokens.
func (d Declaration) Options() []string {
	segments := strings.Split(d.Remainder(), "/")
	if len(segments) < 2 {
		return nil
	}
	options := strings.Fields(segments[1])
	if len(options) == 0 {
		return nil
	}
	return options
}
