package sas

import "strings"

// Macro is a %macro ... %mend block found in a file.
type Macro struct {
	// Name is the declared macro name.
	Name string
	// Declaration is the header text following %macro.
	Declaration string
	// StartLine is the line of the %macro statement.
	StartLine int
	// Source is the original text of StartLine.
	Source string
	// Parent is the name of the enclosing macro, if nested.
	Parent string
	// HasMend reports whether a closing %mend was found.
	HasMend bool
	// MendName is the name given on the %mend statement, if any.
	MendName string
	// MendLine is the line of the %mend statement.
	MendLine int
	// MendSource is the original text of MendLine.
	MendSource string
}

// OrphanMend is a %mend statement without an open macro.
type OrphanMend struct {
	Line   int
	Source string
	Name   string
}

// MacroScan is the result of ScanMacros.
type MacroScan struct {
	Macros      []Macro
	OrphanMends []OrphanMend
}

// ScanMacros pairs every %macro statement in contents with its %mend,
// tracking nesting. Macros are returned in order of their %macro statement.
func ScanMacros(contents string) MacroScan {
	var (
		scan  MacroScan
		stack []int
	)

	for _, stmt := range Statements(contents) {
		switch {
		case IsMacroStatement(stmt.Text):
			decl := Declaration{Text: strings.TrimSpace(stmt.Text[len(MacroKeyword):])}
			m := Macro{
				Name:        decl.Name(),
				Declaration: decl.Text,
				StartLine:   stmt.Line,
				Source:      stmt.Source,
			}
			if len(stack) > 0 {
				m.Parent = scan.Macros[stack[len(stack)-1]].Name
			}
			scan.Macros = append(scan.Macros, m)
			stack = append(stack, len(scan.Macros)-1)

		case IsMendStatement(stmt.Text):
			name := strings.TrimSpace(stmt.Text[len(MendKeyword):])
			if len(stack) == 0 {
				scan.OrphanMends = append(scan.OrphanMends, OrphanMend{
					Line:   stmt.Line,
					Source: stmt.Source,
					Name:   name,
				})
				continue
			}
			top := &scan.Macros[stack[len(stack)-1]]
			stack = stack[:len(stack)-1]
			top.HasMend = true
			top.MendName = name
			top.MendLine = stmt.Line
			top.MendSource = stmt.Source
		}
	}

	return scan
}
