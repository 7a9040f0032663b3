package sas

import "strings"

// Statement is one ;-delimited statement of a file with block comments removed.
type Statement struct {
	// Line is the 1-based physical line the statement was found on.
	Line int
	// Source is the original text of that physical line.
	Source string
	// Raw is the statement text with comments removed but whitespace kept.
	Raw string
	// Text is Raw with surrounding whitespace trimmed.
	Text string
	// Terminated reports whether the statement was followed by a separator on its line.
	Terminated bool
}

// Statements folds over the lines of contents, threading the block comment
// state from each line into the next, and returns every non-empty statement
// in source order. Lines are processed strictly sequentially.
func Statements(contents string) []Statement {
	lines := SplitLines(contents)

	var out []Statement
	inComment := false
	for i, line := range lines {
		stripped := StripComments(line, inComment)
		inComment = stripped.CommentStarted

		parts := SplitStatements(stripped.Statement)
		for j, part := range parts {
			text := strings.TrimSpace(part)
			if text == "" {
				continue
			}
			out = append(out, Statement{
				Line:       LineNumber(lines, i+1),
				Source:     line,
				Raw:        part,
				Text:       text,
				Terminated: j < len(parts)-1,
			})
		}
	}
	return out
}
