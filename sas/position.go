package sas

import "strings"

// NotFound is returned by ColumnNumber when the needle is absent.
const NotFound = 0

// LineNumber resolves the 1-based physical line number for the line at
// 1-based index among lines. Statements split from the same physical line
// share its number. Indices outside the file are clamped to its bounds.
func LineNumber(lines []string, index int) int {
	if index < 1 {
		return 1
	}
	if len(lines) > 0 && index > len(lines) {
		return len(lines)
	}
	return index
}

// ColumnNumber returns the 1-based column of the first occurrence of needle
// in line, or NotFound.
func ColumnNumber(line, needle string) int {
	return ColumnNumberFrom(line, needle, 0)
}

// ColumnNumberFrom is like ColumnNumber but starts searching at the 0-based
// byte offset from. The returned column is relative to the start of line.
func ColumnNumberFrom(line, needle string, from int) int {
	if from < 0 || from > len(line) {
		return NotFound
	}
	idx := strings.Index(line[from:], needle)
	if idx < 0 {
		return NotFound
	}
	return from + idx + 1
}

// Span is a 1-based inclusive column range on a single line.
type Span struct {
	Start int
	End   int
}

// SpanOf locates needle in line starting at byte offset from. If needle
// cannot be found the whole line is returned.
func SpanOf(line, needle string, from int) Span {
	col := ColumnNumberFrom(line, needle, from)
	if col == NotFound || needle == "" {
		return WholeLine(line)
	}
	return Span{Start: col, End: col + len(needle) - 1}
}

// WholeLine returns a span covering line. An empty line yields 1..1.
func WholeLine(line string) Span {
	return Span{Start: 1, End: max(len(line), 1)}
}
