// Package sas provides text-level scanning utilities for SAS source files:
// block comment tracking, statement splitting, source position resolution
// and parsing of %macro declarations.
//
// The utilities do not build an AST. They operate on raw lines and
// statements and are shared by the lint rules.
//
// # Comment tracking
//
// Block comments (/* ... */) may span lines. Callers thread a single
// "inside a comment" flag from one line to the next:
//
//	inComment := false
//	for _, line := range sas.SplitLines(contents) {
//	    trimmed := sas.TrimComments(line, inComment)
//	    inComment = trimmed.CommentStarted
//	    ...
//	}
//
// Comment markers inside string literals are not special-cased.
package sas
