package sas

import "strings"

// StatementSeparator terminates a SAS statement.
const StatementSeparator = ";"

// SplitLines splits contents into physical lines. A trailing carriage
// return is removed from each line so CRLF files report the same columns
// as LF files. Empty contents yield no lines.
func SplitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// SplitStatements splits a line into ;-delimited statements. The separator
// is not included. A line without separators yields a single statement.
func SplitStatements(line string) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, StatementSeparator)
}
