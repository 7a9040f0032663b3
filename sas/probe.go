package sas

import (
	"regexp"
	"strings"
)

// commentPattern matches one inline block comment.
const commentPattern = `/\*.*?\*/`

// LocateParam finds where a parameter name appears in the original line,
// searching from byte offset from. A name that does not occur verbatim is
// assumed to have had an inline comment removed from inside it: every split
// point of the name is probed with a comment pattern injected there, and the
// first match is returned. ok is false when nothing matches.
func LocateParam(line, name string, from int) (Span, bool) {
	if name == "" || from < 0 || from > len(line) {
		return Span{}, false
	}
	haystack := line[from:]

	if idx := strings.Index(haystack, name); idx >= 0 {
		return Span{Start: from + idx + 1, End: from + idx + len(name)}, true
	}

	for i := range name {
		if i == 0 {
			continue
		}
		re, err := regexp.Compile(regexp.QuoteMeta(name[:i]) + commentPattern + regexp.QuoteMeta(name[i:]))
		if err != nil {
			continue
		}
		if loc := re.FindStringIndex(haystack); loc != nil {
			return Span{Start: from + loc[0] + 1, End: from + loc[1]}, true
		}
	}
	return Span{}, false
}
