package sas

import "strings"

const (
	commentOpen  = "/*"
	commentClose = "*/"
)

// Trimmed is the result of removing block comments from a piece of text.
type Trimmed struct {
	// Statement is the text left after removing comments.
	Statement string
	// CommentStarted reports whether the text ends inside an unterminated comment.
	CommentStarted bool
}

// StripComments removes every block comment region from text. When
// startedInComment is true the text is treated as the continuation of a
// comment opened earlier. Whitespace around removed regions is preserved.
func StripComments(text string, startedInComment bool) Trimmed {
	var b strings.Builder
	rest := text
	inComment := startedInComment

	for {
		if inComment {
			end := strings.Index(rest, commentClose)
			if end < 0 {
				break
			}
			rest = rest[end+len(commentClose):]
			inComment = false
			continue
		}

		start := strings.Index(rest, commentOpen)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		rest = rest[start+len(commentOpen):]
		inComment = true
	}

	return Trimmed{Statement: b.String(), CommentStarted: inComment}
}

// TrimComments removes block comments from text like StripComments and
// trims surrounding whitespace from the remaining statement.
func TrimComments(text string, startedInComment bool) Trimmed {
	t := StripComments(text, startedInComment)
	t.Statement = strings.TrimSpace(t.Statement)
	return t
}
