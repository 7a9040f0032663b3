package lint

// Context is the input to a single rule evaluation: either the whole text of
// a file or one line of it.
type Context struct {
	// Path is the path of the file being linted. It may be empty.
	Path string

	// Contents is the whole file text (file-level contexts only).
	Contents string

	// Line is the text of the current line (line-level contexts only).
	Line string

	// LineNumber is the 1-based number of Line, or 0 for file-level contexts.
	LineNumber int
}

// NewFileContext creates a file-level Context.
func NewFileContext(path, contents string) *Context {
	return &Context{
		Path:     path,
		Contents: contents,
	}
}

// NewLineContext creates a line-level Context.
func NewLineContext(path, line string, lineNumber int) *Context {
	return &Context{
		Path:       path,
		Line:       line,
		LineNumber: lineNumber,
	}
}

// IsFileLevel returns true if this context carries a whole file.
func (ctx *Context) IsFileLevel() bool {
	return ctx.LineNumber == 0
}

// IsLineLevel returns true if this context carries a single line.
func (ctx *Context) IsLineLevel() bool {
	return ctx.LineNumber > 0
}
