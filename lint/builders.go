package lint

// FileCheckFunc checks the whole text of a file.
type FileCheckFunc func(contents string) []Diagnostic

// LineCheckFunc checks one line given its 1-based number.
type LineCheckFunc func(line string, lineNumber int) []Diagnostic

// FileRule creates a file-scoped rule from a check function.
//
//nolint:ireturn // Builder functions should return interfaces
func FileRule(name, description, message string, check FileCheckFunc) Rule {
	return &fileRule{
		base:  base{name: name, description: description, message: message},
		check: check,
	}
}

// LineRule creates a line-scoped rule from a check function.
//
//nolint:ireturn // Builder functions should return interfaces
func LineRule(name, description, message string, check LineCheckFunc) Rule {
	return &lineRule{
		base:  base{name: name, description: description, message: message},
		check: check,
	}
}

// base carries the identity shared by both rule shapes.
type base struct {
	name        string
	description string
	message     string
}

// Name returns the unique identifier for this rule.
func (b base) Name() string {
	return b.name
}

// Description returns a human-readable description of what this rule checks.
func (b base) Description() string {
	return b.description
}

// Message returns the canonical diagnostic message.
func (b base) Message() string {
	return b.message
}

type fileRule struct {
	base
	check FileCheckFunc
}

func (r *fileRule) Kind() Kind { return KindFile }

// Check runs the check function on file-level contexts.
func (r *fileRule) Check(ctx *Context) []Diagnostic {
	if ctx == nil || !ctx.IsFileLevel() {
		return nil
	}
	return r.check(ctx.Contents)
}

type lineRule struct {
	base
	check LineCheckFunc
}

func (r *lineRule) Kind() Kind { return KindLine }

// Check runs the check function on line-level contexts.
func (r *lineRule) Check(ctx *Context) []Diagnostic {
	if ctx == nil || !ctx.IsLineLevel() {
		return nil
	}
	return r.check(ctx.Line, ctx.LineNumber)
}
