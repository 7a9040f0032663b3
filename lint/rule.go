package lint

// Kind distinguishes rules evaluated once per file from rules evaluated once per line.
type Kind int

const (
	// KindFile rules receive the whole file and manage their own line scanning.
	KindFile Kind = iota
	// KindLine rules receive one physical line and its 1-based number.
	KindLine
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Rule defines the interface that all linting rules must implement.
// Rules are constructed once and must not retain state between Check calls.
type Rule interface {
	// Name returns a unique identifier for the rule, e.g. "hasMacroParentheses".
	Name() string

	// Description returns a human-readable description of what the rule checks.
	Description() string

	// Message returns the rule's canonical diagnostic message.
	Message() string

	// Kind reports whether the rule is evaluated per file or per line.
	Kind() Kind

	// Check evaluates the rule against the provided Context. A rule returns
	// no diagnostics for a context of the other kind.
	Check(ctx *Context) []Diagnostic
}
