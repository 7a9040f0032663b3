package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjdinger/lint-sasjs/lint"
)

func checkFile(rule lint.Rule, contents string) []lint.Diagnostic {
	return rule.Check(lint.NewFileContext("test.sas", contents))
}

func TestHasMacroParentheses(t *testing.T) {
	rule := HasMacroParentheses()

	t.Run("identity", func(t *testing.T) {
		assert.Equal(t, "hasMacroParentheses", rule.Name())
		assert.Equal(t, "Macro definition missing parentheses", rule.Message())
		assert.Equal(t, lint.KindFile, rule.Kind())
	})

	tests := []struct {
		name     string
		contents string
		want     []lint.Diagnostic
	}{
		{
			name:     "parentheses present",
			contents: "%macro foo(a, b);\n%mend foo;",
		},
		{
			name:     "empty parameter list",
			contents: "%macro foo();",
		},
		{
			name:     "missing parentheses",
			contents: "%macro foo;",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition missing parentheses", 1, 8, 10),
			},
		},
		{
			name:     "space before terminator",
			contents: "%macro foo ;",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition contains space(s)", 1, 8, 10),
			},
		},
		{
			name:     "space inside name without parentheses",
			contents: "%macro foo bar;",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition missing parentheses", 1, 8, 14),
			},
		},
		{
			name:     "option separator before terminator",
			contents: "%macro foo/ ;",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition missing parentheses", 1, 8, 11),
			},
		},
		{
			name:     "space before parameter list",
			contents: "  %macro foo (a);",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition contains space(s)", 1, 10, 16),
			},
		},
		{
			name:     "missing name",
			contents: "%macro ;",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition contains space(s)", 1, 1, 6),
			},
		},
		{
			name:     "options without parentheses",
			contents: "%macro foo / minoperator;",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition missing parentheses", 1, 8, 24),
			},
		},
		{
			name:     "second macro on the same line",
			contents: "%macro a(); %mend a; %macro b;",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition missing parentheses", 1, 29, 29),
			},
		},
		{
			name:     "commented out definition",
			contents: "/* %macro foo; */\n%macro bar(x);",
		},
		{
			name:     "definition after a multi-line comment",
			contents: "/* header\n  still comment */ %macro foo;",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition missing parentheses", 2, 27, 29),
			},
		},
		{
			name:     "comment opened after definition",
			contents: "%macro foo; /* open\n%macro bar; */",
			want: []lint.Diagnostic{
				lint.NewDiagnostic("Macro definition missing parentheses", 1, 8, 10),
			},
		},
		{
			name:     "uppercase keyword ignored",
			contents: "%MACRO foo;",
		},
		{
			name:     "similar keyword ignored",
			contents: "%macros foo;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkFile(rule, tt.contents)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("reports warnings", func(t *testing.T) {
		got := checkFile(rule, "%macro foo;")
		require.Len(t, got, 1)
		assert.Equal(t, lint.SeverityWarning, got[0].Severity)
	})

	t.Run("ignores line contexts", func(t *testing.T) {
		assert.Empty(t, rule.Check(lint.NewLineContext("test.sas", "%macro foo;", 1)))
	})
}
