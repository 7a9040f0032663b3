package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args from dir and returns stdout and the error.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, contents := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return 2
}

func TestLintCommand(t *testing.T) {
	t.Run("clean project", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			".sasjslint": `{"hasMacroParentheses": true, "strictMacroDefinition": true}`,
			"src/a.sas":  "%macro a(x);\n%mend a;\n",
		})

		out, err := execute(t, dir, "lint", "--no-cache", "--color", "off")
		require.NoError(t, err)
		assert.Contains(t, out, "0 errors, 0 warnings")
	})

	t.Run("warnings do not fail by default", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			".sasjslint": `{"hasMacroParentheses": true}`,
			"a.sas":      "%macro foo;\n%mend foo;\n",
		})

		out, err := execute(t, dir, "lint", "--no-cache", "--format", "text", "--color", "off")
		require.NoError(t, err)
		assert.Contains(t, out, "a.sas:1:8 warning [hasMacroParentheses] Macro definition missing parentheses")
	})

	t.Run("warning limit", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			".sasjslint": `{"hasMacroParentheses": true}`,
			"a.sas":      "%macro foo;\n%mend foo;\n",
		})

		_, err := execute(t, dir, "lint", "--no-cache", "--max-warnings", "0", "--color", "off")
		assert.Equal(t, 1, exitCode(err))
	})

	t.Run("error severity fails", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"sasjslint.yaml": "strictMacroDefinition: true\nseverityLevel:\n  strictMacroDefinition: error\n",
			"m.sas":          "%macro foo(x) / BADOPT;\n",
		})

		out, err := execute(t, dir, "lint", "--no-cache", "--format", "json", "m.sas")
		assert.Equal(t, 1, exitCode(err))

		var report struct {
			Issues []struct {
				Rule     string `json:"rule"`
				Message  string `json:"message"`
				Severity string `json:"severity"`
			} `json:"issues"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		require.Len(t, report.Issues, 1)
		assert.Equal(t, "Option 'BADOPT' is not valid", report.Issues[0].Message)
		assert.Equal(t, "error", report.Issues[0].Severity)
	})

	t.Run("explicit config flag", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			"conf/lint.toml": "noTrailingSpaces = true\n",
			"a.sas":          "data a; \n",
		})

		out, err := execute(t, dir, "lint", "--no-cache", "--format", "text", "--color", "off",
			"--config", filepath.Join("conf", "lint.toml"))
		require.NoError(t, err)
		assert.Contains(t, out, "[noTrailingSpaces] Line contains trailing spaces")
	})

	t.Run("invalid config", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{
			".sasjslint": `{"severityLevel": {"noSuchRule": "error"}}`,
			"a.sas":      "",
		})

		_, err := execute(t, dir, "lint", "--no-cache")
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(err))
		assert.Contains(t, err.Error(), "noSuchRule")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, t.TempDir(), "lint", "--no-cache", "--format", "xml")
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(err))
	})
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "rules", "--color", "off")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, out, "hasMacroParentheses")
	assert.Contains(t, out, "strictMacroDefinition")
	assert.Contains(t, out, "file")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, ".sasjslint")

	data, err := os.ReadFile(filepath.Join(dir, ".sasjslint"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hasMacroParentheses": true`)
	assert.Contains(t, string(data), `"maxLineLength": 80`)

	_, err = execute(t, dir, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, dir, "init", "--force")
	assert.NoError(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version", "--format", "json")
	require.NoError(t, err)

	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "sasjslint", payload.Tool)
	assert.NotEmpty(t, payload.Version)
}
