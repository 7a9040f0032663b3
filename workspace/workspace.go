// Package workspace discovers SAS sources under a set of roots and decodes
// them into text ready for linting.
package workspace

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cjdinger/lint-sasjs/errors"
	"github.com/cjdinger/lint-sasjs/fs"
	"github.com/cjdinger/lint-sasjs/lint"
)

// DefaultExtensions are linted when no extensions are configured.
var DefaultExtensions = []string{".sas"}

// Workspace finds and reads source files.
type Workspace struct {
	fs         fs.ReadFS
	logger     *slog.Logger
	extensions []string
	ignore     []string
	encoding   string
}

// Option is a functional option for configuring a Workspace.
type Option func(*Workspace)

// WithLogger configures a logger. If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) {
		w.logger = logger
	}
}

// WithExtensions sets the file extensions picked up during discovery.
// Matching ignores case.
func WithExtensions(exts ...string) Option {
	return func(w *Workspace) {
		if len(exts) > 0 {
			w.extensions = exts
		}
	}
}

// WithIgnore sets glob patterns of files and directories to skip.
//
// A pattern without '/' matches a base name at any depth. A pattern with
// '/' matches the slash-separated path relative to the discovery root. A
// trailing '/' or "/**" restricts the pattern to directories.
func WithIgnore(patterns ...string) Option {
	return func(w *Workspace) {
		w.ignore = append(w.ignore, patterns...)
	}
}

// WithEncoding sets the IANA charset sources are decoded from.
func WithEncoding(name string) Option {
	return func(w *Workspace) {
		w.encoding = name
	}
}

// New creates a Workspace reading from filesystem.
func New(filesystem fs.ReadFS, opts ...Option) *Workspace {
	w := &Workspace{
		fs:         filesystem,
		extensions: DefaultExtensions,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Collect discovers sources under roots and loads them.
func (w *Workspace) Collect(ctx context.Context, roots ...string) ([]lint.Source, error) {
	paths, err := w.Discover(roots...)
	if err != nil {
		return nil, err
	}
	return w.Load(ctx, paths)
}

// Discover returns the sorted, de-duplicated paths of source files under
// roots. A root naming a file is returned as is. Directories are walked,
// skipping hidden and ignored entries.
func (w *Workspace) Discover(roots ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, root := range roots {
		info, err := w.fs.Stat(root)
		if err != nil {
			code := errors.CodeIOFailed
			if errors.Is(err, os.ErrNotExist) {
				code = errors.CodeNotFound
			}
			return nil, errors.WrapWithContext(err, code, "cannot access lint target", map[string]interface{}{
				"path": root,
			})
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = w.fs.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if p == root {
				return nil
			}

			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				rel = p
			}
			rel = filepath.ToSlash(rel)

			if info.IsDir() {
				if strings.HasPrefix(info.Name(), ".") || w.ignored(rel, true) {
					w.debug("skipping directory", "path", p)
					return filepath.SkipDir
				}
				return nil
			}

			if !w.hasExtension(p) {
				return nil
			}
			if w.ignored(rel, false) {
				w.debug("skipping ignored file", "path", p)
				return nil
			}
			add(p)
			return nil
		})
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeIOFailed, "failed to walk lint target", map[string]interface{}{
				"path": root,
			})
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Load reads and decodes paths in order. Files that are not text are
// skipped.
func (w *Workspace) Load(ctx context.Context, paths []string) ([]lint.Source, error) {
	sources := make([]lint.Source, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := w.fs.ReadFile(p)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeIOFailed, "failed to read source", map[string]interface{}{
				"path": p,
			})
		}

		if mime, ok := IsText(data); !ok {
			w.debug("skipping non-text file", "path", p, "mime", mime)
			continue
		}

		contents, err := Decode(data, w.encoding)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to decode source", map[string]interface{}{
				"path":     p,
				"encoding": w.encoding,
			})
		}
		sources = append(sources, lint.Source{Path: p, Contents: contents})
	}
	return sources, nil
}

func (w *Workspace) hasExtension(p string) bool {
	ext := filepath.Ext(p)
	for _, want := range w.extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// ignored matches rel against the ignore patterns.
func (w *Workspace) ignored(rel string, isDir bool) bool {
	for _, pattern := range w.ignore {
		dirOnly := false
		switch {
		case strings.HasSuffix(pattern, "/**"):
			pattern, dirOnly = strings.TrimSuffix(pattern, "/**"), true
		case strings.HasSuffix(pattern, "/"):
			pattern, dirOnly = strings.TrimSuffix(pattern, "/"), true
		}
		if dirOnly && !isDir {
			continue
		}

		target := rel
		if !strings.Contains(pattern, "/") {
			target = path.Base(rel)
		}
		if ok, _ := path.Match(pattern, target); ok {
			return true
		}
	}
	return false
}

func (w *Workspace) debug(msg string, args ...any) {
	if w.logger != nil {
		w.logger.Debug(msg, args...)
	}
}
