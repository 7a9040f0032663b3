// Package cache persists lint results on disk so unchanged files are not
// re-linted. Entries are msgpack payloads keyed by the runner's content hash.
package cache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
	"github.com/adrg/xdg"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/cjdinger/lint-sasjs/errors"
	"github.com/cjdinger/lint-sasjs/fs"
	"github.com/cjdinger/lint-sasjs/fs/billy"
	"github.com/cjdinger/lint-sasjs/lint"
)

// AppName is the directory created under the user cache root.
const AppName = "sasjslint"

// Current schema version - increment when payload format changes
const schemaVersion uint16 = 1

var _ lint.Cache = (*DiskCache)(nil)

// DiskCache stores lint results as one file per key.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu      sync.RWMutex
	fs      fs.Filesystem
	dir     string
	version string
	logger  *slog.Logger
}

// payload is the on-disk form of a cache entry.
type payload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	// Version of the linter that wrote the entry
	Version string
	Issues  []entry
}

type entry struct {
	Rule     string
	File     string
	Message  string
	Line     uint32
	Start    uint32
	End      uint32
	Severity uint8
}

// Option is a functional option for configuring a DiskCache.
type Option func(*DiskCache)

// WithLogger configures a logger. If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *DiskCache) {
		c.logger = logger
	}
}

// Dir returns the default cache directory, $XDG_CACHE_HOME/sasjslint.
func Dir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Open returns a cache in the default directory on the OS filesystem.
// Entries written by a different linter version are ignored.
func Open(version string, opts ...Option) (*DiskCache, error) {
	return New(billy.NewBaseOSFS(), Dir(), version, opts...)
}

// New returns a cache rooted at dir on filesystem, creating dir if needed.
func New(filesystem fs.Filesystem, dir, version string, opts ...Option) (*DiskCache, error) {
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeCacheFailed, "failed to create cache directory", map[string]interface{}{
			"dir": dir,
		})
	}

	c := &DiskCache{
		fs:      filesystem,
		dir:     dir,
		version: version,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *DiskCache) pathFor(key string) string {
	if len(key) > 2 {
		// fan out by prefix to keep directories small
		return filepath.Join(c.dir, key[:2], key+".mp")
	}
	return filepath.Join(c.dir, key+".mp")
}

// Get returns the issues stored under key. Unreadable, corrupt and stale
// entries are reported as misses.
func (c *DiskCache) Get(key string) ([]lint.Issue, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := c.fs.ReadFile(c.pathFor(key))
	if err != nil {
		return nil, false
	}

	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		c.debug("discarding corrupt cache entry", "key", key, "error", err)
		return nil, false
	}
	if p.Schema != schemaVersion || p.Version != c.version {
		c.debug("discarding stale cache entry", "key", key, "schema", p.Schema, "version", p.Version)
		return nil, false
	}

	issues := make([]lint.Issue, len(p.Issues))
	for i, e := range p.Issues {
		issues[i] = e.issue()
	}
	return issues, true
}

// Put serializes issues and atomically replaces the entry for key.
func (c *DiskCache) Put(key string, issues []lint.Issue) error {
	if c == nil {
		return nil
	}

	p := payload{
		Schema:  schemaVersion,
		Version: c.version,
		Issues:  make([]entry, len(issues)),
	}
	for i, issue := range issues {
		e, err := toEntry(issue)
		if err != nil {
			return errors.WrapWithContext(err, errors.CodeCacheFailed, "cannot cache issue", map[string]interface{}{
				"rule": issue.Rule,
				"file": issue.File,
			})
		}
		p.Issues[i] = e
	}

	data, err := msgpack.Marshal(&p)
	if err != nil {
		return errors.Wrap(err, errors.CodeCacheFailed, "failed to encode cache entry")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.pathFor(key)
	if err := c.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(err, errors.CodeCacheFailed, "failed to create cache directory")
	}

	tmp := fmt.Sprintf("%s.%d.tmp", target, os.Getpid())
	if err := c.fs.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, errors.CodeCacheFailed, "failed to write cache entry")
	}
	if err := c.fs.Rename(tmp, target); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Wrap(err, errors.CodeCacheFailed, "failed to commit cache entry")
	}
	return nil
}

// Clear removes every entry.
func (c *DiskCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.fs.RemoveAll(c.dir); err != nil {
		return errors.Wrap(err, errors.CodeCacheFailed, "failed to clear cache")
	}
	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return errors.Wrap(err, errors.CodeCacheFailed, "failed to recreate cache directory")
	}
	return nil
}

func (c *DiskCache) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func toEntry(issue lint.Issue) (entry, error) {
	line, err := safecast.Conv[uint32](issue.LineNumber)
	if err != nil {
		return entry{}, err
	}
	start, err := safecast.Conv[uint32](issue.StartColumnNumber)
	if err != nil {
		return entry{}, err
	}
	end, err := safecast.Conv[uint32](issue.EndColumnNumber)
	if err != nil {
		return entry{}, err
	}
	severity, err := safecast.Conv[uint8](int(issue.Severity))
	if err != nil {
		return entry{}, err
	}

	return entry{
		Rule:     issue.Rule,
		File:     issue.File,
		Message:  issue.Message,
		Line:     line,
		Start:    start,
		End:      end,
		Severity: severity,
	}, nil
}

func (e entry) issue() lint.Issue {
	return lint.Issue{
		Rule: e.Rule,
		File: e.File,
		Diagnostic: lint.Diagnostic{
			Message:           e.Message,
			LineNumber:        int(e.Line),
			StartColumnNumber: int(e.Start),
			EndColumnNumber:   int(e.End),
			Severity:          lint.Severity(e.Severity),
		},
	}
}
