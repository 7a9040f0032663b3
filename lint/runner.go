package lint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Source is the decoded text of one file to lint.
type Source struct {
	Path     string
	Contents string
}

// Result holds the outcome of linting one Source.
type Result struct {
	Path   string
	Issues []Issue
	// Err reports rules that failed on this file. Issues from the other
	// rules are still present.
	Err error
	// Cached reports whether Issues came from the cache.
	Cached bool
}

// Runner lints many sources concurrently with one Engine. Each file is
// evaluated by a single goroutine, so a file rule always sees its lines in order.
type Runner struct {
	engine      *Engine
	cache       Cache
	jobs        int
	logger      *slog.Logger
	fingerprint string
}

// NewRunner creates a Runner for engine.
func NewRunner(engine *Engine, opts ...Option) *Runner {
	o := applyOptions(defaultOptions(), opts)
	return &Runner{
		engine:      engine,
		cache:       o.cache,
		jobs:        o.jobs,
		logger:      o.logger,
		fingerprint: engine.Fingerprint(),
	}
}

// Run lints sources and returns one Result per source in input order.
// Rule failures are reported per file in Result.Err; the returned error is
// non-nil only when ctx is cancelled before all files were scheduled.
func (r *Runner) Run(ctx context.Context, sources []Source) ([]Result, error) {
	results := make([]Result, len(sources))
	if len(sources) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(r.jobs, len(sources)))

	for i, src := range sources {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.lintOne(src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (r *Runner) lintOne(src Source) Result {
	key := r.cacheKey(src)
	if r.cache != nil {
		if issues, ok := r.cache.Get(key); ok {
			if r.logger != nil {
				r.logger.Debug("cache hit", "file", src.Path)
			}
			return Result{Path: src.Path, Issues: issues, Cached: true}
		}
	}

	issues, err := r.engine.Lint(src.Path, src.Contents)
	if r.cache != nil && err == nil {
		if putErr := r.cache.Put(key, issues); putErr != nil && r.logger != nil {
			r.logger.Warn("failed to store cache entry", "file", src.Path, "error", putErr)
		}
	}
	return Result{Path: src.Path, Issues: issues, Err: err}
}

// cacheKey hashes the engine fingerprint, the path and the contents.
func (r *Runner) cacheKey(src Source) string {
	h := sha256.New()
	h.Write([]byte(r.fingerprint))
	h.Write([]byte{0})
	h.Write([]byte(src.Path))
	h.Write([]byte{0})
	h.Write([]byte(src.Contents))
	return hex.EncodeToString(h.Sum(nil))
}

// Issues flattens the issues of results, sorted by location.
func Issues(results []Result) []Issue {
	var all []Issue
	for _, res := range results {
		all = append(all, res.Issues...)
	}
	SortIssues(all)
	return all
}
