package lint

import (
	"log/slog"
	"runtime"
)

// Cache stores the issues of previously linted sources.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached issues for key.
	Get(key string) ([]Issue, bool)
	// Put stores issues under key.
	Put(key string, issues []Issue) error
}

// options holds configuration shared by Engine and Runner.
type options struct {
	logger     *slog.Logger
	severities map[string]Severity
	cache      Cache
	jobs       int
}

// Option is a functional option for configuring an Engine or a Runner.
type Option func(*options)

// WithLogger configures a logger. If logger is nil, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithSeverities overrides the severity reported for the named rules.
func WithSeverities(severities map[string]Severity) Option {
	return func(opts *options) {
		for name, s := range severities {
			opts.severities[name] = s
		}
	}
}

// WithCache configures a Runner to reuse issues for unchanged sources.
// If cache is nil, caching is disabled.
func WithCache(cache Cache) Option {
	return func(opts *options) {
		opts.cache = cache
	}
}

// WithJobs bounds the number of files a Runner lints concurrently.
// Values below 1 select GOMAXPROCS.
func WithJobs(jobs int) Option {
	return func(opts *options) {
		opts.jobs = jobs
	}
}

func defaultOptions() *options {
	return &options{
		severities: make(map[string]Severity),
	}
}

func applyOptions(opts *options, list []Option) *options {
	for _, option := range list {
		option(opts)
	}
	if opts.jobs < 1 {
		opts.jobs = runtime.GOMAXPROCS(0)
	}
	return opts
}
