package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cjdinger/lint-sasjs/cache"
	"github.com/cjdinger/lint-sasjs/fs/billy"
	"github.com/cjdinger/lint-sasjs/lint"
	"github.com/cjdinger/lint-sasjs/lint/rules"
	"github.com/cjdinger/lint-sasjs/version"
	"github.com/cjdinger/lint-sasjs/workspace"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint SAS files or directories",
		Long: `Lint the given files and directories (default: the working directory).
Exits with status 1 when an error is reported or the warning limit is exceeded.`,
		RunE: runLint,
	}

	cmd.Flags().String("format", "pretty", "output format (text|pretty|json|sarif)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	cmd.Flags().Int("max-warnings", -1, "fail when more warnings are reported (-1=unlimited)")

	return cmd
}

// runLint executes the "lint" command: it loads the configuration,
// discovers sources, lints them concurrently and reports the issues.
func runLint(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := newLogger(cmd)

	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := lint.ParseFormat(formatName)
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	maxWarnings, err := cmd.Flags().GetInt("max-warnings")
	if err != nil {
		return fmt.Errorf("failed to get max-warnings flag: %w", err)
	}

	out := cmd.OutOrStdout()
	useColor, err := colorEnabled(cmd, out)
	if err != nil {
		return err
	}

	filesystem := billy.NewBaseOSFS()
	cfg, err := loadConfig(cmd, filesystem, logger)
	if err != nil {
		return err
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}
	ws := workspace.New(filesystem,
		workspace.WithLogger(logger),
		workspace.WithExtensions(cfg.Extensions...),
		workspace.WithIgnore(cfg.IgnoreList...),
		workspace.WithEncoding(cfg.Encoding),
	)
	sources, err := ws.Collect(ctx, roots...)
	if err != nil {
		return err
	}
	logger.Debug("discovered sources", "count", len(sources))

	engine, err := rules.NewEngine(cfg, lint.WithLogger(logger))
	if err != nil {
		return err
	}

	runnerOpts := []lint.Option{lint.WithLogger(logger), lint.WithJobs(jobs)}
	if !noCache {
		diskCache, err := cache.Open(version.Version, cache.WithLogger(logger))
		if err != nil {
			logger.Warn("result cache disabled", "error", err)
		} else {
			runnerOpts = append(runnerOpts, lint.WithCache(diskCache))
		}
	}

	results, err := lint.NewRunner(engine, runnerOpts...).Run(ctx, sources)
	if err != nil {
		return err
	}

	failed := false
	for _, res := range results {
		if res.Err != nil {
			logger.Error("rule failure", "file", res.Path, "error", res.Err)
			failed = true
		}
	}

	contents := make(map[string]string, len(sources))
	for _, src := range sources {
		contents[src.Path] = src.Contents
	}

	issues := lint.Issues(results)
	reporter := lint.NewReporter(out, format, lint.WithColor(useColor), lint.WithSources(contents))
	if err := reporter.Report(issues); err != nil {
		return err
	}
	if err := reporter.ReportSummary(issues); err != nil {
		return err
	}

	summary := lint.Summarize(issues)
	if summary.Errors > 0 || failed || (maxWarnings >= 0 && summary.Warnings > maxWarnings) {
		return &exitError{code: 1}
	}
	return nil
}
