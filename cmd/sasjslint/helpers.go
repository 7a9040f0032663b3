package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cjdinger/lint-sasjs/config"
	"github.com/cjdinger/lint-sasjs/fs"
	"github.com/cjdinger/lint-sasjs/version"
)

// newLogger writes structured logs to the command's stderr. Only warnings
// and errors are shown unless --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// colorEnabled resolves --color for output written to w.
func colorEnabled(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}

	switch strings.ToLower(mode) {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
	}
}

// loadConfig reads --config, or the nearest configuration file above the
// working directory, falling back to the defaults when there is none.
func loadConfig(cmd *cobra.Command, filesystem fs.ReadFS, logger *slog.Logger) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		found := false
		path, found, err = config.Find(filesystem, wd)
		if err != nil {
			return nil, err
		}
		if !found {
			logger.Debug("no configuration file found, using defaults", "dir", wd)
			return config.Default(), nil
		}
	}

	logger.Debug("loading configuration", "path", path)
	return config.LoadWithOptions(cmd.Context(), filesystem, path, config.LoadOptions{
		Version: version.Version,
	})
}
