package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cjdinger/lint-sasjs/version"
)

type versionPayload struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`
	Go      string `json:"go"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the sasjslint version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}

			payload := versionPayload{Tool: "sasjslint", Version: version.Version, Go: runtime.Version()}
			out := cmd.OutOrStdout()

			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			case "pretty", "text":
				_, err := fmt.Fprintf(out, "%s %s (%s)\n", payload.Tool, payload.Version, payload.Go)
				return err
			default:
				return fmt.Errorf("unknown format %q (want pretty|json)", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}
