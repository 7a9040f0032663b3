package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cjdinger/lint-sasjs/config"
	"github.com/cjdinger/lint-sasjs/fs/billy"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default .sasjslint configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().Bool("force", false, "overwrite an existing configuration")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	target := filepath.Join(dir, config.FileName)

	filesystem := billy.NewBaseOSFS()
	exists, err := filesystem.Exists(target)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}

	data, err := json.MarshalIndent(config.Default(), "", "  ")
	if err != nil {
		return err
	}
	if err := filesystem.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := filesystem.WriteFile(target, append(data, '\n'), 0o644); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
	return err
}
