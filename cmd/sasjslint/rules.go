package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/cjdinger/lint-sasjs/lint"
	"github.com/cjdinger/lint-sasjs/lint/rules"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules",
		Args:  cobra.NoArgs,
		RunE:  runRules,
	}
}

func runRules(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	useColor, err := colorEnabled(cmd, out)
	if err != nil {
		return err
	}

	name := color.New(color.Bold)
	if useColor {
		name.EnableColor()
	} else {
		name.DisableColor()
	}

	all := rules.All()
	width := 0
	for _, r := range all {
		width = max(width, runewidth.StringWidth(r.Name()))
	}

	for _, r := range all {
		kind := "line"
		if r.Kind() == lint.KindFile {
			kind = "file"
		}
		if _, err := fmt.Fprintf(out, "%s  %-4s  %s\n",
			name.Sprint(runewidth.FillRight(r.Name(), width)), kind, r.Description()); err != nil {
			return err
		}
	}
	return nil
}
