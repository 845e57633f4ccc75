package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wgslkit/internal/diag"
	"wgslkit/internal/diagfmt"
	"wgslkit/internal/source"
)

// outputFormat resolves a command's --format flag against the manifest
// default.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		return projectCfg.Output.Format, nil
	}
	return format, nil
}

// printDiagnostics writes the bag to stderr in the human-readable form.
// Command payloads go to stdout so the two streams stay separable.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     color,
		ShowNotes: projectCfg.Output.ShowNotes,
	})
	return nil
}
