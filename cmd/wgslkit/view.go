package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wgslkit/internal/driver"
	"wgslkit/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file.wgsl",
	Short: "Open a WGSL source file in the interactive viewer",
	Long:  `View parses a WGSL source file and opens a terminal viewer with highlighted source, tree, diagnostics, and fold panes`,
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().Bool("force", false, "open the viewer even when stdout is not a terminal")
}

func runView(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}
	if !force && !isTerminal(os.Stdout) {
		return fmt.Errorf("view needs a terminal; use 'parse' or 'highlight' for piped output")
	}

	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	result, err := driver.Parse(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	return ui.RunViewer(result.FileSet, result.File, result.Tree, result.Bag, projectCfg.Theme)
}
