package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wgslkit/internal/diag"
	"wgslkit/internal/diagfmt"
	"wgslkit/internal/driver"
	"wgslkit/internal/source"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.wgsl|directory>",
	Short: "Report syntax diagnostics for WGSL sources",
	Long:  `Diag parses a WGSL source file, or every *.wgsl file under a directory, and reports the diagnostics without dumping the tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "", "output format (pretty|json)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	pathMode := diagfmt.PathModeBasename
	if fullPath {
		pathMode = diagfmt.PathModeFull
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	type fileDiag struct {
		fs  *source.FileSet
		bag *diag.Bag
	}
	var all []fileDiag

	if !st.IsDir() {
		result, err := driver.Parse(filePath, maxDiag)
		if err != nil {
			return fmt.Errorf("diagnosis failed: %w", err)
		}
		all = append(all, fileDiag{result.FileSet, result.Bag})
	} else {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
		results, err := driver.ParseDir(cmd.Context(), filePath, maxDiag, jobs)
		if err != nil {
			return fmt.Errorf("diagnosis failed: %w", err)
		}
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
				continue
			}
			all = append(all, fileDiag{r.FileSet, r.Bag})
		}
	}

	hasErrors := false
	for _, fd := range all {
		if fd.bag.HasErrors() {
			hasErrors = true
		}
		switch format {
		case "pretty":
			color, err := useColor(cmd, os.Stdout)
			if err != nil {
				return err
			}
			diagfmt.Pretty(os.Stdout, fd.bag, fd.fs, diagfmt.PrettyOpts{
				Color:     color,
				PathMode:  pathMode,
				ShowNotes: projectCfg.Output.ShowNotes,
			})
		case "json":
			opts := diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         pathMode,
				Max:              maxDiag,
				IncludeNotes:     projectCfg.Output.ShowNotes,
			}
			if err := diagfmt.JSON(os.Stdout, fd.bag, fd.fs, opts); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if hasErrors {
		return fmt.Errorf("diagnostics reported errors")
	}
	return nil
}
