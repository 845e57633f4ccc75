package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wgslkit/internal/diagfmt"
	"wgslkit/internal/driver"
	"wgslkit/internal/observ"
	"wgslkit/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.wgsl|directory>",
	Short: "Parse a WGSL source file or directory and output the syntax tree",
	Long:  `Parse analyzes a WGSL source file, or every *.wgsl file under a directory, and outputs the full-fidelity syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().Bool("cached", false, "reuse parse results from the disk cache when file content is unchanged")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	cached, err := cmd.Flags().GetBool("cached")
	if err != nil {
		return fmt.Errorf("failed to get cached flag: %w", err)
	}

	timings, err := showTimings(cmd)
	if err != nil {
		return err
	}
	timer := observ.NewTimer()
	defer func() {
		if timings {
			fmt.Fprint(os.Stderr, timer.Summary())
		}
	}()

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		if cached || projectCfg.Parse.Cache {
			return runParseCached(cmd, filePath, maxDiag)
		}
		endParse := timer.Start("parse")
		result, err := driver.Parse(filePath, maxDiag)
		endParse("1 file")
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
			return err
		}
		return printTree(format, result)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = projectCfg.Parse.Jobs
	}

	endParse := timer.Start("parse")
	results, err := driver.ParseDir(cmd.Context(), filePath, maxDiag, jobs)
	endParse(fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			failed = true
			continue
		}
		if err := printDiagnostics(cmd, r.Bag, r.FileSet); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "== %s\n", r.Path)
		single := &driver.ParseResult{FileSet: r.FileSet, Tree: r.Tree, Bag: r.Bag}
		if err := printTree(format, single); err != nil {
			return err
		}
	}
	if failed {
		return fmt.Errorf("some files could not be read")
	}
	return nil
}

func printTree(format string, result *driver.ParseResult) error {
	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(os.Stdout, result.Tree, result.FileSet)
	case "json":
		return diagfmt.FormatTreeJSON(os.Stdout, result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// runParseCached serves the parse from the disk cache when the file
// content hash matches a stored entry. Cached results carry summary
// counts and diagnostics rather than the full tree.
func runParseCached(cmd *cobra.Command, filePath string, maxDiag int) error {
	cache, err := driver.OpenDiskCache("wgslkit")
	if err != nil {
		return fmt.Errorf("failed to open disk cache: %w", err)
	}
	payload, hit, err := driver.ParseCached(cache, filePath, maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if len(payload.Diags) > 0 {
		fs := source.NewFileSet()
		fileID, err := fs.Load(filePath)
		if err != nil {
			return err
		}
		bag := payload.Diagnostics(fileID)
		if err := printDiagnostics(cmd, bag, fs); err != nil {
			return err
		}
	}

	state := "parsed"
	if hit {
		state = "cached"
	}
	fmt.Fprintf(os.Stdout, "%s: %d tokens, %d nodes, %d error nodes (%s)\n",
		payload.Path, payload.TokenCount, payload.NodeCount, payload.ErrorNodes, state)
	return nil
}
