package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wgslkit/internal/driver"
	"wgslkit/internal/editor"
)

var foldCmd = &cobra.Command{
	Use:   "fold [flags] file.wgsl",
	Short: "Emit code folding ranges for a WGSL source file",
	Long:  `Fold lists the collapsible regions of a WGSL source file, outermost first, with both the brace-to-brace span and the interior span`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFold,
}

func init() {
	foldCmd.Flags().String("format", "", "output format (pretty|json)")
}

type foldJSON struct {
	Start      uint32 `json:"start"`
	End        uint32 `json:"end"`
	InnerStart uint32 `json:"inner_start"`
	InnerEnd   uint32 `json:"inner_end"`
	StartLine  uint32 `json:"start_line"`
	EndLine    uint32 `json:"end_line"`
}

func runFold(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	folds := editor.FoldRanges(result.Tree)

	switch format {
	case "pretty":
		for _, f := range folds {
			start, end := result.FileSet.Resolve(f.Span)
			fmt.Fprintf(os.Stdout, "lines %d-%d (offsets %d-%d)\n",
				start.Line, end.Line, f.Span.Start, f.Span.End)
		}
		return nil
	case "json":
		out := make([]foldJSON, 0, len(folds))
		for _, f := range folds {
			start, end := result.FileSet.Resolve(f.Span)
			out = append(out, foldJSON{
				Start:      f.Span.Start,
				End:        f.Span.End,
				InnerStart: f.Inner.Start,
				InnerEnd:   f.Inner.End,
				StartLine:  start.Line,
				EndLine:    end.Line,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
