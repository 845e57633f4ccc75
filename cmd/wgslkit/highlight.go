package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wgslkit/internal/driver"
	"wgslkit/internal/editor"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] file.wgsl",
	Short: "Emit syntax highlighting spans for a WGSL source file",
	Long:  `Highlight lists the classified regions of a WGSL source file in document order, the data an editor maps to colors`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func init() {
	highlightCmd.Flags().String("format", "", "output format (pretty|json)")
}

type highlightJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Class string `json:"class"`
	Text  string `json:"text"`
}

func runHighlight(cmd *cobra.Command, args []string) error {
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

	spans := editor.Highlight(result.Tree)
	content := result.File.Content

	switch format {
	case "pretty":
		for _, hl := range spans {
			start, end := result.FileSet.Resolve(hl.Span)
			fmt.Fprintf(os.Stdout, "%d:%d-%d:%d %-10s %q\n",
				start.Line, start.Col, end.Line, end.Col,
				hl.Class, content[hl.Span.Start:hl.Span.End])
		}
		return nil
	case "json":
		out := make([]highlightJSON, 0, len(spans))
		for _, hl := range spans {
			out = append(out, highlightJSON{
				Start: hl.Span.Start,
				End:   hl.Span.End,
				Class: hl.Class.String(),
				Text:  string(content[hl.Span.Start:hl.Span.End]),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
