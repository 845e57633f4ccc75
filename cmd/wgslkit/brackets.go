package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wgslkit/internal/driver"
	"wgslkit/internal/editor"
)

var bracketsCmd = &cobra.Command{
	Use:   "brackets [flags] file.wgsl",
	Short: "Emit matched bracket pairs for a WGSL source file",
	Long:  `Brackets lists every matched (), [], and {} pair in a WGSL source file. With --at it resolves the match for the bracket at one byte offset`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBrackets,
}

func init() {
	bracketsCmd.Flags().String("format", "", "output format (pretty|json)")
	bracketsCmd.Flags().Int("at", -1, "byte offset of a bracket to match")
}

type bracketJSON struct {
	OpenStart  uint32 `json:"open_start"`
	OpenEnd    uint32 `json:"open_end"`
	CloseStart uint32 `json:"close_start"`
	CloseEnd   uint32 `json:"close_end"`
}

func runBrackets(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	at, err := cmd.Flags().GetInt("at")
	if err != nil {
		return fmt.Errorf("failed to get at flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiag)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	if at >= 0 {
		match, ok := editor.MatchingBracket(result.Tree, uint32(at))
		if !ok {
			return fmt.Errorf("no bracket at offset %d", at)
		}
		start, _ := result.FileSet.Resolve(match)
		fmt.Fprintf(os.Stdout, "match at %d:%d (offset %d)\n", start.Line, start.Col, match.Start)
		return nil
	}

	pairs := editor.BracketPairs(result.Tree)

	switch format {
	case "pretty":
		for _, p := range pairs {
			open, _ := result.FileSet.Resolve(p.Open)
			closing, _ := result.FileSet.Resolve(p.Close)
			fmt.Fprintf(os.Stdout, "%d:%d matches %d:%d\n",
				open.Line, open.Col, closing.Line, closing.Col)
		}
		return nil
	case "json":
		out := make([]bracketJSON, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, bracketJSON{
				OpenStart:  p.Open.Start,
				OpenEnd:    p.Open.End,
				CloseStart: p.Close.Start,
				CloseEnd:   p.Close.End,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
