package ui

import (
	"fmt"
	"strings"

	"wgslkit/internal/diag"
	"wgslkit/internal/diagfmt"
	"wgslkit/internal/editor"
	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
)

// renderSource styles the raw file content using the highlight spans.
// Spans arrive sorted and non-overlapping; bytes between spans are
// printed unstyled.
func renderSource(file *source.File, spans []editor.Span, theme map[string]string) string {
	content := file.Content
	var b strings.Builder
	cursor := uint32(0)
	for _, hl := range spans {
		if hl.Span.Start > cursor {
			b.Write(content[cursor:hl.Span.Start])
		}
		end := hl.Span.End
		if end > uint32(len(content)) {
			end = uint32(len(content))
		}
		if hl.Span.Start >= end {
			continue
		}
		b.WriteString(styleFor(hl.Class, theme).Render(string(content[hl.Span.Start:end])))
		cursor = end
	}
	if cursor < uint32(len(content)) {
		b.Write(content[cursor:])
	}
	return b.String()
}

func renderTree(tree *syntax.Tree, fs *source.FileSet) string {
	var b strings.Builder
	if err := diagfmt.FormatTreePretty(&b, tree, fs); err != nil {
		return fmt.Sprintf("failed to render tree: %v", err)
	}
	return b.String()
}

func renderDiagnostics(bag *diag.Bag, fs *source.FileSet) string {
	if bag == nil || bag.Len() == 0 {
		return "no diagnostics"
	}
	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{
		Color:     false,
		PathMode:  diagfmt.PathModeBasename,
		ShowNotes: true,
	})
	return b.String()
}

// renderFolds lists the foldable regions with their line ranges.
func renderFolds(tree *syntax.Tree, fs *source.FileSet) string {
	folds := editor.FoldRanges(tree)
	if len(folds) == 0 {
		return "no foldable regions"
	}
	var b strings.Builder
	for _, f := range folds {
		start, end := fs.Resolve(f.Span)
		fmt.Fprintf(&b, "lines %d-%d\n", start.Line, end.Line)
	}
	return b.String()
}
