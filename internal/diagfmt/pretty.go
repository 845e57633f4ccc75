package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"wgslkit/internal/diag"
	"wgslkit/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() (call
// bag.Sort() first for stable output) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~ underline over the span
//
// followed by notes in the same shape when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		printHeading(w, d, fs, opts)
		printContext(w, d.Primary, fs, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				start, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
					displayPath(fs, note.Span, opts.PathMode), start.Line, start.Col, note.Msg)
				printContext(w, note.Span, fs, opts)
			}
		}
	}
}

func printHeading(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(fs, d.Primary, opts.PathMode), start.Line, start.Col,
		sev, d.Code.ID(), d.Message)
}

// printContext prints the first line the span touches with a caret
// underline. Display width is measured per rune so tabs and wide runes
// do not skew the carets.
func printContext(w io.Writer, sp source.Span, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" && sp.Len() == 0 && start.Col == 1 {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	underStart := int(start.Col) - 1
	underLen := int(end.Col) - int(start.Col)
	if end.Line != start.Line {
		underLen = len(line) - underStart
	}
	if underLen < 1 {
		underLen = 1
	}
	pad := displayWidth(line, 0, underStart)
	width := displayWidth(line, underStart, underStart+underLen)
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgHiRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

// displayWidth measures the on-screen width of line[from:to], clamped to
// the line's bounds. Tabs count as a single column since the line is
// printed as-is after a fixed indent.
func displayWidth(line string, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to > len(line) {
		to = len(line)
	}
	if from >= to {
		return 0
	}
	return runewidth.StringWidth(line[from:to])
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgHiRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgHiYellow, color.Bold)
	default:
		return color.New(color.FgHiCyan)
	}
}

func displayPath(fs *source.FileSet, sp source.Span, mode PathMode) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(file.Path)
	}
	return file.Path
}
