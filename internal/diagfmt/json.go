package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"

	"wgslkit/internal/diag"
	"wgslkit/internal/source"
)

// LocationJSON is a span in machine-readable form.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON is an attached note.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the root of the JSON document.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Truncated   bool             `json:"truncated,omitempty"`
}

func makeLocation(span source.Span, fs *source.FileSet, opts JSONOpts) LocationJSON {
	f := fs.Get(span.File)
	path := "<unknown>"
	if f != nil {
		path = f.Path
		if opts.PathMode == PathModeBasename {
			path = filepath.Base(f.Path)
		}
	}
	loc := LocationJSON{File: path, StartByte: span.Start, EndByte: span.End}
	if opts.IncludePositions && f != nil {
		start, end := fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

// JSON writes the bag as one indented JSON document. Count always
// reflects the full bag even when Max truncates the listed diagnostics.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	if bag != nil {
		items := bag.Items()
		out.Count = len(items)
		if opts.Max > 0 && len(items) > opts.Max {
			items = items[:opts.Max]
			out.Truncated = true
		}
		for _, d := range items {
			dj := DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code.ID(),
				Message:  d.Message,
				Location: makeLocation(d.Primary, fs, opts),
			}
			if opts.IncludeNotes {
				for _, note := range d.Notes {
					dj.Notes = append(dj.Notes, NoteJSON{
						Message:  note.Msg,
						Location: makeLocation(note.Span, fs, opts),
					})
				}
			}
			out.Diagnostics = append(out.Diagnostics, dj)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
