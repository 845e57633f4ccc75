package diag

import (
	"wgslkit/internal/source"
)

// Note is a secondary span attached to a diagnostic for extra context
// ("to match this '{'"). Use sparingly; a note must add new information.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the central record produced by the lexer and parser.
// It is pure data; rendering lives in internal/diagfmt.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
