package lexer

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/source"
)

// ReporterAdapter bridges the lexer's string-kind reports into diag codes.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a lexer.Reporter that files diagnostics into the bag.
func (r *ReporterAdapter) Reporter() Reporter {
	return &bagBridge{bag: r.Bag}
}

type bagBridge struct {
	bag *diag.Bag
}

var lexCodes = map[string]diag.Code{
	"UnknownChar":              diag.LexUnknownChar,
	"UnterminatedString":       diag.LexUnterminatedString,
	"UnterminatedBlockComment": diag.LexUnterminatedBlockComment,
	"BadNumber":                diag.LexBadNumber,
}

func (b *bagBridge) Report(kind string, span source.Span, msg string) {
	if b.bag == nil {
		return
	}
	code, ok := lexCodes[kind]
	if !ok {
		code = diag.LexInfo
	}
	b.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}
