package parser

import (
	"slices"

	"wgslkit/internal/diag"
	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// peek returns the next token the parser will consume. The right half
// of a split '>>' comes first, so a stray '>' is seen by whatever
// production runs next instead of silently waiting for a template close
// that may never be asked for.
func (p *Parser) peek() token.Token {
	if p.pendingGt != nil {
		return *p.pendingGt
	}
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance consumes the next token and remembers its span for diagnostics.
func (p *Parser) advance() token.Token {
	if p.pendingGt != nil {
		tok := *p.pendingGt
		p.pendingGt = nil
		p.lastSpan = tok.Span
		return tok
	}
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan returns the best span to point a diagnostic at. At EOF the
// lookahead span is empty, so point just past the last consumed token.
func (p *Parser) diagSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports and returns ok=false
// without consuming anything.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	if p.at(token.EOF) {
		p.report(diag.SynUnexpectedEOF, diag.SevError, p.diagSpan(), msg)
	} else {
		p.report(code, diag.SevError, p.diagSpan(), msg)
	}
	return token.Token{Kind: token.Invalid, Span: p.diagSpan()}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		if p.opts.Enough() {
			return
		}
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
}

// errorNode consumes tokens into an error node until a recovery boundary:
// ';' or '}' (left for the caller), EOF, or any of the stop kinds. At
// least one token is consumed so loops always make progress.
func (p *Parser) errorNode(stop ...token.Kind) *syntax.Node {
	n := syntax.NewNode(syntax.KindError)
	for {
		if p.at(token.EOF) || p.at(token.Semicolon) || p.at(token.RBrace) {
			break
		}
		if len(n.Children) > 0 && slices.Contains(stop, p.peek().Kind) {
			break
		}
		n.AddToken(p.advance())
	}
	if len(n.Children) == 0 {
		// Stuck right on a boundary token; claim it so the parse moves.
		if !p.at(token.EOF) {
			n.AddToken(p.advance())
		} else {
			n.Span = p.diagSpan()
		}
	}
	return n
}

// finishStmt expects the terminating ';'. If the next token cannot end
// the statement, the offending tokens become one error node inside the
// statement and the ';' (when present) still closes it.
func (p *Parser) finishStmt(n *syntax.Node) {
	if p.at(token.Semicolon) {
		n.AddToken(p.advance())
		return
	}
	if p.at(token.RBrace) || p.at(token.EOF) {
		p.err(diag.SynExpectSemicolon, "expected ';'")
		return
	}
	p.err(diag.SynUnexpectedToken, "unexpected token, expected ';'")
	n.AddNode(p.errorNode(topLevelStarters...))
	if p.at(token.Semicolon) {
		n.AddToken(p.advance())
	}
}

// expectTemplateClose consumes the '>' that ends a template argument
// list. A '>>' closing two nested lists is split in place: the first
// half is returned now and the second half goes through pendingGt, where
// peek and advance treat it as the next token. Both halves keep their
// exact source spans so round-trip holds.
func (p *Parser) expectTemplateClose() (token.Token, bool) {
	if p.at(token.Gt) {
		return p.advance(), true
	}
	if p.at(token.Shr) {
		tok := p.advance()
		first := token.Token{
			Kind:    token.Gt,
			Span:    source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1},
			Text:    ">",
			Leading: tok.Leading,
		}
		second := token.Token{
			Kind: token.Gt,
			Span: source.Span{File: tok.Span.File, Start: tok.Span.Start + 1, End: tok.Span.End},
			Text: ">",
		}
		p.pendingGt = &second
		return first, true
	}
	_, _ = p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close template arguments")
	return token.Token{Kind: token.Invalid, Span: p.diagSpan()}, false
}
