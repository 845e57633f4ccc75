package parser

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// parseImportDecl parses 'import {a, b as c} from "path";'.
func (p *Parser) parseImportDecl(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindImportDecl)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'import'
	p.parseImportGroup(n)
	if tok, ok := p.expect(token.KwFrom, diag.SynUnexpectedToken, "expected 'from' after import group"); ok {
		n.AddToken(tok)
	}
	if tok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected module path string"); ok {
		n.AddToken(tok)
	}
	p.finishStmt(n)
	return n
}

// parseUseDecl parses 'use "path"::{a, b as c};'.
func (p *Parser) parseUseDecl(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindUseDecl)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'use'
	if tok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected module path string after 'use'"); ok {
		n.AddToken(tok)
	}
	if tok, ok := p.expect(token.ColonColon, diag.SynUnexpectedToken, "expected '::' after module path"); ok {
		n.AddToken(tok)
	}
	p.parseImportGroup(n)
	p.finishStmt(n)
	return n
}

// parseImportGroup parses '{ item, ... }' where item is 'name' or
// 'name as alias'. An empty group is legal syntax but flagged.
func (p *Parser) parseImportGroup(n *syntax.Node) {
	open, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' to open import group")
	if !ok {
		return
	}
	n.AddToken(open)
	count := 0
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		n.AddNode(p.parseImportItem())
		count++
		if p.at(token.Comma) {
			n.AddToken(p.advance())
			continue
		}
		break
	}
	if count == 0 {
		p.report(diag.SynEmptyImportGroup, diag.SevWarning, p.diagSpan(), "import group names nothing")
	}
	if tok, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close import group"); ok {
		n.AddToken(tok)
	}
}

func (p *Parser) parseImportItem() *syntax.Node {
	n := syntax.NewNode(syntax.KindImportItem)
	if tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected imported name"); ok {
		n.AddToken(tok)
	} else {
		n.AddNode(p.errorNode(token.Comma))
		return n
	}
	if p.at(token.KwAs) {
		n.AddToken(p.advance())
		if tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected alias after 'as'"); ok {
			n.AddToken(tok)
		}
	}
	return n
}
