package parser

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// parseVarLike parses 'var'/'let'/'const'/'override' declarations, both
// global and statement forms:
//
//	var<storage, read_write> buf : array<f32>;
//	let x = 1.0;
//	override factor : f32 = 2.0;
func (p *Parser) parseVarLike(kind syntax.NodeKind, attrs []*syntax.Node) *syntax.Node {
	n := p.parseVarLikeHeader(kind)
	addAttrsFront(n, attrs)
	p.finishStmt(n)
	return n
}

// parseVarLikeHeader parses the declaration without its ';' so the for
// header can reuse it.
func (p *Parser) parseVarLikeHeader(kind syntax.NodeKind) *syntax.Node {
	n := syntax.NewNode(kind)
	n.AddToken(p.advance()) // 'var' | 'let' | 'const' | 'override'

	// var<address_space [, access_mode]>
	if p.at(token.Lt) {
		n.AddToken(p.advance())
		if p.at(token.KwAddressSpace) || p.at(token.Ident) {
			n.AddToken(p.advance())
		} else {
			p.err(diag.SynUnexpectedToken, "expected address space after 'var<'")
		}
		if p.at(token.Comma) {
			n.AddToken(p.advance())
			if p.at(token.KwAccessMode) || p.at(token.Ident) {
				n.AddToken(p.advance())
			} else {
				p.err(diag.SynUnexpectedToken, "expected access mode after ','")
			}
		}
		if tok, ok := p.expectTemplateClose(); ok {
			n.AddToken(tok)
		}
	}

	if tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected name in declaration"); ok {
		n.AddToken(tok)
	}

	if p.at(token.Colon) {
		n.AddToken(p.advance())
		n.AddNode(p.parseTypeRef())
	}
	if p.at(token.Assign) {
		n.AddToken(p.advance())
		n.AddNode(p.parseExpr())
	}
	return n
}

// parseTypeAlias parses 'type Name = Type;'.
func (p *Parser) parseTypeAlias(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindTypeAliasDecl)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'type'
	if tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected alias name after 'type'"); ok {
		n.AddToken(tok)
	}
	if tok, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in type alias"); ok {
		n.AddToken(tok)
	}
	n.AddNode(p.parseTypeRef())
	p.finishStmt(n)
	return n
}

// parseStructDecl parses 'struct Name { member, ... }' with an optional
// trailing ';'. Members accept ',' or ';' separators.
func (p *Parser) parseStructDecl(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindStructDecl)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'struct'
	if tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected struct name"); ok {
		n.AddToken(tok)
	}
	if tok, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' to open struct body"); ok {
		n.AddToken(tok)
	} else {
		return n
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		n.AddNode(p.parseStructMember())
		if p.at(token.Comma) || p.at(token.Semicolon) {
			n.AddToken(p.advance())
		}
	}
	if tok, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close struct body"); ok {
		n.AddToken(tok)
	}
	if p.at(token.Semicolon) {
		n.AddToken(p.advance())
	}
	return n
}

// parseStructMember parses 'attr* name : type'.
func (p *Parser) parseStructMember() *syntax.Node {
	n := syntax.NewNode(syntax.KindStructMember)
	addAttrs(n, p.parseAttributes())
	if p.at(token.Ident) {
		n.AddToken(p.advance())
	} else {
		p.err(diag.SynExpectIdentifier, "expected member name")
		n.AddNode(p.errorNode(token.Comma, token.At))
		return n
	}
	if tok, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after member name"); ok {
		n.AddToken(tok)
	}
	n.AddNode(p.parseTypeRef())
	return n
}

// parseFnDecl parses 'fn name(params) [-> attr* Type] { ... }'.
func (p *Parser) parseFnDecl(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindFnDecl)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'fn'
	if tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name"); ok {
		n.AddToken(tok)
	}
	if tok, ok := p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after function name"); ok {
		n.AddToken(tok)
		for !p.at(token.RParen) && !p.at(token.EOF) {
			n.AddNode(p.parseParam())
			if p.at(token.Comma) {
				n.AddToken(p.advance())
				continue
			}
			break
		}
		if tok, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after parameters"); ok {
			n.AddToken(tok)
		}
	}
	if p.at(token.Arrow) {
		n.AddToken(p.advance())
		addAttrs(n, p.parseAttributes())
		n.AddNode(p.parseTypeRef())
	}
	n.AddNode(p.parseBlock())
	return n
}

// parseParam parses 'attr* name : type'.
func (p *Parser) parseParam() *syntax.Node {
	n := syntax.NewNode(syntax.KindParam)
	addAttrs(n, p.parseAttributes())
	if p.at(token.Ident) {
		n.AddToken(p.advance())
	} else {
		p.err(diag.SynExpectIdentifier, "expected parameter name")
		n.AddNode(p.errorNode(token.Comma, token.RParen, token.At))
		return n
	}
	if tok, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); ok {
		n.AddToken(tok)
	}
	n.AddNode(p.parseTypeRef())
	return n
}
