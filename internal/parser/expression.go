package parser

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// parseExpr parses a full expression starting at the loosest level.
func (p *Parser) parseExpr() *syntax.Node {
	return p.parseBinaryExpr(precLogicalOr)
}

// parseBinaryExpr climbs the precedence levels; operators at the same
// level chain left-associatively, so a && b && c folds as (a && b) && c.
func (p *Parser) parseBinaryExpr(minPrec int) *syntax.Node {
	left := p.parseUnaryExpr()
	for {
		prec, ok := binPrec[p.peek().Kind]
		if !ok || prec < minPrec {
			return left
		}
		op := p.advance()
		right := p.parseBinaryExpr(prec + 1)
		bin := syntax.NewNode(syntax.KindBinaryExpr)
		bin.AddNode(left)
		bin.AddToken(op)
		bin.AddNode(right)
		left = bin
	}
}

func (p *Parser) parseUnaryExpr() *syntax.Node {
	if isUnaryOp(p.peek().Kind) {
		n := syntax.NewNode(syntax.KindUnaryExpr)
		n.AddToken(p.advance())
		n.AddNode(p.parseUnaryExpr())
		return n
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary followed by any chain of '[index]'
// and '.member' suffixes.
func (p *Parser) parsePostfixExpr() *syntax.Node {
	expr := p.parsePrimaryExpr()
	return p.parsePostfixChain(expr)
}

func (p *Parser) parsePostfixChain(expr *syntax.Node) *syntax.Node {
	for {
		switch p.peek().Kind {
		case token.LBracket:
			idx := syntax.NewNode(syntax.KindIndexExpr)
			idx.AddNode(expr)
			idx.AddToken(p.advance())
			idx.AddNode(p.parseExpr())
			if tok, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' after index expression"); ok {
				idx.AddToken(tok)
			}
			expr = idx
		case token.Dot:
			mem := syntax.NewNode(syntax.KindMemberExpr)
			mem.AddNode(expr)
			mem.AddToken(p.advance())
			if p.at(token.Ident) || p.at(token.TypeName) {
				mem.AddToken(p.advance())
			} else {
				p.err(diag.SynExpectIdentifier, "expected member name after '.'")
			}
			expr = mem
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimaryExpr() *syntax.Node {
	switch p.peek().Kind {
	case token.IntLit, token.UintLit, token.FloatLit, token.BoolLit, token.StringLit:
		n := syntax.NewNode(syntax.KindLiteralExpr)
		n.AddToken(p.advance())
		return n

	case token.LParen:
		n := syntax.NewNode(syntax.KindParenExpr)
		n.AddToken(p.advance())
		n.AddNode(p.parseExpr())
		if tok, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); ok {
			n.AddToken(tok)
		}
		return n

	case token.KwBitcast:
		return p.parseBitcastExpr()

	case token.TypeName, token.KwTexture:
		// A type name in expression position is a constructor call,
		// possibly templated: f32(x), vec2<f32>(0.0, 1.0).
		typ := p.parseTypeRef()
		if p.at(token.LParen) {
			call := syntax.NewNode(syntax.KindTypeCallExpr)
			call.AddNode(typ)
			p.parseCallArgs(call)
			return call
		}
		n := syntax.NewNode(syntax.KindIdentExpr)
		n.AddNode(typ)
		return n

	case token.Ident:
		// One token of raw punctuation decides: name '(' is always a
		// call, never a reference next to a parenthesized expression.
		name := p.advance()
		if p.at(token.LParen) {
			call := syntax.NewNode(syntax.KindCallExpr)
			call.AddToken(name)
			p.parseCallArgs(call)
			return call
		}
		n := syntax.NewNode(syntax.KindIdentExpr)
		n.AddToken(name)
		return n

	case token.Reserved, token.KwAddressSpace, token.KwAccessMode:
		// Reserved words and enumerant words are referenceable even
		// though they cannot be declared.
		n := syntax.NewNode(syntax.KindIdentExpr)
		n.AddToken(p.advance())
		return n

	default:
		p.err(diag.SynExpectExpression, "expected expression")
		n := syntax.NewNode(syntax.KindError)
		if !p.at(token.EOF) && !p.at(token.Semicolon) && !p.at(token.RBrace) &&
			!p.at(token.RParen) && !p.at(token.RBracket) && !p.at(token.Comma) {
			n.AddToken(p.advance())
		} else {
			n.Span = p.diagSpan()
		}
		return n
	}
}

// parseCallArgs appends '(' expr, ... ')' to the call node.
func (p *Parser) parseCallArgs(call *syntax.Node) {
	call.AddToken(p.advance()) // '('
	for !p.at(token.RParen) && !p.at(token.EOF) {
		call.AddNode(p.parseExpr())
		if p.at(token.Comma) {
			call.AddToken(p.advance())
			continue
		}
		break
	}
	if tok, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after call arguments"); ok {
		call.AddToken(tok)
	}
}

// parseBitcastExpr parses bitcast<Type>(expr).
func (p *Parser) parseBitcastExpr() *syntax.Node {
	n := syntax.NewNode(syntax.KindBitcastExpr)
	n.AddToken(p.advance()) // 'bitcast'
	if tok, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "expected '<' after 'bitcast'"); ok {
		n.AddToken(tok)
	}
	n.AddNode(p.parseTypeRef())
	if tok, ok := p.expectTemplateClose(); ok {
		n.AddToken(tok)
	}
	if p.at(token.LParen) {
		p.parseCallArgs(n)
	} else {
		p.err(diag.SynExpectLParen, "expected '(' after bitcast type")
	}
	return n
}
