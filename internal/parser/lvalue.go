package parser

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// parseLvalue parses the restricted grammar assignment targets use: any
// chain of leading '*'/'&' over a parenthesized lvalue or an identifier,
// then an optional index/member postfix chain. The full expression
// grammar is deliberately not reachable from here.
func (p *Parser) parseLvalue() *syntax.Node {
	switch p.peek().Kind {
	case token.Star, token.Amp:
		n := syntax.NewNode(syntax.KindUnaryExpr)
		n.AddToken(p.advance())
		n.AddNode(p.parseLvalue())
		return n

	case token.LParen:
		n := syntax.NewNode(syntax.KindParenExpr)
		n.AddToken(p.advance())
		n.AddNode(p.parseLvalue())
		if tok, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')'"); ok {
			n.AddToken(tok)
		}
		return p.parsePostfixChain(n)

	case token.Ident:
		return p.parseLvalueFromName(p.advance())

	default:
		p.err(diag.SynExpectLvalue, "expected assignable expression")
		n := syntax.NewNode(syntax.KindError)
		if !p.at(token.EOF) && !p.at(token.Semicolon) && !p.at(token.RBrace) {
			n.AddToken(p.advance())
		} else {
			n.Span = p.diagSpan()
		}
		return n
	}
}

// parseLvalueFromName continues an lvalue whose leading identifier the
// caller already consumed during statement dispatch.
func (p *Parser) parseLvalueFromName(name token.Token) *syntax.Node {
	n := syntax.NewNode(syntax.KindIdentExpr)
	n.AddToken(name)
	return p.parsePostfixChain(n)
}
