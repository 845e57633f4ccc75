package parser

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// parseTypeRef parses a type reference: a predeclared type name, a
// texture kind, or a user-declared identifier, with an optional template
// argument list (ptr<storage, f32>, array<vec4<f32>, 8>).
func (p *Parser) parseTypeRef() *syntax.Node {
	n := syntax.NewNode(syntax.KindTypeRef)

	switch p.peek().Kind {
	case token.TypeName, token.Ident, token.KwTexture:
		n.AddToken(p.advance())
	default:
		p.err(diag.SynExpectType, "expected type")
		n.Span = p.diagSpan()
		return n
	}

	if !p.at(token.Lt) {
		return n
	}
	n.AddToken(p.advance()) // '<'
	for {
		n.AddNode(p.parseTemplateArg())
		if p.at(token.Comma) {
			n.AddToken(p.advance())
			continue
		}
		break
	}
	if tok, ok := p.expectTemplateClose(); ok {
		n.AddToken(tok)
	}
	return n
}

// parseTemplateArg parses one template argument. Nested types recurse;
// address-space and access-mode enumerants are plain references; anything
// else is a constant expression restricted to additive level and above,
// so a '>' always closes the list instead of comparing.
func (p *Parser) parseTemplateArg() *syntax.Node {
	switch p.peek().Kind {
	case token.TypeName, token.KwTexture:
		return p.parseTypeRef()
	case token.KwAddressSpace, token.KwAccessMode:
		n := syntax.NewNode(syntax.KindIdentExpr)
		n.AddToken(p.advance())
		return n
	case token.Ident:
		// An identifier followed by '<' is a nested user type;
		// otherwise it may participate in arithmetic (array<f32, N*2>).
		name := p.advance()
		if p.at(token.Lt) {
			t := syntax.NewNode(syntax.KindTypeRef)
			t.AddToken(name)
			t.AddToken(p.advance())
			for {
				t.AddNode(p.parseTemplateArg())
				if p.at(token.Comma) {
					t.AddToken(p.advance())
					continue
				}
				break
			}
			if tok, ok := p.expectTemplateClose(); ok {
				t.AddToken(tok)
			}
			return t
		}
		ident := syntax.NewNode(syntax.KindIdentExpr)
		ident.AddToken(name)
		return p.parseTemplateExprTail(p.parsePostfixChain(ident))
	default:
		return p.parseBinaryExpr(precAdditive)
	}
}

// parseTemplateExprTail lets an already-parsed operand continue as an
// additive/multiplicative expression inside template arguments.
func (p *Parser) parseTemplateExprTail(left *syntax.Node) *syntax.Node {
	for {
		prec, ok := binPrec[p.peek().Kind]
		if !ok || prec < precAdditive {
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

// parseAttributes parses a possibly empty '@name' or '@name(args...)'
// sequence. Attribute lists prefix declarations, struct members, and
// function parameters.
func (p *Parser) parseAttributes() []*syntax.Node {
	var out []*syntax.Node
	for p.at(token.At) {
		a := syntax.NewNode(syntax.KindAttribute)
		a.AddToken(p.advance())
		if p.at(token.Ident) || p.at(token.TypeName) {
			a.AddToken(p.advance())
		} else {
			p.err(diag.SynExpectIdentifier, "expected attribute name after '@'")
		}
		if p.at(token.LParen) {
			p.parseCallArgs(a)
		}
		out = append(out, a)
	}
	return out
}
