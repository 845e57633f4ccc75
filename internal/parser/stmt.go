package parser

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// parseBlock parses '{' statement* '}'.
func (p *Parser) parseBlock() *syntax.Node {
	n := syntax.NewNode(syntax.KindBlock)
	if tok, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'"); ok {
		n.AddToken(tok)
	} else {
		return n
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		n.AddNode(p.parseStatement())
	}
	if tok, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}'"); ok {
		n.AddToken(tok)
	}
	return n
}

func (p *Parser) parseStatement() *syntax.Node {
	attrs := p.parseAttributes()
	switch p.peek().Kind {
	case token.Semicolon:
		n := syntax.NewNode(syntax.KindEmptyStmt)
		addAttrs(n, attrs)
		n.AddToken(p.advance())
		return n

	case token.LBrace:
		blk := p.parseBlock()
		addAttrsFront(blk, attrs)
		return blk

	case token.KwReturn:
		n := syntax.NewNode(syntax.KindReturnStmt)
		addAttrs(n, attrs)
		n.AddToken(p.advance())
		if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
			n.AddNode(p.parseExpr())
		}
		p.finishStmt(n)
		return n

	case token.KwIf:
		return p.parseIfStmt(attrs)
	case token.KwSwitch:
		return p.parseSwitchStmt(attrs)
	case token.KwLoop:
		return p.parseLoopStmt(attrs)
	case token.KwFor:
		return p.parseForStmt(attrs)

	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVarLike(syntax.KindVarStmt, attrs)

	case token.KwBreak:
		return p.parseKeywordStmt(syntax.KindBreakStmt, attrs)
	case token.KwContinue:
		return p.parseKeywordStmt(syntax.KindContinueStmt, attrs)
	case token.KwDiscard:
		return p.parseKeywordStmt(syntax.KindDiscardStmt, attrs)
	case token.KwFallthrough:
		return p.parseKeywordStmt(syntax.KindFallthroughStmt, attrs)

	case token.PlusPlus, token.MinusMinus:
		n := syntax.NewNode(syntax.KindIncrDecrStmt)
		addAttrs(n, attrs)
		n.AddToken(p.advance())
		n.AddNode(p.parseLvalue())
		p.finishStmt(n)
		return n

	case token.Star, token.Amp, token.LParen:
		return p.parseAssignTail(p.parseLvalue(), attrs)

	case token.Ident:
		// Dispatch on the single token after the name: '(' commits to
		// a call statement, anything else continues as an lvalue.
		name := p.advance()
		if p.at(token.LParen) {
			call := syntax.NewNode(syntax.KindCallExpr)
			call.AddToken(name)
			p.parseCallArgs(call)
			stmt := syntax.NewNode(syntax.KindCallStmt)
			addAttrs(stmt, attrs)
			stmt.AddNode(call)
			p.finishStmt(stmt)
			return stmt
		}
		return p.parseAssignTail(p.parseLvalueFromName(name), attrs)

	default:
		p.err(diag.SynUnexpectedToken, "unexpected token in statement position")
		bad := p.errorNode()
		if p.at(token.Semicolon) {
			bad.AddToken(p.advance())
		}
		addAttrsFront(bad, attrs)
		return bad
	}
}

// parseAssignTail finishes a statement that started with an lvalue:
// an assignment (plain or compound) or a postfix increment/decrement.
func (p *Parser) parseAssignTail(lv *syntax.Node, attrs []*syntax.Node) *syntax.Node {
	switch {
	case p.peek().IsAssignOp():
		n := syntax.NewNode(syntax.KindAssignStmt)
		addAttrs(n, attrs)
		n.AddNode(lv)
		n.AddToken(p.advance())
		n.AddNode(p.parseExpr())
		p.finishStmt(n)
		return n

	case p.at(token.PlusPlus) || p.at(token.MinusMinus):
		n := syntax.NewNode(syntax.KindIncrDecrStmt)
		addAttrs(n, attrs)
		n.AddNode(lv)
		n.AddToken(p.advance())
		p.finishStmt(n)
		return n

	default:
		p.err(diag.SynUnexpectedToken, "expected assignment or '++'/'--' after expression")
		n := syntax.NewNode(syntax.KindError)
		addAttrs(n, attrs)
		n.AddNode(lv)
		n.AddNode(p.errorNode())
		if p.at(token.Semicolon) {
			n.AddToken(p.advance())
		}
		return n
	}
}

func (p *Parser) parseKeywordStmt(kind syntax.NodeKind, attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(kind)
	addAttrs(n, attrs)
	n.AddToken(p.advance())
	p.finishStmt(n)
	return n
}

// addAttrsFront prepends attribute nodes, keeping document order when the
// body node was parsed before the attach point was known.
func addAttrsFront(n *syntax.Node, attrs []*syntax.Node) {
	if len(attrs) == 0 {
		return
	}
	children := make([]syntax.Child, 0, len(attrs)+len(n.Children))
	for i, a := range attrs {
		children = append(children, syntax.Child{Node: a})
		if i == 0 && len(n.Children) == 0 {
			n.Span = a.Span
		} else {
			n.Span = n.Span.Cover(a.Span)
		}
	}
	n.Children = append(children, n.Children...)
}
