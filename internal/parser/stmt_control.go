package parser

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

func (p *Parser) parseIfStmt(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindIfStmt)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'if'
	n.AddNode(p.parseExpr())
	n.AddNode(p.parseBlock())
	if p.at(token.KwElse) {
		n.AddToken(p.advance())
		if p.at(token.KwIf) {
			n.AddNode(p.parseIfStmt(nil))
		} else {
			n.AddNode(p.parseBlock())
		}
	}
	return n
}

func (p *Parser) parseSwitchStmt(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindSwitchStmt)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'switch'
	n.AddNode(p.parseExpr())
	if tok, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after switch expression"); ok {
		n.AddToken(tok)
	} else {
		return n
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		n.AddNode(p.parseSwitchCase())
	}
	if tok, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close switch body"); ok {
		n.AddToken(tok)
	}
	return n
}

// parseSwitchCase parses 'case selector, ...: { ... }' or 'default: { ... }'.
func (p *Parser) parseSwitchCase() *syntax.Node {
	n := syntax.NewNode(syntax.KindSwitchCase)
	switch p.peek().Kind {
	case token.KwCase:
		n.AddToken(p.advance())
		for {
			n.AddNode(p.parseExpr())
			if p.at(token.Comma) {
				n.AddToken(p.advance())
				continue
			}
			break
		}
	case token.KwDefault:
		n.AddToken(p.advance())
	default:
		p.err(diag.SynUnexpectedToken, "expected 'case' or 'default' in switch body")
		return p.errorNode(token.KwCase, token.KwDefault)
	}
	if tok, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after case selector"); ok {
		n.AddToken(tok)
	}
	n.AddNode(p.parseBlock())
	return n
}

// parseLoopStmt parses 'loop { ... [continuing { ... }] }'. The continuing
// block, when present, must be the last thing in the loop body.
func (p *Parser) parseLoopStmt(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindLoopStmt)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'loop'

	body := syntax.NewNode(syntax.KindBlock)
	if tok, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after 'loop'"); ok {
		body.AddToken(tok)
	} else {
		n.AddNode(body)
		return n
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.KwContinuing) {
			cont := syntax.NewNode(syntax.KindContinuingBlock)
			cont.AddToken(p.advance())
			cont.AddNode(p.parseBlock())
			body.AddNode(cont)
			break
		}
		body.AddNode(p.parseStatement())
	}
	if tok, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close loop body"); ok {
		body.AddToken(tok)
	}
	n.AddNode(body)
	return n
}

// parseForStmt parses C-style 'for (init; cond; update) { ... }'. The
// header parentheses are mandatory.
func (p *Parser) parseForStmt(attrs []*syntax.Node) *syntax.Node {
	n := syntax.NewNode(syntax.KindForStmt)
	addAttrs(n, attrs)
	n.AddToken(p.advance()) // 'for'
	if tok, ok := p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after 'for'"); ok {
		n.AddToken(tok)
	}

	// init
	if p.at(token.Semicolon) {
		n.AddToken(p.advance())
	} else {
		n.AddNode(p.parseForInit())
		if tok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for initializer"); ok {
			n.AddToken(tok)
		}
	}

	// condition
	if p.at(token.Semicolon) {
		n.AddToken(p.advance())
	} else {
		n.AddNode(p.parseExpr())
		if tok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for condition"); ok {
			n.AddToken(tok)
		}
	}

	// update
	if !p.at(token.RParen) && !p.at(token.EOF) {
		n.AddNode(p.parseForUpdate())
	}
	if tok, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close for header"); ok {
		n.AddToken(tok)
	}
	n.AddNode(p.parseBlock())
	return n
}

// parseForInit parses a header initializer: a var/let binding or an
// assignment/call, without the terminating ';'.
func (p *Parser) parseForInit() *syntax.Node {
	switch p.peek().Kind {
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVarLikeHeader(syntax.KindVarStmt)
	default:
		return p.parseForUpdate()
	}
}

// parseForUpdate parses a header update clause: assignment, call, or
// increment/decrement, without a terminating ';'.
func (p *Parser) parseForUpdate() *syntax.Node {
	switch p.peek().Kind {
	case token.PlusPlus, token.MinusMinus:
		n := syntax.NewNode(syntax.KindIncrDecrStmt)
		n.AddToken(p.advance())
		n.AddNode(p.parseLvalue())
		return n
	case token.Ident:
		name := p.advance()
		if p.at(token.LParen) {
			call := syntax.NewNode(syntax.KindCallExpr)
			call.AddToken(name)
			p.parseCallArgs(call)
			stmt := syntax.NewNode(syntax.KindCallStmt)
			stmt.AddNode(call)
			return stmt
		}
		return p.parseHeaderAssign(p.parseLvalueFromName(name))
	case token.Star, token.Amp, token.LParen:
		return p.parseHeaderAssign(p.parseLvalue())
	default:
		p.err(diag.SynUnexpectedToken, "unexpected token in for header")
		return p.errorNode(token.Semicolon, token.RParen, token.LBrace)
	}
}

func (p *Parser) parseHeaderAssign(lv *syntax.Node) *syntax.Node {
	switch {
	case p.peek().IsAssignOp():
		n := syntax.NewNode(syntax.KindAssignStmt)
		n.AddNode(lv)
		n.AddToken(p.advance())
		n.AddNode(p.parseExpr())
		return n
	case p.at(token.PlusPlus) || p.at(token.MinusMinus):
		n := syntax.NewNode(syntax.KindIncrDecrStmt)
		n.AddNode(lv)
		n.AddToken(p.advance())
		return n
	default:
		p.err(diag.SynUnexpectedToken, "expected assignment or '++'/'--' in for header")
		n := syntax.NewNode(syntax.KindError)
		n.AddNode(lv)
		return n
	}
}
