package parser

import (
	"wgslkit/internal/diag"
	"wgslkit/internal/lexer"
	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *syntax.Tree
	Bag  *diag.Bag
}

// Parser holds the state for one parse of one file. A parse always runs to
// EOF and always produces a tree; bad regions become error nodes.
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	lastSpan source.Span
	// pendingGt holds the right half of a '>>' split while closing
	// nested template argument lists.
	pendingGt *token.Token
}

// ParseFile parses the lexer's file into a fresh syntax tree. The tree is
// rebuilt from scratch on every call and never shares nodes with a
// previous parse.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	root := p.parseProgram()
	eof := p.lx.Next()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Tree: &syntax.Tree{Root: root, File: lx.File(), EOFTok: eof},
		Bag:  bag,
	}
}

// parseProgram is the top-level loop: GlobalDirective* GlobalDeclaration*.
func (p *Parser) parseProgram() *syntax.Node {
	root := syntax.NewNode(syntax.KindProgram)

	sawDecl := false
	for !p.at(token.EOF) {
		if p.at(token.Directive) {
			if sawDecl {
				p.err(diag.SynDirectiveAfterDecl, "directive must precede all declarations")
			}
			root.AddNode(p.parseGlobalDirective())
			continue
		}
		sawDecl = true
		root.AddNode(p.parseGlobalDecl())
	}
	return root
}

// parseGlobalDirective parses 'enable <ident>;'.
func (p *Parser) parseGlobalDirective() *syntax.Node {
	n := syntax.NewNode(syntax.KindGlobalDirective)
	n.AddToken(p.advance())
	if tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected extension name after 'enable'"); ok {
		n.AddToken(tok)
	}
	p.finishStmt(n)
	return n
}

func (p *Parser) parseGlobalDecl() *syntax.Node {
	attrs := p.parseAttributes()

	switch p.peek().Kind {
	case token.Semicolon:
		n := syntax.NewNode(syntax.KindEmptyStmt)
		addAttrs(n, attrs)
		n.AddToken(p.advance())
		return n
	case token.KwImport:
		return p.parseImportDecl(attrs)
	case token.KwUse:
		return p.parseUseDecl(attrs)
	case token.KwVar:
		return p.parseVarLike(syntax.KindGlobalVarDecl, attrs)
	case token.KwLet:
		return p.parseVarLike(syntax.KindGlobalVarDecl, attrs)
	case token.KwConst:
		return p.parseVarLike(syntax.KindGlobalConstDecl, attrs)
	case token.KwOverride:
		return p.parseVarLike(syntax.KindOverrideDecl, attrs)
	case token.KwType:
		return p.parseTypeAlias(attrs)
	case token.KwStruct:
		return p.parseStructDecl(attrs)
	case token.KwFn:
		return p.parseFnDecl(attrs)
	default:
		p.err(diag.SynUnexpectedTopLevel, "unexpected top-level construct")
		bad := p.errorNode(topLevelStarters...)
		if len(attrs) > 0 {
			wrap := syntax.NewNode(syntax.KindError)
			addAttrs(wrap, attrs)
			wrap.AddNode(bad)
			return wrap
		}
		return bad
	}
}

var topLevelStarters = []token.Kind{
	token.KwImport, token.KwUse, token.KwVar, token.KwLet, token.KwConst,
	token.KwOverride, token.KwType, token.KwStruct, token.KwFn,
	token.Directive, token.At,
}

func addAttrs(n *syntax.Node, attrs []*syntax.Node) {
	for _, a := range attrs {
		n.AddNode(a)
	}
}
