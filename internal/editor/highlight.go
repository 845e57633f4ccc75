// Package editor answers the queries an editing surface makes against a
// parsed tree: syntax-highlight spans, fold ranges, and bracket matching.
// Everything here is a read-only walk; the tree is never modified.
package editor

import (
	"sort"

	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// Class is a highlighting category an editor maps to a style.
type Class uint8

const (
	ClassNone Class = iota
	ClassKeyword
	ClassType
	ClassNumber
	ClassString
	ClassBool
	ClassIdent
	ClassFunction
	ClassAttribute
	ClassDirective
	ClassReserved
	ClassOperator
	ClassComment
	ClassError
)

var classNames = map[Class]string{
	ClassNone:      "none",
	ClassKeyword:   "keyword",
	ClassType:      "type",
	ClassNumber:    "number",
	ClassString:    "string",
	ClassBool:      "bool",
	ClassIdent:     "ident",
	ClassFunction:  "function",
	ClassAttribute: "attribute",
	ClassDirective: "directive",
	ClassReserved:  "reserved",
	ClassOperator:  "operator",
	ClassComment:   "comment",
	ClassError:     "error",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "none"
}

// Span is one highlighted region.
type Span struct {
	Span  source.Span
	Class Class
}

// Highlight returns the highlight spans for the whole tree, in document
// order. Comment trivia is included; whitespace is not.
func Highlight(tree *syntax.Tree) []Span {
	var out []Span
	collectHighlights(tree.Root, ClassNone, &out)
	for _, tr := range tree.EOFTok.Leading {
		if tr.Kind == token.TriviaLineComment || tr.Kind == token.TriviaBlockComment {
			out = append(out, Span{Span: tr.Span, Class: ClassComment})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Span.Start < out[j].Span.Start })
	return out
}

func collectHighlights(n *syntax.Node, ctx Class, out *[]Span) {
	ctx = contextClass(n, ctx)
	for i, c := range n.Children {
		if c.Node != nil {
			collectHighlights(c.Node, ctx, out)
			continue
		}
		tok := *c.Tok
		for _, tr := range tok.Leading {
			if tr.Kind == token.TriviaLineComment || tr.Kind == token.TriviaBlockComment {
				*out = append(*out, Span{Span: tr.Span, Class: ClassComment})
			}
		}
		if cls := tokenClass(n, i, tok, ctx); cls != ClassNone {
			*out = append(*out, Span{Span: tok.Span, Class: cls})
		}
	}
}

func contextClass(n *syntax.Node, ctx Class) Class {
	switch n.Kind {
	case syntax.KindAttribute:
		return ClassAttribute
	case syntax.KindGlobalDirective:
		return ClassDirective
	case syntax.KindError:
		return ClassError
	default:
		return ctx
	}
}

func tokenClass(n *syntax.Node, idx int, tok token.Token, ctx Class) Class {
	if ctx == ClassAttribute || ctx == ClassDirective || ctx == ClassError {
		// Inside attributes, directives, and error regions every token
		// takes the region's class, literals included.
		return ctx
	}
	switch {
	case tok.Kind == token.Invalid:
		return ClassError
	case tok.IsKeyword():
		return ClassKeyword
	case tok.Kind == token.TypeName:
		return ClassType
	case tok.Kind == token.Reserved:
		return ClassReserved
	case tok.Kind == token.BoolLit:
		return ClassBool
	case tok.Kind == token.StringLit:
		return ClassString
	case tok.Kind == token.IntLit, tok.Kind == token.UintLit, tok.Kind == token.FloatLit:
		return ClassNumber
	case tok.Kind == token.Directive:
		return ClassDirective
	case tok.Kind == token.Ident:
		if calleeName(n, idx) {
			return ClassFunction
		}
		return ClassIdent
	default:
		return ClassNone
	}
}

// calleeName reports whether the token is the name position of a call or
// function declaration.
func calleeName(n *syntax.Node, idx int) bool {
	switch n.Kind {
	case syntax.KindCallExpr:
		return idx == 0
	case syntax.KindFnDecl:
		// 'fn' then the name; attributes precede as nodes, so the name
		// is the token right after the 'fn' keyword.
		for i, c := range n.Children {
			if c.Tok != nil && c.Tok.Kind == token.KwFn {
				return idx == i+1
			}
		}
	}
	return false
}
