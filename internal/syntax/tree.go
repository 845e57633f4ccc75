package syntax

import (
	"wgslkit/internal/source"
	"wgslkit/internal/token"
)

// Tree is one parse of one buffer. It is rebuilt from scratch on every
// parse call, immutable afterwards, and owned by the caller; the parser
// keeps no reference to it.
type Tree struct {
	Root *Node
	File *source.File
	// EOFTok closes the stream and carries the file's trailing trivia.
	EOFTok token.Token
}

// NodeAt returns the innermost node whose span contains the offset, or
// the root when only it covers the position.
func (t *Tree) NodeAt(off uint32) *Node {
	path := t.PathAt(off)
	if len(path) == 0 {
		return t.Root
	}
	return path[len(path)-1]
}

// PathAt returns the root-to-leaf chain of nodes covering the offset.
// An offset outside every node yields just the root.
func (t *Tree) PathAt(off uint32) []*Node {
	path := []*Node{t.Root}
	cur := t.Root
descend:
	for {
		for _, c := range cur.Children {
			if c.Node != nil && c.Node.Span.Contains(off) {
				path = append(path, c.Node)
				cur = c.Node
				continue descend
			}
		}
		return path
	}
}

// TokenAt returns the significant token containing the offset, or nil.
func (t *Tree) TokenAt(off uint32) *token.Token {
	node := t.NodeAt(off)
	for i := range node.Children {
		c := node.Children[i]
		if c.Tok != nil && c.Tok.Span.Contains(off) {
			return c.Tok
		}
	}
	return nil
}

// Tokens returns every significant token of the parse in document order,
// EOF included. Concatenating Leading trivia and Text over the result
// reproduces the buffer exactly.
func (t *Tree) Tokens() []token.Token {
	out := t.Root.Tokens(nil)
	out = append(out, t.EOFTok)
	return out
}

// ErrorNodes returns every error node in the tree, in document order.
func (t *Tree) ErrorNodes() []*Node {
	var out []*Node
	t.Root.Walk(func(n *Node) bool {
		if n.Kind == KindError {
			out = append(out, n)
		}
		return true
	})
	return out
}

// KindSequence flattens the node kinds pre-order; parses of identical
// text always produce identical sequences.
func (t *Tree) KindSequence() []NodeKind {
	var out []NodeKind
	t.Root.Walk(func(n *Node) bool {
		out = append(out, n.Kind)
		return true
	})
	return out
}
