package syntax

import (
	"wgslkit/internal/source"
	"wgslkit/internal/token"
)

// Child is one ordered slot of a node: either a nested node or a token.
// Exactly one of the two fields is set.
type Child struct {
	Node *Node
	Tok  *token.Token
}

// Span returns the child's span regardless of which arm is set.
func (c Child) Span() source.Span {
	if c.Node != nil {
		return c.Node.Span
	}
	return c.Tok.Span
}

// Node is a concrete syntax tree node. Nodes are immutable after the parse
// that built them returns; an edit means a fresh parse and a fresh tree.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Children []Child
}

// NewNode creates a node with an empty span; the span grows as children
// are attached.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind}
}

// AddNode appends a child node (nil is ignored) and widens the span.
func (n *Node) AddNode(child *Node) *Node {
	if child == nil {
		return n
	}
	n.Children = append(n.Children, Child{Node: child})
	n.cover(child.Span)
	return n
}

// AddToken appends a token child and widens the span.
func (n *Node) AddToken(tok token.Token) *Node {
	t := tok
	n.Children = append(n.Children, Child{Tok: &t})
	n.cover(tok.Span)
	return n
}

func (n *Node) cover(sp source.Span) {
	// called right after append: the first child seeds the span
	if len(n.Children) == 1 {
		n.Span = sp
		return
	}
	n.Span = n.Span.Cover(sp)
}

// FirstToken returns the first token in document order under n, or nil.
func (n *Node) FirstToken() *token.Token {
	for _, c := range n.Children {
		if c.Tok != nil {
			return c.Tok
		}
		if t := c.Node.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the last token in document order under n, or nil.
func (n *Node) LastToken() *token.Token {
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if c.Tok != nil {
			return c.Tok
		}
		if t := c.Node.LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// ChildNodes returns only the node children, in order.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}

// Walk calls fn for n and every descendant node, pre-order. Returning
// false prunes the subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		if c.Node != nil {
			c.Node.Walk(fn)
		}
	}
}

// Tokens appends every token under n, in document order, to dst.
func (n *Node) Tokens(dst []token.Token) []token.Token {
	for _, c := range n.Children {
		if c.Tok != nil {
			dst = append(dst, *c.Tok)
			continue
		}
		dst = c.Node.Tokens(dst)
	}
	return dst
}
