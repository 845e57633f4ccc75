// Package testkit holds structural checks shared by tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// CheckTreeInvariants runs the structural invariants every parse must
// uphold, whatever the input looked like:
// 1) the root span stays within file content bounds
// 2) every child span is contained in its parent's span
// 3) tokens appear in non-decreasing document order
func CheckTreeInvariants(tree *syntax.Tree, sf *source.File) error {
	if tree == nil || tree.Root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := tree.Root
	if root.Span.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", root.Span.End, lenContent)
	}

	if err := checkNesting(root); err != nil {
		return err
	}
	return checkTokenOrder(tree.Tokens())
}

func checkNesting(n *syntax.Node) error {
	for _, c := range n.Children {
		sp := c.Span()
		if sp.Start < n.Span.Start || sp.End > n.Span.End {
			return fmt.Errorf("%v child span %v escapes parent span %v", n.Kind, sp, n.Span)
		}
		if c.Node != nil {
			if err := checkNesting(c.Node); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkTokenOrder(tokens []token.Token) error {
	prevEnd := uint32(0)
	for _, tok := range tokens {
		if tok.Span.Start < prevEnd {
			return fmt.Errorf("token %v at %d starts before previous end %d", tok.Kind, tok.Span.Start, prevEnd)
		}
		prevEnd = tok.Span.End
	}
	return nil
}
