package parser_test

import (
	"testing"

	"wgslkit/internal/diag"
	"wgslkit/internal/lexer"
	"wgslkit/internal/parser"
	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
)

func parseSource(t *testing.T, input string) parser.Result {
	t.Helper()
	return parseSourceMax(t, input, 0)
}

func parseSourceMax(t *testing.T, input string, maxErrors uint) parser.Result {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.wgsl", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(0)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: adapter.Reporter()})
	return parser.ParseFile(lx, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  &diag.BagReporter{Bag: bag},
	})
}

// findNodes collects every node of the given kind, pre-order.
func findNodes(tree *syntax.Tree, kind syntax.NodeKind) []*syntax.Node {
	return nodesUnder(tree.Root, kind)
}

func nodesUnder(root *syntax.Node, kind syntax.NodeKind) []*syntax.Node {
	var out []*syntax.Node
	root.Walk(func(n *syntax.Node) bool {
		if n.Kind == kind {
			out = append(out, n)
		}
		return true
	})
	return out
}

func findOne(t *testing.T, tree *syntax.Tree, kind syntax.NodeKind) *syntax.Node {
	t.Helper()
	nodes := findNodes(tree, kind)
	if len(nodes) != 1 {
		t.Fatalf("want exactly one %v node, got %d", kind, len(nodes))
	}
	return nodes[0]
}

// topKinds returns the kinds of the root's direct child nodes.
func topKinds(tree *syntax.Tree) []syntax.NodeKind {
	var out []syntax.NodeKind
	for _, n := range tree.Root.ChildNodes() {
		out = append(out, n.Kind)
	}
	return out
}

func sameKinds(a, b []syntax.NodeKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// reconstruct rebuilds the source text from the tree's token stream.
func reconstruct(tree *syntax.Tree) string {
	var out []byte
	for _, tok := range tree.Tokens() {
		for _, tr := range tok.Leading {
			out = append(out, tr.Text...)
		}
		out = append(out, tok.Text...)
	}
	return string(out)
}

func tokenTexts(n *syntax.Node) []string {
	var out []string
	for _, tok := range n.Tokens(nil) {
		out = append(out, tok.Text)
	}
	return out
}
