package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
)

// NodeJSON is one tree node in machine-readable form. Exactly one of
// Children-bearing node form or Token form is populated per entry.
type NodeJSON struct {
	Kind     string      `json:"kind,omitempty"`
	Token    string      `json:"token,omitempty"`
	Text     string      `json:"text,omitempty"`
	Span     source.Span `json:"span"`
	Children []NodeJSON  `json:"children,omitempty"`
}

// FormatTreePretty writes an indented view of the tree, nodes labeled by
// kind and span, token children by kind and text:
//
//	Program [0..24)
//	└─GlobalVarDecl [0..24)
//	  ├─var "var"
//	  ...
func FormatTreePretty(w io.Writer, tree *syntax.Tree, fs *source.FileSet) error {
	fmt.Fprintf(w, "%s %s\n", tree.Root.Kind, formatSpan(tree.Root.Span, fs))
	writeChildren(w, tree.Root, "", fs)
	return nil
}

func writeChildren(w io.Writer, n *syntax.Node, indent string, fs *source.FileSet) {
	for i, c := range n.Children {
		connector, childIndent := "├─", indent+"│ "
		if i == len(n.Children)-1 {
			connector, childIndent = "└─", indent+"  "
		}
		if c.Node != nil {
			fmt.Fprintf(w, "%s%s%s %s\n", indent, connector, c.Node.Kind, formatSpan(c.Node.Span, fs))
			writeChildren(w, c.Node, childIndent, fs)
			continue
		}
		fmt.Fprintf(w, "%s%s%s %q\n", indent, connector, c.Tok.Kind, c.Tok.Text)
	}
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil {
		return sp.String()
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// FormatTreeJSON writes the whole tree as one indented JSON document.
func FormatTreeJSON(w io.Writer, tree *syntax.Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(nodeJSON(tree.Root))
}

func nodeJSON(n *syntax.Node) NodeJSON {
	out := NodeJSON{Kind: n.Kind.String(), Span: n.Span}
	for _, c := range n.Children {
		if c.Node != nil {
			out.Children = append(out.Children, nodeJSON(c.Node))
			continue
		}
		out.Children = append(out.Children, NodeJSON{
			Token: c.Tok.Kind.String(),
			Text:  c.Tok.Text,
			Span:  c.Tok.Span,
		})
	}
	return out
}
