package editor

import (
	"sort"
	"strings"

	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// FoldRange is a collapsible region. Start and End cover the region's
// span; Inner covers just the content between the braces, which is what
// most editors actually hide.
type FoldRange struct {
	Span  source.Span
	Inner source.Span
}

// FoldRanges returns the collapsible regions of the tree, outermost
// first, in document order. A node folds when its kind opens a braced
// body (blocks, struct and switch bodies, loop and continuing blocks).
// Block comments that span more than one line fold too.
func FoldRanges(tree *syntax.Tree) []FoldRange {
	var out []FoldRange
	tree.Root.Walk(func(n *syntax.Node) bool {
		if !n.Kind.IsFoldable() {
			return true
		}
		if fr, ok := foldRangeOf(n); ok {
			out = append(out, fr)
		}
		return true
	})
	out = append(out, commentFolds(tree)...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span.Start != out[j].Span.Start {
			return out[i].Span.Start < out[j].Span.Start
		}
		return out[i].Span.End > out[j].Span.End
	})
	return out
}

// commentFolds collects multi-line block comments from token trivia.
// The EOF token carries the file's trailing trivia, so comments after
// the last declaration are covered as well. Inner hides everything
// between the comment delimiters.
func commentFolds(tree *syntax.Tree) []FoldRange {
	var out []FoldRange
	for _, tok := range tree.Tokens() {
		for _, tr := range tok.Leading {
			if tr.Kind != token.TriviaBlockComment || !strings.Contains(tr.Text, "\n") {
				continue
			}
			innerEnd := tr.Span.End
			if strings.HasSuffix(tr.Text, "*/") {
				innerEnd -= 2
			}
			out = append(out, FoldRange{
				Span:  tr.Span,
				Inner: source.Span{File: tr.Span.File, Start: tr.Span.Start + 2, End: innerEnd},
			})
		}
	}
	return out
}

// foldRangeOf locates the node's '{' ... '}' pair. Single-line regions
// still fold; incomplete bodies (missing '}') do not.
func foldRangeOf(n *syntax.Node) (FoldRange, bool) {
	var open, close *source.Span
	for _, c := range n.Children {
		if c.Tok == nil {
			continue
		}
		switch c.Tok.Text {
		case "{":
			if open == nil {
				sp := c.Tok.Span
				open = &sp
			}
		case "}":
			sp := c.Tok.Span
			close = &sp
		}
	}
	if open == nil || close == nil || close.Start < open.End {
		return FoldRange{}, false
	}
	return FoldRange{
		Span:  source.Span{File: open.File, Start: open.Start, End: close.End},
		Inner: source.Span{File: open.File, Start: open.End, End: close.Start},
	}, true
}
