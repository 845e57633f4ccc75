package editor

import (
	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
	"wgslkit/internal/token"
)

// BracketPair is a matched open/close token pair.
type BracketPair struct {
	Open  source.Span
	Close source.Span
}

var bracketMatch = map[token.Kind]token.Kind{
	token.LParen:   token.RParen,
	token.LBrace:   token.RBrace,
	token.LBracket: token.RBracket,
}

// BracketPairs returns every matched bracket pair in the tree. Pairing
// works on the flat token stream with one stack per bracket flavor, so
// an unbalanced bracket simply stays unpaired instead of skewing the
// rest of the file.
func BracketPairs(tree *syntax.Tree) []BracketPair {
	var out []BracketPair
	stacks := map[token.Kind][]source.Span{}
	for _, tok := range tree.Tokens() {
		if _, isOpen := bracketMatch[tok.Kind]; isOpen {
			stacks[tok.Kind] = append(stacks[tok.Kind], tok.Span)
			continue
		}
		for open, close := range bracketMatch {
			if tok.Kind != close {
				continue
			}
			stack := stacks[open]
			if len(stack) == 0 {
				break
			}
			out = append(out, BracketPair{Open: stack[len(stack)-1], Close: tok.Span})
			stacks[open] = stack[:len(stack)-1]
			break
		}
	}
	return out
}

// MatchingBracket returns the span of the partner bracket for the
// bracket token at the given offset. ok is false when the offset is not
// on a bracket or its partner is missing.
func MatchingBracket(tree *syntax.Tree, off uint32) (source.Span, bool) {
	for _, pair := range BracketPairs(tree) {
		if pair.Open.Contains(off) {
			return pair.Close, true
		}
		if pair.Close.Contains(off) {
			return pair.Open, true
		}
	}
	return source.Span{}, false
}
