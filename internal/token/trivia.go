package token

import "wgslkit/internal/source"

// TriviaKind classifies the non-token spans between significant tokens.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is whitespace or a comment: invisible to the grammar, kept for
// exact source reconstruction.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
