package token

import (
	"wgslkit/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, UintLit, FloatLit, BoolLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwImport, KwUse, KwFrom, KwAs, KwConst, KwOverride, KwType, KwStruct,
		KwFn, KwVar, KwLet, KwIf, KwElse, KwSwitch, KwCase, KwDefault,
		KwFallthrough, KwLoop, KwContinuing, KwFor, KwReturn, KwBreak,
		KwContinue, KwDiscard, KwBitcast, KwAddressSpace, KwAccessMode,
		KwTexture:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Amp, Pipe, Caret, Tilde, Bang,
		Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, AmpAssign, PipeAssign, CaretAssign, ShlAssign,
		ShrAssign, PlusPlus, MinusMinus, EqEq, BangEq, Lt, LtEq, Gt, GtEq,
		Shl, Shr, AndAnd, OrOr, Arrow, Colon, ColonColon, Semicolon, Comma,
		Dot, At, LParen, RParen, LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsIdentLike reports whether the token was spelled like an identifier
// before specialization (any of the six classification outcomes).
func (t Token) IsIdentLike() bool {
	switch t.Kind {
	case Ident, TypeName, Reserved, Directive, BoolLit:
		return true
	default:
		return t.IsKeyword()
	}
}

// IsAssignOp reports whether the token is '=' or a compound assignment.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, AmpAssign, PipeAssign, CaretAssign, ShlAssign,
		ShrAssign:
		return true
	default:
		return false
	}
}
