package parser

import "wgslkit/internal/token"

// Binary operator precedence, higher binds tighter. Short-circuit ops are
// the loosest, then bitwise, relational (which includes equality), shift,
// additive, multiplicative. All levels are left-associative.
const (
	precLowest = iota
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

var binPrec = map[token.Kind]int{
	token.OrOr:    precLogicalOr,
	token.AndAnd:  precLogicalAnd,
	token.Pipe:    precBitOr,
	token.Caret:   precBitXor,
	token.Amp:     precBitAnd,
	token.EqEq:    precRelational,
	token.BangEq:  precRelational,
	token.Lt:      precRelational,
	token.Gt:      precRelational,
	token.LtEq:    precRelational,
	token.GtEq:    precRelational,
	token.Shl:     precShift,
	token.Shr:     precShift,
	token.Plus:    precAdditive,
	token.Minus:   precAdditive,
	token.Star:    precMultiplicative,
	token.Slash:   precMultiplicative,
	token.Percent: precMultiplicative,
}

func isUnaryOp(k token.Kind) bool {
	switch k {
	case token.Minus, token.Bang, token.Tilde, token.Star, token.Amp:
		return true
	default:
		return false
	}
}
