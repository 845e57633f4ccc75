package lexer

import (
	"wgslkit/internal/token"
)

// Numeric literals, in rule priority Float > Uint > Int > Minus:
//   - int:   0, -?[1-9][0-9]*, -?0[xX][hex]+
//   - uint:  decimal/hex form with a mandatory 'u' suffix, no sign
//   - float: decimal with a mandatory '.' (either side of digits may be
//     empty), optional [eE][+-]?digits, optional 'f'; digits with a
//     mandatory exponent and no '.'; hex float -?0[xX]hex with a mandatory
//     fractional point or [pP][+-]?digits exponent, optional 'f'
//
// Malformed forms (leading zeros, bare "0x") are reported and emitted as a
// single Invalid token; lexing always continues.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	neg := lx.cursor.Eat('-')

	// ".5" / "-.5"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit after '.'")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishFloat(start)
	}

	// hex forms
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		sawDot := false
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sawDot = true
		}
		sawExp := lx.eatExponent('p', 'P')
		if sawDot || sawExp {
			lx.cursor.Eat('f')
			return lx.emit(token.FloatLit, start)
		}
		if digits == 0 {
			return lx.badNumber(start, "expected hex digits after '0x'")
		}
		if !neg && lx.cursor.Eat('u') {
			return lx.emit(token.UintLit, start)
		}
		return lx.emit(token.IntLit, start)
	}

	// decimal integer part (entry guarantees at least one digit here)
	firstDigit := lx.cursor.Peek()
	digits := 0
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
		digits++
	}

	// fraction -> float, e.g. "1.5" and "1."
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishFloat(start)
	}

	// no dot: mandatory exponent or 'f' suffix still make a float
	if lx.eatExponent('e', 'E') {
		lx.cursor.Eat('f')
		return lx.emit(token.FloatLit, start)
	}
	if lx.cursor.Eat('f') {
		return lx.emit(token.FloatLit, start)
	}

	if !neg && lx.cursor.Eat('u') {
		if firstDigit == '0' && digits > 1 {
			return lx.badNumber(start, "leading zeros are not allowed")
		}
		return lx.emit(token.UintLit, start)
	}

	if firstDigit == '0' && digits > 1 {
		return lx.badNumber(start, "leading zeros are not allowed")
	}
	return lx.emit(token.IntLit, start)
}

// finishFloat consumes an optional decimal exponent and 'f' suffix after
// the fractional part has been scanned.
func (lx *Lexer) finishFloat(start Mark) token.Token {
	lx.eatExponent('e', 'E')
	lx.cursor.Eat('f')
	return lx.emit(token.FloatLit, start)
}

// eatExponent consumes markLo/markHi [+-]? digits+ only when the whole
// form is present; a bare marker is left for the identifier rule.
func (lx *Lexer) eatExponent(markLo, markHi byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || (b0 != markLo && b0 != markHi) {
		// a bare trailing marker is not an exponent
		return false
	}
	if isDec(b1) {
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else if b1 == '+' || b1 == '-' {
		_, _, b2, ok3 := lx.cursor.Peek3()
		if !ok3 || !isDec(b2) {
			return false
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
	} else {
		return false
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return true
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.report("BadNumber", sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
