package diag

import (
	"fmt"
)

// Code is a stable numeric diagnostic identifier. Lexical codes live in the
// 1000 range, syntactic codes in the 2000 range.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedEOF      Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectIdentifier   Code = 2004
	SynExpectColon        Code = 2005
	SynExpectType         Code = 2006
	SynExpectExpression   Code = 2007
	SynExpectLBrace       Code = 2008
	SynExpectRBrace       Code = 2009
	SynExpectLParen       Code = 2010
	SynExpectRParen       Code = 2011
	SynExpectRBracket     Code = 2012
	SynExpectLvalue       Code = 2013
	SynUnexpectedTopLevel Code = 2014
	SynDirectiveAfterDecl Code = 2015
	SynEmptyImportGroup   Code = 2016
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexInfo:                     "lexical note",
	LexUnknownChar:              "character matches no token rule",
	LexUnterminatedString:       "string literal is not terminated",
	LexUnterminatedBlockComment: "block comment is not terminated",
	LexBadNumber:                "malformed numeric literal",
	SynInfo:                     "syntactic note",
	SynUnexpectedToken:          "unexpected token",
	SynUnexpectedEOF:            "unexpected end of input",
	SynExpectSemicolon:          "expected ';'",
	SynExpectIdentifier:         "expected identifier",
	SynExpectColon:              "expected ':'",
	SynExpectType:               "expected type",
	SynExpectExpression:         "expected expression",
	SynExpectLBrace:             "expected '{'",
	SynExpectRBrace:             "expected '}'",
	SynExpectLParen:             "expected '('",
	SynExpectRParen:             "expected ')'",
	SynExpectRBracket:           "expected ']'",
	SynExpectLvalue:             "expected assignable expression",
	SynUnexpectedTopLevel:       "unexpected top-level construct",
	SynDirectiveAfterDecl:       "directive must precede all declarations",
	SynEmptyImportGroup:         "empty import group",
}

// ID returns the short stable identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

// Title returns the human description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
