package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token (lex error, bad literal).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier with no table match.
	Ident
	// TypeName represents a predeclared type or texel-format name.
	TypeName
	// Reserved represents a word reserved for future use.
	Reserved
	// Directive represents the 'enable' directive word.
	Directive

	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwOverride represents the 'override' keyword.
	KwOverride // override
	// KwType represents the 'type' keyword.
	KwType // type
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefault represents the 'default' keyword.
	KwDefault // default
	// KwFallthrough represents the 'fallthrough' keyword.
	KwFallthrough // fallthrough
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwContinuing represents the 'continuing' keyword.
	KwContinuing // continuing
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDiscard represents the 'discard' keyword.
	KwDiscard // discard
	// KwBitcast represents the 'bitcast' keyword.
	KwBitcast // bitcast
	// KwAddressSpace represents an address-space word (function, private,
	// workgroup, uniform, storage).
	KwAddressSpace
	// KwAccessMode represents an access-mode word (read, write, read_write).
	KwAccessMode
	// KwTexture represents a texture-kind keyword (texture_external,
	// texture_depth_* and friends).
	KwTexture

	// IntLit represents a signed integer literal token.
	IntLit
	// UintLit represents an unsigned integer literal token ('u' suffix).
	UintLit
	// FloatLit represents a float literal token.
	FloatLit
	// BoolLit represents 'true' or 'false'.
	BoolLit
	// StringLit represents a string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Bang represents the bang operator token.
	Bang // !
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// ShlAssign represents the shl assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign operator token.
	ShrAssign // >>=
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// Shl represents the shl operator token.
	Shl // <<
	// Shr represents the shr operator token.
	Shr // >>
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||
	// Arrow represents the arrow operator token.
	Arrow // ->
	// Colon represents the colon operator token.
	Colon // :
	// ColonColon represents the colon colon operator token.
	ColonColon // ::
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Comma represents the comma operator token.
	Comma // ,
	// Dot represents the dot operator token.
	Dot // .
	// At represents the at operator token.
	At // @
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	Ident:          "Ident",
	TypeName:       "TypeName",
	Reserved:       "Reserved",
	Directive:      "Directive",
	KwImport:       "import",
	KwUse:          "use",
	KwFrom:         "from",
	KwAs:           "as",
	KwConst:        "const",
	KwOverride:     "override",
	KwType:         "type",
	KwStruct:       "struct",
	KwFn:           "fn",
	KwVar:          "var",
	KwLet:          "let",
	KwIf:           "if",
	KwElse:         "else",
	KwSwitch:       "switch",
	KwCase:         "case",
	KwDefault:      "default",
	KwFallthrough:  "fallthrough",
	KwLoop:         "loop",
	KwContinuing:   "continuing",
	KwFor:          "for",
	KwReturn:       "return",
	KwBreak:        "break",
	KwContinue:     "continue",
	KwDiscard:      "discard",
	KwBitcast:      "bitcast",
	KwAddressSpace: "AddressSpace",
	KwAccessMode:   "AccessMode",
	KwTexture:      "TextureKind",
	IntLit:         "IntLit",
	UintLit:        "UintLit",
	FloatLit:       "FloatLit",
	BoolLit:        "BoolLit",
	StringLit:      "StringLit",
	Plus:           "+",
	Minus:          "-",
	Star:           "*",
	Slash:          "/",
	Percent:        "%",
	Amp:            "&",
	Pipe:           "|",
	Caret:          "^",
	Tilde:          "~",
	Bang:           "!",
	Assign:         "=",
	PlusAssign:     "+=",
	MinusAssign:    "-=",
	StarAssign:     "*=",
	SlashAssign:    "/=",
	PercentAssign:  "%=",
	AmpAssign:      "&=",
	PipeAssign:     "|=",
	CaretAssign:    "^=",
	ShlAssign:      "<<=",
	ShrAssign:      ">>=",
	PlusPlus:       "++",
	MinusMinus:     "--",
	EqEq:           "==",
	BangEq:         "!=",
	Lt:             "<",
	LtEq:           "<=",
	Gt:             ">",
	GtEq:           ">=",
	Shl:            "<<",
	Shr:            ">>",
	AndAnd:         "&&",
	OrOr:           "||",
	Arrow:          "->",
	Colon:          ":",
	ColonColon:     "::",
	Semicolon:      ";",
	Comma:          ",",
	Dot:            ".",
	At:             "@",
	LParen:         "(",
	RParen:         ")",
	LBrace:         "{",
	RBrace:         "}",
	LBracket:       "[",
	RBracket:       "]",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
