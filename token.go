// token.go
//
// Token is the value record the scanner emits and the parser consumes: a
// kind drawn from a closed set, the exact source slice that produced it, an
// optional literal payload, and the 1-based source line it started on.
package oxente

import "fmt"

// TokenType is the closed set of lexical categories Oxente recognizes.
type TokenType int

const (
	// Single-character tokens.
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	DOT
	MINUS
	PLUS
	SEMICOLON
	SLASH
	STAR
	QUESTION
	COLON

	// One-or-two-character tokens.
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	GREATER
	GREATER_EQUAL
	LESS
	LESS_EQUAL

	// Literals.
	IDENTIFIER
	STRING
	NUMBER

	// Keywords.
	AND
	CLASS
	ELSE
	FALSE
	FUN
	FOR
	IF
	NIL
	OR
	PRINT
	RETURN
	SUPER
	THIS
	TRUE
	VAR
	WHILE
	BREAK

	EOF
)

var tokenNames = map[TokenType]string{
	LEFT_PAREN: "LEFT_PAREN", RIGHT_PAREN: "RIGHT_PAREN",
	LEFT_BRACE: "LEFT_BRACE", RIGHT_BRACE: "RIGHT_BRACE",
	COMMA: "COMMA", DOT: "DOT", MINUS: "MINUS", PLUS: "PLUS",
	SEMICOLON: "SEMICOLON", SLASH: "SLASH", STAR: "STAR",
	QUESTION: "QUESTION", COLON: "COLON",
	BANG: "BANG", BANG_EQUAL: "BANG_EQUAL",
	EQUAL: "EQUAL", EQUAL_EQUAL: "EQUAL_EQUAL",
	GREATER: "GREATER", GREATER_EQUAL: "GREATER_EQUAL",
	LESS: "LESS", LESS_EQUAL: "LESS_EQUAL",
	IDENTIFIER: "IDENTIFIER", STRING: "STRING", NUMBER: "NUMBER",
	AND: "AND", CLASS: "CLASS", ELSE: "ELSE", FALSE: "FALSE",
	FUN: "FUN", FOR: "FOR", IF: "IF", NIL: "NIL", OR: "OR",
	PRINT: "PRINT", RETURN: "RETURN", SUPER: "SUPER", THIS: "THIS",
	TRUE: "TRUE", VAR: "VAR", WHILE: "WHILE", BREAK: "BREAK",
	EOF: "EOF",
}

func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// keywords reserves every word the grammar or the closed keyword table
// names, including and/or/class/super/this: they are reserved so they
// cannot be used as identifiers even though the grammar never produces a
// rule that consumes and/or/class/super/this (see spec §9 open questions).
var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
	"break":  BREAK,
}

// Token is the smallest meaningful lexical unit produced by the scanner.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any // float64 for NUMBER, string for STRING, nil otherwise
	Line    int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
}
