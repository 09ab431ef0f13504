package types

import (
	"fmt"

	"github.com/pontaoski/astdot/lexeme"
)

type Position struct {
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota
	ILLEGAL

	// special characters
	COMMA
	SEMICOLON
	COLON
	LPAREN
	RPAREN
	LSQUARE
	RSQUARE
	LBRACE
	RBRACE
	PLUS
	MINUS
	PIPE
	STAR
	SLASH
	LESS
	GREATER
	EQUALS
	BANG
	AMPERSAND
	PERCENT
	HASH
	CARET
	DOT
	DOLLAR
	QUESTION

	// composite operators
	LE
	GE
	EQ
	NE
	AND
	OR
	SHL
	SHR

	// keywords
	KWINT
	KWFLOAT
	KWBOOL
	KWCHAR
	KWSTRING
	IF
	THEN
	ELSE
	WHILE
	DO
	INPUT
	OUTPUT
	RETURN
	CONST
	STATIC
	FOR
	BREAK
	CONTINUE

	IDENT

	INT
	FLOAT
	CHAR
	STRING
	TRUE
	FALSE
)

var kindNames = map[TokenKind]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	COLON:     "COLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LSQUARE:   "LSQUARE",
	RSQUARE:   "RSQUARE",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	PIPE:      "PIPE",
	STAR:      "STAR",
	SLASH:     "SLASH",
	LESS:      "LESS",
	GREATER:   "GREATER",
	EQUALS:    "EQUALS",
	BANG:      "BANG",
	AMPERSAND: "AMPERSAND",
	PERCENT:   "PERCENT",
	HASH:      "HASH",
	CARET:     "CARET",
	DOT:       "DOT",
	DOLLAR:    "DOLLAR",
	QUESTION:  "QUESTION",
	LE:        "LE",
	GE:        "GE",
	EQ:        "EQ",
	NE:        "NE",
	AND:       "AND",
	OR:        "OR",
	SHL:       "SHL",
	SHR:       "SHR",
	KWINT:     "KWINT",
	KWFLOAT:   "KWFLOAT",
	KWBOOL:    "KWBOOL",
	KWCHAR:    "KWCHAR",
	KWSTRING:  "KWSTRING",
	IF:        "IF",
	THEN:      "THEN",
	ELSE:      "ELSE",
	WHILE:     "WHILE",
	DO:        "DO",
	INPUT:     "INPUT",
	OUTPUT:    "OUTPUT",
	RETURN:    "RETURN",
	CONST:     "CONST",
	STATIC:    "STATIC",
	FOR:       "FOR",
	BREAK:     "BREAK",
	CONTINUE:  "CONTINUE",
	IDENT:     "IDENT",
	INT:       "INT",
	FLOAT:     "FLOAT",
	CHAR:      "CHAR",
	STRING:    "STRING",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
}

func (t TokenKind) String() string {
	if s, ok := kindNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

// Token is one lexeme. Value is the lexical value handed to the tree
// builder; it is the zero Value for punctuation the tree never stores.
type Token struct {
	Kind     TokenKind
	Location Span
	Value    lexeme.Value
}
