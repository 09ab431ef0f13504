package lexeme

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	SpecialChar Kind = iota
	SpecialKeyword
	Identifier
	IntLiteral
	FloatLiteral
	CharLiteral
	BoolLiteral
	StringLiteral
)

func (k Kind) String() string {
	data := map[Kind]string{
		SpecialChar:    "SpecialChar",
		SpecialKeyword: "SpecialKeyword",
		Identifier:     "Identifier",
		IntLiteral:     "IntLiteral",
		FloatLiteral:   "FloatLiteral",
		CharLiteral:    "CharLiteral",
		BoolLiteral:    "BoolLiteral",
		StringLiteral:  "StringLiteral",
	}
	if s, ok := data[k]; ok {
		return s
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Payload is the sum of everything a Value can carry. The Kind of a Value
// is a function of its payload's type.
type Payload interface {
	is_Payload()
}

// LiteralPayload is the subset of payloads a literal can be built from.
type LiteralPayload interface {
	Payload
	is_LiteralPayload()
}

type Char rune
type Keyword string
type Name string
type Int int64
type Float float64
type Character rune
type Bool bool
type String string

func (Char) is_Payload()      {}
func (Keyword) is_Payload()   {}
func (Name) is_Payload()      {}
func (Int) is_Payload()       {}
func (Float) is_Payload()     {}
func (Character) is_Payload() {}
func (Bool) is_Payload()      {}
func (String) is_Payload()    {}

func (Int) is_LiteralPayload()       {}
func (Float) is_LiteralPayload()     {}
func (Character) is_LiteralPayload() {}
func (Bool) is_LiteralPayload()      {}
func (String) is_LiteralPayload()    {}

// Value is the lexical value of one lexeme. It cannot be changed once built.
type Value struct {
	line    int
	payload Payload
}

func NewLiteral(line int, p LiteralPayload) Value {
	return Value{line: line, payload: p}
}

func NewIdentifier(line int, name string) Value {
	return Value{line: line, payload: Name(name)}
}

func NewKeyword(line int, token string) Value {
	return Value{line: line, payload: Keyword(token)}
}

func NewSpecialChar(line int, r rune) Value {
	return Value{line: line, payload: Char(r)}
}

func (v Value) Line() int        { return v.line }
func (v Value) Payload() Payload { return v.payload }

// Valid reports whether v was built by one of the constructors.
func (v Value) Valid() bool { return v.payload != nil }

func (v Value) Kind() Kind {
	switch v.payload.(type) {
	case Char:
		return SpecialChar
	case Keyword:
		return SpecialKeyword
	case Name:
		return Identifier
	case Int:
		return IntLiteral
	case Float:
		return FloatLiteral
	case Character:
		return CharLiteral
	case Bool:
		return BoolLiteral
	case String:
		return StringLiteral
	}

	panic("lexeme: value has no payload")
}

// Text renders the payload the way it is shown in graph labels.
func (v Value) Text() string {
	switch p := v.payload.(type) {
	case Char:
		return string(rune(p))
	case Keyword:
		return string(p)
	case Name:
		return string(p)
	case Int:
		return strconv.FormatInt(int64(p), 10)
	case Float:
		return fmt.Sprintf("%f", float64(p))
	case Character:
		return string(rune(p))
	case Bool:
		return strconv.FormatBool(bool(p))
	case String:
		return string(p)
	}

	return ""
}

func (v Value) String() string {
	if !v.Valid() {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%q)@%d", v.Kind(), v.Text(), v.line)
}
