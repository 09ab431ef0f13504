package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pontaoski/astdot/errors"
	"github.com/pontaoski/astdot/lexeme"
	"github.com/pontaoski/astdot/types"
)

type Lexer struct {
	pos          types.Position
	reader       *bufio.Reader
	peeked       *types.Token
	peekedString string
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

func (l *Lexer) Pos() types.Position {
	return l.pos
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

// read returns the next rune, and false at the end of the input.
func (l *Lexer) read() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}
	l.pos.Column++
	return r, true
}

func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos.Column--
}

// ahead returns the byte n places past the read position without consuming
// it, or 0 past the end. It must not be followed by backup.
func (l *Lexer) ahead(n int) byte {
	b, err := l.reader.Peek(n + 1)
	if err != nil || len(b) <= n {
		return 0
	}
	return b[n]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (l *Lexer) kinded(t types.TokenKind, v lexeme.Value) types.Token {
	return types.Token{
		Location: types.SingleCharSpan(l.pos),
		Kind:     t,
		Value:    v,
	}
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherChar(r rune) bool {
	return firstChar(r) || unicode.IsDigit(r)
}

var specialChars = map[rune]types.TokenKind{
	',': types.COMMA,
	';': types.SEMICOLON,
	':': types.COLON,
	'(': types.LPAREN,
	')': types.RPAREN,
	'[': types.LSQUARE,
	']': types.RSQUARE,
	'{': types.LBRACE,
	'}': types.RBRACE,
	'+': types.PLUS,
	'-': types.MINUS,
	'|': types.PIPE,
	'*': types.STAR,
	'/': types.SLASH,
	'<': types.LESS,
	'>': types.GREATER,
	'=': types.EQUALS,
	'!': types.BANG,
	'&': types.AMPERSAND,
	'%': types.PERCENT,
	'#': types.HASH,
	'^': types.CARET,
	'.': types.DOT,
	'$': types.DOLLAR,
	'?': types.QUESTION,
}

var compositeOperators = map[string]types.TokenKind{
	"<=": types.LE,
	">=": types.GE,
	"==": types.EQ,
	"!=": types.NE,
	"&&": types.AND,
	"||": types.OR,
	"<<": types.SHL,
	">>": types.SHR,
}

var keywords = map[string]types.TokenKind{
	"int":      types.KWINT,
	"float":    types.KWFLOAT,
	"bool":     types.KWBOOL,
	"char":     types.KWCHAR,
	"string":   types.KWSTRING,
	"if":       types.IF,
	"then":     types.THEN,
	"else":     types.ELSE,
	"while":    types.WHILE,
	"do":       types.DO,
	"input":    types.INPUT,
	"output":   types.OUTPUT,
	"return":   types.RETURN,
	"const":    types.CONST,
	"static":   types.STATIC,
	"for":      types.FOR,
	"break":    types.BREAK,
	"continue": types.CONTINUE,
	"true":     types.TRUE,
	"false":    types.FALSE,
}

func (l *Lexer) lexIdent() (types.Position, types.Position, string) {
	var lit string
	from := l.pos
	from.Column++
	to := from

	for {
		r, ok := l.read()
		if !ok {
			return from, to, lit
		}
		if !otherChar(r) {
			l.backup()
			return from, to, lit
		}
		lit += string(r)
		to = l.pos
	}
}

// lexNumber reads an integer or a float: digits, an optional fraction and an
// optional exponent.
func (l *Lexer) lexNumber() (types.Span, types.TokenKind, string) {
	from := l.pos
	from.Column++
	kind := types.INT
	var lit string

	digits := func() {
		for {
			r, ok := l.read()
			if !ok {
				return
			}
			if !unicode.IsDigit(r) {
				l.backup()
				return
			}
			lit += string(r)
		}
	}

	digits()

	if l.ahead(0) == '.' && isDigit(l.ahead(1)) {
		l.read()
		lit += "."
		kind = types.FLOAT
		digits()

		if e := l.ahead(0); e == 'e' || e == 'E' {
			switch {
			case isDigit(l.ahead(1)):
				l.read()
				lit += string(e)
				digits()
			case (l.ahead(1) == '+' || l.ahead(1) == '-') && isDigit(l.ahead(2)):
				l.read()
				sign, _ := l.read()
				lit += string(e) + string(sign)
				digits()
			}
		}
	}

	return types.Span{From: from, To: l.pos}, kind, lit
}

// lexQuoted reads up to the closing quote; the opening one has been read.
func (l *Lexer) lexQuoted(quote rune) (types.Span, string) {
	from := l.pos
	var lit string

	for {
		r, ok := l.read()
		if !ok || r == '\n' {
			panic(errors.InvalidLiteral{
				Text:     string(quote) + lit,
				Reason:   io.ErrUnexpectedEOF,
				Location: types.Span{From: from, To: l.pos},
			})
		}
		if r == quote {
			return types.Span{From: from, To: l.pos}, lit
		}
		lit += string(r)
	}
}

func (l *Lexer) skipComment(block bool) {
	for {
		r, ok := l.read()
		if !ok {
			return
		}
		if r == '\n' {
			l.newline()
			if !block {
				return
			}
			continue
		}
		if block && r == '*' && l.ahead(0) == '/' {
			l.read()
			return
		}
	}
}

func (l *Lexer) Peek() (types.Token, string) {
	if l.peeked != nil {
		return *l.peeked, l.peekedString
	}

	tok, str := l.Lex()
	l.peeked = &tok
	l.peekedString = str

	return tok, str
}

func (l *Lexer) PeekIs(k ...types.TokenKind) bool {
	token, _ := l.Peek()
	for _, kind := range k {
		if token.Kind == kind {
			return true
		}
	}

	return false
}

func (l *Lexer) PeekIsWithRet(k ...types.TokenKind) (bool, types.Token, string) {
	token, lit := l.Peek()
	for _, kind := range k {
		if token.Kind == kind {
			return true, token, lit
		}
	}

	return false, types.Token{}, ""
}

func (l *Lexer) LexExpecting(k ...types.TokenKind) (types.Token, string) {
	token, lit := l.Lex()
	for _, kind := range k {
		if token.Kind == kind {
			return token, lit
		}
	}

	if len(k) == 1 {
		panic(errors.ExpectedKindGotKind{
			Expected: k[0],
			Got:      token.Kind,
			Location: token.Location,
		})
	}

	panic(errors.ExpectedOneOfKindGotKind{
		Expected: k,
		Got:      token.Kind,
		Location: token.Location,
	})
}

func (l *Lexer) Lex() (types.Token, string) {
	if l.peeked != nil {
		defer func() { l.peeked = nil }()
		return *l.peeked, l.peekedString
	}

	for {
		r, ok := l.read()
		if !ok {
			return l.kinded(types.EOF, lexeme.Value{}), ""
		}
		line := l.pos.Line

		switch {
		case r == '\n':
			l.newline()
			continue
		case unicode.IsSpace(r):
			continue
		case r == '/' && (l.ahead(0) == '/' || l.ahead(0) == '*'):
			next, _ := l.read()
			l.skipComment(next == '*')
			continue
		}

		if strings.ContainsRune("<>=!&|", r) {
			op := string(r) + string(l.ahead(0))
			if kind, ok := compositeOperators[op]; ok {
				from := l.pos
				l.read()
				return types.Token{
					Kind:     kind,
					Location: types.Span{From: from, To: l.pos},
					Value:    lexeme.NewKeyword(line, op),
				}, op
			}
		}

		if kind, ok := specialChars[r]; ok {
			return l.kinded(kind, lexeme.NewSpecialChar(line, r)), string(r)
		}

		switch {
		case r == '\'':
			span, lit := l.lexQuoted('\'')
			runes := []rune(lit)
			if len(runes) != 1 {
				panic(errors.InvalidLiteral{
					Text:     "'" + lit + "'",
					Reason:   strconv.ErrSyntax,
					Location: span,
				})
			}
			return types.Token{
				Kind:     types.CHAR,
				Location: span,
				Value:    lexeme.NewLiteral(line, lexeme.Character(runes[0])),
			}, lit
		case r == '"':
			span, lit := l.lexQuoted('"')
			return types.Token{
				Kind:     types.STRING,
				Location: span,
				Value:    lexeme.NewLiteral(line, lexeme.String(lit)),
			}, lit
		case unicode.IsDigit(r):
			l.backup()
			span, kind, lit := l.lexNumber()
			return types.Token{
				Kind:     kind,
				Location: span,
				Value:    numberValue(line, kind, lit, span),
			}, lit
		case firstChar(r):
			l.backup()
			from, to, lit := l.lexIdent()
			span := types.Span{From: from, To: to}

			kind, ok := keywords[lit]
			if !ok {
				return types.Token{
					Kind:     types.IDENT,
					Location: span,
					Value:    lexeme.NewIdentifier(line, lit),
				}, lit
			}

			var v lexeme.Value
			switch kind {
			case types.TRUE:
				v = lexeme.NewLiteral(line, lexeme.Bool(true))
			case types.FALSE:
				v = lexeme.NewLiteral(line, lexeme.Bool(false))
			default:
				v = lexeme.NewKeyword(line, lit)
			}
			return types.Token{Kind: kind, Location: span, Value: v}, lit
		}

		panic(errors.UnexpectedCharacter{
			Char:     r,
			Location: types.SingleCharSpan(l.pos),
		})
	}
}

func numberValue(line int, kind types.TokenKind, lit string, span types.Span) lexeme.Value {
	if kind == types.FLOAT {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			panic(errors.InvalidLiteral{Text: lit, Reason: err, Location: span})
		}
		return lexeme.NewLiteral(line, lexeme.Float(f))
	}

	i, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		panic(errors.InvalidLiteral{Text: lit, Reason: err, Location: span})
	}
	return lexeme.NewLiteral(line, lexeme.Int(i))
}

type testToken struct {
	t types.Token
	s string
}

func (l *Lexer) lexToEOF() (ret []testToken) {
	t, s := l.Lex()
	for t.Kind != types.EOF {
		ret = append(ret, testToken{
			t: t,
			s: s,
		})
		t, s = l.Lex()
	}
	return
}
