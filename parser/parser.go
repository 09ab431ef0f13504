// Package parser reads toy-language source and builds its syntax tree
// through the ast builder.
package parser

import (
	"io"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/astdot/ast"
	"github.com/pontaoski/astdot/lexer"
	"github.com/pontaoski/astdot/types"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/astdot", "parser")

var typeKeywords = []types.TokenKind{
	types.KWINT, types.KWFLOAT, types.KWBOOL, types.KWCHAR, types.KWSTRING,
}

var literalKinds = []types.TokenKind{
	types.INT, types.FLOAT, types.CHAR, types.STRING, types.TRUE, types.FALSE,
}

type Parser struct {
	l         *lexer.Lexer
	functions ast.FunctionList
}

func NewParser(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// Parse reads source text from r and returns the first function of the
// program. Global declarations are read and dropped.
func Parse(r io.Reader, filename string) (*ast.Function, error) {
	return NewParser(lexer.NewLexer(r, filename)).Parse()
}

func (p *Parser) Parse() (root *ast.Function, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if ok {
				err = tracerr.Wrap(rerr)
			} else {
				panic(r)
			}
		}
	}()

	for !p.l.PeekIs(types.EOF) {
		if p.l.PeekIs(types.STATIC) {
			p.l.Lex()
		}
		p.l.LexExpecting(typeKeywords...)
		name, lit := p.l.LexExpecting(types.IDENT)

		if !p.l.PeekIs(types.LPAREN) {
			p.parseGlobal()
			plog.Debugf("skipped global %s", lit)
			continue
		}

		p.parseParameters()
		p.l.LexExpecting(types.LBRACE)
		body := p.parseBlock()

		plog.Debugf("parsed function %s", lit)
		p.functions.Append(ast.NewFunction(name.Value, body))
	}

	return p.functions.Head(), nil
}

// parseGlobal is called after the type and first name of a global declaration.
func (p *Parser) parseGlobal() {
	for {
		if p.l.PeekIs(types.LSQUARE) {
			p.l.LexExpecting(types.LSQUARE)
			p.l.LexExpecting(types.INT)
			p.l.LexExpecting(types.RSQUARE)
		}
		tok, _ := p.l.LexExpecting(types.COMMA, types.SEMICOLON)
		if tok.Kind == types.SEMICOLON {
			return
		}
		p.l.LexExpecting(types.IDENT)
	}
}

func (p *Parser) parseParameters() {
	p.l.LexExpecting(types.LPAREN)
	if !p.l.PeekIs(types.RPAREN) {
		for {
			if p.l.PeekIs(types.CONST) {
				p.l.Lex()
			}
			p.l.LexExpecting(typeKeywords...)
			p.l.LexExpecting(types.IDENT)

			if p.l.PeekIs(types.COMMA) {
				p.l.LexExpecting(types.COMMA)
				continue
			}
			break
		}
	}
	p.l.LexExpecting(types.RPAREN)
}

// parseBlock should be called with the parser past the opening brace. It
// returns the first command of the block, or nil for an empty one.
func (p *Parser) parseBlock() ast.Command {
	var block ast.CommandList

	for !p.l.PeekIs(types.RBRACE) {
		if p.l.PeekIs(types.SEMICOLON) {
			p.l.LexExpecting(types.SEMICOLON)
			continue
		}

		cmd, terminated := p.parseCommand()
		block.Append(cmd)

		if !terminated {
			p.l.LexExpecting(types.SEMICOLON)
		}
	}
	p.l.LexExpecting(types.RBRACE)

	return block.Head()
}

// parseCommand returns the head of the commands one statement produced.
// terminated is true for statements that end in a block and so need no
// semicolon.
func (p *Parser) parseCommand() (cmd ast.Command, terminated bool) {
	tok, _ := p.l.Peek()

	switch tok.Kind {
	case types.STATIC, types.CONST, types.KWINT, types.KWFLOAT, types.KWBOOL, types.KWCHAR, types.KWSTRING:
		return p.parseLocal(), false
	case types.IDENT:
		return p.parseIdentCommand(), false
	case types.INPUT, types.OUTPUT:
		p.l.Lex()
		return ast.NewIO(tok.Value, p.parseExpression()), false
	case types.RETURN:
		p.l.Lex()
		return ast.NewReturn(p.parseExpression()), false
	case types.BREAK:
		p.l.Lex()
		return ast.NewBreak(), false
	case types.CONTINUE:
		p.l.Lex()
		return ast.NewContinue(), false
	case types.IF:
		return p.parseIf(), true
	case types.FOR:
		return p.parseFor(), true
	case types.WHILE:
		return p.parseWhile(), true
	case types.LBRACE:
		p.l.Lex()
		return p.parseBlock(), true
	}

	p.l.LexExpecting(
		types.STATIC, types.CONST, types.KWINT, types.KWFLOAT, types.KWBOOL, types.KWCHAR, types.KWSTRING,
		types.IDENT, types.INPUT, types.OUTPUT, types.RETURN, types.BREAK, types.CONTINUE,
		types.IF, types.FOR, types.WHILE, types.LBRACE,
	)
	panic("unreachable")
}

// parseLocal reads a local declaration. Only names declared with an
// initial value produce commands.
func (p *Parser) parseLocal() ast.Command {
	if p.l.PeekIs(types.STATIC) {
		p.l.Lex()
	}
	if p.l.PeekIs(types.CONST) {
		p.l.Lex()
	}
	p.l.LexExpecting(typeKeywords...)

	var inits ast.CommandList
	for {
		name, _ := p.l.LexExpecting(types.IDENT)
		if p.l.PeekIs(types.LE) {
			p.l.LexExpecting(types.LE)
			inits.Append(ast.NewInitVar(ast.NewIdentifier(name.Value), p.parseInitializer()))
		}

		if !p.l.PeekIs(types.COMMA) {
			return inits.Head()
		}
		p.l.LexExpecting(types.COMMA)
	}
}

func (p *Parser) parseInitializer() ast.Initializer {
	tok, _ := p.l.LexExpecting(append([]types.TokenKind{types.IDENT}, literalKinds...)...)
	if tok.Kind == types.IDENT {
		return ast.NewIdentifier(tok.Value)
	}
	return ast.NewLiteral(tok.Value)
}

// parseIdentCommand handles the commands that start with a name:
// assignment, shift and function call.
func (p *Parser) parseIdentCommand() ast.Command {
	name, _ := p.l.LexExpecting(types.IDENT)

	if p.l.PeekIs(types.LPAREN) {
		return p.parseCall(name)
	}

	var target ast.StorageAccess = ast.NewIdentifier(name.Value)
	if p.l.PeekIs(types.LSQUARE) {
		target = p.parseIndex(name)
	}

	tok, _ := p.l.LexExpecting(types.EQUALS, types.SHL, types.SHR)
	if tok.Kind == types.EQUALS {
		return ast.NewSetVar(target, p.parseExpression())
	}

	amount, _ := p.l.LexExpecting(types.INT)
	return ast.NewShift(tok.Value, target, ast.NewLiteral(amount.Value))
}

func (p *Parser) parseIf() ast.Command {
	p.l.LexExpecting(types.IF)
	p.l.LexExpecting(types.LPAREN)
	cond := p.parseExpression()
	p.l.LexExpecting(types.RPAREN)

	if p.l.PeekIs(types.THEN) {
		p.l.Lex()
	}
	p.l.LexExpecting(types.LBRACE)
	then := p.parseBlock()

	var els ast.Command
	if p.l.PeekIs(types.ELSE) {
		p.l.Lex()
		p.l.LexExpecting(types.LBRACE)
		els = p.parseBlock()
	}

	return ast.NewIf(cond, then, els)
}

func (p *Parser) parseFor() ast.Command {
	p.l.LexExpecting(types.FOR)
	p.l.LexExpecting(types.LPAREN)

	name, _ := p.l.LexExpecting(types.IDENT)
	p.l.LexExpecting(types.EQUALS)
	init := ast.NewInitVar(ast.NewIdentifier(name.Value), p.parseInitializer())
	p.l.LexExpecting(types.COLON)

	cond := p.parseExpression()
	p.l.LexExpecting(types.COLON)

	stepName, _ := p.l.LexExpecting(types.IDENT)
	var target ast.StorageAccess = ast.NewIdentifier(stepName.Value)
	if p.l.PeekIs(types.LSQUARE) {
		target = p.parseIndex(stepName)
	}
	p.l.LexExpecting(types.EQUALS)
	step := ast.NewSetVar(target, p.parseExpression())
	p.l.LexExpecting(types.RPAREN)

	p.l.LexExpecting(types.LBRACE)
	return ast.NewFor(init, cond, step, p.parseBlock())
}

func (p *Parser) parseWhile() ast.Command {
	p.l.LexExpecting(types.WHILE)
	p.l.LexExpecting(types.LPAREN)
	cond := p.parseExpression()
	p.l.LexExpecting(types.RPAREN)
	p.l.LexExpecting(types.DO)
	p.l.LexExpecting(types.LBRACE)

	return ast.NewWhile(cond, p.parseBlock())
}
