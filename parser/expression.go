package parser

import (
	"github.com/pontaoski/astdot/ast"
	"github.com/pontaoski/astdot/types"
)

type precedence struct {
	level int
	right bool
}

var binaryOperators = map[types.TokenKind]precedence{
	types.OR:        {1, false},
	types.AND:       {2, false},
	types.PIPE:      {3, false},
	types.AMPERSAND: {4, false},
	types.EQ:        {5, false},
	types.NE:        {5, false},
	types.LESS:      {6, false},
	types.GREATER:   {6, false},
	types.LE:        {6, false},
	types.GE:        {6, false},
	types.PLUS:      {7, false},
	types.MINUS:     {7, false},
	types.STAR:      {8, false},
	types.SLASH:     {8, false},
	types.PERCENT:   {8, false},
	types.CARET:     {9, true},
}

var unaryOperators = []types.TokenKind{
	types.PLUS, types.MINUS, types.BANG, types.AMPERSAND, types.STAR, types.QUESTION, types.HASH,
}

// parseExpression reads a full expression, ternaries included.
func (p *Parser) parseExpression() ast.Expression {
	cond := p.parseBinary(1)

	if !p.l.PeekIs(types.QUESTION) {
		return cond
	}
	p.l.LexExpecting(types.QUESTION)
	then := p.parseExpression()
	p.l.LexExpecting(types.COLON)
	els := p.parseExpression()

	return ast.NewTernaryOp(cond, then, els)
}

func (p *Parser) parseBinary(min int) ast.Expression {
	left := p.parseUnary()

	for {
		tok, _ := p.l.Peek()
		prec, ok := binaryOperators[tok.Kind]
		if !ok || prec.level < min {
			return left
		}
		p.l.Lex()

		next := prec.level + 1
		if prec.right {
			next = prec.level
		}
		left = ast.NewBinaryOp(tok.Value, left, p.parseBinary(next))
	}
}

func (p *Parser) parseUnary() ast.Expression {
	if ok, tok, _ := p.l.PeekIsWithRet(unaryOperators...); ok {
		p.l.Lex()
		return ast.NewUnaryOp(tok.Value, p.parseUnary())
	}

	return p.parseExpressionLeaf()
}

func (p *Parser) parseExpressionLeaf() ast.Expression {
	tok, _ := p.l.LexExpecting(append([]types.TokenKind{types.IDENT, types.LPAREN}, literalKinds...)...)

	switch tok.Kind {
	case types.LPAREN:
		expr := p.parseExpression()
		p.l.LexExpecting(types.RPAREN)
		return expr
	case types.IDENT:
		if p.l.PeekIs(types.LPAREN) {
			return p.parseCall(tok)
		}
		if p.l.PeekIs(types.LSQUARE) {
			return p.parseIndex(tok)
		}
		return ast.NewIdentifier(tok.Value)
	}

	return ast.NewLiteral(tok.Value)
}

// parseCall is called with the parser past the function name.
func (p *Parser) parseCall(name types.Token) *ast.FunctionCall {
	p.l.LexExpecting(types.LPAREN)
	var args []ast.Expression

	if !p.l.PeekIs(types.RPAREN) {
		for {
			args = append(args, p.parseExpression())

			if p.l.PeekIs(types.COMMA) {
				p.l.LexExpecting(types.COMMA)
				continue
			}
			break
		}
	}
	p.l.LexExpecting(types.RPAREN)

	return ast.NewCall(name.Value, args)
}

// parseIndex is called with the parser past the vector name.
func (p *Parser) parseIndex(name types.Token) *ast.IndexedAccess {
	p.l.LexExpecting(types.LSQUARE)
	index := p.parseExpression()
	p.l.LexExpecting(types.RSQUARE)

	return ast.NewIndexedAccess(ast.NewIdentifier(name.Value), index)
}
