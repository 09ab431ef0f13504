// Package asttest builds random, well-formed trees for tests and keeps
// count of every node it made.
package asttest

import (
	"fmt"
	"math/rand"

	"github.com/pontaoski/astdot/ast"
	"github.com/pontaoski/astdot/lexeme"
)

type Generator struct {
	rand *rand.Rand

	// MaxDepth bounds block and expression nesting.
	MaxDepth int

	// Nodes is the number of nodes built so far.
	Nodes int
	// TrueLiterals is how many of them are `true` literals.
	TrueLiterals int
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rand: rand.New(rand.NewSource(seed)), MaxDepth: 3}
}

func (g *Generator) line() int {
	return 1 + g.rand.Intn(200)
}

func (g *Generator) name() string {
	return fmt.Sprintf("v%d", g.rand.Intn(10))
}

func (g *Generator) Literal() *ast.Literal {
	g.Nodes++
	var p lexeme.LiteralPayload
	switch g.rand.Intn(5) {
	case 0:
		p = lexeme.Int(g.rand.Int63n(1000))
	case 1:
		p = lexeme.Float(g.rand.Float64() * 100)
	case 2:
		p = lexeme.Character('a' + rune(g.rand.Intn(26)))
	case 3:
		b := g.rand.Intn(2) == 0
		if b {
			g.TrueLiterals++
		}
		p = lexeme.Bool(b)
	default:
		p = lexeme.String(g.name())
	}
	return ast.NewLiteral(lexeme.NewLiteral(g.line(), p))
}

func (g *Generator) IntLiteral() *ast.Literal {
	g.Nodes++
	return ast.NewLiteral(lexeme.NewLiteral(g.line(), lexeme.Int(g.rand.Int63n(32))))
}

func (g *Generator) Identifier() *ast.Identifier {
	g.Nodes++
	return ast.NewIdentifier(lexeme.NewIdentifier(g.line(), g.name()))
}

func (g *Generator) op(ops ...string) lexeme.Value {
	op := ops[g.rand.Intn(len(ops))]
	if len(op) == 1 {
		return lexeme.NewSpecialChar(g.line(), rune(op[0]))
	}
	return lexeme.NewKeyword(g.line(), op)
}

func (g *Generator) Expression(depth int) ast.Expression {
	if depth >= g.MaxDepth {
		if g.rand.Intn(2) == 0 {
			return g.Literal()
		}
		return g.Identifier()
	}

	switch g.rand.Intn(7) {
	case 0:
		return g.Literal()
	case 1:
		return g.Identifier()
	case 2:
		name := g.Identifier()
		index := g.Expression(depth + 1)
		g.Nodes++
		return ast.NewIndexedAccess(name, index)
	case 3:
		var args []ast.Expression
		for i := g.rand.Intn(4); i > 0; i-- {
			args = append(args, g.Expression(depth+1))
		}
		g.Nodes++
		return ast.NewCall(lexeme.NewIdentifier(g.line(), g.name()), args)
	case 4:
		operand := g.Expression(depth + 1)
		g.Nodes++
		return ast.NewUnaryOp(g.op("-", "!", "&", "*", "?", "#"), operand)
	case 5:
		left := g.Expression(depth + 1)
		right := g.Expression(depth + 1)
		g.Nodes++
		return ast.NewBinaryOp(g.op("+", "-", "*", "/", "<=", ">=", "==", "&&", "||"), left, right)
	default:
		cond := g.Expression(depth + 1)
		then := g.Expression(depth + 1)
		els := g.Expression(depth + 1)
		g.Nodes++
		return ast.NewTernaryOp(cond, then, els)
	}
}

func (g *Generator) StorageAccess(depth int) ast.StorageAccess {
	if g.rand.Intn(2) == 0 {
		return g.Identifier()
	}
	name := g.Identifier()
	index := g.Expression(depth + 1)
	g.Nodes++
	return ast.NewIndexedAccess(name, index)
}

func (g *Generator) InitVar() *ast.InitVar {
	target := g.Identifier()
	var value ast.Initializer
	if g.rand.Intn(2) == 0 {
		value = g.Literal()
	} else {
		value = g.Identifier()
	}
	g.Nodes++
	return ast.NewInitVar(target, value)
}

func (g *Generator) SetVar(depth int) *ast.SetVar {
	target := g.StorageAccess(depth)
	value := g.Expression(depth + 1)
	g.Nodes++
	return ast.NewSetVar(target, value)
}

func (g *Generator) Command(depth int) ast.Command {
	n := 11
	if depth >= g.MaxDepth {
		n = 8 // no nested blocks
	}

	switch g.rand.Intn(n) {
	case 0:
		return g.InitVar()
	case 1:
		return g.SetVar(depth)
	case 2:
		value := g.Expression(depth + 1)
		g.Nodes++
		kw := "output"
		if g.rand.Intn(2) == 0 {
			kw = "input"
		}
		return ast.NewIO(lexeme.NewKeyword(g.line(), kw), value)
	case 3:
		var args []ast.Expression
		for i := g.rand.Intn(3); i > 0; i-- {
			args = append(args, g.Expression(depth+1))
		}
		g.Nodes++
		return ast.NewCall(lexeme.NewIdentifier(g.line(), g.name()), args)
	case 4:
		target := g.StorageAccess(depth)
		amount := g.IntLiteral()
		g.Nodes++
		return ast.NewShift(g.op("<<", ">>"), target, amount)
	case 5:
		value := g.Expression(depth + 1)
		g.Nodes++
		return ast.NewReturn(value)
	case 6:
		g.Nodes++
		return ast.NewBreak()
	case 7:
		g.Nodes++
		return ast.NewContinue()
	case 8:
		cond := g.Expression(depth + 1)
		then := g.Block(depth + 1)
		var els ast.Command
		if g.rand.Intn(2) == 0 {
			els = g.Block(depth + 1)
		}
		g.Nodes++
		return ast.NewIf(cond, then, els)
	case 9:
		start := g.InitVar()
		cond := g.Expression(depth + 1)
		step := g.SetVar(depth + 1)
		body := g.Block(depth + 1)
		g.Nodes++
		return ast.NewFor(start, cond, step, body)
	default:
		cond := g.Expression(depth + 1)
		body := g.Block(depth + 1)
		g.Nodes++
		return ast.NewWhile(cond, body)
	}
}

// Block returns the head of a chain of zero to four commands.
func (g *Generator) Block(depth int) ast.Command {
	var l ast.CommandList
	for i := g.rand.Intn(5); i > 0; i-- {
		l.Append(g.Command(depth))
	}
	return l.Head()
}

// Program returns the root of a chain of one to three functions.
func (g *Generator) Program() *ast.Function {
	var l ast.FunctionList
	for i := 1 + g.rand.Intn(3); i > 0; i-- {
		body := g.Block(0)
		g.Nodes++
		l.Append(ast.NewFunction(lexeme.NewIdentifier(g.line(), fmt.Sprintf("f%d", i)), body))
	}
	return l.Head()
}
