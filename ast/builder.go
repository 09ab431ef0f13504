package ast

import (
	"reflect"

	"github.com/pontaoski/astdot/errors"
	"github.com/pontaoski/astdot/lexeme"
	"github.com/ztrue/tracerr"
)

func isNil(n interface{}) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func aliased(n Node) {
	panic(tracerr.Wrap(errors.AliasedNode{Node: describe(n)}))
}

// claimAll makes owner the owner of every node in ns. Nil nodes are
// ignored. Nothing is claimed unless every node is free and none is passed
// twice.
func claimAll(owner Node, ns ...Node) {
	for i, n := range ns {
		if isNil(n) {
			continue
		}
		if n.header().owner != nil {
			aliased(n)
		}
		for _, prev := range ns[:i] {
			if !isNil(prev) && prev == n {
				aliased(n)
			}
		}
	}

	for _, n := range ns {
		if !isNil(n) {
			n.header().owner = owner
		}
	}
}

// root returns the unowned node at the top of the tree n belongs to.
func root(n Node) Node {
	for {
		owner := n.header().owner
		if owner == nil {
			return n
		}
		n = owner
	}
}

// the sum-type interfaces hold typed nils as non-nil values, so they are
// normalised before being stored.
func expr(e Expression) Expression {
	if isNil(e) {
		return nil
	}
	return e
}

func cmd(c Command) Command {
	if isNil(c) {
		return nil
	}
	return c
}

func NewLiteral(v lexeme.Value) *Literal {
	return &Literal{value: v}
}

func NewIdentifier(v lexeme.Value) *Identifier {
	return &Identifier{value: v}
}

func NewIndexedAccess(name *Identifier, index Expression) *IndexedAccess {
	n := &IndexedAccess{name: name, index: expr(index)}
	claimAll(n, name, index)
	return n
}

func NewCall(name lexeme.Value, args []Expression) *FunctionCall {
	n := &FunctionCall{name: name}
	var kids []Node
	for _, arg := range args {
		if isNil(arg) {
			continue
		}
		n.args = append(n.args, arg)
		kids = append(kids, arg)
	}
	claimAll(n, kids...)
	return n
}

func NewUnaryOp(op lexeme.Value, operand Expression) *UnaryOp {
	n := &UnaryOp{op: op, operand: expr(operand)}
	claimAll(n, operand)
	return n
}

func NewBinaryOp(op lexeme.Value, left, right Expression) *BinaryOp {
	n := &BinaryOp{op: op, left: expr(left), right: expr(right)}
	claimAll(n, left, right)
	return n
}

func NewTernaryOp(cond, then, els Expression) *TernaryOp {
	n := &TernaryOp{cond: expr(cond), then: expr(then), els: expr(els)}
	claimAll(n, cond, then, els)
	return n
}

func NewInitVar(target *Identifier, init Initializer) *InitVar {
	if isNil(init) {
		init = nil
	}
	n := &InitVar{target: target, init: init}
	claimAll(n, target, init)
	return n
}

func NewSetVar(target StorageAccess, value Expression) *SetVar {
	if isNil(target) {
		target = nil
	}
	n := &SetVar{target: target, value: expr(value)}
	claimAll(n, target, value)
	return n
}

func NewIO(keyword lexeme.Value, value Expression) *IO {
	n := &IO{keyword: keyword, value: expr(value)}
	claimAll(n, value)
	return n
}

// NewShift panics with errors.NotIntegerShift when amount is not an
// integer literal.
func NewShift(direction lexeme.Value, target StorageAccess, amount *Literal) *Shift {
	if amount == nil {
		panic(tracerr.Wrap(errors.NotIntegerShift{Got: "<nil>"}))
	}
	if !amount.value.Valid() || amount.value.Kind() != lexeme.IntLiteral {
		panic(tracerr.Wrap(errors.NotIntegerShift{Got: amount.value.String()}))
	}
	if isNil(target) {
		target = nil
	}
	n := &Shift{direction: direction, target: target, amount: amount}
	claimAll(n, target, amount)
	return n
}

func NewReturn(value Expression) *Return {
	n := &Return{value: expr(value)}
	claimAll(n, value)
	return n
}

func NewBreak() *Break {
	return &Break{}
}

func NewContinue() *Continue {
	return &Continue{}
}

func NewIf(cond Expression, then, els Command) *If {
	n := &If{cond: expr(cond), then: cmd(then), els: cmd(els)}
	claimAll(n, cond, then, els)
	return n
}

func NewFor(init *InitVar, cond Expression, step *SetVar, body Command) *For {
	n := &For{init: init, cond: expr(cond), step: step, body: cmd(body)}
	claimAll(n, init, cond, step, body)
	return n
}

func NewWhile(cond Expression, body Command) *While {
	n := &While{cond: expr(cond), body: cmd(body)}
	claimAll(n, cond, body)
	return n
}

func NewFunction(name lexeme.Value, body Command) *Function {
	n := &Function{name: name, body: cmd(body)}
	claimAll(n, body)
	return n
}

// linkAfter makes c, a free node, the successor of tail. Chain members point at
// the owner of their chain, so finding the root stays short.
func linkAfter(tail, c Node) {
	if c.header().owner != nil {
		aliased(c)
	}
	if root(tail) == c {
		panic(tracerr.Wrap(errors.AliasedNode{Node: describe(c) + " already leads to " + describe(tail)}))
	}

	owner := tail.header().owner
	if owner == nil {
		owner = tail
	}
	c.header().owner = owner
}

// AppendCommand makes c the successor of tail. It does not look for the end
// of the chain: tail must be the current last command. Nothing happens when
// either argument is nil.
func AppendCommand(tail, c Command) {
	if isNil(tail) || isNil(c) {
		return
	}
	if tail.chain().next != nil {
		panic(tracerr.Wrap(errors.AliasedNode{Node: describe(tail) + " successor"}))
	}
	linkAfter(tail, c)
	tail.chain().next = c
}

// AppendFunction makes fn the successor of tail, with the same rules as
// AppendCommand.
func AppendFunction(tail, fn *Function) {
	if tail == nil || fn == nil {
		return
	}
	if tail.next != nil {
		panic(tracerr.Wrap(errors.AliasedNode{Node: describe(tail) + " successor"}))
	}
	linkAfter(tail, fn)
	tail.next = fn
}

// CommandList keeps the head and the tail of a block being built, so each
// Append is a single link.
type CommandList struct {
	head Command
	tail Command
}

// Append adds c, and any successors c already has, at the end of the list.
func (l *CommandList) Append(c Command) {
	if isNil(c) {
		return
	}
	if l.head == nil {
		if c.header().owner != nil {
			aliased(c)
		}
		l.head = c
	} else {
		AppendCommand(l.tail, c)
	}
	for c.Next() != nil {
		c = c.Next()
	}
	l.tail = c
}

// Head is the block: its first command, or nil when nothing was appended.
func (l *CommandList) Head() Command { return l.head }

func (l *CommandList) Tail() Command { return l.tail }

type FunctionList struct {
	head *Function
	tail *Function
}

func (l *FunctionList) Append(fn *Function) {
	if fn == nil {
		return
	}
	if l.head == nil {
		if fn.owner != nil {
			aliased(fn)
		}
		l.head = fn
	} else {
		AppendFunction(l.tail, fn)
	}
	for fn.next != nil {
		fn = fn.next
	}
	l.tail = fn
}

// Head is the program root.
func (l *FunctionList) Head() *Function { return l.head }

func (l *FunctionList) Tail() *Function { return l.tail }
