// Package ast is the typed syntax tree of the language, the builder
// operations the parser drives, and the release of a finished tree.
//
// Every node has exactly one owner. Constructors and the Append operations
// take ownership of the nodes they are handed; handing a node to a second
// owner, or appending a chain to a node inside it, panics with
// errors.AliasedNode. Fields are read through accessors only, so a built
// node cannot be rewired.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/sums.adt ../ast/sums_gen.go ast"

import (
	"github.com/pontaoski/astdot/lexeme"
)

// node is embedded in every tree node and records its ownership state.
// owner is the node that claimed it; chain successors point at the owner of
// their chain, or at the chain's head while that is still unowned.
type node struct {
	owner    Node
	released bool
}

func (n *node) header() *node { return n }

type Node interface {
	header() *node
}

// link is the forward pointer of a command chain. It is written once.
type link struct {
	next Command
}

func (l *link) chain() *link { return l }

func (l *link) Next() Command { return l.next }

type Chained interface {
	Next() Command
	chain() *link
}

type Literal struct {
	node
	value lexeme.Value
}

func (l *Literal) Value() lexeme.Value { return l.value }

type Identifier struct {
	node
	value lexeme.Value
}

func (i *Identifier) Value() lexeme.Value { return i.value }
func (i *Identifier) Name() string        { return i.value.Text() }

type IndexedAccess struct {
	node
	name  *Identifier
	index Expression
}

func (a *IndexedAccess) Name() *Identifier  { return a.name }
func (a *IndexedAccess) Index() Expression { return a.index }

// FunctionCall is both an expression and, on its own, a command.
type FunctionCall struct {
	node
	link
	name lexeme.Value
	args []Expression
}

func (c *FunctionCall) Name() lexeme.Value { return c.name }

// Args returns a copy of the argument list.
func (c *FunctionCall) Args() []Expression {
	return append([]Expression(nil), c.args...)
}

type UnaryOp struct {
	node
	op      lexeme.Value
	operand Expression
}

func (u *UnaryOp) Op() lexeme.Value      { return u.op }
func (u *UnaryOp) Operand() Expression { return u.operand }

type BinaryOp struct {
	node
	op    lexeme.Value
	left  Expression
	right Expression
}

func (b *BinaryOp) Op() lexeme.Value   { return b.op }
func (b *BinaryOp) Left() Expression  { return b.left }
func (b *BinaryOp) Right() Expression { return b.right }

type TernaryOp struct {
	node
	cond Expression
	then Expression
	els  Expression
}

func (t *TernaryOp) Cond() Expression { return t.cond }
func (t *TernaryOp) Then() Expression { return t.then }
func (t *TernaryOp) Else() Expression { return t.els }

type InitVar struct {
	node
	link
	target *Identifier
	init   Initializer
}

func (i *InitVar) Target() *Identifier { return i.target }
func (i *InitVar) Init() Initializer   { return i.init }

type SetVar struct {
	node
	link
	target StorageAccess
	value  Expression
}

func (s *SetVar) Target() StorageAccess { return s.target }
func (s *SetVar) Value() Expression     { return s.value }

type IO struct {
	node
	link
	keyword lexeme.Value
	value   Expression
}

func (i *IO) Keyword() lexeme.Value { return i.keyword }
func (i *IO) Value() Expression     { return i.value }

type Shift struct {
	node
	link
	direction lexeme.Value
	target    StorageAccess
	amount    *Literal
}

func (s *Shift) Direction() lexeme.Value { return s.direction }
func (s *Shift) Target() StorageAccess   { return s.target }
func (s *Shift) Amount() *Literal        { return s.amount }

type Return struct {
	node
	link
	value Expression
}

func (r *Return) Value() Expression { return r.value }

type Break struct {
	node
	link
}

type Continue struct {
	node
	link
}

// If has an optional else block; a nil block is an empty one.
type If struct {
	node
	link
	cond Expression
	then Command
	els  Command
}

func (i *If) Cond() Expression { return i.cond }
func (i *If) Then() Command    { return i.then }
func (i *If) Else() Command    { return i.els }

type For struct {
	node
	link
	init *InitVar
	cond Expression
	step *SetVar
	body Command
}

func (f *For) Init() *InitVar    { return f.init }
func (f *For) Cond() Expression { return f.cond }
func (f *For) Step() *SetVar    { return f.step }
func (f *For) Body() Command    { return f.body }

type While struct {
	node
	link
	cond Expression
	body Command
}

func (w *While) Cond() Expression { return w.cond }
func (w *While) Body() Command    { return w.body }

// Function is one top-level function definition. Name is expected to be an
// Identifier value but is stored as given.
type Function struct {
	node
	name lexeme.Value
	body Command
	next *Function
}

func (f *Function) Name() lexeme.Value { return f.name }
func (f *Function) Body() Command      { return f.body }
func (f *Function) Next() *Function    { return f.next }
