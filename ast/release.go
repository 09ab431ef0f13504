package ast

import (
	"github.com/pontaoski/astdot/errors"
	"github.com/pontaoski/astdot/lexeme"
	"github.com/ztrue/tracerr"
)

// Release tears down the tree rooted at root: everything a node owns,
// including the rest of its chain, is released before the node itself, and
// its lexical values are dropped. It returns the number of nodes released.
//
// Releasing a node twice panics with errors.DoubleRelease.
func Release(root *Function) int {
	if root == nil {
		return 0
	}
	return release(root)
}

func release(n Node) int {
	h := n.header()
	if h.released {
		panic(tracerr.Wrap(errors.DoubleRelease{Node: describe(n)}))
	}
	h.released = true

	kids, err := Children(n)
	if err != nil {
		panic(tracerr.Wrap(err))
	}

	count := 0
	for _, kid := range kids {
		count += release(kid)
	}

	drop(n)
	return count + 1
}

func drop(n Node) {
	switch v := n.(type) {
	case *Function:
		v.name, v.body, v.next = lexeme.Value{}, nil, nil
	case *Literal:
		v.value = lexeme.Value{}
	case *Identifier:
		v.value = lexeme.Value{}
	case *IndexedAccess:
		v.name, v.index = nil, nil
	case *FunctionCall:
		v.name, v.args, v.next = lexeme.Value{}, nil, nil
	case *UnaryOp:
		v.op, v.operand = lexeme.Value{}, nil
	case *BinaryOp:
		v.op, v.left, v.right = lexeme.Value{}, nil, nil
	case *TernaryOp:
		v.cond, v.then, v.els = nil, nil, nil
	case *InitVar:
		v.target, v.init, v.next = nil, nil, nil
	case *SetVar:
		v.target, v.value, v.next = nil, nil, nil
	case *IO:
		v.keyword, v.value, v.next = lexeme.Value{}, nil, nil
	case *Shift:
		v.direction, v.target, v.amount, v.next = lexeme.Value{}, nil, nil, nil
	case *Return:
		v.value, v.next = nil, nil
	case *Break:
		v.next = nil
	case *Continue:
		v.next = nil
	case *If:
		v.cond, v.then, v.els, v.next = nil, nil, nil, nil
	case *For:
		v.init, v.cond, v.step, v.body, v.next = nil, nil, nil, nil, nil
	case *While:
		v.cond, v.body, v.next = nil, nil, nil
	}
}
