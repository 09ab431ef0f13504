package ast

import (
	"fmt"

	"github.com/pontaoski/astdot/errors"
)

type children []Node

func (c children) add(ns ...Node) children {
	for _, n := range ns {
		if !isNil(n) {
			c = append(c, n)
		}
	}
	return c
}

func successor(c Chained) Node {
	if next := c.Next(); next != nil {
		return next
	}
	return nil
}

// Children returns the nodes n owns, in field order, with the chain
// successor of a command or function last. Nested blocks are represented by
// their first command.
func Children(n Node) ([]Node, error) {
	var c children

	switch v := n.(type) {
	case *Function:
		c = c.add(v.body, v.next)
	case *Literal, *Identifier:
	case *IndexedAccess:
		c = c.add(v.name, v.index)
	case *FunctionCall:
		for _, arg := range v.args {
			c = c.add(arg)
		}
		c = c.add(successor(v))
	case *UnaryOp:
		c = c.add(v.operand)
	case *BinaryOp:
		c = c.add(v.left, v.right)
	case *TernaryOp:
		c = c.add(v.cond, v.then, v.els)
	case *InitVar:
		c = c.add(v.target, v.init, successor(v))
	case *SetVar:
		c = c.add(v.target, v.value, successor(v))
	case *IO:
		c = c.add(v.value, successor(v))
	case *Shift:
		c = c.add(v.target, v.amount, successor(v))
	case *Return:
		c = c.add(v.value, successor(v))
	case *Break:
		c = c.add(successor(v))
	case *Continue:
		c = c.add(successor(v))
	case *If:
		c = c.add(v.cond, v.then, v.els, successor(v))
	case *For:
		c = c.add(v.init, v.cond, v.step, v.body, successor(v))
	case *While:
		c = c.add(v.cond, v.body, successor(v))
	default:
		return nil, errors.UnknownVariant{Category: Category(n), Type: fmt.Sprintf("%T", n)}
	}

	return c, nil
}

// Category names the sum a node belongs to.
func Category(n Node) string {
	switch n.(type) {
	case *Function:
		return "function"
	case Command:
		return "command"
	case Expression:
		return "expression"
	}
	return "node"
}
