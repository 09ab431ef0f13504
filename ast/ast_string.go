package ast

import "fmt"

func describe(n Node) string {
	switch v := n.(type) {
	case *Function:
		return fmt.Sprintf("function %s", v.name.Text())
	case *Identifier:
		return fmt.Sprintf("identifier %s", v.value.Text())
	case *Literal:
		return fmt.Sprintf("literal %s", v.value.Text())
	case *FunctionCall:
		return fmt.Sprintf("call %s", v.name.Text())
	}

	return fmt.Sprintf("%T", n)
}

func (f *Function) String() string {
	return fmt.Sprintf("func %s();", f.name.Text())
}
