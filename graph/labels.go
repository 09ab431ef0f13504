package graph

import (
	"fmt"
	"strings"

	"github.com/pontaoski/astdot/ast"
	"github.com/pontaoski/astdot/errors"
	"github.com/pontaoski/astdot/lexeme"
)

// dotEscaper quotes label text for graphviz. Unwrapped output keeps the
// lexeme verbatim.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// label returns the text shown for n. emit is false for nodes that get no
// label statement.
func (e *Exporter) label(n ast.Node) (text string, emit bool, err error) {
	switch v := n.(type) {
	case *ast.Function:
		if !v.Name().Valid() || v.Name().Kind() != lexeme.Identifier {
			return ErrorText, true, nil
		}
		return v.Name().Text(), true, nil
	case *ast.Literal:
		if b, ok := v.Value().Payload().(lexeme.Bool); ok && bool(b) {
			return "true", e.cfg.LabelTrueLiterals, nil
		}
		return v.Value().Text(), true, nil
	case *ast.Identifier:
		return v.Value().Text(), true, nil
	case *ast.IndexedAccess:
		return "[]", true, nil
	case *ast.FunctionCall:
		return "call " + v.Name().Text(), true, nil
	case *ast.UnaryOp:
		return v.Op().Text(), true, nil
	case *ast.BinaryOp:
		return v.Op().Text(), true, nil
	case *ast.TernaryOp:
		return "?:", true, nil
	case *ast.InitVar:
		return "<=", true, nil
	case *ast.SetVar:
		return "=", true, nil
	case *ast.IO:
		return v.Keyword().Text(), true, nil
	case *ast.Shift:
		return v.Direction().Text(), true, nil
	case *ast.Return:
		return "return", true, nil
	case *ast.Break:
		return "break", true, nil
	case *ast.Continue:
		return "continue", true, nil
	case *ast.If:
		return "if", true, nil
	case *ast.For:
		return "for", true, nil
	case *ast.While:
		return "while", true, nil
	}

	return "", false, errors.UnknownVariant{Category: ast.Category(n), Type: fmt.Sprintf("%T", n)}
}
