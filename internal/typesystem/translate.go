package typesystem

import (
	"fmt"

	"github.com/funvibe/catena/internal/ast"
)

// TranslateTypeExpr converts a parsed type expression into the typesystem
// representation, one conversion per AST node kind. Unknown node kinds
// yield an UnrecognizedNodeError.
func TranslateTypeExpr(node ast.TypeNode) (Type, error) {
	switch n := node.(type) {
	case *ast.TypeVariableNode:
		return translateTypeVariable(n), nil
	case *ast.TypeConstantNode:
		return translateTypeConstant(n), nil
	case *ast.TypeListNode:
		return translateTypeList(n)
	case *ast.FunctionTypeNode:
		return translateFunctionType(n)
	default:
		return nil, NewUnrecognizedNodeError(fmt.Sprintf("%T", node))
	}
}

func translateTypeVariable(n *ast.TypeVariableNode) Type {
	return NewTVar(n.Name)
}

func translateTypeConstant(n *ast.TypeConstantNode) Type {
	return NewTCon(n.Name)
}

func translateTypeList(n *ast.TypeListNode) (Type, error) {
	elems := make([]Type, len(n.Elems))
	for i, e := range n.Elems {
		t, err := TranslateTypeExpr(e)
		if err != nil {
			return nil, err
		}
		elems[i] = t
	}
	return NewTArray(elems...), nil
}

// translateFunctionType builds [in, ->, out]. The written element lists
// are top-first with the last element standing for the rest of the stack,
// so each side cons-folds with its last element as the terminal.
func translateFunctionType(n *ast.FunctionTypeNode) (Type, error) {
	in, err := translateStackSide(n.Input, n)
	if err != nil {
		return nil, err
	}
	out, err := translateStackSide(n.Output, n)
	if err != nil {
		return nil, err
	}
	return NewFunctionType(in, out), nil
}

func translateStackSide(elems []ast.TypeNode, n *ast.FunctionTypeNode) (Type, error) {
	if len(elems) == 0 {
		return nil, NewInvalidTypeError(nil, fmt.Sprintf("empty stack side in %s", n))
	}
	types := make([]Type, len(elems))
	for i, e := range elems {
		t, err := TranslateTypeExpr(e)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return ConsList(types), nil
}
