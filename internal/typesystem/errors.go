package typesystem

import "fmt"

// InvalidTypeError indicates a value presented as a function or stack type
// fails the structural legality predicate.
type InvalidTypeError struct {
	Type   Type
	Reason string
}

func (e *InvalidTypeError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("invalid type: %s", e.Reason)
	}
	return fmt.Sprintf("invalid type %s: %s", e.Type, e.Reason)
}

func NewInvalidTypeError(t Type, reason string) *InvalidTypeError {
	return &InvalidTypeError{Type: t, Reason: reason}
}

// UnificationError indicates two types have no common instance.
type UnificationError struct {
	Left   Type
	Right  Type
	Reason string
}

func (e *UnificationError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s: %s", e.Left, e.Right, e.Reason)
}

func NewUnificationError(left, right Type, reason string) *UnificationError {
	return &UnificationError{Left: left, Right: right, Reason: reason}
}

// UnrecognizedNodeError indicates an AST node of unknown kind reached the
// type-translation boundary.
type UnrecognizedNodeError struct {
	Node string
}

func (e *UnrecognizedNodeError) Error() string {
	return fmt.Sprintf("unrecognized AST node: %s", e.Node)
}

func NewUnrecognizedNodeError(node string) *UnrecognizedNodeError {
	return &UnrecognizedNodeError{Node: node}
}
