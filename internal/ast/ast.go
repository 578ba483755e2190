package ast

import (
	"strconv"
	"strings"

	"github.com/funvibe/catena/internal/token"
)

// Node is the interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	String() string
}

// Term is a single instruction in a concatenative program: a word,
// a literal, or a quotation.
type Term interface {
	Node
	termNode()
}

// TypeNode is a parsed type expression, before translation into the
// typesystem representation.
type TypeNode interface {
	Node
	typeNode()
}

// Program is a sequence of terms and definitions.
type Program struct {
	Terms []Term
}

func (p *Program) TokenLiteral() string {
	if len(p.Terms) > 0 {
		return p.Terms[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Identifier is a word reference: dup, swap, my-word.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) termNode()            {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral is a numeric literal term.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) termNode()            {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return strconv.FormatInt(il.Value, 10) }

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) termNode()            {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return strconv.FormatBool(bl.Value) }

// QuotationLiteral is a bracketed sequence of terms: [ dup * ].
type QuotationLiteral struct {
	Token token.Token
	Terms []Term
}

func (ql *QuotationLiteral) termNode()            {}
func (ql *QuotationLiteral) TokenLiteral() string { return ql.Token.Literal }

func (ql *QuotationLiteral) String() string {
	parts := make([]string, len(ql.Terms))
	for i, t := range ql.Terms {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// DefineStatement introduces a derived word:
// define square : (Num 'a -> Num 'a) { dup * }
type DefineStatement struct {
	Token     token.Token
	Name      string
	Signature TypeNode
	Body      []Term
}

func (ds *DefineStatement) termNode()            {}
func (ds *DefineStatement) TokenLiteral() string { return ds.Token.Literal }

func (ds *DefineStatement) String() string {
	parts := make([]string, len(ds.Body))
	for i, t := range ds.Body {
		parts[i] = t.String()
	}
	return "define " + ds.Name + " : " + ds.Signature.String() + " { " + strings.Join(parts, " ") + " }"
}

// TypeVariableNode is a variable reference in a signature: 'a.
type TypeVariableNode struct {
	Token token.Token
	Name  string
}

func (tv *TypeVariableNode) typeNode()            {}
func (tv *TypeVariableNode) TokenLiteral() string { return tv.Token.Literal }
func (tv *TypeVariableNode) String() string       { return "'" + tv.Name }

// TypeConstantNode is a named constant in a signature: Num, Bool.
type TypeConstantNode struct {
	Token token.Token
	Name  string
}

func (tc *TypeConstantNode) typeNode()            {}
func (tc *TypeConstantNode) TokenLiteral() string { return tc.Token.Literal }
func (tc *TypeConstantNode) String() string       { return tc.Name }

// TypeListNode is a bracketed ordered list of type expressions: [Num Bool].
type TypeListNode struct {
	Token token.Token
	Elems []TypeNode
}

func (tl *TypeListNode) typeNode()            {}
func (tl *TypeListNode) TokenLiteral() string { return tl.Token.Literal }

func (tl *TypeListNode) String() string {
	parts := make([]string, len(tl.Elems))
	for i, e := range tl.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FunctionTypeNode is a parenthesized stack-effect form:
// (input... -> output...). Input and output are written top-first,
// with the last element standing for the rest of the stack.
type FunctionTypeNode struct {
	Token  token.Token
	Input  []TypeNode
	Output []TypeNode
}

func (ft *FunctionTypeNode) typeNode()            {}
func (ft *FunctionTypeNode) TokenLiteral() string { return ft.Token.Literal }

func (ft *FunctionTypeNode) String() string {
	in := make([]string, len(ft.Input))
	for i, e := range ft.Input {
		in[i] = e.String()
	}
	out := make([]string, len(ft.Output))
	for i, e := range ft.Output {
		out[i] = e.String()
	}
	return "(" + strings.Join(in, " ") + " -> " + strings.Join(out, " ") + ")"
}
