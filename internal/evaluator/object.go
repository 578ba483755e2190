package evaluator

import (
	"strconv"
	"strings"

	"github.com/funvibe/catena/internal/ast"
	"github.com/funvibe/catena/internal/config"
	"github.com/funvibe/catena/internal/typesystem"
)

type ObjectType string

const (
	INTEGER_OBJ   ObjectType = "INTEGER"
	BOOLEAN_OBJ   ObjectType = "BOOLEAN"
	QUOTATION_OBJ ObjectType = "QUOTATION"
)

// Object is a runtime value on the evaluator's stack.
type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

// Quotation is a deferred program. Exactly one of Terms, Captured or Parts
// is set: a bracketed literal, a quoted value, or a composition of other
// quotations.
type Quotation struct {
	Terms    []ast.Term
	Captured Object
	Parts    []*Quotation
	FnType   typesystem.Type
}

func (q *Quotation) Type() ObjectType { return QUOTATION_OBJ }

func (q *Quotation) Inspect() string {
	switch {
	case q.Captured != nil:
		return "[" + q.Captured.Inspect() + "]"
	case q.Parts != nil:
		parts := make([]string, len(q.Parts))
		for i, p := range q.Parts {
			parts[i] = p.Inspect()
		}
		return strings.Join(parts, " ")
	default:
		parts := make([]string, len(q.Terms))
		for i, t := range q.Terms {
			parts[i] = t.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
}

// valueType gives the typesystem representation of a runtime value: the
// type the value would contribute when pushed.
func valueType(obj Object) typesystem.Type {
	switch obj := obj.(type) {
	case *Integer:
		return typesystem.NewTCon(config.NumTypeName)
	case *Boolean:
		return typesystem.NewTCon(config.BoolTypeName)
	case *Quotation:
		return typesystem.CloneType(obj.FnType)
	}
	return typesystem.NewTVar("unknown")
}
