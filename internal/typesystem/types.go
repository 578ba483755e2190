package typesystem

import (
	"strconv"
	"strings"

	"github.com/funvibe/catena/internal/config"
)

// Type is the interface for all types in our system. The sum is closed:
// the only implementations are *TCon, *TVar and *TArray.
type Type interface {
	String() string
	Clone() Type
}

// TCon represents a named, non-decomposable type constant (e.g. Num, Bool,
// the function tag ->). Equality is by name.
type TCon struct {
	Name string
}

func NewTCon(name string) *TCon {
	return &TCon{Name: name}
}

func (t *TCon) String() string { return t.Name }

func (t *TCon) Clone() Type { return &TCon{Name: t.Name} }

// TVar represents a type variable. Two variables with the same name inside
// one tree are the same variable; across trees they are distinct unless
// unified. Scheme points at the type array that quantifies this variable;
// it is nil until ComputeSchemes has run on the enclosing tree.
type TVar struct {
	Name   string
	Scheme *TArray
}

func NewTVar(name string) *TVar {
	return &TVar{Name: name}
}

func (t *TVar) String() string { return t.Name }

func (t *TVar) Clone() Type { return &TVar{Name: t.Name} }

// TArray is the sole compound type: an ordered, fixed-length sequence of
// child types. [in, ->, out] encodes a function type, [head, tail] a cons
// cell of a stack-type list. schemeVars holds the names quantified at this
// node, in first-occurrence order, as computed by ComputeSchemes.
type TArray struct {
	Elems      []Type
	schemeVars []string
}

func NewTArray(elems ...Type) *TArray {
	return &TArray{Elems: elems}
}

// SchemeVars returns the variable names quantified at this array.
func (t *TArray) SchemeVars() []string { return t.schemeVars }

func (t *TArray) String() string {
	var sb strings.Builder
	for _, v := range t.schemeVars {
		sb.WriteByte('!')
		sb.WriteString(v)
	}
	if len(t.schemeVars) > 0 {
		sb.WriteByte('.')
	}
	sb.WriteByte('(')
	for i, e := range t.Elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Clone produces a deep structural copy preserving names but not node
// identity. Scheme annotations are recomputed on the copy so that no
// annotation points back into the source tree.
func (t *TArray) Clone() Type {
	c := cloneTree(t)
	ComputeSchemes(c)
	return c
}

func cloneTree(t Type) Type {
	switch t := t.(type) {
	case *TCon:
		return &TCon{Name: t.Name}
	case *TVar:
		return &TVar{Name: t.Name}
	case *TArray:
		elems := make([]Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = cloneTree(e)
		}
		return &TArray{Elems: elems}
	}
	return t
}

// CloneType deep-copies any type value; see TArray.Clone.
func CloneType(t Type) Type {
	if arr, ok := t.(*TArray); ok {
		return arr.Clone()
	}
	return cloneTree(t)
}

// DescendantTypes returns t and every type beneath it, pre-order.
func DescendantTypes(t Type) []Type {
	result := []Type{t}
	if arr, ok := t.(*TArray); ok {
		for _, e := range arr.Elems {
			result = append(result, DescendantTypes(e)...)
		}
	}
	return result
}

// VariableNames returns the distinct variable names in t, in
// first-occurrence (pre-order) order.
func VariableNames(t Type) []string {
	var names []string
	seen := map[string]bool{}
	for _, d := range DescendantTypes(t) {
		if v, ok := d.(*TVar); ok && !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
	}
	return names
}

func containsVariable(t Type, name string) bool {
	for _, d := range DescendantTypes(t) {
		if v, ok := d.(*TVar); ok && v.Name == name {
			return true
		}
	}
	return false
}

// NewFunctionType builds the 3-element [input, ->, output] array.
func NewFunctionType(input, output Type) *TArray {
	return NewTArray(input, NewTCon(config.FunctionTagName), output)
}

// IsFunctionType reports whether t is a 3-element array carrying the
// function tag in the middle position.
func IsFunctionType(t Type) bool {
	arr, ok := t.(*TArray)
	if !ok || len(arr.Elems) != 3 {
		return false
	}
	tag, ok := arr.Elems[1].(*TCon)
	return ok && tag.Name == config.FunctionTagName
}

// FunctionInput returns the input stack type of a function type.
func FunctionInput(t Type) (Type, error) {
	if !IsFunctionType(t) {
		return nil, NewInvalidTypeError(t, "not a function type")
	}
	return t.(*TArray).Elems[0], nil
}

// FunctionOutput returns the output stack type of a function type.
func FunctionOutput(t Type) (Type, error) {
	if !IsFunctionType(t) {
		return nil, NewInvalidTypeError(t, "not a function type")
	}
	return t.(*TArray).Elems[2], nil
}

// IsStackTypeList reports whether t is a legal stack type: a bare type
// variable (the row), or a right-nested chain of 2-element cons cells
// whose terminal element is one.
func IsStackTypeList(t Type) bool {
	for {
		switch cur := t.(type) {
		case *TVar:
			return true
		case *TArray:
			if len(cur.Elems) != 2 {
				return false
			}
			t = cur.Elems[1]
		default:
			return false
		}
	}
}

// IsValidFunctionType reports whether t is a function type whose input and
// output are both row-terminated stack-type lists.
func IsValidFunctionType(t Type) bool {
	if !IsFunctionType(t) {
		return false
	}
	arr := t.(*TArray)
	return IsStackTypeList(arr.Elems[0]) && IsStackTypeList(arr.Elems[2])
}

// MakeRecursiveType returns the marker constant standing for a
// self-referential type whose cycle closes depth expansion levels up.
func MakeRecursiveType(depth int) *TCon {
	return &TCon{Name: config.RecursiveMarkerPrefix + strconv.Itoa(depth)}
}

// IsRecursiveType reports whether t is a recursive-type marker.
func IsRecursiveType(t Type) bool {
	con, ok := t.(*TCon)
	return ok && strings.HasPrefix(con.Name, config.RecursiveMarkerPrefix)
}
