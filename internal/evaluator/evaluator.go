package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/funvibe/catena/internal/analyzer"
	"github.com/funvibe/catena/internal/ast"
	"github.com/funvibe/catena/internal/dictionary"
	"github.com/funvibe/catena/internal/typesystem"
)

// Evaluator executes terms against a value stack while tracking the
// predicted stack type alongside. Every instruction is type-checked
// against the current predicted stack before it runs, so a program that
// would corrupt the stack fails before touching it.
type Evaluator struct {
	Words *dictionary.Dictionary
	Out   io.Writer

	stack     *Stack
	stackType typesystem.Type
	inf       *analyzer.Inferencer
}

func New(words *dictionary.Dictionary) *Evaluator {
	e := &Evaluator{
		Words: words,
		Out:   os.Stdout,
		stack: NewStack(),
		inf:   analyzer.New(words),
	}
	e.resetStackType()
	return e
}

func (e *Evaluator) resetStackType() {
	e.stackType = typesystem.NewTVar("s$" + typesystem.FreshSalt())
}

func (e *Evaluator) Stack() *Stack { return e.stack }

// StackType returns the predicted type of the current stack, normalized
// for display.
func (e *Evaluator) StackType() typesystem.Type {
	return typesystem.AlphabetizeVarNames(e.stackType)
}

// Reset clears the stack and forgets the predicted stack type.
func (e *Evaluator) Reset() {
	e.stack = NewStack()
	e.resetStackType()
}

// EvalProgram runs a parsed program: definitions extend the dictionary,
// all other terms execute against the stack.
func (e *Evaluator) EvalProgram(program *ast.Program) error {
	for _, term := range program.Terms {
		if stmt, ok := term.(*ast.DefineStatement); ok {
			if err := e.Words.DefineFromStatement(stmt); err != nil {
				return err
			}
			continue
		}
		if err := e.evalTerm(term); err != nil {
			return err
		}
	}
	return nil
}

// evalTerm first applies the term's stack effect to the predicted stack
// type, then executes it. The prediction failing means the term does not
// fit the current stack shape; execution is not attempted.
func (e *Evaluator) evalTerm(term ast.Term) error {
	t, err := e.inf.TermType(term)
	if err != nil {
		return err
	}
	fresh := typesystem.Freshen(t, typesystem.FreshSalt())
	next, err := typesystem.ApplyFunction(fresh, e.stackType)
	if err != nil {
		return fmt.Errorf("%s: %w", term, err)
	}
	if err := e.execTerm(term); err != nil {
		return err
	}
	e.stackType = next
	return nil
}

func (e *Evaluator) execTerm(term ast.Term) error {
	switch n := term.(type) {
	case *ast.IntegerLiteral:
		e.stack.Push(&Integer{Value: n.Value})
		return nil
	case *ast.BooleanLiteral:
		e.stack.Push(&Boolean{Value: n.Value})
		return nil
	case *ast.QuotationLiteral:
		fnType, err := e.inf.InferTerms(n.Terms)
		if err != nil {
			return err
		}
		e.stack.Push(&Quotation{Terms: n.Terms, FnType: fnType})
		return nil
	case *ast.Identifier:
		return e.execWord(n.Value)
	default:
		return typesystem.NewUnrecognizedNodeError(fmt.Sprintf("%T", term))
	}
}

func (e *Evaluator) execWord(name string) error {
	entry, ok := e.Words.Lookup(name)
	if !ok {
		return &analyzer.UnknownWordError{Name: name}
	}
	if entry.Primitive {
		builtin, ok := builtins[name]
		if !ok {
			return fmt.Errorf("primitive %s has no implementation", name)
		}
		return builtin(e)
	}
	return e.execTerms(entry.Body)
}

func (e *Evaluator) execTerms(terms []ast.Term) error {
	for _, term := range terms {
		if err := e.execTerm(term); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) runQuotation(q *Quotation) error {
	switch {
	case q.Captured != nil:
		e.stack.Push(q.Captured)
		return nil
	case q.Parts != nil:
		for _, part := range q.Parts {
			if err := e.runQuotation(part); err != nil {
				return err
			}
		}
		return nil
	default:
		return e.execTerms(q.Terms)
	}
}

func (e *Evaluator) popInteger() (*Integer, error) {
	obj, err := e.stack.Pop()
	if err != nil {
		return nil, err
	}
	i, ok := obj.(*Integer)
	if !ok {
		return nil, fmt.Errorf("expected %s, got %s (%s)", INTEGER_OBJ, obj.Type(), obj.Inspect())
	}
	return i, nil
}

func (e *Evaluator) popBoolean() (*Boolean, error) {
	obj, err := e.stack.Pop()
	if err != nil {
		return nil, err
	}
	b, ok := obj.(*Boolean)
	if !ok {
		return nil, fmt.Errorf("expected %s, got %s (%s)", BOOLEAN_OBJ, obj.Type(), obj.Inspect())
	}
	return b, nil
}

func (e *Evaluator) popQuotation() (*Quotation, error) {
	obj, err := e.stack.Pop()
	if err != nil {
		return nil, err
	}
	q, ok := obj.(*Quotation)
	if !ok {
		return nil, fmt.Errorf("expected %s, got %s (%s)", QUOTATION_OBJ, obj.Type(), obj.Inspect())
	}
	return q, nil
}
