package analyzer

import (
	"fmt"

	"github.com/funvibe/catena/internal/ast"
	"github.com/funvibe/catena/internal/config"
	"github.com/funvibe/catena/internal/parser"
	"github.com/funvibe/catena/internal/typesystem"
)

// Lookup resolves a word name to its declared stack-effect type. The
// dictionary implements it.
type Lookup interface {
	TypeOf(name string) (typesystem.Type, bool)
}

// UnknownWordError indicates a term refers to a word the dictionary does
// not know.
type UnknownWordError struct {
	Name string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word: %s", e.Name)
}

// Inferencer reconstructs the stack-effect type of term sequences.
type Inferencer struct {
	words Lookup
}

func New(words Lookup) *Inferencer {
	return &Inferencer{words: words}
}

// InferSource parses src as a term sequence and infers its composed
// stack-effect type.
func (inf *Inferencer) InferSource(src string) (typesystem.Type, error) {
	terms, err := parser.ParseTerms(src)
	if err != nil {
		return nil, err
	}
	return inf.InferTerms(terms)
}

// InferTerms folds the per-term types with ComposeFunctionChain. The
// empty sequence types as the identity function.
func (inf *Inferencer) InferTerms(terms []ast.Term) (typesystem.Type, error) {
	chain := make([]typesystem.Type, 0, len(terms))
	for _, term := range terms {
		t, err := inf.TermType(term)
		if err != nil {
			return nil, err
		}
		chain = append(chain, t)
	}
	return typesystem.ComposeFunctionChain(chain)
}

// TermType gives the stack-effect type of a single term: the declared
// type for an identifier, a producer type for a literal, and a quotation
// type for a bracketed sequence.
func (inf *Inferencer) TermType(term ast.Term) (typesystem.Type, error) {
	switch n := term.(type) {
	case *ast.Identifier:
		t, ok := inf.words.TypeOf(n.Value)
		if !ok {
			return nil, &UnknownWordError{Name: n.Value}
		}
		return t, nil
	case *ast.IntegerLiteral:
		return typesystem.MakeFunctionType(nil,
			[]typesystem.Type{typesystem.NewTCon(config.NumTypeName)}), nil
	case *ast.BooleanLiteral:
		return typesystem.MakeFunctionType(nil,
			[]typesystem.Type{typesystem.NewTCon(config.BoolTypeName)}), nil
	case *ast.QuotationLiteral:
		inner, err := inf.InferTerms(n.Terms)
		if err != nil {
			return nil, err
		}
		return typesystem.Quotation(inner), nil
	default:
		return nil, typesystem.NewUnrecognizedNodeError(fmt.Sprintf("%T", term))
	}
}
