package dictionary

import (
	"fmt"

	"github.com/funvibe/catena/internal/analyzer"
	"github.com/funvibe/catena/internal/ast"
	"github.com/funvibe/catena/internal/parser"
	"github.com/funvibe/catena/internal/typesystem"
)

// Entry binds a word to its declared stack-effect type. Primitives have no
// body; derived words keep theirs for execution and persistence.
type Entry struct {
	Name      string
	Type      typesystem.Type
	Signature string
	Body      []ast.Term
	Primitive bool
}

// Dictionary maps word names to entries. Registration validates the
// declared type's structure and, for derived words, checks the body's
// inferred type against the declaration.
type Dictionary struct {
	entries map[string]*Entry
	order   []string
}

func New() *Dictionary {
	return &Dictionary{entries: map[string]*Entry{}}
}

// TypeOf implements analyzer.Lookup.
func (d *Dictionary) TypeOf(name string) (typesystem.Type, bool) {
	entry, ok := d.entries[name]
	if !ok {
		return nil, false
	}
	return entry.Type, true
}

func (d *Dictionary) Lookup(name string) (*Entry, bool) {
	entry, ok := d.entries[name]
	return entry, ok
}

// Words returns all word names in registration order.
func (d *Dictionary) Words() []string {
	return append([]string{}, d.order...)
}

// DefinePrimitive registers a built-in word from its signature string.
// The signature must be a function type whose input and output are
// row-terminated stack lists; anything else is rejected here, never
// deferred to use time.
func (d *Dictionary) DefinePrimitive(name, signature string) error {
	t, err := d.parseSignature(name, signature)
	if err != nil {
		return err
	}
	d.insert(&Entry{Name: name, Type: t, Signature: signature, Primitive: true})
	return nil
}

// DefineWord registers a derived word: the body's inferred type must match
// the declared signature up to variable renaming.
func (d *Dictionary) DefineWord(name, signature string, body []ast.Term) error {
	t, err := d.parseSignature(name, signature)
	if err != nil {
		return err
	}
	return d.defineChecked(name, t, signature, body)
}

// DefineFromStatement registers a derived word from a parsed definition.
func (d *Dictionary) DefineFromStatement(stmt *ast.DefineStatement) error {
	t, err := typesystem.TranslateTypeExpr(stmt.Signature)
	if err != nil {
		return fmt.Errorf("word %s: %w", stmt.Name, err)
	}
	if err := validateSignature(t); err != nil {
		return fmt.Errorf("word %s: %w", stmt.Name, err)
	}
	typesystem.ComputeSchemes(t)
	return d.defineChecked(stmt.Name, t, stmt.Signature.String(), stmt.Body)
}

func (d *Dictionary) defineChecked(name string, declared typesystem.Type, signature string, body []ast.Term) error {
	inferred, err := analyzer.New(d).InferTerms(body)
	if err != nil {
		return fmt.Errorf("word %s: %w", name, err)
	}
	if !typesystem.AreTypesSame(declared, inferred) {
		return fmt.Errorf("word %s: declared %s, but body infers %s",
			name, typesystem.NormalizeVarNames(declared), typesystem.NormalizeVarNames(inferred))
	}
	d.insert(&Entry{Name: name, Type: declared, Signature: signature, Body: body})
	return nil
}

func (d *Dictionary) parseSignature(name, signature string) (typesystem.Type, error) {
	node, err := parser.ParseTypeSignature(signature)
	if err != nil {
		return nil, fmt.Errorf("word %s: %w", name, err)
	}
	t, err := typesystem.TranslateTypeExpr(node)
	if err != nil {
		return nil, fmt.Errorf("word %s: %w", name, err)
	}
	if err := validateSignature(t); err != nil {
		return nil, fmt.Errorf("word %s: %w", name, err)
	}
	typesystem.ComputeSchemes(t)
	return t, nil
}

func validateSignature(t typesystem.Type) error {
	if !typesystem.IsFunctionType(t) {
		return typesystem.NewInvalidTypeError(t, "signature must be a function type")
	}
	if !typesystem.IsValidFunctionType(t) {
		return typesystem.NewInvalidTypeError(t, "input and output must be row-terminated stack lists")
	}
	return nil
}

func (d *Dictionary) insert(entry *Entry) {
	if _, exists := d.entries[entry.Name]; !exists {
		d.order = append(d.order, entry.Name)
	}
	d.entries[entry.Name] = entry
}
