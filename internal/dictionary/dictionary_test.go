package dictionary

import (
	"errors"
	"strings"
	"testing"

	"github.com/funvibe/catena/internal/ast"
	"github.com/funvibe/catena/internal/parser"
	"github.com/funvibe/catena/internal/typesystem"
)

func preludeDict(t *testing.T) *Dictionary {
	t.Helper()
	d := New()
	if err := LoadPrelude(d); err != nil {
		t.Fatalf("load prelude: %v", err)
	}
	return d
}

func mustTerms(t *testing.T, src string) []ast.Term {
	t.Helper()
	terms, err := parser.ParseTerms(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return terms
}

func TestLoadPrelude(t *testing.T) {
	d := preludeDict(t)

	for _, name := range []string{"id", "dup", "pop", "swap", "apply", "quote",
		"compose", "dip", "if", "print", "+", "-", "*", "/", "=", "<", ">", "not", "and", "or"} {
		entry, ok := d.Lookup(name)
		if !ok {
			t.Errorf("prelude is missing %q", name)
			continue
		}
		if !entry.Primitive {
			t.Errorf("%q should be primitive", name)
		}
		if !typesystem.IsValidFunctionType(entry.Type) {
			t.Errorf("%q has invalid type %s", name, entry.Type)
		}
	}
}

func TestPreludeSignatures(t *testing.T) {
	d := preludeDict(t)

	tests := []struct {
		word string
		want string
	}{
		{"dup", "!a!b.((a b) -> (a (a b)))"},
		{"pop", "!b.(!a.(a b) -> b)"},
		{"swap", "!a!b!c.((a (b c)) -> (b (a c)))"},
		{"+", "!a.((Num (Num a)) -> (Num a))"},
		{"apply", "!b.(!a.((a -> b) a) -> b)"},
	}

	for _, tt := range tests {
		entry, ok := d.Lookup(tt.word)
		if !ok {
			t.Errorf("missing %q", tt.word)
			continue
		}
		got := typesystem.AlphabetizeVarNames(entry.Type).String()
		if got != tt.want {
			t.Errorf("%s : %s, want %s", tt.word, got, tt.want)
		}
	}
}

func TestDefineWord(t *testing.T) {
	d := preludeDict(t)

	err := d.DefineWord("square", "(Num 'a -> Num 'a)", mustTerms(t, "dup *"))
	if err != nil {
		t.Fatal(err)
	}

	entry, ok := d.Lookup("square")
	if !ok {
		t.Fatal("square not registered")
	}
	if entry.Primitive {
		t.Error("derived word marked primitive")
	}
	if len(entry.Body) != 2 {
		t.Errorf("body has %d terms, want 2", len(entry.Body))
	}

	// Derived words participate in inference like any other.
	err = d.DefineWord("quad", "(Num 'a -> Num 'a)", mustTerms(t, "square square"))
	if err != nil {
		t.Fatal(err)
	}
}

func TestDefineWordRejectsMismatchedBody(t *testing.T) {
	d := preludeDict(t)

	err := d.DefineWord("square", "(Num 'a -> Bool 'a)", mustTerms(t, "dup *"))
	if err == nil {
		t.Fatal("declaration/body mismatch accepted")
	}
	if !strings.Contains(err.Error(), "declared") {
		t.Errorf("error %q should show the declared and inferred types", err)
	}
	if _, ok := d.Lookup("square"); ok {
		t.Error("rejected word must not be registered")
	}
}

func TestDefineWordRejectsUnknownBodyWord(t *testing.T) {
	d := preludeDict(t)
	err := d.DefineWord("broken", "('a -> 'a)", mustTerms(t, "frob"))
	if err == nil || !strings.Contains(err.Error(), "unknown word") {
		t.Errorf("error = %v, want unknown word", err)
	}
}

func TestSignatureValidation(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{"not a function", "Num"},
		{"bare variable", "'a"},
		{"constant-terminated input", "(Num -> Num 'a)"},
		{"constant-terminated output", "(Num 'a -> Num)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			err := d.DefinePrimitive("bad", tt.signature)
			var invalid *typesystem.InvalidTypeError
			if !errors.As(err, &invalid) {
				t.Errorf("DefinePrimitive(%q) error = %v, want InvalidTypeError", tt.signature, err)
			}
		})
	}
}

func TestWordsKeepsRegistrationOrder(t *testing.T) {
	d := New()
	for _, name := range []string{"one", "two", "three"} {
		if err := d.DefinePrimitive(name, "('a -> 'a)"); err != nil {
			t.Fatal(err)
		}
	}
	got := d.Words()
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Words() = %v, want %v", got, want)
		}
	}
}
