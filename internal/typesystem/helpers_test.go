package typesystem

import (
	"testing"

	"github.com/funvibe/catena/internal/parser"
)

// mustSig parses a word signature into a type with schemes computed, the
// same way the dictionary registers one.
func mustSig(t *testing.T, signature string) Type {
	t.Helper()
	node, err := parser.ParseTypeSignature(signature)
	if err != nil {
		t.Fatalf("parse %q: %v", signature, err)
	}
	typ, err := TranslateTypeExpr(node)
	if err != nil {
		t.Fatalf("translate %q: %v", signature, err)
	}
	ComputeSchemes(typ)
	return typ
}
