package parser

import (
	"strings"
	"testing"

	"github.com/funvibe/catena/internal/ast"
)

func TestParseTermSequence(t *testing.T) {
	program, err := ParseSource("3 dup [dup *] true my-word")
	if err != nil {
		t.Fatal(err)
	}
	if len(program.Terms) != 5 {
		t.Fatalf("program has %d terms, want 5", len(program.Terms))
	}

	if lit, ok := program.Terms[0].(*ast.IntegerLiteral); !ok || lit.Value != 3 {
		t.Errorf("terms[0] = %v, want IntegerLiteral 3", program.Terms[0])
	}
	if id, ok := program.Terms[1].(*ast.Identifier); !ok || id.Value != "dup" {
		t.Errorf("terms[1] = %v, want Identifier dup", program.Terms[1])
	}
	quot, ok := program.Terms[2].(*ast.QuotationLiteral)
	if !ok || len(quot.Terms) != 2 {
		t.Fatalf("terms[2] = %v, want quotation of 2 terms", program.Terms[2])
	}
	if b, ok := program.Terms[3].(*ast.BooleanLiteral); !ok || !b.Value {
		t.Errorf("terms[3] = %v, want BooleanLiteral true", program.Terms[3])
	}

	if got := program.String(); got != "3 dup [dup *] true my-word" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseNegativeInteger(t *testing.T) {
	program, err := ParseSource("-42")
	if err != nil {
		t.Fatal(err)
	}
	lit, ok := program.Terms[0].(*ast.IntegerLiteral)
	if !ok || lit.Value != -42 {
		t.Errorf("parsed %v, want IntegerLiteral -42", program.Terms[0])
	}
}

func TestParseNestedQuotations(t *testing.T) {
	program, err := ParseSource("[[1] apply]")
	if err != nil {
		t.Fatal(err)
	}
	outer, ok := program.Terms[0].(*ast.QuotationLiteral)
	if !ok || len(outer.Terms) != 2 {
		t.Fatalf("outer = %v, want quotation of 2 terms", program.Terms[0])
	}
	if _, ok := outer.Terms[0].(*ast.QuotationLiteral); !ok {
		t.Errorf("inner term = %v, want a quotation", outer.Terms[0])
	}
}

func TestParseDefine(t *testing.T) {
	program, err := ParseSource("define square : (Num 'a -> Num 'a) { dup * }")
	if err != nil {
		t.Fatal(err)
	}
	stmt, ok := program.Terms[0].(*ast.DefineStatement)
	if !ok {
		t.Fatalf("term = %T, want DefineStatement", program.Terms[0])
	}
	if stmt.Name != "square" {
		t.Errorf("name = %q, want square", stmt.Name)
	}
	if got := stmt.Signature.String(); got != "(Num 'a -> Num 'a)" {
		t.Errorf("signature = %q, want (Num 'a -> Num 'a)", got)
	}
	if len(stmt.Body) != 2 {
		t.Errorf("body has %d terms, want 2", len(stmt.Body))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"unterminated quotation", "[1 2", "unterminated quotation"},
		{"define missing colon", "define f (Num 'a -> Num 'a) { }", "expected next token"},
		{"unexpected token", "}", "unexpected token"},
		{"unterminated body", "define f : ('a -> 'a) { id", "unterminated definition body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSource(tt.input)
			if err == nil {
				t.Fatalf("ParseSource(%q) succeeded, want error", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseTermsRejectsDefinitions(t *testing.T) {
	_, err := ParseTerms("define f : ('a -> 'a) { id }")
	if err == nil || !strings.Contains(err.Error(), "definitions are not allowed") {
		t.Errorf("error = %v, want rejection of definitions", err)
	}
}

func TestParseTypeSignature(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"('a 'b -> 'a 'a 'b)", "('a 'b -> 'a 'a 'b)"},
		{"(('a -> 'b) 'a -> 'b)", "(('a -> 'b) 'a -> 'b)"},
		{"[Num 'a]", "[Num 'a]"},
		{"'a", "'a"},
		{"Num", "Num"},
	}

	for _, tt := range tests {
		node, err := ParseTypeSignature(tt.input)
		if err != nil {
			t.Errorf("ParseTypeSignature(%q) error: %v", tt.input, err)
			continue
		}
		if got := node.String(); got != tt.want {
			t.Errorf("ParseTypeSignature(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseTypeSignatureErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing arrow", "('a 'b)"},
		{"unterminated", "('a ->"},
		{"trailing tokens", "'a 'b"},
		{"unterminated list", "[Num"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTypeSignature(tt.input); err == nil {
				t.Errorf("ParseTypeSignature(%q) succeeded, want error", tt.input)
			}
		})
	}
}
