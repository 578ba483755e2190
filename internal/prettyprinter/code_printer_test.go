package prettyprinter

import (
	"strings"
	"testing"

	"github.com/funvibe/catena/internal/parser"
)

func format(t *testing.T, src string) string {
	t.Helper()
	program, err := parser.ParseSource(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return Format(program)
}

func TestFormatTermRun(t *testing.T) {
	got := format(t, "3   4  +\n   dup")
	if got != "3 4 + dup\n" {
		t.Errorf("formatted = %q, want %q", got, "3 4 + dup\n")
	}
}

func TestFormatDefineBlock(t *testing.T) {
	got := format(t, "define square:(Num 'a -> Num 'a){dup *} 5 square")
	want := "define square : (Num 'a -> Num 'a) {\n" +
		"    dup *\n" +
		"}\n" +
		"\n" +
		"5 square\n"
	if got != want {
		t.Errorf("formatted:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatKeepsQuotationsInline(t *testing.T) {
	got := format(t, "3 [ dup   * ] apply")
	if got != "3 [dup *] apply\n" {
		t.Errorf("formatted = %q", got)
	}
}

func TestFormatWrapsLongRuns(t *testing.T) {
	src := strings.TrimSpace(strings.Repeat("1 2 + ", 30))
	program, err := parser.ParseSource(src)
	if err != nil {
		t.Fatal(err)
	}
	got := NewCodePrinterWithWidth(40).PrintProgram(program)
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if len(line) > 40 {
			t.Errorf("line %q exceeds width 40", line)
		}
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	src := "define inc : (Num 'a -> Num 'a) { 1 + }  3 inc [inc] apply"
	once := format(t, src)
	twice := format(t, once)
	if once != twice {
		t.Errorf("formatting twice changed output:\n%q\n%q", once, twice)
	}
}
