package typesystem

import "testing"

func TestSchemeResolution(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		want      string
	}{
		{
			name:      "identity quantifies at the function",
			signature: "('a -> 'a)",
			want:      "!a.(a -> a)",
		},
		{
			name:      "dup shares both variables across sides",
			signature: "('a 'b -> 'a 'a 'b)",
			want:      "!a!b.((a b) -> (a (a b)))",
		},
		{
			name:      "pop keeps the dropped variable local to the input",
			signature: "('a 'b -> 'b)",
			want:      "!b.(!a.(a b) -> b)",
		},
		{
			name:      "swap",
			signature: "('a 'b 'c -> 'b 'a 'c)",
			want:      "!a!b!c.((a (b c)) -> (b (a c)))",
		},
		{
			name:      "constants are never quantified",
			signature: "(Num Num 'a -> Num 'a)",
			want:      "!a.((Num (Num a)) -> (Num a))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := mustSig(t, tt.signature)
			if got := typ.String(); got != tt.want {
				t.Errorf("schemes for %s:\ngot  %s\nwant %s", tt.signature, got, tt.want)
			}
		})
	}
}

func TestSchemeBackPointers(t *testing.T) {
	typ := mustSig(t, "('a 'b -> 'b)").(*TArray)
	input := typ.Elems[0].(*TArray)

	for _, d := range DescendantTypes(typ) {
		v, ok := d.(*TVar)
		if !ok {
			continue
		}
		switch v.Name {
		case "a":
			if v.Scheme != input {
				t.Errorf("a should be owned by the input list, got %v", v.Scheme)
			}
		case "b":
			if v.Scheme != typ {
				t.Errorf("b should be owned by the function, got %v", v.Scheme)
			}
		}
	}
}

func TestSchemesQuantifyQuotedFunctionsLocally(t *testing.T) {
	inner := mustSig(t, "('a 'b -> 'a 'a 'b)")
	quoted := NormalizeVarNames(Quotation(inner))

	want := "!t0.(t0 -> (!t1!t2.((t1 t2) -> (t1 (t1 t2))) t0))"
	if got := quoted.String(); got != want {
		t.Errorf("quoted type:\ngot  %s\nwant %s", got, want)
	}
}

func TestComputeSchemesDiscardsStaleOwnership(t *testing.T) {
	typ := mustSig(t, "('a 'b -> 'b)")
	before := typ.String()

	// A second pass over the same tree must be a no-op.
	ComputeSchemes(typ)
	if got := typ.String(); got != before {
		t.Errorf("recomputing schemes changed rendering: %s -> %s", before, got)
	}
}
