package typesystem

import "testing"

func TestFreshSaltIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		salt := FreshSalt()
		if seen[salt] {
			t.Fatalf("salt %q produced twice", salt)
		}
		seen[salt] = true
	}
}

func TestFreshenProducesDisjointCopies(t *testing.T) {
	orig := mustSig(t, "('a 'b -> 'a 'a 'b)")
	one := Freshen(orig, FreshSalt())
	two := Freshen(orig, FreshSalt())

	names := map[string]bool{}
	for _, n := range VariableNames(one) {
		names[n] = true
	}
	for _, n := range VariableNames(two) {
		if names[n] {
			t.Errorf("variable %q appears in both freshened copies", n)
		}
	}

	if !AreTypesSame(orig, one) || !AreTypesSame(orig, two) {
		t.Error("freshening must not change the type's structure")
	}
}

func TestFreshenLeavesOriginalUntouched(t *testing.T) {
	orig := mustSig(t, "('a 'b -> 'b)")
	before := orig.String()
	Freshen(orig, FreshSalt())
	if got := orig.String(); got != before {
		t.Errorf("original changed from %s to %s", before, got)
	}
}

func TestNormalizeVarNames(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		want      string
	}{
		{
			name:      "first occurrence order",
			signature: "('x 'y 'z -> 'y 'x 'z)",
			want:      "!t0!t1!t2.((t0 (t1 t2)) -> (t1 (t0 t2)))",
		},
		{
			name:      "constants untouched",
			signature: "(Num 'q -> Bool 'q)",
			want:      "!t0.((Num t0) -> (Bool t0))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeVarNames(mustSig(t, tt.signature))
			if got.String() != tt.want {
				t.Errorf("normalized %s:\ngot  %s\nwant %s", tt.signature, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	typ := Freshen(mustSig(t, "('a 'b 'c -> 'b 'a 'c)"), FreshSalt())
	once := NormalizeVarNames(typ)
	twice := NormalizeVarNames(once)
	if once.String() != twice.String() {
		t.Errorf("normalizing twice changed %s to %s", once, twice)
	}
}

func TestAlphabetizeVarNames(t *testing.T) {
	typ := Freshen(mustSig(t, "('a 'b 'c -> 'b 'a 'c)"), FreshSalt())
	got := AlphabetizeVarNames(typ)
	want := "!a!b!c.((a (b c)) -> (b (a c)))"
	if got.String() != want {
		t.Errorf("alphabetized:\ngot  %s\nwant %s", got, want)
	}
}

func TestAreTypesSame(t *testing.T) {
	dup := mustSig(t, "('a 'b -> 'a 'a 'b)")
	tests := []struct {
		name  string
		left  Type
		right Type
		want  bool
	}{
		{"same instance", dup, dup, true},
		{"renamed copy", dup, mustSig(t, "('x 'y -> 'x 'x 'y)"), true},
		{"freshened copy", dup, Freshen(dup, FreshSalt()), true},
		{"different word", dup, mustSig(t, "('a 'b -> 'b)"), false},
		{"variable vs constant", mustSig(t, "('a 'r -> 'r)"), mustSig(t, "(Num 'r -> 'r)"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreTypesSame(tt.left, tt.right); got != tt.want {
				t.Errorf("AreTypesSame(%s, %s) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}
