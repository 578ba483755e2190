package typesystem

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

var freshCounter atomic.Uint64

// instanceID distinguishes freshened copies made by independent processes
// sharing a store; the counter alone already separates copies within one
// process.
var instanceID = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

// FreshSalt returns a process-unique salt for Freshen.
func FreshSalt() string {
	return fmt.Sprintf("%s%d", instanceID, freshCounter.Add(1))
}

// Freshen produces a structural copy of t in which every variable name is
// suffixed with salt, guaranteeing disjointness from any other freshened
// copy. Required before combining two independently typed fragments so
// that unrelated polymorphic instances never spuriously unify.
func Freshen(t Type, salt string) Type {
	out := renameVariables(t, func(name string) string {
		return name + "$" + salt
	})
	ComputeSchemes(out)
	return out
}

// NormalizeVarNames renames variables to t0, t1, ... in first-occurrence
// order, for structural comparison of types regardless of original naming.
func NormalizeVarNames(t Type) Type {
	return canonicalize(t, func(i int) string {
		return fmt.Sprintf("t%d", i)
	})
}

// AlphabetizeVarNames renames variables to a, b, ..., z, a1, b1, ... in
// first-occurrence order, for stable human-readable output.
func AlphabetizeVarNames(t Type) Type {
	return canonicalize(t, func(i int) string {
		letter := string(rune('a' + i%26))
		if i < 26 {
			return letter
		}
		return fmt.Sprintf("%s%d", letter, i/26)
	})
}

// AreTypesSame reports whether t1 and t2 are structurally identical up to
// variable naming.
func AreTypesSame(t1, t2 Type) bool {
	return NormalizeVarNames(t1).String() == NormalizeVarNames(t2).String()
}

func canonicalize(t Type, nameFor func(int) string) Type {
	assigned := map[string]string{}
	for _, name := range VariableNames(t) {
		assigned[name] = nameFor(len(assigned))
	}
	out := renameVariables(t, func(name string) string {
		return assigned[name]
	})
	ComputeSchemes(out)
	return out
}

func renameVariables(t Type, rename func(string) string) Type {
	switch t := t.(type) {
	case *TCon:
		return &TCon{Name: t.Name}
	case *TVar:
		return &TVar{Name: rename(t.Name)}
	case *TArray:
		elems := make([]Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = renameVariables(e, rename)
		}
		return &TArray{Elems: elems}
	}
	return t
}
