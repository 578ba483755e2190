package typesystem

// ComputeSchemes assigns every type variable in t to its owning quantifier
// (the type array whose scheme it belongs to). The pass always starts from
// a clean slate: stale ownership from an earlier pass is discarded.
//
// Ownership rules, applied bottom-up:
//  1. a variable defaults to the innermost array containing it;
//  2. a variable that appears in a non-final child of an array and also in
//     any sibling of that child is promoted to the array itself, since the
//     sharing expresses a relationship between the siblings.
//
// Rule 1 is what keeps independent instances independent (two appearances
// of a polymorphic signature each own their variables); rule 2 is what
// quantifies a row variable threading through a function's input and
// output at the function node.
func ComputeSchemes(t Type) {
	r := &schemeResolver{owner: map[string]*TArray{}}
	clearSchemes(t)
	r.resolve(t)
	r.annotate(t)
}

type schemeResolver struct {
	owner map[string]*TArray
}

func clearSchemes(t Type) {
	for _, d := range DescendantTypes(t) {
		switch d := d.(type) {
		case *TVar:
			d.Scheme = nil
		case *TArray:
			d.schemeVars = nil
		}
	}
}

func (r *schemeResolver) resolve(t Type) {
	arr, ok := t.(*TArray)
	if !ok {
		return
	}
	for _, e := range arr.Elems {
		r.resolve(e)
	}

	// Default: claim any variable no descendant array has claimed.
	for _, name := range VariableNames(arr) {
		if r.owner[name] == nil {
			r.owner[name] = arr
		}
	}

	// Promote variables shared across siblings to this array.
	for i := 0; i < len(arr.Elems)-1; i++ {
		for _, name := range VariableNames(arr.Elems[i]) {
			for j := range arr.Elems {
				if j != i && containsVariable(arr.Elems[j], name) {
					r.owner[name] = arr
					break
				}
			}
		}
	}
}

func (r *schemeResolver) annotate(t Type) {
	for _, d := range DescendantTypes(t) {
		if v, ok := d.(*TVar); ok {
			v.Scheme = r.owner[v.Name]
		}
	}
	r.fillSchemeVars(t)
}

func (r *schemeResolver) fillSchemeVars(t Type) {
	arr, ok := t.(*TArray)
	if !ok {
		return
	}
	for _, name := range VariableNames(arr) {
		if r.owner[name] == arr {
			arr.schemeVars = append(arr.schemeVars, name)
		}
	}
	for _, e := range arr.Elems {
		r.fillSchemeVars(e)
	}
}
