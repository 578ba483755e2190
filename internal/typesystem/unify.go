package typesystem

import "fmt"

// varRecord is the unifier's binding of one or more variable names to
// their currently most specific known type. name is the representative
// (the first variable encountered); unifier is nil while nothing more
// specific than a variable is known.
type varRecord struct {
	name    string
	unifier Type
}

// Unifier is a substitution engine. It is cheap to construct and must not
// be shared across independent composition or application attempts: a
// failed unification leaves bindings behind, and there is no rollback.
type Unifier struct {
	env map[string]*varRecord
}

func NewUnifier() *Unifier {
	return &Unifier{env: map[string]*varRecord{}}
}

// Unify finds the most specific common type of t1 and t2, recording
// variable bindings along the way. It returns a UnificationError when no
// common type exists.
func (u *Unifier) Unify(t1, t2 Type) (Type, error) {
	if t1 == nil || t2 == nil {
		return nil, NewUnificationError(t1, t2, "nil type")
	}
	if t1 == t2 {
		return t1, nil
	}
	if v, ok := t1.(*TVar); ok {
		return u.bindVariable(v, t2)
	}
	if v, ok := t2.(*TVar); ok {
		return u.bindVariable(v, t1)
	}

	switch a := t1.(type) {
	case *TCon:
		b, ok := t2.(*TCon)
		if !ok {
			return nil, NewUnificationError(t1, t2, "incompatible shapes")
		}
		if a.Name != b.Name {
			return nil, NewUnificationError(t1, t2, "incompatible constants")
		}
		return a, nil
	case *TArray:
		b, ok := t2.(*TArray)
		if !ok {
			return nil, NewUnificationError(t1, t2, "incompatible shapes")
		}
		if len(a.Elems) != len(b.Elems) {
			return nil, NewUnificationError(t1, t2,
				fmt.Sprintf("arity mismatch: %d vs %d", len(a.Elems), len(b.Elems)))
		}
		elems := make([]Type, len(a.Elems))
		for i := range a.Elems {
			e, err := u.Unify(a.Elems[i], b.Elems[i])
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return NewTArray(elems...), nil
	}
	return nil, NewUnificationError(t1, t2, fmt.Sprintf("unknown type kind %T", t1))
}

func (u *Unifier) record(name string) *varRecord {
	if rec, ok := u.env[name]; ok {
		return rec
	}
	rec := &varRecord{name: name}
	u.env[name] = rec
	return rec
}

// bindVariable updates v's record with t. Variable-variable unification
// links both names to one shared record; otherwise the record keeps the
// more specific of its current binding and t. Every name pointing at the
// record sees the new binding, since the record is shared.
func (u *Unifier) bindVariable(v *TVar, t Type) (Type, error) {
	rec := u.record(v.Name)

	if tv, ok := t.(*TVar); ok {
		other := u.record(tv.Name)
		if rec == other {
			return v, nil
		}
		best, err := u.chooseBest(rec.unifier, other.unifier)
		if err != nil {
			return nil, err
		}
		rec.unifier = best
		for name, r := range u.env {
			if r == other {
				u.env[name] = rec
			}
		}
		if best != nil {
			return best, nil
		}
		return v, nil
	}

	best, err := u.chooseBest(rec.unifier, t)
	if err != nil {
		return nil, err
	}
	rec.unifier = best
	return best, nil
}

// chooseBest picks the more specific of two candidate bindings:
// constant or array over variable, first encountered between two
// variables, and recursive unification when both sides are structured.
func (u *Unifier) chooseBest(curr, next Type) (Type, error) {
	if curr == nil {
		return next, nil
	}
	if next == nil {
		return curr, nil
	}
	_, currIsVar := curr.(*TVar)
	_, nextIsVar := next.(*TVar)
	switch {
	case currIsVar && nextIsVar:
		return curr, nil
	case currIsVar:
		return next, nil
	case nextIsVar:
		return curr, nil
	}
	return u.Unify(curr, next)
}

// GetUnifiedType resolves t through the current substitution map,
// expanding variables to their bound types. Expansion that leads back to
// a variable already being expanded yields a recursive-type marker (a
// finite stand-in for the equirecursive type) instead of looping; this is
// a successful result, not an error.
func (u *Unifier) GetUnifiedType(t Type) Type {
	return u.resolve(t, nil)
}

func (u *Unifier) resolve(t Type, expanding []string) Type {
	switch t := t.(type) {
	case *TCon:
		return t
	case *TVar:
		rec, ok := u.env[t.Name]
		if !ok {
			return t
		}
		switch bound := rec.unifier.(type) {
		case nil:
			return NewTVar(rec.name)
		case *TCon:
			return bound
		case *TVar:
			if brec, ok := u.env[bound.Name]; ok && brec == rec {
				return NewTVar(rec.name)
			}
			return u.resolve(bound, expanding)
		case *TArray:
			for i := len(expanding) - 1; i >= 0; i-- {
				if expanding[i] == rec.name {
					return MakeRecursiveType(len(expanding) - i)
				}
			}
			return u.resolve(bound, append(expanding, rec.name))
		}
		return t
	case *TArray:
		elems := make([]Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = u.resolve(e, expanding)
		}
		return NewTArray(elems...)
	}
	return t
}
