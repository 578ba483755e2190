package typesystem

// The concatenative layer: sequential composition of stack effects,
// application of a function type to a stack type, and quotation. Every
// entry point works on freshly cloned or freshened copies and a fresh
// Unifier, so a failed call leaves no partially mutated state visible to
// the caller.

// ComposeFunctions models running f then g on a stack: f's output shape
// must unify with g's input shape. Both operands are freshened with
// distinct salts first, so shared variable names in their definitions do
// not collide across independent uses.
func ComposeFunctions(f, g Type) (Type, error) {
	if !IsFunctionType(f) {
		return nil, NewInvalidTypeError(f, "compose: not a function type")
	}
	if !IsFunctionType(g) {
		return nil, NewInvalidTypeError(g, "compose: not a function type")
	}

	f = Freshen(f, FreshSalt())
	g = Freshen(g, FreshSalt())

	fIn, _ := FunctionInput(f)
	fOut, _ := FunctionOutput(f)
	gIn, _ := FunctionInput(g)
	gOut, _ := FunctionOutput(g)

	u := NewUnifier()
	if _, err := u.Unify(fOut, gIn); err != nil {
		return nil, err
	}

	result := NewFunctionType(u.GetUnifiedType(fIn), u.GetUnifiedType(gOut))
	ComputeSchemes(result)
	return result, nil
}

// ComposeFunctionChain left-folds ComposeFunctions over fns. The empty
// chain yields the identity function type 'a -> 'a.
func ComposeFunctionChain(fns []Type) (Type, error) {
	result := Type(IdentityFunction())
	for _, fn := range fns {
		var err error
		result, err = ComposeFunctions(result, fn)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// IdentityFunction returns a fresh instance of 'a -> 'a: the type of the
// empty program, generic over the whole untouched stack.
func IdentityFunction() *TArray {
	name := "a$" + FreshSalt()
	t := NewFunctionType(NewTVar(name), NewTVar(name))
	ComputeSchemes(t)
	return t
}

// ApplyFunction models feeding the stack type args into fn: fn's input is
// unified with args and fn's output, resolved through the unifier, is the
// resulting stack type. Both operands are cloned so the caller's values
// stay untouched.
func ApplyFunction(fn, args Type) (Type, error) {
	if !IsFunctionType(fn) {
		return nil, NewInvalidTypeError(fn, "apply: not a function type")
	}
	fn = CloneType(fn)
	args = CloneType(args)

	in, _ := FunctionInput(fn)
	out, _ := FunctionOutput(fn)

	u := NewUnifier()
	if _, err := u.Unify(in, args); err != nil {
		return nil, err
	}

	result := u.GetUnifiedType(out)
	ComputeSchemes(result)
	return result, nil
}

// Quotation builds the type of pushing a thunk that produces x: with a
// fresh row variable r, the function type r -> (x r). Quoting turns any
// value into a zero-argument producer generic over the rest of the stack.
func Quotation(x Type) Type {
	row := "r$" + FreshSalt()
	t := NewFunctionType(NewTVar(row), NewTArray(CloneType(x), NewTVar(row)))
	ComputeSchemes(t)
	return t
}

// MakeFunctionType builds a stack-effect type from the inputs consumed and
// outputs produced (top first), appending one shared fresh row variable to
// both sides so the signature is open over the unaffected stack tail.
func MakeFunctionType(inputs, outputs []Type) *TArray {
	row := NewTVar("r$" + FreshSalt())
	in := ConsList(append(append([]Type{}, inputs...), row))
	out := ConsList(append(append([]Type{}, outputs...), NewTVar(row.Name)))
	t := NewFunctionType(in, out)
	ComputeSchemes(t)
	return t
}

// ConsList folds elems into a right-nested chain of 2-element cons cells.
// The last element is the terminal (normally the row variable); a single
// element is returned as-is.
func ConsList(elems []Type) Type {
	acc := elems[len(elems)-1]
	for i := len(elems) - 2; i >= 0; i-- {
		acc = NewTArray(elems[i], acc)
	}
	return acc
}
