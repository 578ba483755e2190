package evaluator

import (
	"fmt"

	"github.com/funvibe/catena/internal/config"
	"github.com/funvibe/catena/internal/typesystem"
)

type builtinFn func(e *Evaluator) error

// builtins implements the prelude words natively. Signatures live in the
// dictionary's prelude; the two are matched by name.
var builtins map[string]builtinFn

func init() {
	builtins = map[string]builtinFn{
		"id":                   func(e *Evaluator) error { return nil },
		config.DupWordName:     builtinDup,
		config.PopWordName:     builtinPop,
		config.SwapWordName:    builtinSwap,
		config.ApplyWordName:   builtinApply,
		config.QuoteWordName:   builtinQuote,
		config.ComposeWordName: builtinCompose,
		"dip":                  builtinDip,
		config.IfWordName:      builtinIf,
		"print":                builtinPrint,
		"+":                    arith(func(a, b int64) int64 { return a + b }),
		"-":                    arith(func(a, b int64) int64 { return a - b }),
		"*":                    arith(func(a, b int64) int64 { return a * b }),
		"/":                    builtinDiv,
		"=":                    compare(func(a, b int64) bool { return a == b }),
		"<":                    compare(func(a, b int64) bool { return a < b }),
		">":                    compare(func(a, b int64) bool { return a > b }),
		"not":                  builtinNot,
		"and":                  logic(func(a, b bool) bool { return a && b }),
		"or":                   logic(func(a, b bool) bool { return a || b }),
	}
}

func builtinPrint(e *Evaluator) error {
	top, err := e.stack.Pop()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.Out, top.Inspect())
	return err
}

func builtinDup(e *Evaluator) error {
	top, err := e.stack.Pop()
	if err != nil {
		return err
	}
	e.stack.Push(top)
	e.stack.Push(top)
	return nil
}

func builtinPop(e *Evaluator) error {
	_, err := e.stack.Pop()
	return err
}

func builtinSwap(e *Evaluator) error {
	a, err := e.stack.Pop()
	if err != nil {
		return err
	}
	b, err := e.stack.Pop()
	if err != nil {
		return err
	}
	e.stack.Push(a)
	e.stack.Push(b)
	return nil
}

func builtinApply(e *Evaluator) error {
	q, err := e.popQuotation()
	if err != nil {
		return err
	}
	return e.runQuotation(q)
}

func builtinQuote(e *Evaluator) error {
	top, err := e.stack.Pop()
	if err != nil {
		return err
	}
	e.stack.Push(&Quotation{
		Captured: top,
		FnType:   typesystem.Quotation(valueType(top)),
	})
	return nil
}

// builtinCompose pops f then g (g is below f) and pushes the quotation
// that runs g then f.
func builtinCompose(e *Evaluator) error {
	f, err := e.popQuotation()
	if err != nil {
		return err
	}
	g, err := e.popQuotation()
	if err != nil {
		return err
	}
	fnType, err := typesystem.ComposeFunctions(g.FnType, f.FnType)
	if err != nil {
		return err
	}
	e.stack.Push(&Quotation{Parts: []*Quotation{g, f}, FnType: fnType})
	return nil
}

func builtinDip(e *Evaluator) error {
	q, err := e.popQuotation()
	if err != nil {
		return err
	}
	saved, err := e.stack.Pop()
	if err != nil {
		return err
	}
	if err := e.runQuotation(q); err != nil {
		return err
	}
	e.stack.Push(saved)
	return nil
}

func builtinIf(e *Evaluator) error {
	then, err := e.popQuotation()
	if err != nil {
		return err
	}
	alt, err := e.popQuotation()
	if err != nil {
		return err
	}
	cond, err := e.popBoolean()
	if err != nil {
		return err
	}
	if cond.Value {
		return e.runQuotation(then)
	}
	return e.runQuotation(alt)
}

// arith pops the top two numbers and pushes op(second, top): `8 2 -` is 6.
func arith(op func(a, b int64) int64) builtinFn {
	return func(e *Evaluator) error {
		top, err := e.popInteger()
		if err != nil {
			return err
		}
		second, err := e.popInteger()
		if err != nil {
			return err
		}
		e.stack.Push(&Integer{Value: op(second.Value, top.Value)})
		return nil
	}
}

func builtinDiv(e *Evaluator) error {
	top, err := e.popInteger()
	if err != nil {
		return err
	}
	second, err := e.popInteger()
	if err != nil {
		return err
	}
	if top.Value == 0 {
		return fmt.Errorf("division by zero")
	}
	e.stack.Push(&Integer{Value: second.Value / top.Value})
	return nil
}

func compare(op func(a, b int64) bool) builtinFn {
	return func(e *Evaluator) error {
		top, err := e.popInteger()
		if err != nil {
			return err
		}
		second, err := e.popInteger()
		if err != nil {
			return err
		}
		e.stack.Push(&Boolean{Value: op(second.Value, top.Value)})
		return nil
	}
}

func builtinNot(e *Evaluator) error {
	b, err := e.popBoolean()
	if err != nil {
		return err
	}
	e.stack.Push(&Boolean{Value: !b.Value})
	return nil
}

func logic(op func(a, b bool) bool) builtinFn {
	return func(e *Evaluator) error {
		top, err := e.popBoolean()
		if err != nil {
			return err
		}
		second, err := e.popBoolean()
		if err != nil {
			return err
		}
		e.stack.Push(&Boolean{Value: op(second.Value, top.Value)})
		return nil
	}
}
