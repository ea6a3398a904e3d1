package typechecker

import (
	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/interpreter"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

func (c checker) check(e core.Expr, expected runtime.Value) (core.Expr, error) {
	switch n := e.(type) {
	case *core.Lambda:
		pi, ok := interpreter.Now(expected).(*runtime.PiValue)
		if !ok {
			return nil, c.introMismatch(e, "λ", "a Π type", expected)
		}
		inner, name := c.bind(n.Name, pi.ArgType)
		bodyType := interpreter.ValOfClosure(pi.ResultType, runtime.NewVariable(pi.ArgType, name))
		body, err := inner.check(n.Body, bodyType)
		if err != nil {
			return nil, err
		}
		return core.NewLambda(name, body), nil
	case *core.Cons:
		sigma, ok := interpreter.Now(expected).(*runtime.SigmaValue)
		if !ok {
			return nil, c.introMismatch(e, "cons", "a Σ type", expected)
		}
		car, err := c.check(n.Car, sigma.CarType)
		if err != nil {
			return nil, err
		}
		cdr, err := c.check(n.Cdr, interpreter.ValOfClosure(sigma.CdrType, c.eval(car)))
		if err != nil {
			return nil, err
		}
		return core.NewCons(car, cdr), nil
	case *core.Nil:
		if _, ok := interpreter.Now(expected).(*runtime.ListValue); !ok {
			return nil, c.introMismatch(e, "nil", "a List type", expected)
		}
		return core.NewNil(), nil
	case *core.ListCons:
		list, ok := interpreter.Now(expected).(*runtime.ListValue)
		if !ok {
			return nil, c.introMismatch(e, "::", "a List type", expected)
		}
		head, err := c.check(n.Head, list.EntryType)
		if err != nil {
			return nil, err
		}
		tail, err := c.check(n.Tail, list)
		if err != nil {
			return nil, err
		}
		return core.NewListCons(head, tail), nil
	case *core.VecNil:
		vec, ok := interpreter.Now(expected).(*runtime.VecValue)
		if !ok {
			return nil, c.introMismatch(e, "vecnil", "a Vec type", expected)
		}
		if _, ok := interpreter.Now(vec.Length).(runtime.ZeroValue); !ok {
			return nil, c.introMismatch(e, "vecnil", "a Vec of length zero", expected)
		}
		return core.NewVecNil(), nil
	case *core.VecCons:
		vec, ok := interpreter.Now(expected).(*runtime.VecValue)
		if !ok {
			return nil, c.introMismatch(e, "vec::", "a Vec type", expected)
		}
		length, ok := interpreter.Now(vec.Length).(*runtime.Add1Value)
		if !ok {
			return nil, c.introMismatch(e, "vec::", "a Vec whose length is (add1 n)", expected)
		}
		head, err := c.check(n.Head, vec.EntryType)
		if err != nil {
			return nil, err
		}
		tail, err := c.check(n.Tail, &runtime.VecValue{EntryType: vec.EntryType, Length: length.N})
		if err != nil {
			return nil, err
		}
		return core.NewVecCons(head, tail), nil
	case *core.Same:
		eq, ok := interpreter.Now(expected).(*runtime.EqualValue)
		if !ok {
			return nil, c.introMismatch(e, "same", "an = type", expected)
		}
		v, err := c.check(n.Value, eq.Type)
		if err != nil {
			return nil, err
		}
		vv := c.eval(v)
		if err := c.convert(e, eq.Type, eq.From, vv); err != nil {
			return nil, err
		}
		if err := c.convert(e, eq.Type, eq.To, vv); err != nil {
			return nil, err
		}
		return core.NewSame(v), nil
	case *core.Left:
		either, ok := interpreter.Now(expected).(*runtime.EitherValue)
		if !ok {
			return nil, c.introMismatch(e, "left", "an Either type", expected)
		}
		v, err := c.check(n.Value, either.Left)
		if err != nil {
			return nil, err
		}
		return core.NewLeft(v), nil
	case *core.Right:
		either, ok := interpreter.Now(expected).(*runtime.EitherValue)
		if !ok {
			return nil, c.introMismatch(e, "right", "an Either type", expected)
		}
		v, err := c.check(n.Value, either.Right)
		if err != nil {
			return nil, err
		}
		return core.NewRight(v), nil
	case *core.TODO:
		return nil, &TypeError{
			Kind:     IncompleteTerm,
			Message:  "TODO stands in for an expression that is not written yet",
			Expected: c.readBackType(expected),
			Expr:     e,
		}
	}
	out, found, err := c.synth(e)
	if err != nil {
		return nil, err
	}
	if err := c.sameType(e, expected, found); err != nil {
		return nil, err
	}
	return out, nil
}

func (c checker) introMismatch(e core.Expr, form, want string, expected runtime.Value) *TypeError {
	return &TypeError{
		Kind:     TypeMismatch,
		Message:  form + " can only be checked against " + want,
		Expected: c.readBackType(expected),
		Expr:     e,
	}
}
