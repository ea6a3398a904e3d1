package typechecker

import (
	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/interpreter"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

// Synth infers the type of e and returns its elaborated form. Every binder
// in the result carries a name that is fresh for ctx.
func Synth(ctx *runtime.Context, e core.Expr) (core.Expr, runtime.Value, error) {
	return checker{ctx: ctx, names: newRenaming()}.synth(e)
}

// Check elaborates e against an expected type.
func Check(ctx *runtime.Context, e core.Expr, expected runtime.Value) (core.Expr, error) {
	return checker{ctx: ctx, names: newRenaming()}.check(e, expected)
}

// IsType elaborates e as a type. U passes this judgment although it has no
// type of its own.
func IsType(ctx *runtime.Context, e core.Expr) (core.Expr, error) {
	return checker{ctx: ctx, names: newRenaming()}.isType(e)
}

// checker is one judgment's scope. It is passed by value; going under a
// binder yields a new checker.
type checker struct {
	ctx   *runtime.Context
	names renaming
}

// bind introduces a source binder, choosing a fresh elaborated name for it.
func (c checker) bind(name string, typ runtime.Value) (checker, string) {
	fresh := c.ctx.Fresh(name)
	return checker{ctx: c.ctx.ExtendFree(fresh, typ), names: c.names.extend(name, fresh)}, fresh
}

// bindAnonymous introduces a binder no source expression can mention.
func (c checker) bindAnonymous(avoid core.Expr, typ runtime.Value) (checker, string) {
	fresh := c.ctx.FreshBinder("x", core.OccurringNames(avoid))
	return checker{ctx: c.ctx.ExtendFree(fresh, typ), names: c.names.introduce(fresh)}, fresh
}

func (c checker) eval(e core.Expr) runtime.Value {
	return interpreter.ValInContext(c.ctx, e)
}

func (c checker) readBackType(v runtime.Value) core.Expr {
	return interpreter.ReadBackType(c.ctx, v)
}

func (c checker) mismatch(e core.Expr, expected, found runtime.Value) *TypeError {
	return &TypeError{
		Kind:     TypeMismatch,
		Message:  "the expression does not have the expected type",
		Expected: c.readBackType(expected),
		Found:    c.readBackType(found),
		Expr:     e,
	}
}

func (c checker) targetMismatch(e core.Expr, op, want string, found runtime.Value) *TypeError {
	kind := EliminatorTargetMismatch
	if op == "car" || op == "cdr" {
		kind = NotAPairType
	}
	return &TypeError{
		Kind:    kind,
		Message: op + " expects a target whose type is " + want,
		Found:   c.readBackType(found),
		Expr:    e,
	}
}

func (c checker) sameType(e core.Expr, expected, found runtime.Value) error {
	if !interpreter.SameType(c.ctx, expected, found) {
		return c.mismatch(e, expected, found)
	}
	return nil
}

func (c checker) convert(e core.Expr, typ, expected, found runtime.Value) error {
	if !interpreter.Convert(c.ctx, typ, expected, found) {
		return &TypeError{
			Kind:     TypeMismatch,
			Message:  "the values are not the same " + core.String(c.readBackType(typ)),
			Expected: interpreter.ReadBack(c.ctx, typ, expected),
			Found:    interpreter.ReadBack(c.ctx, typ, found),
			Expr:     e,
		}
	}
	return nil
}

func (c checker) isType(e core.Expr) (core.Expr, error) {
	switch n := e.(type) {
	case *core.Universe:
		return core.NewUniverse(), nil
	case *core.Pi:
		argType, err := c.isType(n.ArgType)
		if err != nil {
			return nil, err
		}
		inner, name := c.bind(n.Name, c.eval(argType))
		result, err := inner.isType(n.ResultType)
		if err != nil {
			return nil, err
		}
		return core.NewPi(name, argType, result), nil
	case *core.Arrow:
		argType, err := c.isType(n.ArgType)
		if err != nil {
			return nil, err
		}
		inner, name := c.bindAnonymous(n.ResultType, c.eval(argType))
		result, err := inner.isType(n.ResultType)
		if err != nil {
			return nil, err
		}
		return core.NewPi(name, argType, result), nil
	case *core.Sigma:
		carType, err := c.isType(n.CarType)
		if err != nil {
			return nil, err
		}
		inner, name := c.bind(n.Name, c.eval(carType))
		cdrType, err := inner.isType(n.CdrType)
		if err != nil {
			return nil, err
		}
		return core.NewSigma(name, carType, cdrType), nil
	case *core.Pair:
		carType, err := c.isType(n.CarType)
		if err != nil {
			return nil, err
		}
		inner, name := c.bindAnonymous(n.CdrType, c.eval(carType))
		cdrType, err := inner.isType(n.CdrType)
		if err != nil {
			return nil, err
		}
		return core.NewSigma(name, carType, cdrType), nil
	case *core.TODO:
		return nil, NewError(IncompleteTerm, e, "TODO cannot stand for a type")
	}
	out, typ, err := c.synth(e)
	if err != nil {
		return nil, err
	}
	if _, ok := interpreter.Now(typ).(runtime.UniverseValue); !ok {
		return nil, &TypeError{
			Kind:    NotAUniverse,
			Message: "expected a type",
			Found:   c.readBackType(typ),
			Expr:    e,
		}
	}
	return out, nil
}
