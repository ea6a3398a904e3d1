package typechecker

import (
	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/interpreter"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

var universe runtime.Value = runtime.UniverseValue{}

func (c checker) synth(e core.Expr) (core.Expr, runtime.Value, error) {
	switch n := e.(type) {
	case *core.Var:
		return c.synthVar(n)
	case *core.The:
		typ, err := c.isType(n.Type)
		if err != nil {
			return nil, nil, err
		}
		tv := c.eval(typ)
		expr, err := c.check(n.Expr, tv)
		if err != nil {
			return nil, nil, err
		}
		return core.NewThe(typ, expr), tv, nil
	case *core.Universe:
		return nil, nil, NewError(UniverseHasNoType, e, "U is a type but does not have a type")
	case *core.Nat:
		return core.NewNat(), universe, nil
	case *core.Atom:
		return core.NewAtom(), universe, nil
	case *core.Trivial:
		return core.NewTrivial(), universe, nil
	case *core.Absurd:
		return core.NewAbsurd(), universe, nil
	case *core.Pi:
		argType, err := c.check(n.ArgType, universe)
		if err != nil {
			return nil, nil, err
		}
		inner, name := c.bind(n.Name, c.eval(argType))
		result, err := inner.check(n.ResultType, universe)
		if err != nil {
			return nil, nil, err
		}
		return core.NewPi(name, argType, result), universe, nil
	case *core.Arrow:
		argType, err := c.check(n.ArgType, universe)
		if err != nil {
			return nil, nil, err
		}
		inner, name := c.bindAnonymous(n.ResultType, c.eval(argType))
		result, err := inner.check(n.ResultType, universe)
		if err != nil {
			return nil, nil, err
		}
		return core.NewPi(name, argType, result), universe, nil
	case *core.Sigma:
		carType, err := c.check(n.CarType, universe)
		if err != nil {
			return nil, nil, err
		}
		inner, name := c.bind(n.Name, c.eval(carType))
		cdrType, err := inner.check(n.CdrType, universe)
		if err != nil {
			return nil, nil, err
		}
		return core.NewSigma(name, carType, cdrType), universe, nil
	case *core.Pair:
		carType, err := c.check(n.CarType, universe)
		if err != nil {
			return nil, nil, err
		}
		inner, name := c.bindAnonymous(n.CdrType, c.eval(carType))
		cdrType, err := inner.check(n.CdrType, universe)
		if err != nil {
			return nil, nil, err
		}
		return core.NewSigma(name, carType, cdrType), universe, nil
	case *core.App:
		return c.synthApp(n)
	case *core.Car:
		pair, typ, err := c.synth(n.Pair)
		if err != nil {
			return nil, nil, err
		}
		sigma, ok := interpreter.Now(typ).(*runtime.SigmaValue)
		if !ok {
			return nil, nil, c.targetMismatch(e, "car", "a Σ type", typ)
		}
		return core.NewCar(pair), sigma.CarType, nil
	case *core.Cdr:
		pair, typ, err := c.synth(n.Pair)
		if err != nil {
			return nil, nil, err
		}
		sigma, ok := interpreter.Now(typ).(*runtime.SigmaValue)
		if !ok {
			return nil, nil, c.targetMismatch(e, "cdr", "a Σ type", typ)
		}
		car := interpreter.DoCar(c.eval(pair))
		return core.NewCdr(pair), interpreter.ValOfClosure(sigma.CdrType, car), nil
	case *core.Zero:
		return core.NewZero(), runtime.NatValue{}, nil
	case *core.Number:
		return core.NewNumber(n.Value), runtime.NatValue{}, nil
	case *core.Add1:
		m, err := c.check(n.N, runtime.NatValue{})
		if err != nil {
			return nil, nil, err
		}
		return core.NewAdd1(m), runtime.NatValue{}, nil
	case *core.WhichNat:
		step := func(bt runtime.Value) runtime.Value {
			return &runtime.PiValue{ArgName: "n-1", ArgType: runtime.NatValue{}, ResultType: runtime.ConstClosure(bt)}
		}
		return c.synthNatRecursor(n.Target, n.Base, n.Step, step, func(t, bt, b, s core.Expr) core.Expr {
			return core.NewWhichNat(t, bt, b, s)
		})
	case *core.IterNat:
		step := func(bt runtime.Value) runtime.Value {
			return &runtime.PiValue{ArgName: "ih", ArgType: bt, ResultType: runtime.ConstClosure(bt)}
		}
		return c.synthNatRecursor(n.Target, n.Base, n.Step, step, func(t, bt, b, s core.Expr) core.Expr {
			return core.NewIterNat(t, bt, b, s)
		})
	case *core.RecNat:
		return c.synthNatRecursor(n.Target, n.Base, n.Step, interpreter.RecNatStepType, func(t, bt, b, s core.Expr) core.Expr {
			return core.NewRecNat(t, bt, b, s)
		})
	case *core.IndNat:
		return c.synthIndNat(n)
	case *core.Quote:
		if n.Symbol == "" {
			return nil, nil, NewError(TypeMismatch, e, "an atom needs at least one character")
		}
		return core.NewQuote(n.Symbol), runtime.AtomValue{}, nil
	case *core.Sole:
		return core.NewSole(), runtime.TrivialValue{}, nil
	case *core.IndAbsurd:
		target, err := c.check(n.Target, runtime.AbsurdValue{})
		if err != nil {
			return nil, nil, err
		}
		motive, err := c.check(n.Motive, universe)
		if err != nil {
			return nil, nil, err
		}
		return core.NewIndAbsurd(target, motive), c.eval(motive), nil
	case *core.List:
		entry, err := c.check(n.EntryType, universe)
		if err != nil {
			return nil, nil, err
		}
		return core.NewList(entry), universe, nil
	case *core.ListCons:
		head, entryType, err := c.synth(n.Head)
		if err != nil {
			return nil, nil, err
		}
		listType := &runtime.ListValue{EntryType: entryType}
		tail, err := c.check(n.Tail, listType)
		if err != nil {
			return nil, nil, err
		}
		return core.NewListCons(head, tail), listType, nil
	case *core.RecList:
		return c.synthRecList(n)
	case *core.IndList:
		return c.synthIndList(n)
	case *core.Vec:
		entry, err := c.check(n.EntryType, universe)
		if err != nil {
			return nil, nil, err
		}
		length, err := c.check(n.Length, runtime.NatValue{})
		if err != nil {
			return nil, nil, err
		}
		return core.NewVec(entry, length), universe, nil
	case *core.Head:
		vec, entryType, _, err := c.synthNonEmptyVec(e, "head", n.Vec)
		if err != nil {
			return nil, nil, err
		}
		return core.NewHead(vec), entryType, nil
	case *core.Tail:
		vec, entryType, length, err := c.synthNonEmptyVec(e, "tail", n.Vec)
		if err != nil {
			return nil, nil, err
		}
		return core.NewTail(vec), &runtime.VecValue{EntryType: entryType, Length: length.N}, nil
	case *core.IndVec:
		return c.synthIndVec(n)
	case *core.Either:
		left, err := c.check(n.Left, universe)
		if err != nil {
			return nil, nil, err
		}
		right, err := c.check(n.Right, universe)
		if err != nil {
			return nil, nil, err
		}
		return core.NewEither(left, right), universe, nil
	case *core.IndEither:
		return c.synthIndEither(n)
	case *core.Equal:
		typ, err := c.check(n.Type, universe)
		if err != nil {
			return nil, nil, err
		}
		tv := c.eval(typ)
		from, err := c.check(n.From, tv)
		if err != nil {
			return nil, nil, err
		}
		to, err := c.check(n.To, tv)
		if err != nil {
			return nil, nil, err
		}
		return core.NewEqual(typ, from, to), universe, nil
	case *core.Replace:
		return c.synthReplace(n)
	case *core.Trans:
		return c.synthTrans(n)
	case *core.Cong:
		return c.synthCong(n)
	case *core.Symm:
		target, eq, err := c.synthEquality(e, "symm", n.Target)
		if err != nil {
			return nil, nil, err
		}
		return core.NewSymm(target), &runtime.EqualValue{Type: eq.Type, From: eq.To, To: eq.From}, nil
	case *core.IndEqual:
		return c.synthIndEqual(n)
	case *core.TODO:
		return nil, nil, NewError(IncompleteTerm, e, "TODO has no type to synthesize")
	case *core.Lambda, *core.Cons, *core.Nil, *core.VecNil, *core.VecCons, *core.Same, *core.Left, *core.Right:
		return nil, nil, NewError(CannotSynthesize, e, "this form needs a type annotation; use (the T e)")
	}
	return nil, nil, NewError(CannotSynthesize, e, "unrecognized expression %T", e)
}

func (c checker) synthVar(n *core.Var) (core.Expr, runtime.Value, error) {
	name, inScope := c.names.rename(n.Name)
	if !inScope {
		return nil, nil, NewError(UnboundVariable, n, "unknown variable %s", n.Name)
	}
	binding, ok := c.ctx.Lookup(name)
	if !ok {
		return nil, nil, NewError(UnboundVariable, n, "unknown variable %s", n.Name)
	}
	if _, pending := binding.(runtime.Claim); pending {
		return nil, nil, NewError(UndefinedClaim, n, "%s is claimed but not yet defined", n.Name)
	}
	return core.NewVar(name), binding.BindingType(), nil
}

func (c checker) synthApp(n *core.App) (core.Expr, runtime.Value, error) {
	fun, typ, err := c.synth(n.Fun)
	if err != nil {
		return nil, nil, err
	}
	pi, ok := interpreter.Now(typ).(*runtime.PiValue)
	if !ok {
		return nil, nil, &TypeError{
			Kind:    NotAFunctionType,
			Message: "only functions can be applied",
			Found:   c.readBackType(typ),
			Expr:    n,
		}
	}
	arg, err := c.check(n.Arg, pi.ArgType)
	if err != nil {
		return nil, nil, err
	}
	return core.NewApp(fun, arg), interpreter.ValOfClosure(pi.ResultType, c.eval(arg)), nil
}

// synthNatRecursor covers which-Nat, iter-Nat and rec-Nat, which differ only
// in their step type. The base's type is recorded in the elaborated form.
func (c checker) synthNatRecursor(target, base, step core.Expr, stepType func(runtime.Value) runtime.Value, build func(target, baseType, base, step core.Expr) core.Expr) (core.Expr, runtime.Value, error) {
	t, err := c.check(target, runtime.NatValue{})
	if err != nil {
		return nil, nil, err
	}
	b, bt, err := c.synth(base)
	if err != nil {
		return nil, nil, err
	}
	s, err := c.check(step, stepType(bt))
	if err != nil {
		return nil, nil, err
	}
	return build(t, c.readBackType(bt), b, s), bt, nil
}

func (c checker) synthIndNat(n *core.IndNat) (core.Expr, runtime.Value, error) {
	target, err := c.check(n.Target, runtime.NatValue{})
	if err != nil {
		return nil, nil, err
	}
	motive, err := c.check(n.Motive, interpreter.IndNatMotiveType())
	if err != nil {
		return nil, nil, err
	}
	mv := c.eval(motive)
	base, err := c.check(n.Base, interpreter.DoApply(mv, runtime.ZeroValue{}))
	if err != nil {
		return nil, nil, err
	}
	step, err := c.check(n.Step, interpreter.IndNatStepType(mv))
	if err != nil {
		return nil, nil, err
	}
	return core.NewIndNat(target, motive, base, step), interpreter.DoApply(mv, c.eval(target)), nil
}

func (c checker) synthList(e core.Expr, op string, target core.Expr) (core.Expr, runtime.Value, error) {
	t, typ, err := c.synth(target)
	if err != nil {
		return nil, nil, err
	}
	list, ok := interpreter.Now(typ).(*runtime.ListValue)
	if !ok {
		return nil, nil, c.targetMismatch(e, op, "a List type", typ)
	}
	return t, list.EntryType, nil
}

func (c checker) synthRecList(n *core.RecList) (core.Expr, runtime.Value, error) {
	target, entryType, err := c.synthList(n, "rec-List", n.Target)
	if err != nil {
		return nil, nil, err
	}
	base, bt, err := c.synth(n.Base)
	if err != nil {
		return nil, nil, err
	}
	step, err := c.check(n.Step, interpreter.RecListStepType(entryType, bt))
	if err != nil {
		return nil, nil, err
	}
	return core.NewRecList(target, c.readBackType(bt), base, step), bt, nil
}

func (c checker) synthIndList(n *core.IndList) (core.Expr, runtime.Value, error) {
	target, entryType, err := c.synthList(n, "ind-List", n.Target)
	if err != nil {
		return nil, nil, err
	}
	motive, err := c.check(n.Motive, interpreter.IndListMotiveType(entryType))
	if err != nil {
		return nil, nil, err
	}
	mv := c.eval(motive)
	base, err := c.check(n.Base, interpreter.DoApply(mv, runtime.NilValue{}))
	if err != nil {
		return nil, nil, err
	}
	step, err := c.check(n.Step, interpreter.IndListStepType(entryType, mv))
	if err != nil {
		return nil, nil, err
	}
	return core.NewIndList(target, motive, base, step), interpreter.DoApply(mv, c.eval(target)), nil
}

func (c checker) synthVec(e core.Expr, op string, target core.Expr) (core.Expr, *runtime.VecValue, error) {
	t, typ, err := c.synth(target)
	if err != nil {
		return nil, nil, err
	}
	vec, ok := interpreter.Now(typ).(*runtime.VecValue)
	if !ok {
		return nil, nil, c.targetMismatch(e, op, "a Vec type", typ)
	}
	return t, vec, nil
}

func (c checker) synthNonEmptyVec(e core.Expr, op string, target core.Expr) (core.Expr, runtime.Value, *runtime.Add1Value, error) {
	t, vec, err := c.synthVec(e, op, target)
	if err != nil {
		return nil, nil, nil, err
	}
	length, ok := interpreter.Now(vec.Length).(*runtime.Add1Value)
	if !ok {
		return nil, nil, nil, c.targetMismatch(e, op, "a Vec whose length is (add1 n)", vec)
	}
	return t, vec.EntryType, length, nil
}

func (c checker) synthIndVec(n *core.IndVec) (core.Expr, runtime.Value, error) {
	length, err := c.check(n.Length, runtime.NatValue{})
	if err != nil {
		return nil, nil, err
	}
	lv := c.eval(length)
	target, vec, err := c.synthVec(n, "ind-Vec", n.Target)
	if err != nil {
		return nil, nil, err
	}
	if err := c.convert(n.Length, runtime.NatValue{}, lv, vec.Length); err != nil {
		return nil, nil, err
	}
	motive, err := c.check(n.Motive, interpreter.IndVecMotiveType(vec.EntryType))
	if err != nil {
		return nil, nil, err
	}
	mv := c.eval(motive)
	base, err := c.check(n.Base, interpreter.DoApplyAll(mv, runtime.ZeroValue{}, runtime.VecNilValue{}))
	if err != nil {
		return nil, nil, err
	}
	step, err := c.check(n.Step, interpreter.IndVecStepType(vec.EntryType, mv))
	if err != nil {
		return nil, nil, err
	}
	return core.NewIndVec(length, target, motive, base, step), interpreter.DoApplyAll(mv, lv, c.eval(target)), nil
}

func (c checker) synthIndEither(n *core.IndEither) (core.Expr, runtime.Value, error) {
	target, typ, err := c.synth(n.Target)
	if err != nil {
		return nil, nil, err
	}
	either, ok := interpreter.Now(typ).(*runtime.EitherValue)
	if !ok {
		return nil, nil, c.targetMismatch(n, "ind-Either", "an Either type", typ)
	}
	motive, err := c.check(n.Motive, interpreter.IndEitherMotiveType(either.Left, either.Right))
	if err != nil {
		return nil, nil, err
	}
	mv := c.eval(motive)
	onLeft, err := c.check(n.OnLeft, interpreter.IndEitherLeftType(either.Left, mv))
	if err != nil {
		return nil, nil, err
	}
	onRight, err := c.check(n.OnRight, interpreter.IndEitherRightType(either.Right, mv))
	if err != nil {
		return nil, nil, err
	}
	return core.NewIndEither(target, motive, onLeft, onRight), interpreter.DoApply(mv, c.eval(target)), nil
}

func (c checker) synthEquality(e core.Expr, op string, target core.Expr) (core.Expr, *runtime.EqualValue, error) {
	t, typ, err := c.synth(target)
	if err != nil {
		return nil, nil, err
	}
	eq, ok := interpreter.Now(typ).(*runtime.EqualValue)
	if !ok {
		return nil, nil, c.targetMismatch(e, op, "an = type", typ)
	}
	return t, eq, nil
}

func (c checker) synthReplace(n *core.Replace) (core.Expr, runtime.Value, error) {
	target, eq, err := c.synthEquality(n, "replace", n.Target)
	if err != nil {
		return nil, nil, err
	}
	motiveType := &runtime.PiValue{ArgName: "x", ArgType: eq.Type, ResultType: runtime.ConstClosure(universe)}
	motive, err := c.check(n.Motive, motiveType)
	if err != nil {
		return nil, nil, err
	}
	mv := c.eval(motive)
	base, err := c.check(n.Base, interpreter.DoApply(mv, eq.From))
	if err != nil {
		return nil, nil, err
	}
	return core.NewReplace(target, motive, base), interpreter.DoApply(mv, eq.To), nil
}

func (c checker) synthTrans(n *core.Trans) (core.Expr, runtime.Value, error) {
	left, leq, err := c.synthEquality(n, "trans", n.Left)
	if err != nil {
		return nil, nil, err
	}
	right, req, err := c.synthEquality(n, "trans", n.Right)
	if err != nil {
		return nil, nil, err
	}
	if err := c.sameType(n, leq.Type, req.Type); err != nil {
		return nil, nil, err
	}
	if err := c.convert(n, leq.Type, leq.To, req.From); err != nil {
		return nil, nil, err
	}
	return core.NewTrans(left, right), &runtime.EqualValue{Type: leq.Type, From: leq.From, To: req.To}, nil
}

// synthCong records the function's codomain in the elaborated form so that
// a stuck cong can still report its type.
func (c checker) synthCong(n *core.Cong) (core.Expr, runtime.Value, error) {
	target, eq, err := c.synthEquality(n, "cong", n.Target)
	if err != nil {
		return nil, nil, err
	}
	fun, ft, err := c.synth(n.Fun)
	if err != nil {
		return nil, nil, err
	}
	pi, ok := interpreter.Now(ft).(*runtime.PiValue)
	if !ok {
		return nil, nil, &TypeError{
			Kind:    NotAFunctionType,
			Message: "cong needs a function",
			Found:   c.readBackType(ft),
			Expr:    n.Fun,
		}
	}
	if err := c.sameType(n.Fun, eq.Type, pi.ArgType); err != nil {
		return nil, nil, err
	}
	resultType := interpreter.ValOfClosure(pi.ResultType, eq.From)
	fv := c.eval(fun)
	typ := &runtime.EqualValue{
		Type: resultType,
		From: interpreter.DoApply(fv, eq.From),
		To:   interpreter.DoApply(fv, eq.To),
	}
	return core.NewCong(target, c.readBackType(resultType), fun), typ, nil
}

func (c checker) synthIndEqual(n *core.IndEqual) (core.Expr, runtime.Value, error) {
	target, eq, err := c.synthEquality(n, "ind-=", n.Target)
	if err != nil {
		return nil, nil, err
	}
	motive, err := c.check(n.Motive, interpreter.IndEqualMotiveType(eq.Type, eq.From))
	if err != nil {
		return nil, nil, err
	}
	mv := c.eval(motive)
	base, err := c.check(n.Base, interpreter.DoApplyAll(mv, eq.From, &runtime.SameValue{Value: eq.From}))
	if err != nil {
		return nil, nil, err
	}
	return core.NewIndEqual(target, motive, base), interpreter.DoApplyAll(mv, eq.To, c.eval(target)), nil
}
