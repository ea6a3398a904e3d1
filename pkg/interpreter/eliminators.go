package interpreter

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

func stuck(op string, v runtime.Value) string {
	return fmt.Sprintf("interpreter: %s applied to %s", op, pretty.Sprint(v))
}

func requireType(op string, typ runtime.Value) {
	if typ == nil {
		panic(fmt.Sprintf("interpreter: %s on a neutral target needs an elaborated result type", op))
	}
}

func pi(name string, arg runtime.Value, result func(runtime.Value) runtime.Value) *runtime.PiValue {
	return &runtime.PiValue{ArgName: name, ArgType: arg, ResultType: &runtime.HostClosure{Fn: result}}
}

func arrow(name string, arg, result runtime.Value) *runtime.PiValue {
	return &runtime.PiValue{ArgName: name, ArgType: arg, ResultType: runtime.ConstClosure(result)}
}

// DoApply applies a function value to an argument.
func DoApply(fun, arg runtime.Value) runtime.Value {
	switch f := Now(fun).(type) {
	case *runtime.LambdaValue:
		return ValOfClosure(f.Body, arg)
	case *runtime.NeutralValue:
		piType, ok := Now(f.Type).(*runtime.PiValue)
		if !ok {
			panic(stuck("application", f))
		}
		return &runtime.NeutralValue{
			Type:    ValOfClosure(piType.ResultType, arg),
			Neutral: &runtime.NApp{Fun: f.Neutral, Arg: runtime.Normal{Type: piType.ArgType, Value: arg}},
		}
	default:
		panic(stuck("application", f))
	}
}

// DoApplyAll applies fun to each argument in turn.
func DoApplyAll(fun runtime.Value, args ...runtime.Value) runtime.Value {
	for _, arg := range args {
		fun = DoApply(fun, arg)
	}
	return fun
}

func DoCar(pair runtime.Value) runtime.Value {
	switch p := Now(pair).(type) {
	case *runtime.ConsValue:
		return p.Car
	case *runtime.NeutralValue:
		sigma, ok := Now(p.Type).(*runtime.SigmaValue)
		if !ok {
			panic(stuck("car", p))
		}
		return &runtime.NeutralValue{Type: sigma.CarType, Neutral: &runtime.NCar{Pair: p.Neutral}}
	default:
		panic(stuck("car", p))
	}
}

func DoCdr(pair runtime.Value) runtime.Value {
	switch p := Now(pair).(type) {
	case *runtime.ConsValue:
		return p.Cdr
	case *runtime.NeutralValue:
		sigma, ok := Now(p.Type).(*runtime.SigmaValue)
		if !ok {
			panic(stuck("cdr", p))
		}
		return &runtime.NeutralValue{
			Type:    ValOfClosure(sigma.CdrType, DoCar(p)),
			Neutral: &runtime.NCdr{Pair: p.Neutral},
		}
	default:
		panic(stuck("cdr", p))
	}
}

func DoWhichNat(target, baseType, base, step runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case runtime.ZeroValue:
		return base
	case *runtime.Add1Value:
		return DoApply(step, t.N)
	case *runtime.NeutralValue:
		requireType("which-Nat", baseType)
		return &runtime.NeutralValue{
			Type: baseType,
			Neutral: &runtime.NWhichNat{
				Target: t.Neutral,
				Base:   runtime.Normal{Type: baseType, Value: base},
				Step:   runtime.Normal{Type: arrow("n-1", runtime.NatValue{}, baseType), Value: step},
			},
		}
	default:
		panic(stuck("which-Nat", t))
	}
}

func DoIterNat(target, baseType, base, step runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case runtime.ZeroValue:
		return base
	case *runtime.Add1Value:
		return DoApply(step, DoIterNat(t.N, baseType, base, step))
	case *runtime.NeutralValue:
		requireType("iter-Nat", baseType)
		return &runtime.NeutralValue{
			Type: baseType,
			Neutral: &runtime.NIterNat{
				Target: t.Neutral,
				Base:   runtime.Normal{Type: baseType, Value: base},
				Step:   runtime.Normal{Type: arrow("ih", baseType, baseType), Value: step},
			},
		}
	default:
		panic(stuck("iter-Nat", t))
	}
}

// RecNatStepType is Π (n-1 Nat) Π (ih X) X.
func RecNatStepType(baseType runtime.Value) runtime.Value {
	return arrow("n-1", runtime.NatValue{}, arrow("ih", baseType, baseType))
}

func DoRecNat(target, baseType, base, step runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case runtime.ZeroValue:
		return base
	case *runtime.Add1Value:
		return DoApplyAll(step, t.N, DoRecNat(t.N, baseType, base, step))
	case *runtime.NeutralValue:
		requireType("rec-Nat", baseType)
		return &runtime.NeutralValue{
			Type: baseType,
			Neutral: &runtime.NRecNat{
				Target: t.Neutral,
				Base:   runtime.Normal{Type: baseType, Value: base},
				Step:   runtime.Normal{Type: RecNatStepType(baseType), Value: step},
			},
		}
	default:
		panic(stuck("rec-Nat", t))
	}
}

// IndNatMotiveType is Π (n Nat) U.
func IndNatMotiveType() runtime.Value {
	return arrow("n", runtime.NatValue{}, runtime.UniverseValue{})
}

// IndNatStepType is Π (n-1 Nat) Π (ih (mot n-1)) (mot (add1 n-1)).
func IndNatStepType(motive runtime.Value) runtime.Value {
	return pi("n-1", runtime.NatValue{}, func(n runtime.Value) runtime.Value {
		return arrow("ih", DoApply(motive, n), DoApply(motive, &runtime.Add1Value{N: n}))
	})
}

func DoIndNat(target, motive, base, step runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case runtime.ZeroValue:
		return base
	case *runtime.Add1Value:
		return DoApplyAll(step, t.N, DoIndNat(t.N, motive, base, step))
	case *runtime.NeutralValue:
		return &runtime.NeutralValue{
			Type: DoApply(motive, t),
			Neutral: &runtime.NIndNat{
				Target: t.Neutral,
				Motive: runtime.Normal{Type: IndNatMotiveType(), Value: motive},
				Base:   runtime.Normal{Type: DoApply(motive, runtime.ZeroValue{}), Value: base},
				Step:   runtime.Normal{Type: IndNatStepType(motive), Value: step},
			},
		}
	default:
		panic(stuck("ind-Nat", t))
	}
}

func DoIndAbsurd(target, motive runtime.Value) runtime.Value {
	t, ok := Now(target).(*runtime.NeutralValue)
	if !ok {
		panic(stuck("ind-Absurd", target))
	}
	return &runtime.NeutralValue{
		Type: motive,
		Neutral: &runtime.NIndAbsurd{
			Target: t.Neutral,
			Motive: runtime.Normal{Type: runtime.UniverseValue{}, Value: motive},
		},
	}
}

func listEntryType(op string, typ runtime.Value) runtime.Value {
	list, ok := Now(typ).(*runtime.ListValue)
	if !ok {
		panic(stuck(op, typ))
	}
	return list.EntryType
}

// RecListStepType is Π (e E) Π (es (List E)) Π (ih X) X.
func RecListStepType(entryType, baseType runtime.Value) runtime.Value {
	return arrow("e", entryType,
		arrow("es", &runtime.ListValue{EntryType: entryType},
			arrow("ih", baseType, baseType)))
}

func DoRecList(target, baseType, base, step runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case runtime.NilValue:
		return base
	case *runtime.ListConsValue:
		return DoApplyAll(step, t.Head, t.Tail, DoRecList(t.Tail, baseType, base, step))
	case *runtime.NeutralValue:
		requireType("rec-List", baseType)
		entryType := listEntryType("rec-List", t.Type)
		return &runtime.NeutralValue{
			Type: baseType,
			Neutral: &runtime.NRecList{
				Target: t.Neutral,
				Base:   runtime.Normal{Type: baseType, Value: base},
				Step:   runtime.Normal{Type: RecListStepType(entryType, baseType), Value: step},
			},
		}
	default:
		panic(stuck("rec-List", t))
	}
}

// IndListMotiveType is Π (xs (List E)) U.
func IndListMotiveType(entryType runtime.Value) runtime.Value {
	return arrow("xs", &runtime.ListValue{EntryType: entryType}, runtime.UniverseValue{})
}

// IndListStepType is Π (e E) Π (es (List E)) Π (ih (mot es)) (mot (:: e es)).
func IndListStepType(entryType, motive runtime.Value) runtime.Value {
	return pi("e", entryType, func(e runtime.Value) runtime.Value {
		return pi("es", &runtime.ListValue{EntryType: entryType}, func(es runtime.Value) runtime.Value {
			return arrow("ih", DoApply(motive, es), DoApply(motive, &runtime.ListConsValue{Head: e, Tail: es}))
		})
	})
}

func DoIndList(target, motive, base, step runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case runtime.NilValue:
		return base
	case *runtime.ListConsValue:
		return DoApplyAll(step, t.Head, t.Tail, DoIndList(t.Tail, motive, base, step))
	case *runtime.NeutralValue:
		entryType := listEntryType("ind-List", t.Type)
		return &runtime.NeutralValue{
			Type: DoApply(motive, t),
			Neutral: &runtime.NIndList{
				Target: t.Neutral,
				Motive: runtime.Normal{Type: IndListMotiveType(entryType), Value: motive},
				Base:   runtime.Normal{Type: DoApply(motive, runtime.NilValue{}), Value: base},
				Step:   runtime.Normal{Type: IndListStepType(entryType, motive), Value: step},
			},
		}
	default:
		panic(stuck("ind-List", t))
	}
}

func vecType(op string, typ runtime.Value) *runtime.VecValue {
	vec, ok := Now(typ).(*runtime.VecValue)
	if !ok {
		panic(stuck(op, typ))
	}
	return vec
}

func DoHead(vec runtime.Value) runtime.Value {
	switch v := Now(vec).(type) {
	case *runtime.VecConsValue:
		return v.Head
	case *runtime.NeutralValue:
		return &runtime.NeutralValue{
			Type:    vecType("head", v.Type).EntryType,
			Neutral: &runtime.NHead{Vec: v.Neutral},
		}
	default:
		panic(stuck("head", v))
	}
}

func DoTail(vec runtime.Value) runtime.Value {
	switch v := Now(vec).(type) {
	case *runtime.VecConsValue:
		return v.Tail
	case *runtime.NeutralValue:
		typ := vecType("tail", v.Type)
		length, ok := Now(typ.Length).(*runtime.Add1Value)
		if !ok {
			panic(stuck("tail", v))
		}
		return &runtime.NeutralValue{
			Type:    &runtime.VecValue{EntryType: typ.EntryType, Length: length.N},
			Neutral: &runtime.NTail{Vec: v.Neutral},
		}
	default:
		panic(stuck("tail", v))
	}
}

// IndVecMotiveType is Π (k Nat) Π (es (Vec E k)) U.
func IndVecMotiveType(entryType runtime.Value) runtime.Value {
	return pi("k", runtime.NatValue{}, func(k runtime.Value) runtime.Value {
		return arrow("es", &runtime.VecValue{EntryType: entryType, Length: k}, runtime.UniverseValue{})
	})
}

// IndVecStepType is
// Π (k Nat) Π (e E) Π (es (Vec E k)) Π (ih (mot k es)) (mot (add1 k) (vec:: e es)).
func IndVecStepType(entryType, motive runtime.Value) runtime.Value {
	return pi("k", runtime.NatValue{}, func(k runtime.Value) runtime.Value {
		return pi("e", entryType, func(e runtime.Value) runtime.Value {
			return pi("es", &runtime.VecValue{EntryType: entryType, Length: k}, func(es runtime.Value) runtime.Value {
				return arrow("ih",
					DoApplyAll(motive, k, es),
					DoApplyAll(motive, &runtime.Add1Value{N: k}, &runtime.VecConsValue{Head: e, Tail: es}))
			})
		})
	})
}

// DoIndVec dispatches on the vector. A vec:: target always has a length of
// the form add1 k, which supplies the step's first argument.
func DoIndVec(length, target, motive, base, step runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case runtime.VecNilValue:
		return base
	case *runtime.VecConsValue:
		k := predecessor("ind-Vec", length)
		return DoApplyAll(step, k, t.Head, t.Tail, DoIndVec(k, t.Tail, motive, base, step))
	case *runtime.NeutralValue:
		entryType := vecType("ind-Vec", t.Type).EntryType
		return &runtime.NeutralValue{
			Type: DoApplyAll(motive, length, t),
			Neutral: &runtime.NIndVec{
				Length: runtime.Normal{Type: runtime.NatValue{}, Value: length},
				Target: t.Neutral,
				Motive: runtime.Normal{Type: IndVecMotiveType(entryType), Value: motive},
				Base:   runtime.Normal{Type: DoApplyAll(motive, runtime.ZeroValue{}, runtime.VecNilValue{}), Value: base},
				Step:   runtime.Normal{Type: IndVecStepType(entryType, motive), Value: step},
			},
		}
	default:
		panic(stuck("ind-Vec", t))
	}
}

func predecessor(op string, n runtime.Value) runtime.Value {
	v, ok := Now(n).(*runtime.Add1Value)
	if !ok {
		panic(stuck(op, n))
	}
	return v.N
}

// IndEitherMotiveType is Π (x (Either L R)) U.
func IndEitherMotiveType(left, right runtime.Value) runtime.Value {
	return arrow("x", &runtime.EitherValue{Left: left, Right: right}, runtime.UniverseValue{})
}

// IndEitherLeftType is Π (x L) (mot (left x)).
func IndEitherLeftType(left, motive runtime.Value) runtime.Value {
	return pi("x", left, func(x runtime.Value) runtime.Value {
		return DoApply(motive, &runtime.LeftValue{Value: x})
	})
}

// IndEitherRightType is Π (x R) (mot (right x)).
func IndEitherRightType(right, motive runtime.Value) runtime.Value {
	return pi("x", right, func(x runtime.Value) runtime.Value {
		return DoApply(motive, &runtime.RightValue{Value: x})
	})
}

func DoIndEither(target, motive, onLeft, onRight runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case *runtime.LeftValue:
		return DoApply(onLeft, t.Value)
	case *runtime.RightValue:
		return DoApply(onRight, t.Value)
	case *runtime.NeutralValue:
		either, ok := Now(t.Type).(*runtime.EitherValue)
		if !ok {
			panic(stuck("ind-Either", t))
		}
		return &runtime.NeutralValue{
			Type: DoApply(motive, t),
			Neutral: &runtime.NIndEither{
				Target:  t.Neutral,
				Motive:  runtime.Normal{Type: IndEitherMotiveType(either.Left, either.Right), Value: motive},
				OnLeft:  runtime.Normal{Type: IndEitherLeftType(either.Left, motive), Value: onLeft},
				OnRight: runtime.Normal{Type: IndEitherRightType(either.Right, motive), Value: onRight},
			},
		}
	default:
		panic(stuck("ind-Either", t))
	}
}

func equalType(op string, typ runtime.Value) *runtime.EqualValue {
	eq, ok := Now(typ).(*runtime.EqualValue)
	if !ok {
		panic(stuck(op, typ))
	}
	return eq
}

func DoReplace(target, motive, base runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case *runtime.SameValue:
		return base
	case *runtime.NeutralValue:
		eq := equalType("replace", t.Type)
		return &runtime.NeutralValue{
			Type: DoApply(motive, eq.To),
			Neutral: &runtime.NReplace{
				Target: t.Neutral,
				Motive: runtime.Normal{Type: arrow("x", eq.Type, runtime.UniverseValue{}), Value: motive},
				Base:   runtime.Normal{Type: DoApply(motive, eq.From), Value: base},
			},
		}
	default:
		panic(stuck("replace", t))
	}
}

// DoTrans composes two equality proofs. When only one side is stuck the
// other is kept as a normal whose type is (= A v v).
func DoTrans(left, right runtime.Value) runtime.Value {
	l, r := Now(left), Now(right)
	ls, lSame := l.(*runtime.SameValue)
	rs, rSame := r.(*runtime.SameValue)
	ln, lStuck := l.(*runtime.NeutralValue)
	rn, rStuck := r.(*runtime.NeutralValue)
	switch {
	case lSame && rSame:
		return &runtime.SameValue{Value: ls.Value}
	case lSame && rStuck:
		eq := equalType("trans", rn.Type)
		return &runtime.NeutralValue{
			Type: &runtime.EqualValue{Type: eq.Type, From: ls.Value, To: eq.To},
			Neutral: &runtime.NTrans2{
				Left:  runtime.Normal{Type: &runtime.EqualValue{Type: eq.Type, From: ls.Value, To: ls.Value}, Value: l},
				Right: rn.Neutral,
			},
		}
	case lStuck && rSame:
		eq := equalType("trans", ln.Type)
		return &runtime.NeutralValue{
			Type: &runtime.EqualValue{Type: eq.Type, From: eq.From, To: rs.Value},
			Neutral: &runtime.NTrans1{
				Left:  ln.Neutral,
				Right: runtime.Normal{Type: &runtime.EqualValue{Type: eq.Type, From: rs.Value, To: rs.Value}, Value: r},
			},
		}
	case lStuck && rStuck:
		leq := equalType("trans", ln.Type)
		req := equalType("trans", rn.Type)
		return &runtime.NeutralValue{
			Type:    &runtime.EqualValue{Type: leq.Type, From: leq.From, To: req.To},
			Neutral: &runtime.NTrans12{Left: ln.Neutral, Right: rn.Neutral},
		}
	}
	panic(stuck("trans", &runtime.ConsValue{Car: l, Cdr: r}))
}

func DoCong(target, resultType, fun runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case *runtime.SameValue:
		return &runtime.SameValue{Value: DoApply(fun, t.Value)}
	case *runtime.NeutralValue:
		requireType("cong", resultType)
		eq := equalType("cong", t.Type)
		return &runtime.NeutralValue{
			Type: &runtime.EqualValue{Type: resultType, From: DoApply(fun, eq.From), To: DoApply(fun, eq.To)},
			Neutral: &runtime.NCong{
				Target:     t.Neutral,
				ResultType: resultType,
				Fun:        runtime.Normal{Type: arrow("x", eq.Type, resultType), Value: fun},
			},
		}
	default:
		panic(stuck("cong", t))
	}
}

func DoSymm(target runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case *runtime.SameValue:
		return t
	case *runtime.NeutralValue:
		eq := equalType("symm", t.Type)
		return &runtime.NeutralValue{
			Type:    &runtime.EqualValue{Type: eq.Type, From: eq.To, To: eq.From},
			Neutral: &runtime.NSymm{Target: t.Neutral},
		}
	default:
		panic(stuck("symm", t))
	}
}

// IndEqualMotiveType is Π (to A) Π (p (= A from to)) U.
func IndEqualMotiveType(typ, from runtime.Value) runtime.Value {
	return pi("to", typ, func(to runtime.Value) runtime.Value {
		return arrow("p", &runtime.EqualValue{Type: typ, From: from, To: to}, runtime.UniverseValue{})
	})
}

func DoIndEqual(target, motive, base runtime.Value) runtime.Value {
	switch t := Now(target).(type) {
	case *runtime.SameValue:
		return base
	case *runtime.NeutralValue:
		eq := equalType("ind-=", t.Type)
		return &runtime.NeutralValue{
			Type: DoApplyAll(motive, eq.To, t),
			Neutral: &runtime.NIndEqual{
				Target: t.Neutral,
				Motive: runtime.Normal{Type: IndEqualMotiveType(eq.Type, eq.From), Value: motive},
				Base:   runtime.Normal{Type: DoApplyAll(motive, eq.From, &runtime.SameValue{Value: eq.From}), Value: base},
			},
		}
	default:
		panic(stuck("ind-=", t))
	}
}
