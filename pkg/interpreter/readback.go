package interpreter

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

// ReadBack converts a value of the given type into its η-long normal form.
// Names introduced while going under binders avoid every name in ctx.
func ReadBack(ctx *runtime.Context, typ, value runtime.Value) core.Expr {
	switch t := Now(typ).(type) {
	case runtime.UniverseValue:
		return ReadBackType(ctx, value)
	case *runtime.PiValue:
		hint := t.ArgName
		if lam, ok := Now(value).(*runtime.LambdaValue); ok {
			hint = lam.ArgName
		}
		name := ctx.Fresh(hint)
		arg := runtime.NewVariable(t.ArgType, name)
		body := ReadBack(ctx.ExtendFree(name, t.ArgType), ValOfClosure(t.ResultType, arg), DoApply(value, arg))
		return core.NewLambda(name, body)
	case *runtime.SigmaValue:
		car := DoCar(value)
		cdr := DoCdr(value)
		return core.NewCons(ReadBack(ctx, t.CarType, car), ReadBack(ctx, ValOfClosure(t.CdrType, car), cdr))
	case runtime.TrivialValue:
		return core.NewSole()
	case runtime.AbsurdValue:
		ne, ok := Now(value).(*runtime.NeutralValue)
		if !ok {
			panic(stuck("read-back at Absurd", value))
		}
		return core.NewThe(core.NewAbsurd(), ReadBackNeutral(ctx, ne.Neutral))
	case runtime.NatValue:
		switch v := Now(value).(type) {
		case runtime.ZeroValue:
			return core.NewZero()
		case *runtime.Add1Value:
			return core.NewAdd1(ReadBack(ctx, t, v.N))
		}
	case runtime.AtomValue:
		if q, ok := Now(value).(runtime.QuoteValue); ok {
			return core.NewQuote(q.Symbol)
		}
	case *runtime.ListValue:
		switch v := Now(value).(type) {
		case runtime.NilValue:
			return core.NewNil()
		case *runtime.ListConsValue:
			return core.NewListCons(ReadBack(ctx, t.EntryType, v.Head), ReadBack(ctx, t, v.Tail))
		}
	case *runtime.VecValue:
		switch v := Now(value).(type) {
		case runtime.VecNilValue:
			return core.NewVecNil()
		case *runtime.VecConsValue:
			tailType := &runtime.VecValue{EntryType: t.EntryType, Length: predecessor("read-back at Vec", t.Length)}
			return core.NewVecCons(ReadBack(ctx, t.EntryType, v.Head), ReadBack(ctx, tailType, v.Tail))
		}
	case *runtime.EitherValue:
		switch v := Now(value).(type) {
		case *runtime.LeftValue:
			return core.NewLeft(ReadBack(ctx, t.Left, v.Value))
		case *runtime.RightValue:
			return core.NewRight(ReadBack(ctx, t.Right, v.Value))
		}
	case *runtime.EqualValue:
		if v, ok := Now(value).(*runtime.SameValue); ok {
			return core.NewSame(ReadBack(ctx, t.Type, v.Value))
		}
	}
	if ne, ok := Now(value).(*runtime.NeutralValue); ok {
		return ReadBackNeutral(ctx, ne.Neutral)
	}
	panic(fmt.Sprintf("interpreter: cannot read back %s at type %s", pretty.Sprint(Now(value)), pretty.Sprint(Now(typ))))
}

// ReadBackType converts a type value back into a core type expression.
func ReadBackType(ctx *runtime.Context, value runtime.Value) core.Expr {
	switch t := Now(value).(type) {
	case runtime.UniverseValue:
		return core.NewUniverse()
	case runtime.NatValue:
		return core.NewNat()
	case runtime.AtomValue:
		return core.NewAtom()
	case runtime.TrivialValue:
		return core.NewTrivial()
	case runtime.AbsurdValue:
		return core.NewAbsurd()
	case *runtime.PiValue:
		name := ctx.Fresh(t.ArgName)
		argType := ReadBackType(ctx, t.ArgType)
		result := ValOfClosure(t.ResultType, runtime.NewVariable(t.ArgType, name))
		return core.NewPi(name, argType, ReadBackType(ctx.ExtendFree(name, t.ArgType), result))
	case *runtime.SigmaValue:
		name := ctx.Fresh(t.CarName)
		carType := ReadBackType(ctx, t.CarType)
		cdr := ValOfClosure(t.CdrType, runtime.NewVariable(t.CarType, name))
		return core.NewSigma(name, carType, ReadBackType(ctx.ExtendFree(name, t.CarType), cdr))
	case *runtime.ListValue:
		return core.NewList(ReadBackType(ctx, t.EntryType))
	case *runtime.VecValue:
		return core.NewVec(ReadBackType(ctx, t.EntryType), ReadBack(ctx, runtime.NatValue{}, t.Length))
	case *runtime.EitherValue:
		return core.NewEither(ReadBackType(ctx, t.Left), ReadBackType(ctx, t.Right))
	case *runtime.EqualValue:
		return core.NewEqual(ReadBackType(ctx, t.Type), ReadBack(ctx, t.Type, t.From), ReadBack(ctx, t.Type, t.To))
	case *runtime.NeutralValue:
		return ReadBackNeutral(ctx, t.Neutral)
	}
	panic(fmt.Sprintf("interpreter: %s is not a type", pretty.Sprint(Now(value))))
}

func readBackNormal(ctx *runtime.Context, n runtime.Normal) core.Expr {
	return ReadBack(ctx, n.Type, n.Value)
}

// ReadBackNeutral rebuilds the eliminator spine of a stuck computation.
func ReadBackNeutral(ctx *runtime.Context, ne runtime.Neutral) core.Expr {
	switch n := ne.(type) {
	case *runtime.NVar:
		return core.NewVar(n.Name)
	case *runtime.NApp:
		return core.NewApp(ReadBackNeutral(ctx, n.Fun), readBackNormal(ctx, n.Arg))
	case *runtime.NCar:
		return core.NewCar(ReadBackNeutral(ctx, n.Pair))
	case *runtime.NCdr:
		return core.NewCdr(ReadBackNeutral(ctx, n.Pair))
	case *runtime.NWhichNat:
		return core.NewWhichNat(ReadBackNeutral(ctx, n.Target), ReadBackType(ctx, n.Base.Type),
			readBackNormal(ctx, n.Base), readBackNormal(ctx, n.Step))
	case *runtime.NIterNat:
		return core.NewIterNat(ReadBackNeutral(ctx, n.Target), ReadBackType(ctx, n.Base.Type),
			readBackNormal(ctx, n.Base), readBackNormal(ctx, n.Step))
	case *runtime.NRecNat:
		return core.NewRecNat(ReadBackNeutral(ctx, n.Target), ReadBackType(ctx, n.Base.Type),
			readBackNormal(ctx, n.Base), readBackNormal(ctx, n.Step))
	case *runtime.NIndNat:
		return core.NewIndNat(ReadBackNeutral(ctx, n.Target), readBackNormal(ctx, n.Motive),
			readBackNormal(ctx, n.Base), readBackNormal(ctx, n.Step))
	case *runtime.NIndAbsurd:
		return core.NewIndAbsurd(core.NewThe(core.NewAbsurd(), ReadBackNeutral(ctx, n.Target)), readBackNormal(ctx, n.Motive))
	case *runtime.NRecList:
		return core.NewRecList(ReadBackNeutral(ctx, n.Target), ReadBackType(ctx, n.Base.Type),
			readBackNormal(ctx, n.Base), readBackNormal(ctx, n.Step))
	case *runtime.NIndList:
		return core.NewIndList(ReadBackNeutral(ctx, n.Target), readBackNormal(ctx, n.Motive),
			readBackNormal(ctx, n.Base), readBackNormal(ctx, n.Step))
	case *runtime.NHead:
		return core.NewHead(ReadBackNeutral(ctx, n.Vec))
	case *runtime.NTail:
		return core.NewTail(ReadBackNeutral(ctx, n.Vec))
	case *runtime.NIndVec:
		return core.NewIndVec(readBackNormal(ctx, n.Length), ReadBackNeutral(ctx, n.Target),
			readBackNormal(ctx, n.Motive), readBackNormal(ctx, n.Base), readBackNormal(ctx, n.Step))
	case *runtime.NIndEither:
		return core.NewIndEither(ReadBackNeutral(ctx, n.Target), readBackNormal(ctx, n.Motive),
			readBackNormal(ctx, n.OnLeft), readBackNormal(ctx, n.OnRight))
	case *runtime.NReplace:
		return core.NewReplace(ReadBackNeutral(ctx, n.Target), readBackNormal(ctx, n.Motive), readBackNormal(ctx, n.Base))
	case *runtime.NTrans1:
		return core.NewTrans(ReadBackNeutral(ctx, n.Left), readBackNormal(ctx, n.Right))
	case *runtime.NTrans2:
		return core.NewTrans(readBackNormal(ctx, n.Left), ReadBackNeutral(ctx, n.Right))
	case *runtime.NTrans12:
		return core.NewTrans(ReadBackNeutral(ctx, n.Left), ReadBackNeutral(ctx, n.Right))
	case *runtime.NCong:
		return core.NewCong(ReadBackNeutral(ctx, n.Target), ReadBackType(ctx, n.ResultType), readBackNormal(ctx, n.Fun))
	case *runtime.NSymm:
		return core.NewSymm(ReadBackNeutral(ctx, n.Target))
	case *runtime.NIndEqual:
		return core.NewIndEqual(ReadBackNeutral(ctx, n.Target), readBackNormal(ctx, n.Motive), readBackNormal(ctx, n.Base))
	}
	panic(fmt.Sprintf("interpreter: unknown neutral %s", pretty.Sprint(ne)))
}
