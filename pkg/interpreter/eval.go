package interpreter

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

// ValOf evaluates a core expression in env. Argument positions are
// suspended with Later; only eliminator targets are forced eagerly.
func ValOf(env *runtime.Environment, e core.Expr) runtime.Value {
	switch n := e.(type) {
	case *core.Universe:
		return runtime.UniverseValue{}
	case *core.Pi:
		return &runtime.PiValue{
			ArgName:    n.Name,
			ArgType:    Later(env, n.ArgType),
			ResultType: &runtime.ExprClosure{Env: env, Name: n.Name, Body: n.ResultType},
		}
	case *core.Arrow:
		return &runtime.PiValue{
			ArgName:    "x",
			ArgType:    Later(env, n.ArgType),
			ResultType: runtime.ConstClosure(Later(env, n.ResultType)),
		}
	case *core.Lambda:
		return &runtime.LambdaValue{
			ArgName: n.Name,
			Body:    &runtime.ExprClosure{Env: env, Name: n.Name, Body: n.Body},
		}
	case *core.App:
		return DoApply(ValOf(env, n.Fun), Later(env, n.Arg))
	case *core.The:
		return ValOf(env, n.Expr)
	case *core.Var:
		v, ok := env.Lookup(n.Name)
		if !ok {
			panic(fmt.Sprintf("interpreter: unbound variable %q in environment %s", n.Name, pretty.Sprint(env.Names())))
		}
		return v
	case *core.Sigma:
		return &runtime.SigmaValue{
			CarName: n.Name,
			CarType: Later(env, n.CarType),
			CdrType: &runtime.ExprClosure{Env: env, Name: n.Name, Body: n.CdrType},
		}
	case *core.Pair:
		return &runtime.SigmaValue{
			CarName: "x",
			CarType: Later(env, n.CarType),
			CdrType: runtime.ConstClosure(Later(env, n.CdrType)),
		}
	case *core.Cons:
		return &runtime.ConsValue{Car: Later(env, n.Car), Cdr: Later(env, n.Cdr)}
	case *core.Car:
		return DoCar(ValOf(env, n.Pair))
	case *core.Cdr:
		return DoCdr(ValOf(env, n.Pair))
	case *core.Nat:
		return runtime.NatValue{}
	case *core.Zero:
		return runtime.ZeroValue{}
	case *core.Add1:
		return &runtime.Add1Value{N: Later(env, n.N)}
	case *core.Number:
		return numeral(n.Value)
	case *core.WhichNat:
		return DoWhichNat(ValOf(env, n.Target), optionalType(env, n.BaseType), Later(env, n.Base), Later(env, n.Step))
	case *core.IterNat:
		return DoIterNat(ValOf(env, n.Target), optionalType(env, n.BaseType), Later(env, n.Base), Later(env, n.Step))
	case *core.RecNat:
		return DoRecNat(ValOf(env, n.Target), optionalType(env, n.BaseType), Later(env, n.Base), Later(env, n.Step))
	case *core.IndNat:
		return DoIndNat(ValOf(env, n.Target), Later(env, n.Motive), Later(env, n.Base), Later(env, n.Step))
	case *core.Atom:
		return runtime.AtomValue{}
	case *core.Quote:
		return runtime.QuoteValue{Symbol: n.Symbol}
	case *core.Trivial:
		return runtime.TrivialValue{}
	case *core.Sole:
		return runtime.SoleValue{}
	case *core.Absurd:
		return runtime.AbsurdValue{}
	case *core.IndAbsurd:
		return DoIndAbsurd(ValOf(env, n.Target), Later(env, n.Motive))
	case *core.List:
		return &runtime.ListValue{EntryType: Later(env, n.EntryType)}
	case *core.Nil:
		return runtime.NilValue{}
	case *core.ListCons:
		return &runtime.ListConsValue{Head: Later(env, n.Head), Tail: Later(env, n.Tail)}
	case *core.RecList:
		return DoRecList(ValOf(env, n.Target), optionalType(env, n.BaseType), Later(env, n.Base), Later(env, n.Step))
	case *core.IndList:
		return DoIndList(ValOf(env, n.Target), Later(env, n.Motive), Later(env, n.Base), Later(env, n.Step))
	case *core.Vec:
		return &runtime.VecValue{EntryType: Later(env, n.EntryType), Length: Later(env, n.Length)}
	case *core.VecNil:
		return runtime.VecNilValue{}
	case *core.VecCons:
		return &runtime.VecConsValue{Head: Later(env, n.Head), Tail: Later(env, n.Tail)}
	case *core.Head:
		return DoHead(ValOf(env, n.Vec))
	case *core.Tail:
		return DoTail(ValOf(env, n.Vec))
	case *core.IndVec:
		return DoIndVec(Later(env, n.Length), ValOf(env, n.Target), Later(env, n.Motive), Later(env, n.Base), Later(env, n.Step))
	case *core.Either:
		return &runtime.EitherValue{Left: Later(env, n.Left), Right: Later(env, n.Right)}
	case *core.Left:
		return &runtime.LeftValue{Value: Later(env, n.Value)}
	case *core.Right:
		return &runtime.RightValue{Value: Later(env, n.Value)}
	case *core.IndEither:
		return DoIndEither(ValOf(env, n.Target), Later(env, n.Motive), Later(env, n.OnLeft), Later(env, n.OnRight))
	case *core.Equal:
		return &runtime.EqualValue{Type: Later(env, n.Type), From: Later(env, n.From), To: Later(env, n.To)}
	case *core.Same:
		return &runtime.SameValue{Value: Later(env, n.Value)}
	case *core.Replace:
		return DoReplace(ValOf(env, n.Target), Later(env, n.Motive), Later(env, n.Base))
	case *core.Trans:
		return DoTrans(ValOf(env, n.Left), ValOf(env, n.Right))
	case *core.Cong:
		return DoCong(ValOf(env, n.Target), optionalType(env, n.ResultType), Later(env, n.Fun))
	case *core.Symm:
		return DoSymm(ValOf(env, n.Target))
	case *core.IndEqual:
		return DoIndEqual(ValOf(env, n.Target), Later(env, n.Motive), Later(env, n.Base))
	}
	panic(fmt.Sprintf("interpreter: cannot evaluate %s", pretty.Sprint(e)))
}

// Later suspends the evaluation of e. Variables are looked up directly so
// that an argument passed along keeps sharing the caller's cell.
func Later(env *runtime.Environment, e core.Expr) runtime.Value {
	switch n := e.(type) {
	case *core.Var:
		if v, ok := env.Lookup(n.Name); ok {
			return v
		}
	case *core.Universe, *core.Nat, *core.Zero, *core.Atom, *core.Trivial, *core.Sole, *core.Absurd, *core.Nil, *core.VecNil, *core.Quote:
		return ValOf(env, e)
	}
	return runtime.NewDelay(env, e)
}

// Now forces v until it is no longer a Delay.
func Now(v runtime.Value) runtime.Value {
	for {
		d, ok := v.(*runtime.Delay)
		if !ok {
			return v
		}
		v = d.Force(ValOf)
	}
}

// ValOfClosure instantiates a closure with an argument.
func ValOfClosure(c runtime.Closure, arg runtime.Value) runtime.Value {
	switch clo := c.(type) {
	case *runtime.ExprClosure:
		return ValOf(clo.Env.Extend(clo.Name, arg), clo.Body)
	case *runtime.HostClosure:
		return clo.Fn(arg)
	}
	panic(fmt.Sprintf("interpreter: unknown closure %T", c))
}

// numeral peels one add1 at a time; the predecessor stays a literal until forced.
func numeral(n uint64) runtime.Value {
	if n == 0 {
		return runtime.ZeroValue{}
	}
	return &runtime.Add1Value{N: runtime.NewDelay(nil, core.NewNumber(n-1))}
}

func optionalType(env *runtime.Environment, e core.Expr) runtime.Value {
	if e == nil {
		return nil
	}
	return Later(env, e)
}
