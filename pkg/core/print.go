package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// String renders an expression in Pie's S-expression notation. Closed
// add1/zero chains print as numerals.
func String(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	if n, ok := numeralValue(e); ok {
		return strconv.FormatUint(n, 10)
	}
	switch n := e.(type) {
	case *Universe:
		return "U"
	case *Pi:
		return fmt.Sprintf("(Π ((%s %s)) %s)", n.Name, String(n.ArgType), String(n.ResultType))
	case *Arrow:
		return form("→", n.ArgType, n.ResultType)
	case *Sigma:
		return fmt.Sprintf("(Σ ((%s %s)) %s)", n.Name, String(n.CarType), String(n.CdrType))
	case *Pair:
		return form("Pair", n.CarType, n.CdrType)
	case *Lambda:
		return fmt.Sprintf("(λ (%s) %s)", n.Name, String(n.Body))
	case *App:
		fun, args := spine(n)
		return "(" + String(fun) + " " + joinExprs(args) + ")"
	case *The:
		return form("the", n.Type, n.Expr)
	case *Var:
		return n.Name
	case *Nat:
		return "Nat"
	case *Add1:
		return form("add1", n.N)
	case *WhichNat:
		return form("which-Nat", n.Target, ascribed(n.BaseType, n.Base), n.Step)
	case *IterNat:
		return form("iter-Nat", n.Target, ascribed(n.BaseType, n.Base), n.Step)
	case *RecNat:
		return form("rec-Nat", n.Target, ascribed(n.BaseType, n.Base), n.Step)
	case *IndNat:
		return form("ind-Nat", n.Target, n.Motive, n.Base, n.Step)
	case *Atom:
		return "Atom"
	case *Quote:
		return "'" + n.Symbol
	case *Cons:
		return form("cons", n.Car, n.Cdr)
	case *Car:
		return form("car", n.Pair)
	case *Cdr:
		return form("cdr", n.Pair)
	case *Trivial:
		return "Trivial"
	case *Sole:
		return "sole"
	case *Absurd:
		return "Absurd"
	case *IndAbsurd:
		return form("ind-Absurd", n.Target, n.Motive)
	case *List:
		return form("List", n.EntryType)
	case *Nil:
		return "nil"
	case *ListCons:
		return form("::", n.Head, n.Tail)
	case *RecList:
		return form("rec-List", n.Target, ascribed(n.BaseType, n.Base), n.Step)
	case *IndList:
		return form("ind-List", n.Target, n.Motive, n.Base, n.Step)
	case *Vec:
		return form("Vec", n.EntryType, n.Length)
	case *VecNil:
		return "vecnil"
	case *VecCons:
		return form("vec::", n.Head, n.Tail)
	case *Head:
		return form("head", n.Vec)
	case *Tail:
		return form("tail", n.Vec)
	case *IndVec:
		return form("ind-Vec", n.Length, n.Target, n.Motive, n.Base, n.Step)
	case *Either:
		return form("Either", n.Left, n.Right)
	case *Left:
		return form("left", n.Value)
	case *Right:
		return form("right", n.Value)
	case *IndEither:
		return form("ind-Either", n.Target, n.Motive, n.OnLeft, n.OnRight)
	case *Equal:
		return form("=", n.Type, n.From, n.To)
	case *Same:
		return form("same", n.Value)
	case *Replace:
		return form("replace", n.Target, n.Motive, n.Base)
	case *Trans:
		return form("trans", n.Left, n.Right)
	case *Cong:
		if n.ResultType == nil {
			return form("cong", n.Target, n.Fun)
		}
		return form("cong", n.Target, n.ResultType, n.Fun)
	case *Symm:
		return form("symm", n.Target)
	case *IndEqual:
		return form("ind-=", n.Target, n.Motive, n.Base)
	case *TODO:
		return "TODO"
	default:
		return fmt.Sprintf("<%s>", e.NodeType())
	}
}

func form(head string, args ...Expr) string {
	return "(" + head + " " + joinExprs(args) + ")"
}

func joinExprs(args []Expr) string {
	return strings.Join(lo.Map(args, func(arg Expr, _ int) string { return String(arg) }), " ")
}

// ascribed prints an elaborated base as (the T b); unelaborated bases print bare.
func ascribed(typ, expr Expr) Expr {
	if typ == nil {
		return expr
	}
	return NewThe(typ, expr)
}

func spine(app *App) (Expr, []Expr) {
	var args []Expr
	var cur Expr = app
	for {
		a, ok := cur.(*App)
		if !ok {
			break
		}
		args = append(args, a.Arg)
		cur = a.Fun
	}
	return cur, lo.Reverse(args)
}

func numeralValue(e Expr) (uint64, bool) {
	var count uint64
	for {
		switch n := e.(type) {
		case *Zero:
			return count, true
		case *Number:
			return count + n.Value, true
		case *Add1:
			count++
			e = n.N
		default:
			return 0, false
		}
	}
}
