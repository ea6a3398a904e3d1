package core

type alphaBinding struct {
	name  string
	level int
}

// alphaScope tracks the binders crossed on each side; a bound name is
// identified by the depth of its binder.
type alphaScope struct {
	left  []alphaBinding
	right []alphaBinding
	level int
}

func (s alphaScope) bind(leftName, rightName string) alphaScope {
	left := make([]alphaBinding, len(s.left), len(s.left)+1)
	copy(left, s.left)
	right := make([]alphaBinding, len(s.right), len(s.right)+1)
	copy(right, s.right)
	return alphaScope{
		left:  append(left, alphaBinding{name: leftName, level: s.level}),
		right: append(right, alphaBinding{name: rightName, level: s.level}),
		level: s.level + 1,
	}
}

func lookupLevel(bindings []alphaBinding, name string) (int, bool) {
	for i := len(bindings) - 1; i >= 0; i-- {
		if bindings[i].name == name {
			return bindings[i].level, true
		}
	}
	return 0, false
}

// AlphaEquiv reports whether two expressions are equal up to a consistent
// renaming of bound variables. Numerals are equal to their add1/zero
// spelling, and any two proofs of Absurd are equal.
func AlphaEquiv(a, b Expr) bool {
	return alphaEquiv(a, b, alphaScope{})
}

func unfoldNumeral(e Expr) Expr {
	n, ok := e.(*Number)
	if !ok {
		return e
	}
	if n.Value == 0 {
		return NewZero()
	}
	return NewAdd1(NewNumber(n.Value - 1))
}

func isAbsurdAscription(e Expr) bool {
	the, ok := e.(*The)
	if !ok {
		return false
	}
	_, ok = the.Type.(*Absurd)
	return ok
}

func alphaEquiv(a, b Expr, s alphaScope) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if x, ok := a.(*Number); ok {
		if y, ok := b.(*Number); ok {
			return x.Value == y.Value
		}
	}
	a, b = unfoldNumeral(a), unfoldNumeral(b)
	if isAbsurdAscription(a) && isAbsurdAscription(b) {
		return true
	}
	eq := func(x, y Expr) bool { return alphaEquiv(x, y, s) }

	switch x := a.(type) {
	case *Var:
		y, ok := b.(*Var)
		if !ok {
			return false
		}
		xl, xBound := lookupLevel(s.left, x.Name)
		yl, yBound := lookupLevel(s.right, y.Name)
		switch {
		case xBound && yBound:
			return xl == yl
		case !xBound && !yBound:
			return x.Name == y.Name
		default:
			return false
		}
	case *Pi:
		y, ok := b.(*Pi)
		return ok && eq(x.ArgType, y.ArgType) && alphaEquiv(x.ResultType, y.ResultType, s.bind(x.Name, y.Name))
	case *Sigma:
		y, ok := b.(*Sigma)
		return ok && eq(x.CarType, y.CarType) && alphaEquiv(x.CdrType, y.CdrType, s.bind(x.Name, y.Name))
	case *Lambda:
		y, ok := b.(*Lambda)
		return ok && alphaEquiv(x.Body, y.Body, s.bind(x.Name, y.Name))
	case *Arrow:
		y, ok := b.(*Arrow)
		return ok && eq(x.ArgType, y.ArgType) && eq(x.ResultType, y.ResultType)
	case *Pair:
		y, ok := b.(*Pair)
		return ok && eq(x.CarType, y.CarType) && eq(x.CdrType, y.CdrType)
	case *App:
		y, ok := b.(*App)
		return ok && eq(x.Fun, y.Fun) && eq(x.Arg, y.Arg)
	case *The:
		y, ok := b.(*The)
		return ok && eq(x.Type, y.Type) && eq(x.Expr, y.Expr)
	case *Add1:
		y, ok := b.(*Add1)
		return ok && eq(x.N, y.N)
	case *WhichNat:
		y, ok := b.(*WhichNat)
		return ok && eq(x.Target, y.Target) && eq(x.BaseType, y.BaseType) && eq(x.Base, y.Base) && eq(x.Step, y.Step)
	case *IterNat:
		y, ok := b.(*IterNat)
		return ok && eq(x.Target, y.Target) && eq(x.BaseType, y.BaseType) && eq(x.Base, y.Base) && eq(x.Step, y.Step)
	case *RecNat:
		y, ok := b.(*RecNat)
		return ok && eq(x.Target, y.Target) && eq(x.BaseType, y.BaseType) && eq(x.Base, y.Base) && eq(x.Step, y.Step)
	case *IndNat:
		y, ok := b.(*IndNat)
		return ok && eq(x.Target, y.Target) && eq(x.Motive, y.Motive) && eq(x.Base, y.Base) && eq(x.Step, y.Step)
	case *Quote:
		y, ok := b.(*Quote)
		return ok && x.Symbol == y.Symbol
	case *Cons:
		y, ok := b.(*Cons)
		return ok && eq(x.Car, y.Car) && eq(x.Cdr, y.Cdr)
	case *Car:
		y, ok := b.(*Car)
		return ok && eq(x.Pair, y.Pair)
	case *Cdr:
		y, ok := b.(*Cdr)
		return ok && eq(x.Pair, y.Pair)
	case *IndAbsurd:
		y, ok := b.(*IndAbsurd)
		return ok && eq(x.Target, y.Target) && eq(x.Motive, y.Motive)
	case *List:
		y, ok := b.(*List)
		return ok && eq(x.EntryType, y.EntryType)
	case *ListCons:
		y, ok := b.(*ListCons)
		return ok && eq(x.Head, y.Head) && eq(x.Tail, y.Tail)
	case *RecList:
		y, ok := b.(*RecList)
		return ok && eq(x.Target, y.Target) && eq(x.BaseType, y.BaseType) && eq(x.Base, y.Base) && eq(x.Step, y.Step)
	case *IndList:
		y, ok := b.(*IndList)
		return ok && eq(x.Target, y.Target) && eq(x.Motive, y.Motive) && eq(x.Base, y.Base) && eq(x.Step, y.Step)
	case *Vec:
		y, ok := b.(*Vec)
		return ok && eq(x.EntryType, y.EntryType) && eq(x.Length, y.Length)
	case *VecCons:
		y, ok := b.(*VecCons)
		return ok && eq(x.Head, y.Head) && eq(x.Tail, y.Tail)
	case *Head:
		y, ok := b.(*Head)
		return ok && eq(x.Vec, y.Vec)
	case *Tail:
		y, ok := b.(*Tail)
		return ok && eq(x.Vec, y.Vec)
	case *IndVec:
		y, ok := b.(*IndVec)
		return ok && eq(x.Length, y.Length) && eq(x.Target, y.Target) && eq(x.Motive, y.Motive) &&
			eq(x.Base, y.Base) && eq(x.Step, y.Step)
	case *Either:
		y, ok := b.(*Either)
		return ok && eq(x.Left, y.Left) && eq(x.Right, y.Right)
	case *Left:
		y, ok := b.(*Left)
		return ok && eq(x.Value, y.Value)
	case *Right:
		y, ok := b.(*Right)
		return ok && eq(x.Value, y.Value)
	case *IndEither:
		y, ok := b.(*IndEither)
		return ok && eq(x.Target, y.Target) && eq(x.Motive, y.Motive) && eq(x.OnLeft, y.OnLeft) && eq(x.OnRight, y.OnRight)
	case *Equal:
		y, ok := b.(*Equal)
		return ok && eq(x.Type, y.Type) && eq(x.From, y.From) && eq(x.To, y.To)
	case *Same:
		y, ok := b.(*Same)
		return ok && eq(x.Value, y.Value)
	case *Replace:
		y, ok := b.(*Replace)
		return ok && eq(x.Target, y.Target) && eq(x.Motive, y.Motive) && eq(x.Base, y.Base)
	case *Trans:
		y, ok := b.(*Trans)
		return ok && eq(x.Left, y.Left) && eq(x.Right, y.Right)
	case *Cong:
		y, ok := b.(*Cong)
		return ok && eq(x.Target, y.Target) && eq(x.ResultType, y.ResultType) && eq(x.Fun, y.Fun)
	case *Symm:
		y, ok := b.(*Symm)
		return ok && eq(x.Target, y.Target)
	case *IndEqual:
		y, ok := b.(*IndEqual)
		return ok && eq(x.Target, y.Target) && eq(x.Motive, y.Motive) && eq(x.Base, y.Base)
	default:
		// Nullary constructors: U, Nat, Zero, Atom, Trivial, Sole, Absurd,
		// Nil, VecNil, TODO.
		return a.NodeType() == b.NodeType()
	}
}
