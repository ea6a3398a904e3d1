package core

// OccurringNames lists every variable name mentioned in e, bound or free,
// in first-occurrence order. A binder chosen outside this set cannot capture
// anything in e.
func OccurringNames(e Expr) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	var walk func(Expr)
	walk = func(e Expr) {
		if e == nil {
			return
		}
		switch n := e.(type) {
		case *Var:
			add(n.Name)
		case *Pi:
			add(n.Name)
		case *Sigma:
			add(n.Name)
		case *Lambda:
			add(n.Name)
		}
		for _, child := range Children(e) {
			walk(child)
		}
	}
	walk(e)
	return out
}

// Children returns the immediate sub-expressions of e in field order,
// skipping empty elaboration slots.
func Children(e Expr) []Expr {
	var kids []Expr
	switch n := e.(type) {
	case *Pi:
		kids = []Expr{n.ArgType, n.ResultType}
	case *Arrow:
		kids = []Expr{n.ArgType, n.ResultType}
	case *Sigma:
		kids = []Expr{n.CarType, n.CdrType}
	case *Pair:
		kids = []Expr{n.CarType, n.CdrType}
	case *Lambda:
		kids = []Expr{n.Body}
	case *App:
		kids = []Expr{n.Fun, n.Arg}
	case *The:
		kids = []Expr{n.Type, n.Expr}
	case *Add1:
		kids = []Expr{n.N}
	case *WhichNat:
		kids = []Expr{n.Target, n.BaseType, n.Base, n.Step}
	case *IterNat:
		kids = []Expr{n.Target, n.BaseType, n.Base, n.Step}
	case *RecNat:
		kids = []Expr{n.Target, n.BaseType, n.Base, n.Step}
	case *IndNat:
		kids = []Expr{n.Target, n.Motive, n.Base, n.Step}
	case *Cons:
		kids = []Expr{n.Car, n.Cdr}
	case *Car:
		kids = []Expr{n.Pair}
	case *Cdr:
		kids = []Expr{n.Pair}
	case *IndAbsurd:
		kids = []Expr{n.Target, n.Motive}
	case *List:
		kids = []Expr{n.EntryType}
	case *ListCons:
		kids = []Expr{n.Head, n.Tail}
	case *RecList:
		kids = []Expr{n.Target, n.BaseType, n.Base, n.Step}
	case *IndList:
		kids = []Expr{n.Target, n.Motive, n.Base, n.Step}
	case *Vec:
		kids = []Expr{n.EntryType, n.Length}
	case *VecCons:
		kids = []Expr{n.Head, n.Tail}
	case *Head:
		kids = []Expr{n.Vec}
	case *Tail:
		kids = []Expr{n.Vec}
	case *IndVec:
		kids = []Expr{n.Length, n.Target, n.Motive, n.Base, n.Step}
	case *Either:
		kids = []Expr{n.Left, n.Right}
	case *Left:
		kids = []Expr{n.Value}
	case *Right:
		kids = []Expr{n.Value}
	case *IndEither:
		kids = []Expr{n.Target, n.Motive, n.OnLeft, n.OnRight}
	case *Equal:
		kids = []Expr{n.Type, n.From, n.To}
	case *Same:
		kids = []Expr{n.Value}
	case *Replace:
		kids = []Expr{n.Target, n.Motive, n.Base}
	case *Trans:
		kids = []Expr{n.Left, n.Right}
	case *Cong:
		kids = []Expr{n.Target, n.ResultType, n.Fun}
	case *Symm:
		kids = []Expr{n.Target}
	case *IndEqual:
		kids = []Expr{n.Target, n.Motive, n.Base}
	}
	out := kids[:0]
	for _, k := range kids {
		if k != nil {
			out = append(out, k)
		}
	}
	return out
}
