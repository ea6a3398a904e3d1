package core

// Construction helpers, mostly for tests and fixtures.

func Ref(name string) *Var {
	return NewVar(name)
}

func Num(value uint64) *Number {
	return NewNumber(value)
}

func Lam(name string, body Expr) *Lambda {
	return NewLambda(name, body)
}

// Lambdas nests one single-binder lambda per name, outermost first.
func Lambdas(names []string, body Expr) Expr {
	out := body
	for i := len(names) - 1; i >= 0; i-- {
		out = NewLambda(names[i], out)
	}
	return out
}

// Apps left-nests applications: Apps(f, a, b) is ((f a) b).
func Apps(fun Expr, args ...Expr) Expr {
	out := fun
	for _, arg := range args {
		out = NewApp(out, arg)
	}
	return out
}

// Arrows right-nests arrow types: Arrows(A, B, C) is (→ A (→ B C)).
func Arrows(first Expr, rest ...Expr) Expr {
	if len(rest) == 0 {
		return first
	}
	return NewArrow(first, Arrows(rest[0], rest[1:]...))
}

// Nats builds the unary numeral add1ⁿ zero.
func Nats(n uint64) Expr {
	var out Expr = NewZero()
	for i := uint64(0); i < n; i++ {
		out = NewAdd1(out)
	}
	return out
}
