package interpreter

import (
	"testing"

	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

func TestConvert(t *testing.T) {
	fType := ValOf(nil, natToNat())
	ctx := runtime.NewContext().ExtendFree("f", fType)

	cases := []struct {
		name  string
		typ   runtime.Value
		left  core.Expr
		right core.Expr
		want  bool
	}{
		{"alpha renamed identity", fType, core.Lam("x", core.Ref("x")), core.Lam("y", core.Ref("y")), true},
		{"identity vs constant", fType, core.Lam("x", core.Ref("x")), core.Lam("x", core.NewZero()), false},
		{"numeral vs add1 chain", runtime.NatValue{}, core.Num(3), core.Nats(3), true},
		{"different numerals", runtime.NatValue{}, core.Num(3), core.Num(4), false},
		{"eta for functions", fType, core.Ref("f"), core.Lam("n", core.NewApp(core.Ref("f"), core.Ref("n"))), true},
		{"beta reduction", runtime.NatValue{}, core.NewApp(core.Lam("x", core.NewAdd1(core.Ref("x"))), core.Num(1)), core.Num(2), true},
		{"atoms", runtime.AtomValue{}, core.NewQuote("a"), core.NewQuote("b"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Convert(ctx, tc.typ, ValInContext(ctx, tc.left), ValInContext(ctx, tc.right))
			if got != tc.want {
				t.Fatalf("expected %v for %s ≡ %s", tc.want, core.String(tc.left), core.String(tc.right))
			}
		})
	}
}

func TestConvertTrivialValuesAreEqual(t *testing.T) {
	ctx := runtime.NewContext().
		ExtendFree("s", runtime.TrivialValue{}).
		ExtendFree("u", runtime.TrivialValue{})
	if !Convert(ctx, runtime.TrivialValue{}, ValInContext(ctx, core.Ref("s")), ValInContext(ctx, core.Ref("u"))) {
		t.Fatalf("expected every inhabitant of Trivial to be sole")
	}
}

func TestConvertAbsurdValuesAreEqual(t *testing.T) {
	ctx := runtime.NewContext().
		ExtendFree("a", runtime.AbsurdValue{}).
		ExtendFree("b", runtime.AbsurdValue{})
	if !Convert(ctx, runtime.AbsurdValue{}, ValInContext(ctx, core.Ref("a")), ValInContext(ctx, core.Ref("b"))) {
		t.Fatalf("expected inhabitants of Absurd to be indistinguishable")
	}
}

func TestConvertIsSymmetricAndTransitive(t *testing.T) {
	ctx := runtime.NewContext()
	a := ValOf(nil, core.Num(2))
	b := ValOf(nil, core.NewAdd1(core.Num(1)))
	c := ValOf(nil, core.NewIterNat(core.Num(2), nil, core.NewZero(), core.Lam("k", core.NewAdd1(core.Ref("k")))))
	nat := runtime.NatValue{}
	if !Convert(ctx, nat, a, b) || !Convert(ctx, nat, b, a) {
		t.Fatalf("expected symmetric equality")
	}
	if !Convert(ctx, nat, b, c) || !Convert(ctx, nat, a, c) {
		t.Fatalf("expected transitive equality")
	}
}

func TestSameType(t *testing.T) {
	ctx := runtime.NewContext()
	arrow := ValOf(nil, core.NewArrow(core.NewNat(), core.NewNat()))
	pi := ValOf(nil, core.NewPi("n", core.NewNat(), core.NewNat()))
	if !SameType(ctx, arrow, pi) {
		t.Fatalf("expected (→ Nat Nat) and (Π ((n Nat)) Nat) to agree")
	}
	list := ValOf(nil, core.NewList(core.NewNat()))
	if SameType(ctx, arrow, list) {
		t.Fatalf("expected function and list types to differ")
	}
	vec2 := ValOf(nil, core.NewVec(core.NewAtom(), core.Num(2)))
	vecAdd := ValOf(nil, core.NewVec(core.NewAtom(), core.NewAdd1(core.Num(1))))
	if !SameType(ctx, vec2, vecAdd) {
		t.Fatalf("expected vector lengths to be compared up to evaluation")
	}
}

func TestForcingIsShared(t *testing.T) {
	d := runtime.NewDelay(nil, core.NewAdd1(core.NewZero()))
	env := runtime.NewEnvironment().Extend("x", d)
	pair := ValOf(env, core.NewCons(core.Ref("x"), core.Ref("x"))).(*runtime.ConsValue)
	if pair.Car != runtime.Value(d) || pair.Cdr != runtime.Value(d) {
		t.Fatalf("expected both components to alias the same cell")
	}
	first := Now(pair.Car)
	cached := d.Force(func(*runtime.Environment, core.Expr) runtime.Value {
		t.Fatalf("expected the cell to be forced")
		return nil
	})
	if cached != first || Now(pair.Cdr) != first {
		t.Fatalf("expected the forced value to be reused")
	}
}
