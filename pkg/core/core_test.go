package core

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestAlphaEquivRenamesBinders(t *testing.T) {
	a := NewPi("x", NewNat(), NewVec(NewAtom(), Ref("x")))
	b := NewPi("y", NewNat(), NewVec(NewAtom(), Ref("y")))
	if !AlphaEquiv(a, b) {
		t.Fatalf("expected %s ≡ %s", String(a), String(b))
	}
}

func TestAlphaEquivDistinguishesBoundFromFree(t *testing.T) {
	bound := Lam("x", Ref("x"))
	free := Lam("y", Ref("x"))
	if AlphaEquiv(bound, free) {
		t.Fatalf("expected %s and %s to differ", String(bound), String(free))
	}
}

func TestAlphaEquivUsesBinderDepth(t *testing.T) {
	outer := Lambdas([]string{"x", "y"}, Ref("x"))
	inner := Lambdas([]string{"x", "y"}, Ref("y"))
	if AlphaEquiv(outer, inner) {
		t.Fatalf("expected reference depth to matter")
	}
	shadowed := Lambdas([]string{"x", "x"}, Ref("x"))
	if !AlphaEquiv(shadowed, inner) {
		t.Fatalf("expected shadowed reference to be the inner binder")
	}
}

func TestAlphaEquivNumerals(t *testing.T) {
	if !AlphaEquiv(Num(3), Nats(3)) {
		t.Fatalf("expected 3 ≡ (add1 (add1 (add1 zero)))")
	}
	if !AlphaEquiv(NewAdd1(Num(1)), Num(2)) {
		t.Fatalf("expected (add1 1) ≡ 2")
	}
	if AlphaEquiv(Num(2), Nats(3)) {
		t.Fatalf("expected 2 and 3 to differ")
	}
}

func TestAlphaEquivAbsurdAscriptions(t *testing.T) {
	a := NewThe(NewAbsurd(), Ref("a"))
	b := NewThe(NewAbsurd(), Ref("b"))
	if !AlphaEquiv(a, b) {
		t.Fatalf("expected any two Absurd ascriptions to be equivalent")
	}
	if AlphaEquiv(NewThe(NewNat(), Ref("a")), NewThe(NewNat(), Ref("b"))) {
		t.Fatalf("expected other ascriptions to compare their bodies")
	}
}

func TestAlphaEquivIsReflexive(t *testing.T) {
	for _, e := range []Expr{
		NewTODO(),
		NewUniverse(),
		NewQuote("a"),
		NewIndVec(Num(1), Ref("v"), Ref("m"), Ref("b"), Ref("s")),
		NewCong(Ref("p"), NewNat(), Ref("f")),
	} {
		if !AlphaEquiv(e, e) {
			t.Fatalf("expected %s ≡ itself", String(e))
		}
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		expr Expr
		want string
	}{
		{NewPi("x", NewNat(), NewNat()), "(Π ((x Nat)) Nat)"},
		{Lam("x", Ref("x")), "(λ (x) x)"},
		{Apps(Ref("f"), Num(1), Ref("y")), "(f 1 y)"},
		{Nats(2), "2"},
		{NewAdd1(Ref("n")), "(add1 n)"},
		{NewQuote("apple"), "'apple"},
		{Arrows(NewNat(), NewAtom(), NewNat()), "(→ Nat (→ Atom Nat))"},
		{NewWhichNat(Ref("n"), NewNat(), NewZero(), Ref("s")), "(which-Nat n (the Nat 0) s)"},
		{NewWhichNat(Ref("n"), nil, NewZero(), Ref("s")), "(which-Nat n 0 s)"},
		{NewEqual(NewNat(), Ref("a"), NewZero()), "(= Nat a 0)"},
	}
	for _, tc := range cases {
		if got := String(tc.expr); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestOccurringNames(t *testing.T) {
	e := NewPi("x", Ref("A"), NewApp(Lam("y", Ref("x")), Ref("z")))
	got := OccurringNames(e)
	want := []string{"x", "A", "y", "z"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDecodeForms(t *testing.T) {
	cases := []struct {
		src  string
		want Expr
	}{
		{"zero", NewZero()},
		{"7", Num(7)},
		{"n", Ref("n")},
		{"[add1, n]", NewAdd1(Ref("n"))},
		{"[the, [->, Nat, Nat], [λ, x, x]]", NewThe(NewArrow(NewNat(), NewNat()), Lam("x", Ref("x")))},
		{"[lambda, [a, b], a]", Lambdas([]string{"a", "b"}, Ref("a"))},
		{"[Pi, n, Nat, [Vec, Atom, n]]", NewPi("n", NewNat(), NewVec(NewAtom(), Ref("n")))},
		{"[Σ, p, Nat, Atom]", NewSigma("p", NewNat(), NewAtom())},
		{"[quote, cherry]", NewQuote("cherry")},
		{"[f, a, b]", Apps(Ref("f"), Ref("a"), Ref("b"))},
		{"[->, Nat, Atom, Nat]", Arrows(NewNat(), NewAtom(), NewNat())},
		{"[ind-Vec, 1, v, m, b, s]", NewIndVec(Num(1), Ref("v"), Ref("m"), Ref("b"), Ref("s"))},
		{`["::", [quote, a], nil]`, NewListCons(NewQuote("a"), NewNil())},
		{"[cong, p, f]", NewCong(Ref("p"), nil, Ref("f"))},
	}
	for _, tc := range cases {
		got, err := DecodeString(tc.src)
		if err != nil {
			t.Fatalf("decode %q: %v", tc.src, err)
		}
		if !AlphaEquiv(got, tc.want) {
			t.Fatalf("decode %q: expected %s, got %s\n%s", tc.src, String(tc.want), String(got), spew.Sdump(got))
		}
	}
}

func TestDecodeLeavesElaborationSlotsEmpty(t *testing.T) {
	got, err := DecodeString("[rec-Nat, n, zero, s]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, ok := got.(*RecNat)
	if !ok || rec.BaseType != nil {
		t.Fatalf("expected an unelaborated rec-Nat, got %s", spew.Sdump(got))
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, src := range []string{
		"[]",
		"[add1]",
		"[which-Nat, n, zero]",
		"[quote, [a]]",
		"[λ, [], x]",
		"[Π, x, Nat]",
		"{a: b}",
		"[f]",
	} {
		_, err := DecodeString(src)
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("decode %q: expected DecodeError, got %v", src, err)
		}
		if derr.Line == 0 {
			t.Fatalf("decode %q: expected a position, got %v", src, err)
		}
	}
}
