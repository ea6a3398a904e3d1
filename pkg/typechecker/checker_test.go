package typechecker

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/interpreter"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

func mustDecode(t *testing.T, src string) core.Expr {
	t.Helper()
	e, err := core.DecodeString(src)
	if err != nil {
		t.Fatalf("decode %q: %v", src, err)
	}
	return e
}

func synthType(t *testing.T, ctx *runtime.Context, src string) (core.Expr, core.Expr) {
	t.Helper()
	out, typ, err := Synth(ctx, mustDecode(t, src))
	if err != nil {
		t.Fatalf("synth %s: %v", src, err)
	}
	return out, interpreter.ReadBackType(ctx, typ)
}

func expectKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got no error", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected %s, got %v", kind, err)
	}
}

func TestSynthAnnotatedIdentity(t *testing.T) {
	_, typ := synthType(t, runtime.NewContext(), "[the, [->, Nat, Nat], [λ, x, x]]")
	want := core.NewPi("x", core.NewNat(), core.NewNat())
	if !core.AlphaEquiv(typ, want) {
		t.Fatalf("expected %s, got %s", core.String(want), core.String(typ))
	}
	pi := typ.(*core.Pi)
	if pi.Name != "x" {
		t.Fatalf("expected binder x, got %s", pi.Name)
	}
}

func TestSynthTypeFormersLiveInU(t *testing.T) {
	for _, src := range []string{
		"Nat",
		"[List, Atom]",
		"[Vec, Nat, 3]",
		"[Π, n, Nat, [Vec, Atom, n]]",
		"[Σ, x, Atom, [=, Atom, x, [quote, a]]]",
		"[Either, Trivial, Absurd]",
		"[Pair, Nat, Nat]",
	} {
		_, typ := synthType(t, runtime.NewContext(), src)
		if _, ok := typ.(*core.Universe); !ok {
			t.Fatalf("expected %s : U, got %s", src, core.String(typ))
		}
	}
}

func TestIsTypeAcceptsUniverse(t *testing.T) {
	out, err := IsType(runtime.NewContext(), mustDecode(t, "[->, U, U]"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(*core.Pi); !ok {
		t.Fatalf("expected Π, got %s", core.String(out))
	}
}

func TestIsTypeRejectsNonTypes(t *testing.T) {
	_, err := IsType(runtime.NewContext(), mustDecode(t, "zero"))
	expectKind(t, err, NotAUniverse)
}

func TestSynthUniverseHasNoType(t *testing.T) {
	_, _, err := Synth(runtime.NewContext(), core.NewUniverse())
	expectKind(t, err, UniverseHasNoType)
}

func TestDuplicateLambdaBindersAreRenamed(t *testing.T) {
	expected := interpreter.ValOf(nil, mustDecode(t, "[->, Nat, Nat, Nat]"))
	out, err := Check(runtime.NewContext(), mustDecode(t, "[λ, [x, x], x]"), expected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outer, ok := out.(*core.Lambda)
	if !ok || outer.Name != "x" {
		t.Fatalf("expected outer binder x, got %s", core.String(out))
	}
	inner, ok := outer.Body.(*core.Lambda)
	if !ok || inner.Name != "x₁" {
		t.Fatalf("expected inner binder x₁, got %s", core.String(out))
	}
	if v, ok := inner.Body.(*core.Var); !ok || v.Name != "x₁" {
		t.Fatalf("expected body x₁, got %s\n%s", core.String(out), spew.Sdump(inner.Body))
	}
}

func TestBindersAvoidContextNames(t *testing.T) {
	ctx := runtime.NewContext().ExtendFree("x", runtime.NatValue{})
	expected := interpreter.ValOf(nil, mustDecode(t, "[->, Nat, Nat]"))
	out, err := Check(ctx, mustDecode(t, "[λ, x, [add1, x]]"), expected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lam := out.(*core.Lambda)
	if lam.Name != "x₁" {
		t.Fatalf("expected binder x₁, got %s", core.String(out))
	}
	want := core.Lam("y", core.NewAdd1(core.Ref("y")))
	if !core.AlphaEquiv(out, want) {
		t.Fatalf("expected the body to refer to the new binder, got %s", core.String(out))
	}
}

func TestCarOfNonPairIsTargetMismatch(t *testing.T) {
	for _, src := range []string{"[car, zero]", "[cdr, [the, Atom, [quote, a]]]"} {
		_, _, err := Synth(runtime.NewContext(), mustDecode(t, src))
		expectKind(t, err, NotAPairType)
		expectKind(t, err, EliminatorTargetMismatch)
		var typeErr *TypeError
		if !errors.As(err, &typeErr) || typeErr.Found == nil {
			t.Fatalf("expected the target's type to be reported, got %v", err)
		}
		if errors.Is(err, TypeMismatch) {
			t.Fatalf("a pair mismatch is not a plain type mismatch: %v", err)
		}
	}
	_, _, err := Synth(runtime.NewContext(), mustDecode(t, "[symm, zero]"))
	if errors.Is(err, NotAPairType) {
		t.Fatalf("only car and cdr report NotAPairType, got %v", err)
	}
}

func TestUnboundVariable(t *testing.T) {
	_, _, err := Synth(runtime.NewContext(), mustDecode(t, "nowhere"))
	expectKind(t, err, UnboundVariable)
}

func TestConsAgainstNonSigma(t *testing.T) {
	_, err := Check(runtime.NewContext(), mustDecode(t, "[cons, zero, zero]"), runtime.NatValue{})
	expectKind(t, err, TypeMismatch)
}

func TestLambdaAgainstNonPi(t *testing.T) {
	_, err := Check(runtime.NewContext(), mustDecode(t, "[λ, x, x]"), runtime.AtomValue{})
	expectKind(t, err, TypeMismatch)
}

func TestApplyingNonFunction(t *testing.T) {
	_, _, err := Synth(runtime.NewContext(), mustDecode(t, "[[the, Nat, zero], zero]"))
	expectKind(t, err, NotAFunctionType)
}

func TestTODOIsIncomplete(t *testing.T) {
	_, err := Check(runtime.NewContext(), core.NewTODO(), runtime.NatValue{})
	expectKind(t, err, IncompleteTerm)
	_, _, err = Synth(runtime.NewContext(), core.NewTODO())
	expectKind(t, err, IncompleteTerm)
}

func TestCheckOnlyFormsCannotSynthesize(t *testing.T) {
	for _, src := range []string{"[λ, x, x]", "nil", "vecnil", "[same, zero]", "[left, zero]"} {
		_, _, err := Synth(runtime.NewContext(), mustDecode(t, src))
		expectKind(t, err, CannotSynthesize)
	}
}

func TestMismatchReportsBothTypes(t *testing.T) {
	_, err := Check(runtime.NewContext(), mustDecode(t, "[quote, a]"), runtime.NatValue{})
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *TypeError, got %v", err)
	}
	if typeErr.Kind != TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %s", typeErr.Kind)
	}
	if _, ok := typeErr.Expected.(*core.Nat); !ok {
		t.Fatalf("expected Nat as expected type, got %s", spew.Sdump(typeErr.Expected))
	}
	if _, ok := typeErr.Found.(*core.Atom); !ok {
		t.Fatalf("expected Atom as found type, got %s", spew.Sdump(typeErr.Found))
	}
}

func TestWhichNatRecordsBaseType(t *testing.T) {
	out, typ := synthType(t, runtime.NewContext(), "[which-Nat, 1, [the, Nat, 2], [λ, n, n]]")
	if _, ok := typ.(*core.Nat); !ok {
		t.Fatalf("expected Nat, got %s", core.String(typ))
	}
	which, ok := out.(*core.WhichNat)
	if !ok || which.BaseType == nil {
		t.Fatalf("expected an elaborated base type, got %s", core.String(out))
	}
	got := interpreter.Normalize(runtime.NewContext(), runtime.NatValue{}, out)
	if !core.AlphaEquiv(got, core.NewZero()) {
		t.Fatalf("expected zero, got %s", core.String(got))
	}
}

func TestNeutralEliminatorsNormalizeAfterElaboration(t *testing.T) {
	ctx := runtime.NewContext().ExtendFree("n", runtime.NatValue{})
	out, typ, err := Synth(ctx, mustDecode(t, "[rec-Nat, n, [the, Atom, [quote, z]], [λ, [k, ih], ih]]"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := interpreter.Normalize(ctx, typ, out)
	if _, ok := got.(*core.RecNat); !ok {
		t.Fatalf("expected a stuck rec-Nat, got %s", core.String(got))
	}
}

func TestIndNatProvesPlusZero(t *testing.T) {
	ctx := runtime.NewContext()
	plus := mustDecode(t, "[λ, [a, b], [iter-Nat, a, b, [λ, k, [add1, k]]]]")
	plusOut, err := Check(ctx, plus, interpreter.ValOf(nil, mustDecode(t, "[->, Nat, Nat, Nat]")))
	if err != nil {
		t.Fatalf("plus: %v", err)
	}
	plusType := interpreter.ValOf(nil, mustDecode(t, "[->, Nat, Nat, Nat]"))
	ctx = ctx.Extend("+", runtime.Def{Type: plusType, Value: interpreter.ValInContext(ctx, plusOut)})

	proof := mustDecode(t, `
- λ
- n
- - ind-Nat
  - n
  - [λ, k, [=, Nat, [+, k, zero], k]]
  - [same, zero]
  - - λ
    - [k, ih]
    - [cong, ih, [the, [->, Nat, Nat], [λ, m, [add1, m]]]]
`)
	claim := interpreter.ValOf(ctx.ToEnvironment(), mustDecode(t, "[Π, n, Nat, [=, Nat, [+, n, zero], n]]"))
	if _, err := Check(ctx, proof, claim); err != nil {
		t.Fatalf("proof rejected: %v", err)
	}
}

func TestSameRequiresEqualEndpoints(t *testing.T) {
	eq := interpreter.ValOf(nil, mustDecode(t, "[=, Nat, 1, 2]"))
	_, err := Check(runtime.NewContext(), mustDecode(t, "[same, 1]"), eq)
	expectKind(t, err, TypeMismatch)

	ok := interpreter.ValOf(nil, mustDecode(t, "[=, Nat, 2, [add1, 1]]"))
	if _, err := Check(runtime.NewContext(), mustDecode(t, "[same, 2]"), ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVectorIntroductionsFollowLength(t *testing.T) {
	vec2 := interpreter.ValOf(nil, mustDecode(t, "[Vec, Atom, 2]"))
	if _, err := Check(runtime.NewContext(), mustDecode(t, `["vec::", [quote, a], ["vec::", [quote, b], vecnil]]`), vec2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := Check(runtime.NewContext(), mustDecode(t, `["vec::", [quote, a], vecnil]`), vec2)
	expectKind(t, err, TypeMismatch)

	_, _, err = Synth(runtime.NewContext(), mustDecode(t, "[head, [the, [Vec, Atom, 0], vecnil]]"))
	expectKind(t, err, EliminatorTargetMismatch)
}

func TestClaimedNameIsNotUsable(t *testing.T) {
	ctx := runtime.NewContext().Extend("later", runtime.Claim{Type: runtime.NatValue{}})
	_, _, err := Synth(ctx, mustDecode(t, "later"))
	expectKind(t, err, UndefinedClaim)
}

func TestRenamedBinderIsNotReachableByItsFreshName(t *testing.T) {
	ctx := runtime.NewContext().ExtendFree("x", runtime.NatValue{})
	expected := interpreter.ValOf(nil, mustDecode(t, "[->, Nat, Nat]"))
	_, err := Check(ctx, mustDecode(t, "[λ, x, x₁]"), expected)
	expectKind(t, err, UnboundVariable)

	out, err := Check(ctx, mustDecode(t, "[λ, x₁, x₁]"), expected)
	if err != nil {
		t.Fatalf("a source binder named x₁ should still be usable: %v", err)
	}
	if !core.AlphaEquiv(out, core.Lam("y", core.Ref("y"))) {
		t.Fatalf("expected the identity, got %s", core.String(out))
	}
}

func TestEliminatorsSynthesize(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		typ    string
		normal string
	}{
		{
			name:   "rec-List length",
			src:    `[rec-List, ["::", [quote, a], ["::", [quote, b], nil]], zero, [λ, [e, es, ih], [add1, ih]]]`,
			typ:    "Nat",
			normal: "2",
		},
		{
			name:   "ind-List length",
			src:    `[ind-List, ["::", [quote, a], nil], [λ, xs, Nat], zero, [λ, [e, es, ih], [add1, ih]]]`,
			typ:    "Nat",
			normal: "1",
		},
		{
			name:   "ind-Vec length",
			src:    `[ind-Vec, 2, [the, [Vec, Atom, 2], ["vec::", [quote, a], ["vec::", [quote, b], vecnil]]], [λ, [k, es], Nat], zero, [λ, [k, e, es, ih], [add1, ih]]]`,
			typ:    "Nat",
			normal: "2",
		},
		{
			name:   "ind-Either on left",
			src:    "[ind-Either, [the, [Either, Nat, Atom], [left, 3]], [λ, x, Nat], [λ, n, n], [λ, a, zero]]",
			typ:    "Nat",
			normal: "3",
		},
		{
			name:   "replace",
			src:    "[replace, [the, [=, Nat, 2, [add1, 1]], [same, 2]], [λ, n, [=, Nat, n, 2]], [same, 2]]",
			typ:    "[=, Nat, 2, 2]",
			normal: "[same, 2]",
		},
		{
			name:   "trans",
			src:    "[trans, [the, [=, Nat, 1, 1], [same, 1]], [the, [=, Nat, 1, [add1, 0]], [same, 1]]]",
			typ:    "[=, Nat, 1, 1]",
			normal: "[same, 1]",
		},
		{
			name:   "symm",
			src:    "[symm, [the, [=, Atom, [quote, a], [quote, a]], [same, [quote, a]]]]",
			typ:    "[=, Atom, [quote, a], [quote, a]]",
			normal: "[same, [quote, a]]",
		},
		{
			name:   "ind-=",
			src:    "[ind-=, [the, [=, Nat, 1, 1], [same, 1]], [λ, [to, p], Nat], zero]",
			typ:    "Nat",
			normal: "zero",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := runtime.NewContext()
			out, typ, err := Synth(ctx, mustDecode(t, tc.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			gotType := interpreter.ReadBackType(ctx, typ)
			if want := mustDecode(t, tc.typ); !core.AlphaEquiv(gotType, want) {
				t.Fatalf("expected type %s, got %s", core.String(want), core.String(gotType))
			}
			got := interpreter.Normalize(ctx, typ, out)
			if want := mustDecode(t, tc.normal); !core.AlphaEquiv(got, want) {
				t.Fatalf("expected %s, got %s\n%s", core.String(want), core.String(got), spew.Sdump(got))
			}
		})
	}
}

func TestEliminatorsRejectWrongTargets(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"rec-List on Nat", "[rec-List, zero, zero, [λ, [e, es, ih], ih]]", EliminatorTargetMismatch},
		{"ind-List on Nat", "[ind-List, zero, [λ, xs, Nat], zero, [λ, [e, es, ih], ih]]", EliminatorTargetMismatch},
		{"ind-Vec on List", `[ind-Vec, 1, ["::", [quote, a], nil], [λ, [k, es], Nat], zero, [λ, [k, e, es, ih], ih]]`, EliminatorTargetMismatch},
		{"ind-Vec with wrong length", `[ind-Vec, 3, [the, [Vec, Atom, 1], ["vec::", [quote, a], vecnil]], [λ, [k, es], Nat], zero, [λ, [k, e, es, ih], ih]]`, TypeMismatch},
		{"ind-Either on Nat", "[ind-Either, zero, [λ, x, Nat], [λ, n, n], [λ, a, zero]]", EliminatorTargetMismatch},
		{"replace on Nat", "[replace, zero, [λ, n, Nat], zero]", EliminatorTargetMismatch},
		{"trans on Nat", "[trans, zero, zero]", EliminatorTargetMismatch},
		{"trans with unmatched endpoints", "[trans, [the, [=, Nat, 1, 1], [same, 1]], [the, [=, Nat, 2, 2], [same, 2]]]", TypeMismatch},
		{"symm on Nat", "[symm, zero]", EliminatorTargetMismatch},
		{"ind-= on Nat", "[ind-=, zero, [λ, [to, p], Nat], zero]", EliminatorTargetMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Synth(runtime.NewContext(), mustDecode(t, tc.src))
			expectKind(t, err, tc.kind)
		})
	}
}
