package interpreter

import (
	"testing"

	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

func TestReadBackEtaExpandsFunctions(t *testing.T) {
	fType := ValOf(nil, natToNat())
	ctx := runtime.NewContext().ExtendFree("f", fType)
	got := ReadBack(ctx, fType, ValInContext(ctx, core.Ref("f")))
	expectNormal(t, got, core.Lam("x", core.NewApp(core.Ref("f"), core.Ref("x"))))
}

func TestReadBackEtaExpandsPairs(t *testing.T) {
	pType := ValOf(nil, core.NewSigma("x", core.NewNat(), core.NewAtom()))
	ctx := runtime.NewContext().ExtendFree("p", pType)
	got := ReadBack(ctx, pType, ValInContext(ctx, core.Ref("p")))
	expectNormal(t, got, core.NewCons(core.NewCar(core.Ref("p")), core.NewCdr(core.Ref("p"))))
}

func TestReadBackTrivialIsSole(t *testing.T) {
	ctx := runtime.NewContext().ExtendFree("t", runtime.TrivialValue{})
	got := ReadBack(ctx, runtime.TrivialValue{}, ValInContext(ctx, core.Ref("t")))
	expectNormal(t, got, core.NewSole())
}

func TestReadBackAbsurdIsAscribed(t *testing.T) {
	ctx := runtime.NewContext().ExtendFree("a", runtime.AbsurdValue{})
	got := ReadBack(ctx, runtime.AbsurdValue{}, ValInContext(ctx, core.Ref("a")))
	the, ok := got.(*core.The)
	if !ok {
		t.Fatalf("expected (the Absurd a), got %s", core.String(got))
	}
	if _, ok := the.Type.(*core.Absurd); !ok {
		t.Fatalf("expected Absurd ascription, got %s", core.String(got))
	}
	expectNormal(t, the.Expr, core.Ref("a"))
}

func TestReadBackKeepsLambdaBinderName(t *testing.T) {
	piType := ValOf(nil, core.NewPi("n", core.NewNat(), core.NewNat()))
	got := ReadBack(runtime.NewContext(), piType, ValOf(nil, core.Lam("y", core.Ref("y"))))
	lam, ok := got.(*core.Lambda)
	if !ok || lam.Name != "y" {
		t.Fatalf("expected (λ (y) y), got %s", core.String(got))
	}
}

func TestReadBackAvoidsContextNames(t *testing.T) {
	piType := ValOf(nil, natToNat())
	ctx := runtime.NewContext().ExtendFree("x", runtime.NatValue{})
	got := ReadBack(ctx, piType, ValOf(nil, core.Lam("x", core.Ref("x"))))
	lam, ok := got.(*core.Lambda)
	if !ok || lam.Name != "x₁" {
		t.Fatalf("expected binder x₁, got %s", core.String(got))
	}
	expectNormal(t, lam.Body, core.Ref("x₁"))
}

func TestReadBackTypeOfDependentPi(t *testing.T) {
	typ := core.NewPi("n", core.NewNat(), core.NewVec(core.NewAtom(), core.Ref("n")))
	got := ReadBackType(runtime.NewContext(), ValOf(nil, typ))
	expectNormal(t, got, core.NewPi("m", core.NewNat(), core.NewVec(core.NewAtom(), core.Ref("m"))))
}

func TestReadBackOfArrowIntroducesBinder(t *testing.T) {
	got := ReadBackType(runtime.NewContext(), ValOf(nil, core.NewArrow(core.NewNat(), core.NewAtom())))
	pi, ok := got.(*core.Pi)
	if !ok {
		t.Fatalf("expected Π, got %s", core.String(got))
	}
	expectNormal(t, pi.ArgType, core.NewNat())
	expectNormal(t, pi.ResultType, core.NewAtom())
}

func TestNormalizeIsIdempotent(t *testing.T) {
	typ := ValOf(nil, natToNat())
	e := core.Lam("x", core.NewApp(core.Lam("y", core.NewAdd1(core.Ref("y"))), core.Ref("x")))
	once := Normalize(runtime.NewContext(), typ, e)
	expectNormal(t, once, core.Lam("x", core.NewAdd1(core.Ref("x"))))
	twice := Normalize(runtime.NewContext(), typ, once)
	expectNormal(t, twice, once)
}

func TestNormalizeNeutralApplicationSpine(t *testing.T) {
	gType := ValOf(nil, core.Arrows(core.NewNat(), core.NewNat(), core.NewNat()))
	ctx := runtime.NewContext().ExtendFree("g", gType)
	e := core.Apps(core.Ref("g"), core.Num(1), core.NewApp(core.Lam("z", core.Ref("z")), core.Num(2)))
	got := Normalize(ctx, runtime.NatValue{}, e)
	expectNormal(t, got, core.Apps(core.Ref("g"), core.Num(1), core.Num(2)))
}
