package interpreter

import (
	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
)

// Convert decides definitional equality of two values of typ by comparing
// their normal forms up to α-equivalence.
func Convert(ctx *runtime.Context, typ, left, right runtime.Value) bool {
	return core.AlphaEquiv(ReadBack(ctx, typ, left), ReadBack(ctx, typ, right))
}

// SameType is Convert at U.
func SameType(ctx *runtime.Context, left, right runtime.Value) bool {
	return core.AlphaEquiv(ReadBackType(ctx, left), ReadBackType(ctx, right))
}

// ValInContext evaluates e with the context's free variables standing for
// themselves.
func ValInContext(ctx *runtime.Context, e core.Expr) runtime.Value {
	return ValOf(ctx.ToEnvironment(), e)
}

// Normalize evaluates an elaborated expression of type typ and reads the
// result back.
func Normalize(ctx *runtime.Context, typ runtime.Value, e core.Expr) core.Expr {
	return ReadBack(ctx, typ, ValInContext(ctx, e))
}
