package runtime

import (
	"sync"

	"github.com/dingf3ng/pie-slang/pkg/core"
)

// Closure is a semantic function of one argument.
type Closure interface {
	isClosure()
}

// ExprClosure captures an environment and a body with one free name.
// Applying it extends Env with Name and evaluates Body.
type ExprClosure struct {
	Env  *Environment
	Name string
	Body core.Expr
}

func (*ExprClosure) isClosure() {}

// HostClosure is a closure implemented in Go. The evaluator and checker use
// it to build motive and step types.
type HostClosure struct {
	Fn func(Value) Value
}

func (*HostClosure) isClosure() {}

// ConstClosure ignores its argument.
func ConstClosure(v Value) *HostClosure {
	return &HostClosure{Fn: func(Value) Value { return v }}
}

// Delay is a call-by-need cell. It starts out holding an environment and an
// expression and is overwritten with the value the first time it is forced.
// All aliases share the pointer, so all observe the forced value.
type Delay struct {
	mu     sync.Mutex
	env    *Environment
	expr   core.Expr
	forced Value
}

func (d *Delay) Kind() Kind { return KindDelay }

// NewDelay creates an unforced cell.
func NewDelay(env *Environment, expr core.Expr) *Delay {
	return &Delay{env: env, expr: expr}
}

// Force evaluates the suspended expression at most once. The result never
// is itself a Delay.
func (d *Delay) Force(eval func(*Environment, core.Expr) Value) Value {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.forced != nil {
		return d.forced
	}
	v := eval(d.env, d.expr)
	for {
		inner, ok := v.(*Delay)
		if !ok {
			break
		}
		v = inner.Force(eval)
	}
	d.forced = v
	d.env = nil
	d.expr = nil
	return v
}
