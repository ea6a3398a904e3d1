package driver

import (
	"fmt"

	"github.com/dingf3ng/pie-slang/pkg/core"
	"github.com/dingf3ng/pie-slang/pkg/interpreter"
	"github.com/dingf3ng/pie-slang/pkg/runtime"
	"github.com/dingf3ng/pie-slang/pkg/typechecker"
)

// Position is where a declaration came from. The session never inspects
// it; it is copied into the declaration's Result.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	if p.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Declaration is one top-level step of a program.
type Declaration interface {
	Position() Position
	isDeclaration()
}

// Claim announces the type of a name that a later Define will provide.
type Claim struct {
	Name string
	Type core.Expr
	Pos  Position
}

// Define gives a claimed name its value.
type Define struct {
	Name string
	Expr core.Expr
	Pos  Position
}

// CheckSame asserts that Left and Right are the same Type.
type CheckSame struct {
	Type  core.Expr
	Left  core.Expr
	Right core.Expr
	Pos   Position
}

// Eval synthesizes the type of Expr and reports it with the normal form.
type Eval struct {
	Expr core.Expr
	Pos  Position
}

func (d Claim) Position() Position     { return d.Pos }
func (d Define) Position() Position    { return d.Pos }
func (d CheckSame) Position() Position { return d.Pos }
func (d Eval) Position() Position      { return d.Pos }
func (Claim) isDeclaration()           {}
func (Define) isDeclaration()          {}
func (CheckSame) isDeclaration()       {}
func (Eval) isDeclaration()            {}

// Options controls how a session processes declarations.
type Options struct {
	StopOnError    bool
	NormalizeEvals bool
}

// DefaultOptions keeps going after failures and normalizes Eval output.
func DefaultOptions() Options {
	return Options{NormalizeEvals: true}
}

// Result is the outcome of one declaration. Output is set for Eval.
type Result struct {
	Declaration Declaration
	Output      core.Expr
	Err         error
}

func (r Result) String() string {
	pos := r.Declaration.Position()
	if r.Err != nil {
		return fmt.Sprintf("%s: error: %v", pos, r.Err)
	}
	if r.Output != nil {
		return fmt.Sprintf("%s: %s", pos, core.String(r.Output))
	}
	return fmt.Sprintf("%s: ok", pos)
}

// Session accumulates top-level claims and definitions.
type Session struct {
	ctx     *runtime.Context
	options Options
}

func NewSession(options Options) *Session {
	return &Session{ctx: runtime.NewContext(), options: options}
}

// Context exposes the current top-level context.
func (s *Session) Context() *runtime.Context {
	return s.ctx
}

// Run processes decls in order. A failing declaration leaves the context
// unchanged; later declarations still run unless StopOnError is set.
func (s *Session) Run(decls []Declaration) []Result {
	results := make([]Result, 0, len(decls))
	for _, decl := range decls {
		res := s.Process(decl)
		results = append(results, res)
		if res.Err != nil && s.options.StopOnError {
			break
		}
	}
	return results
}

// Process runs a single declaration.
func (s *Session) Process(decl Declaration) Result {
	res := Result{Declaration: decl}
	switch d := decl.(type) {
	case Claim:
		res.Err = s.claim(d)
	case Define:
		res.Err = s.define(d)
	case CheckSame:
		res.Err = s.checkSame(d)
	case Eval:
		res.Output, res.Err = s.eval(d)
	default:
		res.Err = fmt.Errorf("driver: unsupported declaration %T", decl)
	}
	return res
}

func (s *Session) claim(d Claim) error {
	if s.ctx.Has(d.Name) {
		return typechecker.NewError(typechecker.DuplicateBinderName, nil, "%s is already claimed", d.Name)
	}
	typ, err := typechecker.IsType(s.ctx, d.Type)
	if err != nil {
		return err
	}
	s.ctx = s.ctx.Extend(d.Name, runtime.Claim{Type: interpreter.ValInContext(s.ctx, typ)})
	return nil
}

func (s *Session) define(d Define) error {
	binding, ok := s.ctx.Lookup(d.Name)
	if !ok {
		return typechecker.NewError(typechecker.MissingClaim, nil, "%s must be claimed before it is defined", d.Name)
	}
	claim, ok := binding.(runtime.Claim)
	if !ok {
		return typechecker.NewError(typechecker.DuplicateBinderName, nil, "%s is already defined", d.Name)
	}
	expr, err := typechecker.Check(s.ctx, d.Expr, claim.Type)
	if err != nil {
		return err
	}
	value := interpreter.ValInContext(s.ctx, expr)
	s.ctx = s.ctx.Extend(d.Name, runtime.Def{Type: claim.Type, Value: value})
	return nil
}

func (s *Session) checkSame(d CheckSame) error {
	typ, err := typechecker.IsType(s.ctx, d.Type)
	if err != nil {
		return err
	}
	tv := interpreter.ValInContext(s.ctx, typ)
	left, err := typechecker.Check(s.ctx, d.Left, tv)
	if err != nil {
		return err
	}
	right, err := typechecker.Check(s.ctx, d.Right, tv)
	if err != nil {
		return err
	}
	lv, rv := interpreter.ValInContext(s.ctx, left), interpreter.ValInContext(s.ctx, right)
	if !interpreter.Convert(s.ctx, tv, lv, rv) {
		return &typechecker.TypeError{
			Kind:     typechecker.TypeMismatch,
			Message:  "the expressions are not the same " + core.String(typ),
			Expected: interpreter.ReadBack(s.ctx, tv, lv),
			Found:    interpreter.ReadBack(s.ctx, tv, rv),
		}
	}
	return nil
}

func (s *Session) eval(d Eval) (core.Expr, error) {
	expr, typ, err := typechecker.Synth(s.ctx, d.Expr)
	if err != nil {
		return nil, err
	}
	if s.options.NormalizeEvals {
		expr = interpreter.Normalize(s.ctx, typ, expr)
	}
	return core.NewThe(interpreter.ReadBackType(s.ctx, typ), expr), nil
}
