package typechecker

import (
	"fmt"
	"strings"

	"github.com/dingf3ng/pie-slang/pkg/core"
)

// ErrorKind classifies a type error. Every kind is itself an error so that
// callers can write errors.Is(err, typechecker.TypeMismatch).
type ErrorKind int

const (
	UnboundVariable ErrorKind = iota
	NotAFunctionType
	NotAUniverse
	EliminatorTargetMismatch
	TypeMismatch
	DuplicateBinderName
	IncompleteTerm
	CannotSynthesize
	UniverseHasNoType
	MissingClaim
	UndefinedClaim
	// NotAPairType is the car/cdr flavour of EliminatorTargetMismatch and
	// matches it under errors.Is.
	NotAPairType
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundVariable:
		return "UnboundVariable"
	case NotAFunctionType:
		return "NotAFunctionType"
	case NotAUniverse:
		return "NotAUniverse"
	case EliminatorTargetMismatch:
		return "EliminatorTargetMismatch"
	case TypeMismatch:
		return "TypeMismatch"
	case DuplicateBinderName:
		return "DuplicateBinderName"
	case IncompleteTerm:
		return "IncompleteTerm"
	case CannotSynthesize:
		return "CannotSynthesize"
	case UniverseHasNoType:
		return "UniverseHasNoType"
	case MissingClaim:
		return "MissingClaim"
	case UndefinedClaim:
		return "UndefinedClaim"
	case NotAPairType:
		return "NotAPairType"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) Error() string { return k.String() }

// TypeError reports a failed judgment. Expected and Found are read-back
// types when the failure is a comparison; Expr is the offending source.
type TypeError struct {
	Kind     ErrorKind
	Message  string
	Expected core.Expr
	Found    core.Expr
	Expr     core.Expr
}

func (e *TypeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Expected != nil {
		fmt.Fprintf(&b, "\n  expected: %s", core.String(e.Expected))
	}
	if e.Found != nil {
		fmt.Fprintf(&b, "\n  found:    %s", core.String(e.Found))
	}
	if e.Expr != nil {
		fmt.Fprintf(&b, "\n  in:       %s", core.String(e.Expr))
	}
	return b.String()
}

// Is matches the error's kind.
func (e *TypeError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	if !ok {
		return false
	}
	return k == e.Kind || (e.Kind == NotAPairType && k == EliminatorTargetMismatch)
}

// NewError builds a TypeError without type information.
func NewError(kind ErrorKind, expr core.Expr, format string, args ...any) *TypeError {
	return &TypeError{Kind: kind, Message: fmt.Sprintf(format, args...), Expr: expr}
}
