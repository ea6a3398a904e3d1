package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindUniverse Kind = iota
	KindNat
	KindZero
	KindAdd1
	KindAtom
	KindQuote
	KindPi
	KindLambda
	KindSigma
	KindCons
	KindTrivial
	KindSole
	KindList
	KindNil
	KindListCons
	KindAbsurd
	KindEqual
	KindSame
	KindVec
	KindVecNil
	KindVecCons
	KindEither
	KindLeft
	KindRight
	KindNeutral
	KindDelay
)

func (k Kind) String() string {
	switch k {
	case KindUniverse:
		return "U"
	case KindNat:
		return "Nat"
	case KindZero:
		return "zero"
	case KindAdd1:
		return "add1"
	case KindAtom:
		return "Atom"
	case KindQuote:
		return "quote"
	case KindPi:
		return "Π"
	case KindLambda:
		return "λ"
	case KindSigma:
		return "Σ"
	case KindCons:
		return "cons"
	case KindTrivial:
		return "Trivial"
	case KindSole:
		return "sole"
	case KindList:
		return "List"
	case KindNil:
		return "nil"
	case KindListCons:
		return "::"
	case KindAbsurd:
		return "Absurd"
	case KindEqual:
		return "="
	case KindSame:
		return "same"
	case KindVec:
		return "Vec"
	case KindVecNil:
		return "vecnil"
	case KindVecCons:
		return "vec::"
	case KindEither:
		return "Either"
	case KindLeft:
		return "left"
	case KindRight:
		return "right"
	case KindNeutral:
		return "neutral"
	case KindDelay:
		return "delay"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all semantic values. Fields holding
// sub-values may contain a *Delay; consumers force them before inspecting.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Universe, functions and pairs
//-----------------------------------------------------------------------------

type UniverseValue struct{}

func (UniverseValue) Kind() Kind { return KindUniverse }

type PiValue struct {
	ArgName    string
	ArgType    Value
	ResultType Closure
}

func (v *PiValue) Kind() Kind { return KindPi }

type LambdaValue struct {
	ArgName string
	Body    Closure
}

func (v *LambdaValue) Kind() Kind { return KindLambda }

type SigmaValue struct {
	CarName string
	CarType Value
	CdrType Closure
}

func (v *SigmaValue) Kind() Kind { return KindSigma }

type ConsValue struct {
	Car Value
	Cdr Value
}

func (v *ConsValue) Kind() Kind { return KindCons }

//-----------------------------------------------------------------------------
// Naturals and atoms
//-----------------------------------------------------------------------------

type NatValue struct{}

func (NatValue) Kind() Kind { return KindNat }

type ZeroValue struct{}

func (ZeroValue) Kind() Kind { return KindZero }

type Add1Value struct {
	N Value
}

func (v *Add1Value) Kind() Kind { return KindAdd1 }

type AtomValue struct{}

func (AtomValue) Kind() Kind { return KindAtom }

type QuoteValue struct {
	Symbol string
}

func (v QuoteValue) Kind() Kind { return KindQuote }

//-----------------------------------------------------------------------------
// Trivial and Absurd
//-----------------------------------------------------------------------------

type TrivialValue struct{}

func (TrivialValue) Kind() Kind { return KindTrivial }

type SoleValue struct{}

func (SoleValue) Kind() Kind { return KindSole }

type AbsurdValue struct{}

func (AbsurdValue) Kind() Kind { return KindAbsurd }

//-----------------------------------------------------------------------------
// Lists and vectors
//-----------------------------------------------------------------------------

type ListValue struct {
	EntryType Value
}

func (v *ListValue) Kind() Kind { return KindList }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type ListConsValue struct {
	Head Value
	Tail Value
}

func (v *ListConsValue) Kind() Kind { return KindListCons }

type VecValue struct {
	EntryType Value
	Length    Value
}

func (v *VecValue) Kind() Kind { return KindVec }

type VecNilValue struct{}

func (VecNilValue) Kind() Kind { return KindVecNil }

type VecConsValue struct {
	Head Value
	Tail Value
}

func (v *VecConsValue) Kind() Kind { return KindVecCons }

//-----------------------------------------------------------------------------
// Sums and equality
//-----------------------------------------------------------------------------

type EitherValue struct {
	Left  Value
	Right Value
}

func (v *EitherValue) Kind() Kind { return KindEither }

type LeftValue struct {
	Value Value
}

func (v *LeftValue) Kind() Kind { return KindLeft }

type RightValue struct {
	Value Value
}

func (v *RightValue) Kind() Kind { return KindRight }

type EqualValue struct {
	Type Value
	From Value
	To   Value
}

func (v *EqualValue) Kind() Kind { return KindEqual }

type SameValue struct {
	Value Value
}

func (v *SameValue) Kind() Kind { return KindSame }

//-----------------------------------------------------------------------------
// Stuck computations
//-----------------------------------------------------------------------------

// NeutralValue is a computation blocked on a free variable, paired with its
// type so that read-back can η-expand it.
type NeutralValue struct {
	Type    Value
	Neutral Neutral
}

func (v *NeutralValue) Kind() Kind { return KindNeutral }

// NewVariable returns the neutral value standing for a free variable.
func NewVariable(typ Value, name string) *NeutralValue {
	return &NeutralValue{Type: typ, Neutral: &NVar{Name: name}}
}
