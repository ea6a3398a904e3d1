package core

type NodeType string

const (
	NodeU         NodeType = "U"
	NodePi        NodeType = "Pi"
	NodeArrow     NodeType = "Arrow"
	NodeSigma     NodeType = "Sigma"
	NodePair      NodeType = "Pair"
	NodeLambda    NodeType = "Lambda"
	NodeApp       NodeType = "App"
	NodeThe       NodeType = "The"
	NodeVar       NodeType = "Var"
	NodeNat       NodeType = "Nat"
	NodeZero      NodeType = "Zero"
	NodeAdd1      NodeType = "Add1"
	NodeNumber    NodeType = "Number"
	NodeWhichNat  NodeType = "WhichNat"
	NodeIterNat   NodeType = "IterNat"
	NodeRecNat    NodeType = "RecNat"
	NodeIndNat    NodeType = "IndNat"
	NodeAtom      NodeType = "Atom"
	NodeQuote     NodeType = "Quote"
	NodeCons      NodeType = "Cons"
	NodeCar       NodeType = "Car"
	NodeCdr       NodeType = "Cdr"
	NodeTrivial   NodeType = "Trivial"
	NodeSole      NodeType = "Sole"
	NodeAbsurd    NodeType = "Absurd"
	NodeIndAbsurd NodeType = "IndAbsurd"
	NodeList      NodeType = "List"
	NodeNil       NodeType = "Nil"
	NodeListCons  NodeType = "ListCons"
	NodeRecList   NodeType = "RecList"
	NodeIndList   NodeType = "IndList"
	NodeVec       NodeType = "Vec"
	NodeVecNil    NodeType = "VecNil"
	NodeVecCons   NodeType = "VecCons"
	NodeHead      NodeType = "Head"
	NodeTail      NodeType = "Tail"
	NodeIndVec    NodeType = "IndVec"
	NodeEither    NodeType = "Either"
	NodeLeft      NodeType = "Left"
	NodeRight     NodeType = "Right"
	NodeIndEither NodeType = "IndEither"
	NodeEqual     NodeType = "Equal"
	NodeSame      NodeType = "Same"
	NodeReplace   NodeType = "Replace"
	NodeTrans     NodeType = "Trans"
	NodeCong      NodeType = "Cong"
	NodeSymm      NodeType = "Symm"
	NodeIndEqual  NodeType = "IndEqual"
	NodeTODO      NodeType = "TODO"
)

// Expr is a core expression. The set of implementations is closed.
type Expr interface {
	NodeType() NodeType
	isExpr()
}

type nodeImpl struct {
	Type NodeType
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isExpr()              {}

// Universe and functions

type Universe struct{ nodeImpl }

func NewUniverse() *Universe { return &Universe{nodeImpl: newNodeImpl(NodeU)} }

// Pi is the dependent function type (Π ((Name ArgType)) ResultType).
type Pi struct {
	nodeImpl

	Name       string
	ArgType    Expr
	ResultType Expr
}

func NewPi(name string, argType, resultType Expr) *Pi {
	return &Pi{nodeImpl: newNodeImpl(NodePi), Name: name, ArgType: argType, ResultType: resultType}
}

// Arrow is the non-dependent function type (→ ArgType ResultType).
type Arrow struct {
	nodeImpl

	ArgType    Expr
	ResultType Expr
}

func NewArrow(argType, resultType Expr) *Arrow {
	return &Arrow{nodeImpl: newNodeImpl(NodeArrow), ArgType: argType, ResultType: resultType}
}

type Lambda struct {
	nodeImpl

	Name string
	Body Expr
}

func NewLambda(name string, body Expr) *Lambda {
	return &Lambda{nodeImpl: newNodeImpl(NodeLambda), Name: name, Body: body}
}

type App struct {
	nodeImpl

	Fun Expr
	Arg Expr
}

func NewApp(fun, arg Expr) *App {
	return &App{nodeImpl: newNodeImpl(NodeApp), Fun: fun, Arg: arg}
}

// The is a type ascription.
type The struct {
	nodeImpl

	Type Expr
	Expr Expr
}

func NewThe(typ, expr Expr) *The {
	return &The{nodeImpl: newNodeImpl(NodeThe), Type: typ, Expr: expr}
}

type Var struct {
	nodeImpl

	Name string
}

func NewVar(name string) *Var {
	return &Var{nodeImpl: newNodeImpl(NodeVar), Name: name}
}

// Pairs

type Sigma struct {
	nodeImpl

	Name    string
	CarType Expr
	CdrType Expr
}

func NewSigma(name string, carType, cdrType Expr) *Sigma {
	return &Sigma{nodeImpl: newNodeImpl(NodeSigma), Name: name, CarType: carType, CdrType: cdrType}
}

// Pair is the non-dependent pair type.
type Pair struct {
	nodeImpl

	CarType Expr
	CdrType Expr
}

func NewPair(carType, cdrType Expr) *Pair {
	return &Pair{nodeImpl: newNodeImpl(NodePair), CarType: carType, CdrType: cdrType}
}

type Cons struct {
	nodeImpl

	Car Expr
	Cdr Expr
}

func NewCons(car, cdr Expr) *Cons {
	return &Cons{nodeImpl: newNodeImpl(NodeCons), Car: car, Cdr: cdr}
}

type Car struct {
	nodeImpl

	Pair Expr
}

func NewCar(pair Expr) *Car { return &Car{nodeImpl: newNodeImpl(NodeCar), Pair: pair} }

type Cdr struct {
	nodeImpl

	Pair Expr
}

func NewCdr(pair Expr) *Cdr { return &Cdr{nodeImpl: newNodeImpl(NodeCdr), Pair: pair} }

// Naturals

type Nat struct{ nodeImpl }

func NewNat() *Nat { return &Nat{nodeImpl: newNodeImpl(NodeNat)} }

type Zero struct{ nodeImpl }

func NewZero() *Zero { return &Zero{nodeImpl: newNodeImpl(NodeZero)} }

type Add1 struct {
	nodeImpl

	N Expr
}

func NewAdd1(n Expr) *Add1 { return &Add1{nodeImpl: newNodeImpl(NodeAdd1), N: n} }

// Number is a numeral; it denotes add1 applied Value times to zero.
type Number struct {
	nodeImpl

	Value uint64
}

func NewNumber(value uint64) *Number {
	return &Number{nodeImpl: newNodeImpl(NodeNumber), Value: value}
}

// WhichNat, IterNat and RecNat carry the base's type once elaborated.
// Front-end input leaves BaseType nil.
type WhichNat struct {
	nodeImpl

	Target   Expr
	BaseType Expr
	Base     Expr
	Step     Expr
}

func NewWhichNat(target, baseType, base, step Expr) *WhichNat {
	return &WhichNat{nodeImpl: newNodeImpl(NodeWhichNat), Target: target, BaseType: baseType, Base: base, Step: step}
}

type IterNat struct {
	nodeImpl

	Target   Expr
	BaseType Expr
	Base     Expr
	Step     Expr
}

func NewIterNat(target, baseType, base, step Expr) *IterNat {
	return &IterNat{nodeImpl: newNodeImpl(NodeIterNat), Target: target, BaseType: baseType, Base: base, Step: step}
}

type RecNat struct {
	nodeImpl

	Target   Expr
	BaseType Expr
	Base     Expr
	Step     Expr
}

func NewRecNat(target, baseType, base, step Expr) *RecNat {
	return &RecNat{nodeImpl: newNodeImpl(NodeRecNat), Target: target, BaseType: baseType, Base: base, Step: step}
}

type IndNat struct {
	nodeImpl

	Target Expr
	Motive Expr
	Base   Expr
	Step   Expr
}

func NewIndNat(target, motive, base, step Expr) *IndNat {
	return &IndNat{nodeImpl: newNodeImpl(NodeIndNat), Target: target, Motive: motive, Base: base, Step: step}
}

// Atoms

type Atom struct{ nodeImpl }

func NewAtom() *Atom { return &Atom{nodeImpl: newNodeImpl(NodeAtom)} }

type Quote struct {
	nodeImpl

	Symbol string
}

func NewQuote(symbol string) *Quote {
	return &Quote{nodeImpl: newNodeImpl(NodeQuote), Symbol: symbol}
}

// Trivial and Absurd

type Trivial struct{ nodeImpl }

func NewTrivial() *Trivial { return &Trivial{nodeImpl: newNodeImpl(NodeTrivial)} }

type Sole struct{ nodeImpl }

func NewSole() *Sole { return &Sole{nodeImpl: newNodeImpl(NodeSole)} }

type Absurd struct{ nodeImpl }

func NewAbsurd() *Absurd { return &Absurd{nodeImpl: newNodeImpl(NodeAbsurd)} }

type IndAbsurd struct {
	nodeImpl

	Target Expr
	Motive Expr
}

func NewIndAbsurd(target, motive Expr) *IndAbsurd {
	return &IndAbsurd{nodeImpl: newNodeImpl(NodeIndAbsurd), Target: target, Motive: motive}
}

// Lists

type List struct {
	nodeImpl

	EntryType Expr
}

func NewList(entryType Expr) *List {
	return &List{nodeImpl: newNodeImpl(NodeList), EntryType: entryType}
}

type Nil struct{ nodeImpl }

func NewNil() *Nil { return &Nil{nodeImpl: newNodeImpl(NodeNil)} }

type ListCons struct {
	nodeImpl

	Head Expr
	Tail Expr
}

func NewListCons(head, tail Expr) *ListCons {
	return &ListCons{nodeImpl: newNodeImpl(NodeListCons), Head: head, Tail: tail}
}

type RecList struct {
	nodeImpl

	Target   Expr
	BaseType Expr
	Base     Expr
	Step     Expr
}

func NewRecList(target, baseType, base, step Expr) *RecList {
	return &RecList{nodeImpl: newNodeImpl(NodeRecList), Target: target, BaseType: baseType, Base: base, Step: step}
}

type IndList struct {
	nodeImpl

	Target Expr
	Motive Expr
	Base   Expr
	Step   Expr
}

func NewIndList(target, motive, base, step Expr) *IndList {
	return &IndList{nodeImpl: newNodeImpl(NodeIndList), Target: target, Motive: motive, Base: base, Step: step}
}

// Vectors

type Vec struct {
	nodeImpl

	EntryType Expr
	Length    Expr
}

func NewVec(entryType, length Expr) *Vec {
	return &Vec{nodeImpl: newNodeImpl(NodeVec), EntryType: entryType, Length: length}
}

type VecNil struct{ nodeImpl }

func NewVecNil() *VecNil { return &VecNil{nodeImpl: newNodeImpl(NodeVecNil)} }

type VecCons struct {
	nodeImpl

	Head Expr
	Tail Expr
}

func NewVecCons(head, tail Expr) *VecCons {
	return &VecCons{nodeImpl: newNodeImpl(NodeVecCons), Head: head, Tail: tail}
}

type Head struct {
	nodeImpl

	Vec Expr
}

func NewHead(vec Expr) *Head { return &Head{nodeImpl: newNodeImpl(NodeHead), Vec: vec} }

type Tail struct {
	nodeImpl

	Vec Expr
}

func NewTail(vec Expr) *Tail { return &Tail{nodeImpl: newNodeImpl(NodeTail), Vec: vec} }

type IndVec struct {
	nodeImpl

	Length Expr
	Target Expr
	Motive Expr
	Base   Expr
	Step   Expr
}

func NewIndVec(length, target, motive, base, step Expr) *IndVec {
	return &IndVec{nodeImpl: newNodeImpl(NodeIndVec), Length: length, Target: target, Motive: motive, Base: base, Step: step}
}

// Sums

type Either struct {
	nodeImpl

	Left  Expr
	Right Expr
}

func NewEither(left, right Expr) *Either {
	return &Either{nodeImpl: newNodeImpl(NodeEither), Left: left, Right: right}
}

type Left struct {
	nodeImpl

	Value Expr
}

func NewLeft(value Expr) *Left { return &Left{nodeImpl: newNodeImpl(NodeLeft), Value: value} }

type Right struct {
	nodeImpl

	Value Expr
}

func NewRight(value Expr) *Right { return &Right{nodeImpl: newNodeImpl(NodeRight), Value: value} }

type IndEither struct {
	nodeImpl

	Target  Expr
	Motive  Expr
	OnLeft  Expr
	OnRight Expr
}

func NewIndEither(target, motive, onLeft, onRight Expr) *IndEither {
	return &IndEither{nodeImpl: newNodeImpl(NodeIndEither), Target: target, Motive: motive, OnLeft: onLeft, OnRight: onRight}
}

// Equality

type Equal struct {
	nodeImpl

	Type Expr
	From Expr
	To   Expr
}

func NewEqual(typ, from, to Expr) *Equal {
	return &Equal{nodeImpl: newNodeImpl(NodeEqual), Type: typ, From: from, To: to}
}

type Same struct {
	nodeImpl

	Value Expr
}

func NewSame(value Expr) *Same { return &Same{nodeImpl: newNodeImpl(NodeSame), Value: value} }

type Replace struct {
	nodeImpl

	Target Expr
	Motive Expr
	Base   Expr
}

func NewReplace(target, motive, base Expr) *Replace {
	return &Replace{nodeImpl: newNodeImpl(NodeReplace), Target: target, Motive: motive, Base: base}
}

type Trans struct {
	nodeImpl

	Left  Expr
	Right Expr
}

func NewTrans(left, right Expr) *Trans {
	return &Trans{nodeImpl: newNodeImpl(NodeTrans), Left: left, Right: right}
}

// Cong carries the function's result type once elaborated.
type Cong struct {
	nodeImpl

	Target     Expr
	ResultType Expr
	Fun        Expr
}

func NewCong(target, resultType, fun Expr) *Cong {
	return &Cong{nodeImpl: newNodeImpl(NodeCong), Target: target, ResultType: resultType, Fun: fun}
}

type Symm struct {
	nodeImpl

	Target Expr
}

func NewSymm(target Expr) *Symm { return &Symm{nodeImpl: newNodeImpl(NodeSymm), Target: target} }

type IndEqual struct {
	nodeImpl

	Target Expr
	Motive Expr
	Base   Expr
}

func NewIndEqual(target, motive, base Expr) *IndEqual {
	return &IndEqual{nodeImpl: newNodeImpl(NodeIndEqual), Target: target, Motive: motive, Base: base}
}

// TODO marks an incomplete term.
type TODO struct{ nodeImpl }

func NewTODO() *TODO { return &TODO{nodeImpl: newNodeImpl(NodeTODO)} }
