package runtime

// Normal pairs a value with its type. Neutral terms keep their non-neutral
// arguments in this form because read-back needs the type.
type Normal struct {
	Type  Value
	Value Value
}

// Neutral describes the spine of a stuck computation. The innermost element
// of every spine is an NVar.
type Neutral interface {
	isNeutral()
}

type neutralMarker struct{}

func (neutralMarker) isNeutral() {}

type NVar struct {
	neutralMarker
	Name string
}

type NApp struct {
	neutralMarker
	Fun Neutral
	Arg Normal
}

type NCar struct {
	neutralMarker
	Pair Neutral
}

type NCdr struct {
	neutralMarker
	Pair Neutral
}

type NWhichNat struct {
	neutralMarker
	Target Neutral
	Base   Normal
	Step   Normal
}

type NIterNat struct {
	neutralMarker
	Target Neutral
	Base   Normal
	Step   Normal
}

type NRecNat struct {
	neutralMarker
	Target Neutral
	Base   Normal
	Step   Normal
}

type NIndNat struct {
	neutralMarker
	Target Neutral
	Motive Normal
	Base   Normal
	Step   Normal
}

type NIndAbsurd struct {
	neutralMarker
	Target Neutral
	Motive Normal
}

type NRecList struct {
	neutralMarker
	Target Neutral
	Base   Normal
	Step   Normal
}

type NIndList struct {
	neutralMarker
	Target Neutral
	Motive Normal
	Base   Normal
	Step   Normal
}

type NHead struct {
	neutralMarker
	Vec Neutral
}

type NTail struct {
	neutralMarker
	Vec Neutral
}

// NIndVec is stuck on its vector target. The length is kept as a normal
// because it may or may not itself be neutral.
type NIndVec struct {
	neutralMarker
	Length Normal
	Target Neutral
	Motive Normal
	Base   Normal
	Step   Normal
}

type NIndEither struct {
	neutralMarker
	Target  Neutral
	Motive  Normal
	OnLeft  Normal
	OnRight Normal
}

type NReplace struct {
	neutralMarker
	Target Neutral
	Motive Normal
	Base   Normal
}

// NTrans1 is stuck on its first proof.
type NTrans1 struct {
	neutralMarker
	Left  Neutral
	Right Normal
}

// NTrans2 is stuck on its second proof.
type NTrans2 struct {
	neutralMarker
	Left  Normal
	Right Neutral
}

type NTrans12 struct {
	neutralMarker
	Left  Neutral
	Right Neutral
}

type NCong struct {
	neutralMarker
	Target     Neutral
	ResultType Value
	Fun        Normal
}

type NSymm struct {
	neutralMarker
	Target Neutral
}

type NIndEqual struct {
	neutralMarker
	Target Neutral
	Motive Normal
	Base   Normal
}
