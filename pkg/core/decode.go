package core

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeError reports a malformed node in the YAML encoding of a core
// expression.
type DecodeError struct {
	Line    int
	Column  int
	Message string
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("core: line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return "core: " + e.Message
}

func decodeErr(node *yaml.Node, format string, args ...any) error {
	return &DecodeError{Line: node.Line, Column: node.Column, Message: fmt.Sprintf(format, args...)}
}

// DecodeString decodes a single core expression from its YAML encoding,
// e.g. `[the, [->, Nat, Nat], [λ, x, x]]`.
func DecodeString(src string) (Expr, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, fmt.Errorf("core: parse: %w", err)
	}
	if doc.Kind == 0 {
		return nil, &DecodeError{Message: "empty document"}
	}
	return Decode(&doc)
}

var nullary = map[string]func() Expr{
	"U":       func() Expr { return NewUniverse() },
	"Nat":     func() Expr { return NewNat() },
	"zero":    func() Expr { return NewZero() },
	"Atom":    func() Expr { return NewAtom() },
	"Trivial": func() Expr { return NewTrivial() },
	"sole":    func() Expr { return NewSole() },
	"Absurd":  func() Expr { return NewAbsurd() },
	"nil":     func() Expr { return NewNil() },
	"vecnil":  func() Expr { return NewVecNil() },
	"TODO":    func() Expr { return NewTODO() },
}

type formDecoder struct {
	arity int
	build func(args []Expr) Expr
}

// forms maps a sequence head to the construct it names. Binder forms and
// quote are handled separately because their first argument is a name.
var forms = map[string]formDecoder{
	"Pair":       {2, func(a []Expr) Expr { return NewPair(a[0], a[1]) }},
	"the":        {2, func(a []Expr) Expr { return NewThe(a[0], a[1]) }},
	"add1":       {1, func(a []Expr) Expr { return NewAdd1(a[0]) }},
	"which-Nat":  {3, func(a []Expr) Expr { return NewWhichNat(a[0], nil, a[1], a[2]) }},
	"iter-Nat":   {3, func(a []Expr) Expr { return NewIterNat(a[0], nil, a[1], a[2]) }},
	"rec-Nat":    {3, func(a []Expr) Expr { return NewRecNat(a[0], nil, a[1], a[2]) }},
	"ind-Nat":    {4, func(a []Expr) Expr { return NewIndNat(a[0], a[1], a[2], a[3]) }},
	"cons":       {2, func(a []Expr) Expr { return NewCons(a[0], a[1]) }},
	"car":        {1, func(a []Expr) Expr { return NewCar(a[0]) }},
	"cdr":        {1, func(a []Expr) Expr { return NewCdr(a[0]) }},
	"ind-Absurd": {2, func(a []Expr) Expr { return NewIndAbsurd(a[0], a[1]) }},
	"List":       {1, func(a []Expr) Expr { return NewList(a[0]) }},
	"::":         {2, func(a []Expr) Expr { return NewListCons(a[0], a[1]) }},
	"rec-List":   {3, func(a []Expr) Expr { return NewRecList(a[0], nil, a[1], a[2]) }},
	"ind-List":   {4, func(a []Expr) Expr { return NewIndList(a[0], a[1], a[2], a[3]) }},
	"Vec":        {2, func(a []Expr) Expr { return NewVec(a[0], a[1]) }},
	"vec::":      {2, func(a []Expr) Expr { return NewVecCons(a[0], a[1]) }},
	"head":       {1, func(a []Expr) Expr { return NewHead(a[0]) }},
	"tail":       {1, func(a []Expr) Expr { return NewTail(a[0]) }},
	"ind-Vec":    {5, func(a []Expr) Expr { return NewIndVec(a[0], a[1], a[2], a[3], a[4]) }},
	"Either":     {2, func(a []Expr) Expr { return NewEither(a[0], a[1]) }},
	"left":       {1, func(a []Expr) Expr { return NewLeft(a[0]) }},
	"right":      {1, func(a []Expr) Expr { return NewRight(a[0]) }},
	"ind-Either": {4, func(a []Expr) Expr { return NewIndEither(a[0], a[1], a[2], a[3]) }},
	"=":          {3, func(a []Expr) Expr { return NewEqual(a[0], a[1], a[2]) }},
	"same":       {1, func(a []Expr) Expr { return NewSame(a[0]) }},
	"replace":    {3, func(a []Expr) Expr { return NewReplace(a[0], a[1], a[2]) }},
	"trans":      {2, func(a []Expr) Expr { return NewTrans(a[0], a[1]) }},
	"cong":       {2, func(a []Expr) Expr { return NewCong(a[0], nil, a[1]) }},
	"symm":       {1, func(a []Expr) Expr { return NewSymm(a[0]) }},
	"ind-=":      {3, func(a []Expr) Expr { return NewIndEqual(a[0], a[1], a[2]) }},
}

var binderHeads = map[string]NodeType{
	"Π":      NodePi,
	"Pi":     NodePi,
	"Σ":      NodeSigma,
	"Sigma":  NodeSigma,
	"λ":      NodeLambda,
	"lambda": NodeLambda,
}

// Decode converts a YAML node into a core expression.
func Decode(node *yaml.Node) (Expr, error) {
	if node == nil {
		return nil, &DecodeError{Message: "missing expression"}
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, decodeErr(node, "expected exactly one expression")
		}
		return Decode(node.Content[0])
	case yaml.AliasNode:
		return Decode(node.Alias)
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.SequenceNode:
		return decodeForm(node)
	default:
		return nil, decodeErr(node, "unsupported YAML node (mappings are not expressions)")
	}
}

func decodeScalar(node *yaml.Node) (Expr, error) {
	if node.ShortTag() == "!!int" {
		n, err := strconv.ParseUint(node.Value, 10, 64)
		if err != nil {
			return nil, decodeErr(node, "invalid natural number %q", node.Value)
		}
		return NewNumber(n), nil
	}
	if node.Value == "" {
		return nil, decodeErr(node, "empty expression")
	}
	if build, ok := nullary[node.Value]; ok {
		return build(), nil
	}
	return NewVar(node.Value), nil
}

func scalarName(node *yaml.Node) (string, error) {
	if node.Kind != yaml.ScalarNode || node.Value == "" {
		return "", decodeErr(node, "expected a name")
	}
	return node.Value, nil
}

func decodeForm(node *yaml.Node) (Expr, error) {
	if len(node.Content) == 0 {
		return nil, decodeErr(node, "empty form")
	}
	head := node.Content[0]
	args := node.Content[1:]
	if head.Kind == yaml.ScalarNode {
		switch head.Value {
		case "quote":
			if len(args) != 1 {
				return nil, decodeErr(node, "quote expects 1 argument, got %d", len(args))
			}
			sym, err := scalarName(args[0])
			if err != nil {
				return nil, err
			}
			return NewQuote(sym), nil
		case "->", "→":
			if len(args) < 2 {
				return nil, decodeErr(node, "%s expects at least 2 arguments, got %d", head.Value, len(args))
			}
			exprs, err := decodeAll(args)
			if err != nil {
				return nil, err
			}
			return Arrows(exprs[0], exprs[1:]...), nil
		}
		if kind, ok := binderHeads[head.Value]; ok {
			return decodeBinder(node, kind, args)
		}
		if f, ok := forms[head.Value]; ok {
			if len(args) != f.arity {
				return nil, decodeErr(node, "%s expects %d arguments, got %d", head.Value, f.arity, len(args))
			}
			exprs, err := decodeAll(args)
			if err != nil {
				return nil, err
			}
			return f.build(exprs), nil
		}
	}
	if len(args) == 0 {
		return nil, decodeErr(node, "application needs at least one argument")
	}
	all, err := decodeAll(node.Content)
	if err != nil {
		return nil, err
	}
	return Apps(all[0], all[1:]...), nil
}

func decodeAll(nodes []*yaml.Node) ([]Expr, error) {
	out := make([]Expr, 0, len(nodes))
	for _, n := range nodes {
		e, err := Decode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeBinder(node *yaml.Node, kind NodeType, args []*yaml.Node) (Expr, error) {
	if kind == NodeLambda {
		if len(args) != 2 {
			return nil, decodeErr(node, "λ expects a binder and a body, got %d arguments", len(args))
		}
		var names []string
		if args[0].Kind == yaml.SequenceNode {
			if len(args[0].Content) == 0 {
				return nil, decodeErr(args[0], "λ needs at least one binder")
			}
			for _, n := range args[0].Content {
				name, err := scalarName(n)
				if err != nil {
					return nil, err
				}
				names = append(names, name)
			}
		} else {
			name, err := scalarName(args[0])
			if err != nil {
				return nil, err
			}
			names = []string{name}
		}
		body, err := Decode(args[1])
		if err != nil {
			return nil, err
		}
		return Lambdas(names, body), nil
	}
	if len(args) != 3 {
		return nil, decodeErr(node, "%s expects a name, a type and a body, got %d arguments", kind, len(args))
	}
	name, err := scalarName(args[0])
	if err != nil {
		return nil, err
	}
	parts, err := decodeAll(args[1:])
	if err != nil {
		return nil, err
	}
	if kind == NodePi {
		return NewPi(name, parts[0], parts[1]), nil
	}
	return NewSigma(name, parts[0], parts[1]), nil
}
