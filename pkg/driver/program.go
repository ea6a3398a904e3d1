package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/dingf3ng/pie-slang/pkg/core"
)

// Program is a decoded sequence of declarations together with the options
// to run them under.
type Program struct {
	Options      Options
	Declarations []Declaration
}

// ValidationError aggregates program validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "program: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("program validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type programFile struct {
	Options      optionsFile `yaml:"options"`
	Declarations []yaml.Node `yaml:"declarations"`
}

type optionsFile struct {
	StopOnError    *bool `yaml:"stop_on_error"`
	NormalizeEvals *bool `yaml:"normalize_evals"`
}

// ParseProgram decodes a YAML program:
//
//	options:
//	  stop_on_error: false
//	declarations:
//	  - claim: five
//	    type: Nat
//	  - define: five
//	    expr: [add1, 4]
//	  - check-same: {type: Nat, left: five, right: 5}
//	  - eval: five
func ParseProgram(data []byte) (*Program, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var raw programFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("program: empty document")
		}
		return nil, fmt.Errorf("program: parse: %w", err)
	}

	program := &Program{Options: raw.Options.toOptions()}
	var errs ValidationError
	for i := range raw.Declarations {
		decl, issues := decodeDeclaration(&raw.Declarations[i])
		for _, issue := range issues {
			errs.Issues = append(errs.Issues, fmt.Sprintf("declarations[%d]: %s", i, issue))
		}
		if decl != nil {
			program.Declarations = append(program.Declarations, decl)
		}
	}
	if len(errs.Issues) > 0 {
		return nil, &errs
	}
	return program, nil
}

func (o optionsFile) toOptions() Options {
	opts := DefaultOptions()
	if o.StopOnError != nil {
		opts.StopOnError = *o.StopOnError
	}
	if o.NormalizeEvals != nil {
		opts.NormalizeEvals = *o.NormalizeEvals
	}
	return opts
}

var (
	declarationKinds  = []string{"claim", "define", "check-same", "eval"}
	declarationFields = []string{"claim", "define", "check-same", "eval", "type", "expr"}
	checkSameFields   = []string{"type", "left", "right"}
)

func decodeDeclaration(node *yaml.Node) (Declaration, []string) {
	if node.Kind != yaml.MappingNode {
		return nil, []string{"must be a mapping"}
	}
	pos := Position{Line: node.Line, Column: node.Column}
	fields := make(map[string]*yaml.Node, len(node.Content)/2)
	var order []string
	var issues []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !slices.Contains(declarationFields, key) {
			issues = append(issues, fmt.Sprintf("unknown field %q", key))
			continue
		}
		if _, dup := fields[key]; dup {
			issues = append(issues, fmt.Sprintf("field %q given twice", key))
			continue
		}
		fields[key] = node.Content[i+1]
		order = append(order, key)
	}

	var kinds []string
	for _, k := range declarationKinds {
		if _, ok := fields[k]; ok {
			kinds = append(kinds, k)
		}
	}
	if len(kinds) != 1 {
		issues = append(issues, fmt.Sprintf("expected exactly one of %s", strings.Join(declarationKinds, ", ")))
		return nil, issues
	}

	expr := func(field string) core.Expr {
		n, ok := fields[field]
		if !ok {
			issues = append(issues, fmt.Sprintf("%s requires %q", kinds[0], field))
			return nil
		}
		e, err := core.Decode(n)
		if err != nil {
			issues = append(issues, err.Error())
			return nil
		}
		return e
	}
	name := func(field string) string {
		n := fields[field]
		if n.Kind != yaml.ScalarNode || n.Value == "" {
			issues = append(issues, fmt.Sprintf("%s must name a variable", field))
			return ""
		}
		return n.Value
	}
	allow := func(allowed ...string) {
		for _, key := range order {
			if key != kinds[0] && !slices.Contains(allowed, key) {
				issues = append(issues, fmt.Sprintf("%s does not take %q", kinds[0], key))
			}
		}
	}

	var decl Declaration
	switch kinds[0] {
	case "claim":
		allow("type")
		decl = Claim{Name: name("claim"), Type: expr("type"), Pos: pos}
	case "define":
		allow("expr")
		decl = Define{Name: name("define"), Expr: expr("expr"), Pos: pos}
	case "check-same":
		allow()
		decl = decodeCheckSame(fields["check-same"], pos, &issues)
	case "eval":
		allow()
		decl = Eval{Expr: expr("eval"), Pos: pos}
	}
	if len(issues) > 0 {
		return nil, issues
	}
	return decl, nil
}

func decodeCheckSame(node *yaml.Node, pos Position, issues *[]string) Declaration {
	if node.Kind != yaml.MappingNode {
		*issues = append(*issues, "check-same must be a mapping with type, left and right")
		return nil
	}
	parts := map[string]core.Expr{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !slices.Contains(checkSameFields, key) {
			*issues = append(*issues, fmt.Sprintf("check-same: unknown field %q", key))
			continue
		}
		e, err := core.Decode(node.Content[i+1])
		if err != nil {
			*issues = append(*issues, err.Error())
			continue
		}
		parts[key] = e
	}
	for _, field := range checkSameFields {
		if _, ok := parts[field]; !ok {
			*issues = append(*issues, fmt.Sprintf("check-same requires %q", field))
		}
	}
	if len(parts) != len(checkSameFields) {
		return nil
	}
	return CheckSame{Type: parts["type"], Left: parts["left"], Right: parts["right"], Pos: pos}
}
