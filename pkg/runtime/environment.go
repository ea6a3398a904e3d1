package runtime

import "fmt"

// Environment is a persistent list of evaluation-time bindings. Extending
// never mutates the receiver, so closures keep the view they captured.
type Environment struct {
	name   string
	value  Value
	parent *Environment
}

// NewEnvironment returns the empty environment.
func NewEnvironment() *Environment {
	return nil
}

// Extend returns a new environment binding name in front of e.
func (e *Environment) Extend(name string, value Value) *Environment {
	return &Environment{name: name, value: value, parent: e}
}

// Lookup finds the most recent binding for name.
func (e *Environment) Lookup(name string) (Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return nil, false
}

// Get is Lookup with an error for missing names.
func (e *Environment) Get(name string) (Value, error) {
	if v, ok := e.Lookup(name); ok {
		return v, nil
	}
	return nil, fmt.Errorf("Undefined variable '%s'", name)
}

// Names returns the bound names, most recent first, shadowed ones included.
func (e *Environment) Names() []string {
	var out []string
	for cur := e; cur != nil; cur = cur.parent {
		out = append(out, cur.name)
	}
	return out
}
