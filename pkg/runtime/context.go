package runtime

import (
	"hash/fnv"

	"github.com/raviqqe/hamt"
	"github.com/samber/lo"
)

// Binding is what a context records about one name.
type Binding interface {
	BindingType() Value
	isBinding()
}

// Free is a locally bound variable (a λ parameter or eliminator argument).
type Free struct {
	Type Value
}

func (b Free) BindingType() Value { return b.Type }
func (Free) isBinding()           {}

// Def is a top-level definition.
type Def struct {
	Type  Value
	Value Value
}

func (b Def) BindingType() Value { return b.Type }
func (Def) isBinding()           {}

// Claim is a top-level name whose type is known but which is not yet defined.
type Claim struct {
	Type Value
}

func (b Claim) BindingType() Value { return b.Type }
func (Claim) isBinding()           {}

type nameKey string

func (k nameKey) Hash() uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(k))
	return h.Sum32()
}

func (k nameKey) Equal(other hamt.Entry) bool {
	o, ok := other.(nameKey)
	return ok && o == k
}

type contextEntry struct {
	name    string
	binding Binding
	prev    *contextEntry
}

// Context is the checking-time record of free and defined names. It is
// persistent: Extend returns a new context and never disturbs the receiver.
type Context struct {
	index   hamt.Map
	entries *contextEntry
	env     *Environment
}

// NewContext returns the empty context.
func NewContext() *Context {
	return &Context{index: hamt.NewMap()}
}

// Extend binds name. A name that is already present is replaced; callers
// that need distinct names pick them with Fresh first.
func (c *Context) Extend(name string, binding Binding) *Context {
	env := c.env
	switch b := binding.(type) {
	case Free:
		env = env.Extend(name, NewVariable(b.Type, name))
	case Def:
		env = env.Extend(name, b.Value)
	}
	return &Context{
		index:   c.index.Insert(nameKey(name), binding),
		entries: &contextEntry{name: name, binding: binding, prev: c.entries},
		env:     env,
	}
}

// ExtendFree is shorthand for Extend(name, Free{Type: typ}).
func (c *Context) ExtendFree(name string, typ Value) *Context {
	return c.Extend(name, Free{Type: typ})
}

// Lookup returns the binding for name.
func (c *Context) Lookup(name string) (Binding, bool) {
	found := c.index.Find(nameKey(name))
	if found == nil {
		return nil, false
	}
	return found.(Binding), true
}

// Has reports whether name is bound in any way.
func (c *Context) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Names lists the bound names, oldest first.
func (c *Context) Names() []string {
	n := c.index.Size()
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for e := c.entries; e != nil; e = e.prev {
		if _, ok := seen[e.name]; ok {
			continue
		}
		seen[e.name] = struct{}{}
		out = append(out, e.name)
	}
	return lo.Reverse(out)
}

// ToEnvironment returns the evaluation environment that corresponds to
// the context: free names stand for themselves as neutral variables,
// definitions for their values. Claims contribute nothing.
func (c *Context) ToEnvironment() *Environment {
	return c.env
}
