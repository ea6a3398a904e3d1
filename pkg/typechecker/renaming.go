package typechecker

import (
	"hash/fnv"

	"github.com/raviqqe/hamt"
)

func hashName(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

type sourceName string

func (n sourceName) Hash() uint32 { return hashName(string(n)) }

func (n sourceName) Equal(other hamt.Entry) bool {
	o, ok := other.(sourceName)
	return ok && o == n
}

// introducedName marks a name the checker chose for a binder. It shares the
// map with sourceName keys; the distinct type keeps the two apart.
type introducedName string

func (n introducedName) Hash() uint32 { return hashName(string(n)) }

func (n introducedName) Equal(other hamt.Entry) bool {
	o, ok := other.(introducedName)
	return ok && o == n
}

// renaming maps binder names in the source to the fresh names chosen for
// them during elaboration, and remembers which fresh names it has handed
// out. Names it does not mention are left alone.
type renaming struct {
	names hamt.Map
}

func newRenaming() renaming {
	return renaming{names: hamt.NewMap()}
}

func (r renaming) extend(from, to string) renaming {
	return renaming{names: r.names.Insert(sourceName(from), to).Insert(introducedName(to), true)}
}

// introduce records a fresh binder that no source name maps to.
func (r renaming) introduce(to string) renaming {
	return renaming{names: r.names.Insert(introducedName(to), true)}
}

// rename resolves a source reference. The second result is false when the
// name is not in scope in the source even though the context binds it,
// because the binding is one the checker introduced under another name.
func (r renaming) rename(name string) (string, bool) {
	if to := r.names.Find(sourceName(name)); to != nil {
		return to.(string), true
	}
	if r.names.Find(introducedName(name)) != nil {
		return "", false
	}
	return name, true
}
