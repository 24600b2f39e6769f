package vm

import (
	"fmt"
)

// Globals is the global binding store: a root scope object plus a stable
// name-to-slot index, so embedders can address globals either by name or by
// the slot number handed out at definition time. The bindings themselves
// live in the root scope's property table; the index never outlives them.
type Globals struct {
	root        Value
	names       []string // slot -> name, in definition order
	nameToIndex map[string]int
}

// NewGlobals creates an empty global store with a fresh root scope.
func NewGlobals() *Globals {
	return &Globals{
		root:        NewScope(Undefined),
		nameToIndex: make(map[string]int),
	}
}

// Root returns the root scope object. Child scopes chain to it via their
// parent reference.
func (g *Globals) Root() Value {
	return g.root
}

// Define installs a global binding with builtin flags and returns its slot
// index. Redefining an existing name reuses its slot.
func (g *Globals) Define(name string, value Value) int {
	SetProp(g.root, name, value, FlagBuiltin)
	if idx, ok := g.nameToIndex[name]; ok {
		return idx
	}
	idx := len(g.names)
	g.names = append(g.names, name)
	g.nameToIndex[name] = idx
	return idx
}

// Get retrieves a global binding by name.
func (g *Globals) Get(name string) (Value, bool) {
	if _, ok := g.nameToIndex[name]; !ok {
		return Undefined, false
	}
	rec, ok := GetProp(g.root, name)
	if !ok {
		return Undefined, false
	}
	return rec.Value, true
}

// GetSlot retrieves a global binding by slot index.
func (g *Globals) GetSlot(index int) (Value, bool) {
	if index < 0 || index >= len(g.names) {
		return Undefined, false
	}
	return g.Get(g.names[index])
}

// Set overwrites an existing global binding. It is an error to set a name
// that was never defined.
func (g *Globals) Set(name string, value Value) error {
	if _, ok := g.nameToIndex[name]; !ok {
		return fmt.Errorf("undefined global %q", name)
	}
	return SetRec(g.root, name, value)
}

// Size returns the number of defined globals.
func (g *Globals) Size() int {
	return len(g.names)
}

// Names returns the defined global names in definition order.
func (g *Globals) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}
