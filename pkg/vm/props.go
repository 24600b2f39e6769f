package vm

import (
	"mudskip/pkg/errors"
)

// Property access and prototype/scope traversals.
//
// Three traversal variants share the own-table lookup: own only (Get),
// scope-chain (GetRec, following parent references), and prototype-chain
// (GetProto, following prototype references). Chain walks are iterative
// with a visited check so a malformed cyclic graph surfaces as an
// InternalError instead of a hang.

// Get reads an own property, resolves the value, and returns it.
//
// Reading from an Undefined receiver is a TypeError. Reading a missing
// property from any object is not: it yields Undefined. Only the receiver's
// kind is checked, never the property's presence.
func Get(obj Value, name string) (Value, error) {
	if obj.typ == TypeUndefined {
		return Undefined, errors.NewTypeError("Cannot read property '%s' of undefined", name)
	}
	if rec, ok := GetProp(obj, name); ok {
		return rec.Value, nil
	}
	return Undefined, nil
}

// GetRec is Get, recursed through the scope chain.
func GetRec(obj Value, name string) (Value, error) {
	rec, ok, err := GetPropRec(obj, name)
	if err != nil {
		return Undefined, err
	}
	if ok {
		return rec.Value, nil
	}
	return Undefined, nil
}

// GetProto is Get, recursed through the prototype chain. When the resolved
// value is callable it is returned bound to the original receiver, whatever
// depth it was found at, so a native method body can recover the object it
// was invoked on.
func GetProto(obj Value, name string) (Value, error) {
	rec, ok, err := GetPropProto(obj, name)
	if err != nil {
		return Undefined, err
	}
	if !ok {
		return Undefined, nil
	}
	val := rec.Value
	if val.IsCallable() {
		return NewBoundFunction(val, obj), nil
	}
	return val, nil
}

// GetProp looks up an own property record, with no chain traversal.
func GetProp(obj Value, name string) (*PropertyRecord, bool) {
	b := obj.body()
	if b == nil {
		return nil, false
	}
	return b.props.Get(name)
}

// GetPropRec looks up a property record along the scope chain.
func GetPropRec(obj Value, name string) (*PropertyRecord, bool, error) {
	visited := make(map[*Object]struct{})
	for {
		b := obj.body()
		if b == nil {
			return nil, false, nil
		}
		if _, seen := visited[b]; seen {
			return nil, false, errors.NewInternalError("scope chain cycle while resolving '%s'", name)
		}
		visited[b] = struct{}{}
		if rec, ok := b.props.Get(name); ok {
			return rec, true, nil
		}
		obj = b.parent
	}
}

// GetPropProto looks up a property record along the prototype chain.
func GetPropProto(obj Value, name string) (*PropertyRecord, bool, error) {
	visited := make(map[*Object]struct{})
	for {
		b := obj.body()
		if b == nil {
			return nil, false, nil
		}
		if _, seen := visited[b]; seen {
			return nil, false, errors.NewInternalError("prototype chain cycle while resolving '%s'", name)
		}
		visited[b] = struct{}{}
		if rec, ok := b.props.Get(name); ok {
			return rec, true, nil
		}
		obj = b.prototype
	}
}

// Set installs or updates an own property with the default attribute flags.
func Set(obj Value, name string, val Value) {
	SetProp(obj, name, val, FlagDefault)
}

// SetProp installs or updates an own property with explicit attribute
// flags. An existing record keeps its identity; its value and flags are
// overwritten. The circular hint is recomputed on every assignment: it is
// set when the stored value is the owning object itself.
//
// Receivers without a property table are ignored.
func SetProp(obj Value, name string, val Value, flags PropFlags) {
	b := obj.body()
	if b == nil {
		return
	}
	circular := val.body() != nil && val.body() == b
	b.props.Set(name, val, flags, circular)
}

// SetRec assigns to a name that is not an explicitly declared new binding:
// the first scope walking outward whose own table contains the name is the
// target. When no scope owns it, the write creates a new own property on
// the original (innermost) scope.
func SetRec(obj Value, name string, val Value) error {
	target := obj
	visited := make(map[*Object]struct{})
	cur := obj
	for {
		b := cur.body()
		if b == nil {
			break
		}
		if _, seen := visited[b]; seen {
			return errors.NewInternalError("scope chain cycle while assigning '%s'", name)
		}
		visited[b] = struct{}{}
		if b.props.Has(name) {
			target = cur
			break
		}
		cur = b.parent
	}
	Set(target, name, val)
	return nil
}

// DelProp removes an own property by name. Never traverses the prototype or
// scope chain; absent and configurable-false records are silent no-ops.
func DelProp(obj Value, name string) {
	if b := obj.body(); b != nil {
		b.props.Delete(name)
	}
}

// OwnProps returns obj's own property records in insertion order, or nil
// for values without a property table.
func OwnProps(obj Value) []*PropertyRecord {
	b := obj.body()
	if b == nil {
		return nil
	}
	return b.props.Records()
}

// OwnLen returns the number of own property records.
func OwnLen(obj Value) int {
	b := obj.body()
	if b == nil {
		return 0
	}
	return b.props.Len()
}
