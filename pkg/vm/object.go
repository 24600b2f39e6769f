package vm

import "unsafe"

// Object is the state shared by every property-carrying value: the own
// property table, the prototype reference (inheritance axis), the parent
// scope reference (lexical axis), and the three object-state flags.
//
// Prototype and parent are distinct axes and are never conflated during
// traversal: GetPropProto follows prototype only, GetPropRec follows parent
// only. Both links are plain Value references; reachability and collection
// of the graph they form is the garbage collector's business, not ours.
type Object struct {
	props     PropertyTable
	prototype Value // Undefined when the object has no prototype
	parent    Value // enclosing scope; Undefined at the outermost scope

	extensible bool
	sealed     bool
	frozen     bool
}

// PlainObject is an ordinary object-kind value payload.
type PlainObject struct {
	Object
}

// NativeFn is the Go entry point of a native function. The instance argument
// is the receiver recovered from prototype-chain resolution (Undefined for
// an unbound call).
type NativeFn func(instance Value, args []Value) (Value, error)

// FunctionObject is a function-kind value payload: a property-carrying
// object plus a native entry point.
type FunctionObject struct {
	Object
	Name string
	Fn   NativeFn
}

// BoundFunctionObject pairs a function with the receiver it was resolved
// through. It is produced by prototype-chain lookup and consumed by Call;
// the underlying function's property table and prototype are shared, not
// copied.
type BoundFunctionObject struct {
	Fn   *FunctionObject
	This Value
}

// ArrayObject is a dense indexed sequence. Only the construction and
// element access the Object namespace needs are provided here.
type ArrayObject struct {
	Object
	elements []Value
}

// NewObject creates an empty object with the given prototype. Pass Undefined
// for a prototype-less object.
func NewObject(proto Value) Value {
	obj := &PlainObject{Object: Object{prototype: proto, parent: Undefined, extensible: true}}
	return Value{typ: TypeObject, obj: unsafe.Pointer(obj)}
}

// NewScope creates an empty object whose parent-scope reference is parent.
// Scopes are ordinary objects; only the traversal axis differs.
func NewScope(parent Value) Value {
	obj := &PlainObject{Object: Object{prototype: Undefined, parent: parent, extensible: true}}
	return Value{typ: TypeObject, obj: unsafe.Pointer(obj)}
}

// NewNativeFunction creates a function-kind value with the given name and
// native entry point.
func NewNativeFunction(name string, fn NativeFn) Value {
	obj := &FunctionObject{
		Object: Object{prototype: Undefined, parent: Undefined, extensible: true},
		Name:   name,
		Fn:     fn,
	}
	return Value{typ: TypeFunction, obj: unsafe.Pointer(obj)}
}

// NewBoundFunction associates fn with a receiver. fn may itself be a bound
// function, in which case the receiver is replaced.
func NewBoundFunction(fn Value, receiver Value) Value {
	var target *FunctionObject
	switch fn.typ {
	case TypeFunction:
		target = fn.AsFunction()
	case TypeBoundFunction:
		target = fn.AsBoundFunction().Fn
	default:
		panic("value is not a function")
	}
	obj := &BoundFunctionObject{Fn: target, This: receiver}
	return Value{typ: TypeBoundFunction, obj: unsafe.Pointer(obj)}
}

// NewArray creates an empty array value.
func NewArray() Value {
	obj := &ArrayObject{Object: Object{prototype: Undefined, parent: Undefined, extensible: true}}
	return Value{typ: TypeArray, obj: unsafe.Pointer(obj)}
}

// Push appends an element.
func (a *ArrayObject) Push(v Value) {
	a.elements = append(a.elements, v)
}

// Len returns the element count.
func (a *ArrayObject) Len() int {
	return len(a.elements)
}

// Index returns the element at i, or Undefined when out of range.
func (a *ArrayObject) Index(i int) Value {
	if i < 0 || i >= len(a.elements) {
		return Undefined
	}
	return a.elements[i]
}

// Elements returns the backing element slice.
func (a *ArrayObject) Elements() []Value {
	return a.elements
}

// BoundThis returns the receiver associated with a bound function, or
// Undefined for any other value.
func BoundThis(v Value) Value {
	if v.typ == TypeBoundFunction {
		return v.AsBoundFunction().This
	}
	return Undefined
}

// Prototype returns obj's prototype reference, or Undefined when obj has
// none (or is not a property-carrying value).
func Prototype(obj Value) Value {
	if b := obj.body(); b != nil {
		return b.prototype
	}
	return Undefined
}

// SetPrototype replaces obj's prototype reference. A no-op for values
// without a property table.
func SetPrototype(obj Value, proto Value) {
	if b := obj.body(); b != nil {
		b.prototype = proto
	}
}

// Parent returns obj's parent-scope reference, or Undefined.
func Parent(obj Value) Value {
	if b := obj.body(); b != nil {
		return b.parent
	}
	return Undefined
}

// SetParent replaces obj's parent-scope reference.
func SetParent(obj Value, parent Value) {
	if b := obj.body(); b != nil {
		b.parent = parent
	}
}

// Extensible reports the extensible object-state flag.
func Extensible(obj Value) bool {
	if b := obj.body(); b != nil {
		return b.extensible
	}
	return false
}

// SetExtensible writes the extensible object-state flag.
func SetExtensible(obj Value, extensible bool) {
	if b := obj.body(); b != nil {
		b.extensible = extensible
	}
}

// Sealed reports the sealed object-state flag.
func Sealed(obj Value) bool {
	if b := obj.body(); b != nil {
		return b.sealed
	}
	return false
}

// SetSealed writes the sealed object-state flag.
func SetSealed(obj Value, sealed bool) {
	if b := obj.body(); b != nil {
		b.sealed = sealed
	}
}

// Frozen reports the frozen object-state flag.
func Frozen(obj Value) bool {
	if b := obj.body(); b != nil {
		return b.frozen
	}
	return false
}

// SetFrozen writes the frozen object-state flag.
func SetFrozen(obj Value, frozen bool) {
	if b := obj.body(); b != nil {
		b.frozen = frozen
	}
}
