package vm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"
)

type ValueType uint8

const (
	TypeUndefined ValueType = iota
	TypeNull

	TypeBoolean
	TypeNumber
	TypeString

	TypeObject
	TypeFunction
	TypeBoundFunction
	TypeArray
)

// String returns a human-readable string representation of the ValueType
func (vt ValueType) String() string {
	switch vt {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeFunction:
		return "function"
	case TypeBoundFunction:
		return "bound function"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the universal runtime value: a kind tag, a 64-bit payload for
// immediates (boolean, number), and a pointer for heap-allocated payloads
// (string, object, function, array).
type Value struct {
	typ     ValueType
	payload uint64
	obj     unsafe.Pointer
}

type StringObject struct {
	value string
}

var (
	Undefined = Value{typ: TypeUndefined}
	Null      = Value{typ: TypeNull}
	True      = Value{typ: TypeBoolean, payload: 1}
	False     = Value{typ: TypeBoolean, payload: 0}
	NaN       = Value{typ: TypeNumber, payload: math.Float64bits(math.NaN())}
)

func NumberValue(value float64) Value {
	return Value{typ: TypeNumber, payload: math.Float64bits(value)}
}

func BooleanValue(value bool) Value {
	if value {
		return True
	}
	return False
}

func NewString(value string) Value {
	return Value{typ: TypeString, obj: unsafe.Pointer(&StringObject{value: value})}
}

func (v Value) Type() ValueType { return v.typ }

func (v Value) IsUndefined() bool { return v.typ == TypeUndefined }
func (v Value) IsNull() bool      { return v.typ == TypeNull }
func (v Value) IsBoolean() bool   { return v.typ == TypeBoolean }
func (v Value) IsNumber() bool    { return v.typ == TypeNumber }
func (v Value) IsString() bool    { return v.typ == TypeString }

// IsObject reports whether the value carries a property table: plain
// objects, functions, bound functions, and arrays all do.
func (v Value) IsObject() bool {
	return v.typ == TypeObject || v.typ == TypeFunction || v.typ == TypeBoundFunction || v.typ == TypeArray
}

func (v Value) IsPlainObject() bool { return v.typ == TypeObject }

// IsCallable reports whether the value can be invoked via Call.
func (v Value) IsCallable() bool {
	return v.typ == TypeFunction || v.typ == TypeBoundFunction
}

func (v Value) IsFunction() bool { return v.typ == TypeFunction }
func (v Value) IsArray() bool    { return v.typ == TypeArray }

func (v Value) AsBoolean() bool {
	if v.typ != TypeBoolean {
		panic("value is not a boolean")
	}
	return v.payload == 1
}

func (v Value) AsNumber() float64 {
	if v.typ != TypeNumber {
		panic("value is not a number")
	}
	return math.Float64frombits(v.payload)
}

func (v Value) AsString() string {
	if v.typ != TypeString {
		panic("value is not a string")
	}
	return (*StringObject)(v.obj).value
}

func (v Value) AsPlainObject() *PlainObject {
	if v.typ != TypeObject {
		panic("value is not an object")
	}
	return (*PlainObject)(v.obj)
}

func (v Value) AsFunction() *FunctionObject {
	if v.typ != TypeFunction {
		panic("value is not a function")
	}
	return (*FunctionObject)(v.obj)
}

func (v Value) AsBoundFunction() *BoundFunctionObject {
	if v.typ != TypeBoundFunction {
		panic("value is not a bound function")
	}
	return (*BoundFunctionObject)(v.obj)
}

func (v Value) AsArray() *ArrayObject {
	if v.typ != TypeArray {
		panic("value is not an array")
	}
	return (*ArrayObject)(v.obj)
}

// body returns the shared object state for property-carrying kinds, or nil.
// A bound function shares its target function's state: binding associates a
// receiver, it does not fork the property table.
func (v Value) body() *Object {
	switch v.typ {
	case TypeObject:
		return &(*PlainObject)(v.obj).Object
	case TypeFunction:
		return &(*FunctionObject)(v.obj).Object
	case TypeBoundFunction:
		return &(*BoundFunctionObject)(v.obj).Fn.Object
	case TypeArray:
		return &(*ArrayObject)(v.obj).Object
	}
	return nil
}

// Is compares two values for identity: reference identity for heap kinds,
// value identity for immediates. NaN is NaN under this comparison.
func (v Value) Is(other Value) bool {
	if v.typ != other.typ {
		// A function and its bound form denote the same underlying object.
		if b1, b2 := v.body(), other.body(); b1 != nil && b1 == b2 {
			return true
		}
		return false
	}
	switch v.typ {
	case TypeUndefined, TypeNull:
		return true
	case TypeBoolean:
		return v.payload == other.payload
	case TypeNumber:
		vf, of := v.AsNumber(), other.AsNumber()
		if math.IsNaN(vf) && math.IsNaN(of) {
			return true
		}
		return vf == of
	case TypeString:
		return v.AsString() == other.AsString()
	case TypeBoundFunction:
		return v.body() == other.body()
	default:
		return v.obj == other.obj
	}
}

// ToString converts the value to its script-visible string form.
func (v Value) ToString() string {
	switch v.typ {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBoolean:
		if v.AsBoolean() {
			return "true"
		}
		return "false"
	case TypeNumber:
		f := v.AsNumber()
		if math.IsNaN(f) {
			return "NaN"
		}
		if math.IsInf(f, 1) {
			return "Infinity"
		}
		if math.IsInf(f, -1) {
			return "-Infinity"
		}
		if f == 0 && math.Signbit(f) {
			return "0"
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case TypeString:
		return v.AsString()
	case TypeObject:
		return "[object Object]"
	case TypeFunction:
		fn := v.AsFunction()
		if fn.Name != "" {
			return fmt.Sprintf("<native function %s>", fn.Name)
		}
		return "<native function>"
	case TypeBoundFunction:
		fn := v.AsBoundFunction().Fn
		if fn.Name != "" {
			return fmt.Sprintf("<bound function %s>", fn.Name)
		}
		return "<bound function>"
	case TypeArray:
		arr := v.AsArray()
		parts := make([]string, len(arr.elements))
		for i, el := range arr.elements {
			parts[i] = el.ToString()
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprintf("<unknown type %d>", v.typ)
}

// Inspect returns a developer-friendly representation of Value, similar to a REPL.
func (v Value) Inspect() string {
	return v.inspectWithDepth(false, 0, 16)
}

// inspectWithDepth is a depth-limited inspector to prevent runaway recursion
// on self-referential object graphs.
func (v Value) inspectWithDepth(nested bool, depth int, maxDepth int) string {
	if depth >= maxDepth {
		return "<...>"
	}
	switch v.typ {
	case TypeString:
		if nested {
			return fmt.Sprintf("%q", v.AsString())
		}
		return v.AsString()
	case TypeObject:
		obj := v.AsPlainObject()
		var b strings.Builder
		b.WriteString("{")
		for i, rec := range obj.props.Records() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(rec.Name)
			b.WriteString(": ")
			if rec.Circular {
				b.WriteString("<circular>")
			} else {
				b.WriteString(rec.Value.inspectWithDepth(true, depth+1, maxDepth))
			}
		}
		b.WriteString("}")
		return b.String()
	case TypeFunction, TypeBoundFunction:
		name := ""
		if v.typ == TypeFunction {
			name = v.AsFunction().Name
		} else {
			name = v.AsBoundFunction().Fn.Name
		}
		if name != "" {
			return fmt.Sprintf("[Function: %s]", name)
		}
		return "[Function (anonymous)]"
	case TypeArray:
		arr := v.AsArray()
		elems := make([]string, len(arr.elements))
		for i, el := range arr.elements {
			elems[i] = el.inspectWithDepth(true, depth+1, maxDepth)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	default:
		return v.ToString()
	}
}
