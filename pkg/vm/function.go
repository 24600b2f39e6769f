package vm

import (
	"mudskip/pkg/errors"
)

// Call invokes a callable value. A bound function passes its associated
// receiver as the instance; a plain function passes Undefined.
func Call(fn Value, args []Value) (Value, error) {
	switch fn.typ {
	case TypeFunction:
		return fn.AsFunction().Fn(Undefined, args)
	case TypeBoundFunction:
		b := fn.AsBoundFunction()
		return b.Fn.Fn(b.This, args)
	}
	return Undefined, errors.NewTypeError("%s is not a function", fn.Inspect())
}

// CallWith invokes a callable value with an explicit receiver, overriding
// any bound association.
func CallWith(fn Value, instance Value, args []Value) (Value, error) {
	switch fn.typ {
	case TypeFunction:
		return fn.AsFunction().Fn(instance, args)
	case TypeBoundFunction:
		return fn.AsBoundFunction().Fn.Fn(instance, args)
	}
	return Undefined, errors.NewTypeError("%s is not a function", fn.Inspect())
}
