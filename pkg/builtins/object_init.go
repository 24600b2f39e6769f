package builtins

import (
	"mudskip/pkg/errors"
	"mudskip/pkg/vm"
)

// ObjectInitializer implements the Object builtin: the Object namespace and
// Object.prototype, built entirely from the lookup/mutation engine and the
// descriptor protocol.
type ObjectInitializer struct{}

func (o *ObjectInitializer) Name() string {
	return "Object"
}

func (o *ObjectInitializer) Priority() int {
	return PriorityObject // Must be first (base prototype)
}

func (o *ObjectInitializer) InitRuntime(ctx *RuntimeContext) error {
	// Object.prototype is the root prototype (no parent)
	prototype := vm.NewObject(vm.Undefined)
	object := vm.NewObject(vm.Undefined)

	// Methods and the prototype property are installed writable and
	// configurable but hidden from enumeration, so Object.keys(Object)
	// stays empty.
	builtin := func(target vm.Value, name string, fn vm.NativeFn) {
		vm.SetProp(target, name, vm.NewNativeFunction(name, fn), vm.FlagBuiltin)
	}

	// Object
	// ------
	vm.SetProp(object, "prototype", prototype, vm.FlagBuiltin)

	builtin(object, "create", objCreate)
	builtin(object, "defineProperty", objDefineProperty)
	builtin(object, "defineProperties", objDefineProperties)
	builtin(object, "getOwnPropertyDescriptor", objGetOwnPropertyDescriptor)
	builtin(object, "keys", objKeys)
	builtin(object, "getOwnPropertyNames", objGetOwnPropertyNames)
	builtin(object, "getPrototypeOf", objGetPrototypeOf)
	builtin(object, "preventExtensions", objPreventExtensions)
	builtin(object, "isExtensible", objIsExtensible)
	builtin(object, "seal", objSeal)
	builtin(object, "isSealed", objIsSealed)
	builtin(object, "freeze", objFreeze)
	builtin(object, "isFrozen", objIsFrozen)

	// Object.prototype
	// ----------------
	builtin(prototype, "hasOwnProperty", objProtoHasOwnProperty)
	builtin(prototype, "isPrototypeOf", objProtoIsPrototypeOf)
	builtin(prototype, "propertyIsEnumerable", objProtoPropertyIsEnumerable)
	builtin(prototype, "toLocaleString", objProtoToLocaleString)
	builtin(prototype, "toString", objProtoToString)
	builtin(prototype, "valueOf", objProtoValueOf)

	ctx.ObjectPrototype = prototype
	if ctx.DefineGlobal != nil {
		return ctx.DefineGlobal("Object", object)
	}
	return nil
}

// arg returns the i-th argument, or Undefined when absent.
func arg(args []vm.Value, i int) vm.Value {
	if i < 0 || i >= len(args) {
		return vm.Undefined
	}
	return args[i]
}

// objOrThrow admits only plain object-kind arguments to the Object
// namespace methods.
func objOrThrow(maybeObj vm.Value, name string) (vm.Value, error) {
	if maybeObj.Type() != vm.TypeObject {
		return vm.Undefined, errors.NewTypeError("Object.%s called on a non-object", name)
	}
	return maybeObj, nil
}

// definePropsFrom installs onto obj every enumerable own property of props
// whose value is object-kind, using that value's "value" field and flags
// derived via the descriptor protocol.
func definePropsFrom(obj vm.Value, props vm.Value) error {
	if props.Type() != vm.TypeObject {
		return nil
	}
	for _, p := range vm.OwnProps(props) {
		if !p.Enumerable {
			continue
		}
		if p.Value.Type() != vm.TypeObject {
			continue
		}
		flags := vm.FlagsFromDescriptor(p.Value)
		val, err := vm.Get(p.Value, "value")
		if err != nil {
			return err
		}
		vm.SetProp(obj, p.Name, val, flags)
	}
	return nil
}

// Object.create(proto [, propertiesObject ])
func objCreate(instance vm.Value, args []vm.Value) (vm.Value, error) {
	proto := arg(args, 0)
	props := arg(args, 1)

	obj := vm.NewObject(proto)
	if err := definePropsFrom(obj, props); err != nil {
		return vm.Undefined, err
	}
	return obj, nil
}

// Object.defineProperty(obj, prop, descriptor)
func objDefineProperty(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "defineProperty")
	if err != nil {
		return vm.Undefined, err
	}

	name := arg(args, 1).ToString()
	desc := arg(args, 2)
	flags := vm.FlagsFromDescriptor(desc)
	val, err := vm.Get(desc, "value")
	if err != nil {
		return vm.Undefined, err
	}

	vm.SetProp(obj, name, val, flags)
	return obj, nil
}

// Object.defineProperties(obj, props)
func objDefineProperties(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "defineProperties")
	if err != nil {
		return vm.Undefined, err
	}
	if err := definePropsFrom(obj, arg(args, 1)); err != nil {
		return vm.Undefined, err
	}
	return obj, nil
}

// Object.getOwnPropertyDescriptor(obj, prop)
func objGetOwnPropertyDescriptor(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "getOwnPropertyDescriptor")
	if err != nil {
		return vm.Undefined, err
	}
	name := arg(args, 1).ToString()
	rec, ok := vm.GetProp(obj, name)
	if !ok {
		// A missing record is a TypeError rather than Undefined. See DESIGN.md.
		return vm.Undefined, errors.NewTypeError("Object.getOwnPropertyDescriptor called on missing property '%s'", name)
	}
	return vm.NewDescriptor(rec), nil
}

// Object.keys(obj)
func objKeys(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "keys")
	if err != nil {
		return vm.Undefined, err
	}
	keys := vm.NewArray()
	arr := keys.AsArray()
	for _, p := range vm.OwnProps(obj) {
		if p.Enumerable {
			arr.Push(vm.NewString(p.Name))
		}
	}
	return keys, nil
}

// Object.getOwnPropertyNames(obj)
func objGetOwnPropertyNames(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "getOwnPropertyNames")
	if err != nil {
		return vm.Undefined, err
	}
	names := vm.NewArray()
	arr := names.AsArray()
	for _, p := range vm.OwnProps(obj) {
		arr.Push(vm.NewString(p.Name))
	}
	return names, nil
}

// Object.getPrototypeOf(obj)
func objGetPrototypeOf(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "getPrototypeOf")
	if err != nil {
		return vm.Undefined, err
	}
	return vm.Prototype(obj), nil
}

// Object.preventExtensions(obj)
func objPreventExtensions(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "preventExtensions")
	if err != nil {
		return vm.Undefined, err
	}
	// Sets the flag true, the opposite of what the name implies. Kept as-is
	// for behavioral parity; see DESIGN.md.
	vm.SetExtensible(obj, true)
	return obj, nil
}

// Object.isExtensible(obj)
func objIsExtensible(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "isExtensible")
	if err != nil {
		return vm.Undefined, err
	}
	return vm.BooleanValue(vm.Extensible(obj)), nil
}

// Object.seal(obj)
func objSeal(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "seal")
	if err != nil {
		return vm.Undefined, err
	}
	vm.SetSealed(obj, true)
	return obj, nil
}

// Object.isSealed(obj)
func objIsSealed(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "isSealed")
	if err != nil {
		return vm.Undefined, err
	}
	return vm.BooleanValue(vm.Sealed(obj)), nil
}

// Object.freeze(obj)
func objFreeze(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "freeze")
	if err != nil {
		return vm.Undefined, err
	}
	// Sets only the frozen flag; sealed and extensible are untouched.
	vm.SetFrozen(obj, true)
	return obj, nil
}

// Object.isFrozen(obj)
func objIsFrozen(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj, err := objOrThrow(arg(args, 0), "isFrozen")
	if err != nil {
		return vm.Undefined, err
	}
	return vm.BooleanValue(vm.Frozen(obj)), nil
}

// Object.prototype.hasOwnProperty(prop)
func objProtoHasOwnProperty(instance vm.Value, args []vm.Value) (vm.Value, error) {
	name := arg(args, 0).ToString()
	_, ok := vm.GetProp(instance, name)
	return vm.BooleanValue(ok), nil
}

// Object.prototype.isPrototypeOf(object)
func objProtoIsPrototypeOf(instance vm.Value, args []vm.Value) (vm.Value, error) {
	obj := arg(args, 0)

	visited := 0
	proto := vm.Prototype(obj)
	for proto.Type() != vm.TypeUndefined && proto.Type() != vm.TypeNull {
		if proto.Is(instance) {
			return vm.True, nil
		}
		proto = vm.Prototype(proto)
		visited++
		if visited > maxPrototypeDepth {
			return vm.Undefined, errors.NewInternalError("prototype chain cycle in isPrototypeOf")
		}
	}
	return vm.False, nil
}

// maxPrototypeDepth bounds the identity walk in isPrototypeOf; a chain this
// deep is a broken object graph, not a real inheritance hierarchy.
const maxPrototypeDepth = 1 << 16

// Object.prototype.propertyIsEnumerable(prop)
func objProtoPropertyIsEnumerable(instance vm.Value, args []vm.Value) (vm.Value, error) {
	name := arg(args, 0).ToString()
	rec, ok := vm.GetProp(instance, name)
	return vm.BooleanValue(ok && rec.Enumerable), nil
}

// Object.prototype.toLocaleString()
func objProtoToLocaleString(instance vm.Value, args []vm.Value) (vm.Value, error) {
	return objProtoToString(instance, args)
}

// Object.prototype.toString()
func objProtoToString(instance vm.Value, args []vm.Value) (vm.Value, error) {
	return vm.NewString("[object Object]"), nil
}

// Object.prototype.valueOf()
func objProtoValueOf(instance vm.Value, args []vm.Value) (vm.Value, error) {
	return instance, nil
}
