package builtins

import (
	"mudskip/pkg/vm"
)

// BuiltinInitializer is implemented by each builtin module
type BuiltinInitializer interface {
	// Name returns the module name (e.g., "Object")
	Name() string

	// Priority returns initialization order (lower = earlier)
	Priority() int

	// InitRuntime creates runtime values and installs them via the context
	InitRuntime(ctx *RuntimeContext) error
}

// RuntimeContext provides everything needed for runtime initialization
type RuntimeContext struct {
	// Define a global value
	DefineGlobal func(name string, value vm.Value) error

	// Built-in prototypes (set as initializers run)
	ObjectPrototype vm.Value
}

// Priority constants for initialization order
const (
	PriorityObject = 0 // Object must be first (base prototype)
)
