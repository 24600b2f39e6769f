package builtins

import "sort"

// GetStandardInitializers returns all built-in initializers sorted by priority
func GetStandardInitializers() []BuiltinInitializer {
	var initializers []BuiltinInitializer

	// Core builtins
	initializers = append(initializers, &ObjectInitializer{})

	// Sort by priority (lower numbers first)
	sort.Slice(initializers, func(i, j int) bool {
		return initializers[i].Priority() < initializers[j].Priority()
	})

	return initializers
}

// InitializeStandard runs every standard initializer against ctx, in
// priority order.
func InitializeStandard(ctx *RuntimeContext) error {
	for _, init := range GetStandardInitializers() {
		if err := init.InitRuntime(ctx); err != nil {
			return err
		}
	}
	return nil
}
