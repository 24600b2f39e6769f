package vm

// Descriptor protocol: translation between a property record's attribute
// flags and the script-visible descriptor object form.

// FlagsFromDescriptor converts a script-supplied descriptor object into
// attribute flags. A flag is set if and only if the descriptor holds a
// boolean true under the corresponding key; absence, a non-boolean kind,
// and false all clear it. Pure transform, no side effects.
func FlagsFromDescriptor(desc Value) PropFlags {
	var flags PropFlags
	if descBool(desc, "writable") {
		flags |= FlagWritable
	}
	if descBool(desc, "enumerable") {
		flags |= FlagEnumerable
	}
	if descBool(desc, "configurable") {
		flags |= FlagConfigurable
	}
	return flags
}

func descBool(desc Value, key string) bool {
	rec, ok := GetProp(desc, key)
	return ok && rec.Value.typ == TypeBoolean && rec.Value.AsBoolean()
}

// NewDescriptor materializes a fresh descriptor object from a property
// record: its stored value plus the three attribute flags as booleans.
func NewDescriptor(rec *PropertyRecord) Value {
	desc := NewObject(Undefined)
	Set(desc, "value", rec.Value)
	Set(desc, "writable", BooleanValue(rec.Writable))
	Set(desc, "enumerable", BooleanValue(rec.Enumerable))
	Set(desc, "configurable", BooleanValue(rec.Configurable))
	return desc
}
