package vm

// PropFlags is the bitset form of a property's attribute flags, used when
// installing properties.
type PropFlags uint8

const (
	FlagWritable PropFlags = 1 << iota
	FlagEnumerable
	FlagConfigurable
)

const (
	// FlagNone installs a property with every attribute cleared.
	FlagNone PropFlags = 0
	// FlagDefault is the attribute set for implicitly created properties:
	// writable, enumerable, and configurable.
	FlagDefault = FlagWritable | FlagEnumerable | FlagConfigurable
	// FlagBuiltin is the attribute set for installed builtin methods:
	// writable and configurable, but hidden from enumeration.
	FlagBuiltin = FlagWritable | FlagConfigurable
)

// PropertyRecord is a single named slot in a property table: the current
// value, the three attribute flags, and the circularity hint recomputed on
// every assignment for the external collector.
type PropertyRecord struct {
	Name         string
	Value        Value
	Writable     bool
	Enumerable   bool
	Configurable bool
	Circular     bool
}

// PropertyTable is the per-object collection of own property records, keyed
// by name. Enumeration follows insertion order; see DESIGN.md.
type PropertyTable struct {
	records map[string]*PropertyRecord
	order   []string
}

// Get returns the own record for name, with no chain traversal.
func (t *PropertyTable) Get(name string) (*PropertyRecord, bool) {
	rec, ok := t.records[name]
	return rec, ok
}

// Has reports whether an own record for name exists.
func (t *PropertyTable) Has(name string) bool {
	_, ok := t.records[name]
	return ok
}

// Set creates or updates the record for name. An existing record is updated
// in place: its identity is preserved for any holder of the record pointer,
// and its flags and value are overwritten.
func (t *PropertyTable) Set(name string, value Value, flags PropFlags, circular bool) *PropertyRecord {
	rec, ok := t.records[name]
	if !ok {
		rec = &PropertyRecord{Name: name}
		if t.records == nil {
			t.records = make(map[string]*PropertyRecord)
		}
		t.records[name] = rec
		t.order = append(t.order, name)
	}
	rec.Value = value
	rec.Writable = flags&FlagWritable != 0
	rec.Enumerable = flags&FlagEnumerable != 0
	rec.Configurable = flags&FlagConfigurable != 0
	rec.Circular = circular
	return rec
}

// Delete removes the record for name. An absent name and a
// configurable-false record are both silent no-ops; this layer raises no
// error for either.
func (t *PropertyTable) Delete(name string) {
	rec, ok := t.records[name]
	if !ok || !rec.Configurable {
		return
	}
	delete(t.records, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of own records.
func (t *PropertyTable) Len() int {
	return len(t.records)
}

// Records returns all own records in insertion order.
func (t *PropertyTable) Records() []*PropertyRecord {
	recs := make([]*PropertyRecord, 0, len(t.order))
	for _, name := range t.order {
		recs = append(recs, t.records[name])
	}
	return recs
}

// Names returns all own record names in insertion order.
func (t *PropertyTable) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// EnumerableNames returns the own record names whose Enumerable flag is set,
// in insertion order.
func (t *PropertyTable) EnumerableNames() []string {
	names := make([]string, 0, len(t.order))
	for _, name := range t.order {
		if t.records[name].Enumerable {
			names = append(names, name)
		}
	}
	return names
}
