package hashbench

import "slices"

// ============================================================================
// Table
// ============================================================================

// Table is the associative container under test. Implementations wrap an
// existing map type; none is authored here.
type Table interface {
	Store(key string, value int)
	Load(key string) (int, bool)
	Delete(key string)
}

// Sizer is implemented by tables that can report how many keys they hold.
type Sizer interface {
	Len() int
}

// TableSpec names a Table implementation and knows how to build an empty one.
// capacity is a pre-size hint; zero means no hint.
type TableSpec struct {
	Name string
	New  func(capacity int) Table
}

// DefaultTable returns the spec of Go's built-in map.
func DefaultTable() TableSpec {
	return TableSpec{Name: "map", New: newBuiltinTable}
}

// Tables returns every registered implementation, built-in map first.
func Tables() []TableSpec {
	return slices.Clone(registry)
}

// LookupTable returns the registered implementation called name.
func LookupTable(name string) (TableSpec, bool) {
	i := slices.IndexFunc(registry, func(s TableSpec) bool {
		return s.Name == name
	})
	if i < 0 {
		return TableSpec{}, false
	}
	return registry[i], true
}

// tableLen returns the size of t, or -1 if t cannot tell.
func tableLen(t Table) int {
	if s, ok := t.(Sizer); ok {
		return s.Len()
	}
	return -1
}

// ============================================================================
// Built-in map
// ============================================================================

type builtinTable map[string]int

func newBuiltinTable(capacity int) Table {
	return builtinTable(make(map[string]int, capacity))
}

func (t builtinTable) Store(k string, v int) { t[k] = v }

func (t builtinTable) Load(k string) (int, bool) {
	v, ok := t[k]
	return v, ok
}

func (t builtinTable) Delete(k string) { delete(t, k) }
func (t builtinTable) Len() int        { return len(t) }
