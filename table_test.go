package hashbench

import (
	"strconv"
	"testing"
)

func TestTablesContract(t *testing.T) {
	for _, spec := range Tables() {
		for _, capacity := range []int{0, 64} {
			t.Run(spec.Name+"/cap="+strconv.Itoa(capacity), func(t *testing.T) {
				m := spec.New(capacity)

				m.Store("a", 1)
				m.Store("b", 2)
				m.Store("a", 3)
				if v, ok := m.Load("a"); !ok || v != 3 {
					t.Fatalf("Load(a)=%d,%v want 3,true", v, ok)
				}
				if v, ok := m.Load("b"); !ok || v != 2 {
					t.Fatalf("Load(b)=%d,%v want 2,true", v, ok)
				}
				if _, ok := m.Load("missing"); ok {
					t.Fatal("Load(missing) found a value")
				}
				if n := tableLen(m); n != -1 && n != 2 {
					t.Fatalf("Len=%d want 2", n)
				}

				m.Delete("a")
				m.Delete("a")
				m.Delete("missing")
				if _, ok := m.Load("a"); ok {
					t.Fatal("Load(a) found a deleted key")
				}
				m.Delete("b")
				if n := tableLen(m); n != -1 && n != 0 {
					t.Fatalf("Len=%d after deleting everything", n)
				}
			})
		}
	}
}

func TestTablesBulk(t *testing.T) {
	d := NewGenerator(3, MaxValue, 7).Dataset(20000)
	distinct := d.Distinct()
	for _, spec := range Tables() {
		t.Run(spec.Name, func(t *testing.T) {
			m := spec.New(0)
			last := make(map[string]int, distinct)
			for i, k := range d.Keys {
				m.Store(k, d.Values[i])
				last[k] = d.Values[i]
			}
			if n := tableLen(m); n != -1 && n != distinct {
				t.Fatalf("Len=%d want %d", n, distinct)
			}
			for k, want := range last {
				if v, ok := m.Load(k); !ok || v != want {
					t.Fatalf("Load(%q)=%d,%v want %d,true", k, v, ok, want)
				}
			}
			for i := len(d.Keys) - 1; i >= 0; i-- {
				m.Delete(d.Keys[i])
			}
			for k := range last {
				if _, ok := m.Load(k); ok {
					t.Fatalf("key %q survived deletion", k)
				}
			}
		})
	}
}

func TestLookupTable(t *testing.T) {
	all := Tables()
	if len(all) == 0 || all[0].Name != DefaultTable().Name {
		t.Fatalf("built-in map must come first, got %v", all)
	}
	seen := make(map[string]bool, len(all))
	for _, spec := range all {
		if seen[spec.Name] {
			t.Fatalf("duplicate table %q", spec.Name)
		}
		seen[spec.Name] = true
		got, ok := LookupTable(spec.Name)
		if !ok || got.Name != spec.Name || got.New == nil {
			t.Fatalf("LookupTable(%q)=%v,%v", spec.Name, got.Name, ok)
		}
	}
	if _, ok := LookupTable("no-such-map"); ok {
		t.Fatal("LookupTable found an unknown name")
	}

	all[0] = TableSpec{Name: "changed"}
	if Tables()[0].Name != DefaultTable().Name {
		t.Fatal("Tables exposes the registry")
	}
}
