package hashbench

import (
	"sync"

	"github.com/Snawoot/lfmap"
	"github.com/alphadose/haxmap"
	"github.com/fufuok/cmap"
	"github.com/llxisdsh/pb"
	csmap "github.com/mhmtszr/concurrent-swiss-map"
	orcaman "github.com/orcaman/concurrent-map/v2"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/tidwall/hashmap"
	"github.com/zhangyunhao116/skipmap"
)

var registry = []TableSpec{
	DefaultTable(),
	{Name: "sync.Map", New: newSyncMapTable},
	{Name: "pb.MapOf", New: newPBTable},
	{Name: "xsync.Map", New: newXsyncTable},
	{Name: "haxmap", New: newHaxmapTable},
	{Name: "skipmap", New: newSkipmapTable},
	{Name: "orcaman.cmap", New: newOrcamanTable},
	{Name: "fufuok.cmap", New: newFufuokTable},
	{Name: "csmap", New: newCsmapTable},
	{Name: "lfmap", New: newLfmapTable},
	{Name: "tidwall.hashmap", New: newTidwallTable},
}

// ============================================================================
// Adapters
// ============================================================================

type syncMapTable struct{ m sync.Map }

func newSyncMapTable(int) Table { return &syncMapTable{} }

func (a *syncMapTable) Store(k string, v int) { a.m.Store(k, v) }
func (a *syncMapTable) Load(k string) (int, bool) {
	v, ok := a.m.Load(k)
	if ok {
		return v.(int), true
	}
	return 0, false
}
func (a *syncMapTable) Delete(k string) { a.m.Delete(k) }

// Len walks the map; it is only used outside timed phases.
func (a *syncMapTable) Len() int {
	n := 0
	a.m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

type pbTable struct{ m *pb.MapOf[string, int] }

func newPBTable(capacity int) Table {
	if capacity > 0 {
		return &pbTable{pb.NewMapOf[string, int](pb.WithPresize(capacity))}
	}
	return &pbTable{pb.NewMapOf[string, int]()}
}

func (a *pbTable) Store(k string, v int)     { a.m.Store(k, v) }
func (a *pbTable) Load(k string) (int, bool) { return a.m.Load(k) }
func (a *pbTable) Delete(k string)           { a.m.Delete(k) }
func (a *pbTable) Len() int                  { return a.m.Size() }

type xsyncTable struct{ m *xsync.Map[string, int] }

func newXsyncTable(capacity int) Table {
	if capacity > 0 {
		return &xsyncTable{xsync.NewMap[string, int](xsync.WithPresize(capacity))}
	}
	return &xsyncTable{xsync.NewMap[string, int]()}
}

func (a *xsyncTable) Store(k string, v int)     { a.m.Store(k, v) }
func (a *xsyncTable) Load(k string) (int, bool) { return a.m.Load(k) }
func (a *xsyncTable) Delete(k string)           { a.m.Delete(k) }
func (a *xsyncTable) Len() int                  { return a.m.Size() }

type haxmapTable struct{ m *haxmap.Map[string, int] }

func newHaxmapTable(capacity int) Table {
	if capacity > 0 {
		return &haxmapTable{haxmap.New[string, int](uintptr(capacity))}
	}
	return &haxmapTable{haxmap.New[string, int]()}
}

func (a *haxmapTable) Store(k string, v int)     { a.m.Set(k, v) }
func (a *haxmapTable) Load(k string) (int, bool) { return a.m.Get(k) }
func (a *haxmapTable) Delete(k string)           { a.m.Del(k) }
func (a *haxmapTable) Len() int                  { return int(a.m.Len()) }

// skipmap is ordered and has no capacity hint.
type skipmapTable struct{ m *skipmap.OrderedMap[string, int] }

func newSkipmapTable(int) Table { return &skipmapTable{skipmap.New[string, int]()} }

func (a *skipmapTable) Store(k string, v int)     { a.m.Store(k, v) }
func (a *skipmapTable) Load(k string) (int, bool) { return a.m.Load(k) }
func (a *skipmapTable) Delete(k string)           { a.m.Delete(k) }
func (a *skipmapTable) Len() int                  { return a.m.Len() }

type orcamanTable struct{ m orcaman.ConcurrentMap[string, int] }

func newOrcamanTable(int) Table { return &orcamanTable{orcaman.New[int]()} }

func (a *orcamanTable) Store(k string, v int)     { a.m.Set(k, v) }
func (a *orcamanTable) Load(k string) (int, bool) { return a.m.Get(k) }
func (a *orcamanTable) Delete(k string)           { a.m.Remove(k) }
func (a *orcamanTable) Len() int                  { return a.m.Count() }

type fufuokTable struct{ m *cmap.MapOf[string, int] }

func newFufuokTable(int) Table { return &fufuokTable{cmap.NewOf[string, int]()} }

func (a *fufuokTable) Store(k string, v int)     { a.m.Set(k, v) }
func (a *fufuokTable) Load(k string) (int, bool) { return a.m.Get(k) }
func (a *fufuokTable) Delete(k string)           { a.m.Remove(k) }
func (a *fufuokTable) Len() int                  { return a.m.Count() }

type csmapTable struct{ m *csmap.CsMap[string, int] }

func newCsmapTable(int) Table { return &csmapTable{csmap.New[string, int]()} }

func (a *csmapTable) Store(k string, v int)     { a.m.Store(k, v) }
func (a *csmapTable) Load(k string) (int, bool) { return a.m.Load(k) }
func (a *csmapTable) Delete(k string)           { a.m.Delete(k) }
func (a *csmapTable) Len() int                  { return a.m.Count() }

// lfmap cannot report its size.
type lfmapTable struct{ m *lfmap.Map[string, int] }

func newLfmapTable(int) Table { return &lfmapTable{lfmap.New[string, int]()} }

func (a *lfmapTable) Store(k string, v int)     { a.m.Set(k, v) }
func (a *lfmapTable) Load(k string) (int, bool) { return a.m.Get(k) }
func (a *lfmapTable) Delete(k string)           { a.m.Delete(k) }

type tidwallTable struct{ m *hashmap.Map[string, int] }

func newTidwallTable(capacity int) Table {
	return &tidwallTable{hashmap.New[string, int](capacity)}
}

func (a *tidwallTable) Store(k string, v int)     { a.m.Set(k, v) }
func (a *tidwallTable) Load(k string) (int, bool) { return a.m.Get(k) }
func (a *tidwallTable) Delete(k string)           { a.m.Delete(k) }
func (a *tidwallTable) Len() int                  { return a.m.Len() }
