package hashbench

import (
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/llxisdsh/hashbench/internal/opt"
)

// Result holds the timings of one size of the sweep.
type Result struct {
	// Table is the name of the implementation that was measured.
	Table string
	// N is the number of generated pairs.
	N int
	// Distinct is the table size after insertion and Remaining the size
	// after deletion. Both are -1 when the table cannot report its size.
	Distinct  int
	Remaining int

	Insert time.Duration
	Lookup time.Duration
	Delete time.Duration
}

// Bench runs the insert/lookup/delete sweep against one table
// implementation. A Bench is not safe for concurrent use.
type Bench struct {
	cfg Config
	gen *Generator

	// sink accumulates looked-up values so the loads stay observable.
	// It is never checked.
	sink int
}

// New returns a Bench configured by options. Without options it reproduces
// the reference sweep: keys of KeyLen bytes, sizes Step..MaxN, built-in map.
func New(options ...func(*Config)) (*Bench, error) {
	cfg := defaultConfig()
	for _, o := range options {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.seed == 0 {
		cfg.seed = rand.Uint64()
	}
	return &Bench{
		cfg: cfg,
		gen: NewGenerator(cfg.keyLen, cfg.maxValue, cfg.seed),
	}, nil
}

// Table returns the name of the implementation under test.
func (b *Bench) Table() string {
	return b.cfg.table.Name
}

// Seed returns the seed the datasets are drawn from.
func (b *Bench) Seed() uint64 {
	return b.cfg.seed
}

// Sizes returns the dataset sizes of the sweep in increasing order.
func (b *Bench) Sizes() []int {
	count := b.cfg.maxN / b.cfg.step
	sizes := make([]int, 0, count)
	for k := 1; k <= count; k++ {
		sizes = append(sizes, k*b.cfg.step)
	}
	return sizes
}

// RunSize generates n pairs and times the three phases on a fresh table.
//
// Insertion stores the pairs in generation order. Lookup loads the first
// 90% of the generated keys, then 10% of n freshly generated keys; key
// generation for the misses is part of the timed lookup. Deletion removes
// every generated key in reverse order, so repeated keys are deleted once
// and then skipped.
func (b *Bench) RunSize(n int) Result {
	b.cfg.logger.Info().Str("table", b.cfg.table.Name).Int("n", n).Msg("size started")
	if b.cfg.gc {
		runtime.GC()
	}
	d := b.gen.Dataset(n)

	capacity := 0
	if b.cfg.presize {
		capacity = n
	}
	t := b.cfg.table.New(capacity)

	r := Result{Table: b.cfg.table.Name, N: d.Len()}
	r.Insert = Time(func() {
		for i, k := range d.Keys {
			t.Store(k, d.Values[i])
		}
	})
	r.Distinct = tableLen(t)

	hits := d.Keys[:r.N*hitPercent/100]
	misses := r.N * missPercent / 100
	r.Lookup = Time(func() {
		for _, k := range hits {
			v, _ := t.Load(k)
			b.sink += v
		}
		for range misses {
			v, _ := t.Load(b.gen.Key())
			b.sink += v
		}
	})

	r.Delete = Time(func() {
		for i := len(d.Keys) - 1; i >= 0; i-- {
			t.Delete(d.Keys[i])
		}
	})
	r.Remaining = tableLen(t)

	b.cfg.logger.Debug().
		Str("table", r.Table).
		Int("n", r.N).
		Int("distinct", r.Distinct).
		Dur("insert", r.Insert).
		Dur("lookup", r.Lookup).
		Dur("delete", r.Delete).
		Msg("size done")
	return r
}

// Run executes the whole sweep and writes one report block per size to w.
// It stops at the first write error.
func (b *Bench) Run(w io.Writer) ([]Result, error) {
	log := b.cfg.logger
	if opt.Race {
		log.Warn().Msg("race detector enabled, timings are not representative")
	}
	log.Info().
		Str("table", b.cfg.table.Name).
		Int("key_len", b.cfg.keyLen).
		Int("step", b.cfg.step).
		Int("max", b.cfg.maxN).
		Bool("presize", b.cfg.presize).
		Uint64("seed", b.cfg.seed).
		Msg("sweep started")

	sizes := b.Sizes()
	results := make([]Result, 0, len(sizes))
	for _, n := range sizes {
		r := b.RunSize(n)
		results = append(results, r)
		if err := WriteResult(w, r); err != nil {
			return results, fmt.Errorf("hashbench: write result for %d elements: %w", n, err)
		}
	}
	log.Info().Str("table", b.cfg.table.Name).Int("sizes", len(results)).Msg("sweep finished")
	return results, nil
}
