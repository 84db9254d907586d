package hashbench

import (
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Alphabet is the set of bytes generated keys are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// chunkSize is the number of pairs one generation task fills. It is fixed so
// a seed maps to the same dataset whatever GOMAXPROCS is.
const chunkSize = 1 << 14

// Dataset is an ordered sequence of key/value pairs. Keys[i] goes with
// Values[i]. Keys are not guaranteed to be unique.
type Dataset struct {
	Keys   []string
	Values []int
}

// Len returns the number of pairs.
func (d Dataset) Len() int {
	return len(d.Keys)
}

// Distinct returns the number of different keys in the dataset.
func (d Dataset) Distinct() int {
	seen := make(map[string]struct{}, len(d.Keys))
	for _, k := range d.Keys {
		seen[k] = struct{}{}
	}
	return len(seen)
}

// Generator produces random datasets and single keys.
//
// Every Dataset call draws from new streams, so successive sizes get fresh
// data, while the whole sequence stays reproducible for a given seed.
// A Generator must not be used from multiple goroutines.
type Generator struct {
	keyLen   int
	maxValue int
	seed     uint64
	round    uint64
	workers  int
	rng      *rand.Rand
	buf      []byte
}

// NewGenerator returns a generator of keys of length keyLen and values in
// [0, maxValue].
func NewGenerator(keyLen, maxValue int, seed uint64) *Generator {
	return &Generator{
		keyLen:   keyLen,
		maxValue: maxValue,
		seed:     seed,
		workers:  runtime.GOMAXPROCS(0),
		rng:      rand.New(rand.NewPCG(seed, ^uint64(0))),
		buf:      make([]byte, keyLen),
	}
}

// Dataset returns n fresh pairs. n <= 0 yields an empty dataset.
func (g *Generator) Dataset(n int) Dataset {
	if n <= 0 {
		return Dataset{}
	}
	d := Dataset{
		Keys:   make([]string, n),
		Values: make([]int, n),
	}
	round := g.round
	g.round++

	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for lo, chunk := 0, uint64(0); lo < n; lo, chunk = lo+chunkSize, chunk+1 {
		hi := min(lo+chunkSize, n)
		eg.Go(func() error {
			r := rand.New(rand.NewPCG(g.seed, round<<32|chunk))
			buf := make([]byte, g.keyLen)
			for i := lo; i < hi; i++ {
				d.Keys[i] = randomKey(r, buf)
				d.Values[i] = r.IntN(g.maxValue + 1)
			}
			return nil
		})
	}
	// Workers never return an error.
	_ = eg.Wait()
	return d
}

// Key returns one random key from the generator's sequential stream.
func (g *Generator) Key() string {
	return randomKey(g.rng, g.buf)
}

func randomKey(r *rand.Rand, buf []byte) string {
	for i := range buf {
		buf[i] = Alphabet[r.IntN(len(Alphabet))]
	}
	return string(buf)
}
