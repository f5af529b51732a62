package generators

import (
	"math/rand"

	"github.com/nfiedler/mkqsortbench/pools"
)

// randomLength is the fixed length of every string RandomGenerator produces.
const randomLength = 64

// alphanumeric is the 62-symbol alphabet RandomGenerator draws from:
// digits, then uppercase, then lowercase, matching the original's
// d<10 / d<36 / else ordering exactly (it determines which characters are
// reachable, not just which are present).
const alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// RandomGenerator produces fixed-length strings of random alphanumeric
// characters. It documents its PRNG explicitly per spec.md §4.5: it uses
// math/rand's global source, unseeded by this package, so runs are not
// reproducible across processes but are cheap and allocation-light within
// one.
type RandomGenerator struct {
	builders *pools.BuilderPool
}

// NewRandomGenerator constructs a RandomGenerator with its own scratch
// buffer pool.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{builders: pools.NewBuilderPool(randomLength)}
}

func (g *RandomGenerator) DisplayName() string { return "Random" }

func (g *RandomGenerator) Generate(size DataSize) ([]string, error) {
	count := Count(size)
	out := make([]string, count)
	for i := 0; i < count; i++ {
		bufPtr := g.builders.Get()
		buf := *bufPtr
		for j := 0; j < randomLength; j++ {
			buf = append(buf, alphanumeric[rand.Intn(len(alphanumeric))])
		}
		out[i] = string(buf)
		*bufPtr = buf
		g.builders.Put(bufPtr)
	}
	return out, nil
}
