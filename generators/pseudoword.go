package generators

import (
	"math/rand"

	"github.com/nfiedler/mkqsortbench/pools"
)

// longestWord is the length of the longest word in common English usage
// ("antidisestablishmentarianism"), used as the upper bound on generated
// word length.
const longestWord = 28

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// PseudoWordGenerator produces strings of length uniform in [1, longestWord],
// drawn from the lowercase English alphabet only.
type PseudoWordGenerator struct {
	builders *pools.BuilderPool
}

func NewPseudoWordGenerator() *PseudoWordGenerator {
	return &PseudoWordGenerator{builders: pools.NewBuilderPool(longestWord)}
}

func (g *PseudoWordGenerator) DisplayName() string { return "Psuedo words" }

func (g *PseudoWordGenerator) Generate(size DataSize) ([]string, error) {
	count := Count(size)
	out := make([]string, count)
	for i := 0; i < count; i++ {
		length := rand.Intn(longestWord) + 1
		bufPtr := g.builders.Get()
		buf := *bufPtr
		for j := 0; j < length; j++ {
			buf = append(buf, lowercase[rand.Intn(len(lowercase))])
		}
		out[i] = string(buf)
		*bufPtr = buf
		g.builders.Put(bufPtr)
	}
	return out, nil
}
