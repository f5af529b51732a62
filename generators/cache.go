package generators

import (
	"fmt"

	"github.com/alphadose/haxmap"
)

// WorkloadCache memoizes a Generator's output per (display name, size) so
// the driver's warm-up pass and measurement pass don't regenerate the same
// SMALL workload twice. Backed by haxmap, the teacher's concurrent map
// type: the benchmark driver itself is single-threaded (spec.md §5), but a
// lock-free read path is still the right fit for a cache that is written
// once per key and read several times afterward.
type WorkloadCache struct {
	entries *haxmap.Map[string, []string]
}

// NewWorkloadCache creates an empty cache.
func NewWorkloadCache() *WorkloadCache {
	return &WorkloadCache{entries: haxmap.New[string, []string]()}
}

func cacheKey(name string, size DataSize) string {
	return fmt.Sprintf("%s/%s", name, size)
}

// Get returns gen's workload for size, generating and caching it on the
// first request for that (name, size) pair.
func (c *WorkloadCache) Get(gen Generator, size DataSize) ([]string, error) {
	key := cacheKey(gen.DisplayName(), size)
	if cached, ok := c.entries.Get(key); ok {
		return cached, nil
	}
	data, err := gen.Generate(size)
	if err != nil {
		return nil, err
	}
	c.entries.Set(key, data)
	return data, nil
}
