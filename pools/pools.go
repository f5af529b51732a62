// Package pools provides sync.Pool-backed reuse of the scratch buffers the
// workload generators allocate one per string. Adapted from the teacher's
// builder pool for CIDR strings: same Get/Put-and-Reset shape, sized for
// this repository's workloads (pseudo-words up to 28 bytes, random strings
// fixed at 64) instead of CIDR notation.
package pools

import "sync"

// BuilderPool is a pool of reusable []byte scratch buffers for building one
// string at a time. It is not itself safe for the same buffer to be used by
// two goroutines at once, but Get/Put are.
type BuilderPool struct {
	pool sync.Pool
}

// NewBuilderPool creates a pool whose buffers are pre-sized to capacity.
func NewBuilderPool(capacity int) *BuilderPool {
	return &BuilderPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, 0, capacity)
				return &buf
			},
		},
	}
}

// Get returns a zero-length buffer with at least the pool's configured
// capacity.
func (p *BuilderPool) Get() *[]byte {
	buf := p.pool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return buf
}

// Put returns buf to the pool for reuse.
func (p *BuilderPool) Put(buf *[]byte) {
	p.pool.Put(buf)
}
