// Package pool provides a block-allocated object pool for order records.
// Unlike a sync.Pool, objects are never reclaimed by the garbage
// collector and acquisition is deterministic: once a block is allocated
// it is never freed for the lifetime of the pool, and reuse is governed
// entirely by an explicit LIFO freelist.
package pool

// Pool is a typed, block-allocated object pool. It is built for a
// single-threaded hot path: Acquire and Release carry no locking.
type Pool[T any] struct {
	blockSize int
	blocks    [][]T
	free      []*T
}

// defaultBlockSize matches original_source's ObjectPool<T, 4096> default.
const defaultBlockSize = 4096

// New returns a Pool of objects, allocated blockSize at a time.
// blockSize <= 0 selects the default of 4096. Objects start at T's zero
// value, same as original_source's default-constructed new T[BlockSize].
func New[T any](blockSize int) *Pool[T] {
	if blockSize <= 0 {
		blockSize = defaultBlockSize
	}
	p := &Pool[T]{blockSize: blockSize}
	p.allocateBlock()
	return p
}

// allocateBlock appends one more slab of blockSize objects and pushes
// every one of them onto the freelist, so capacity grows by one
// fixed-size slab per exhaustion, never per object.
func (p *Pool[T]) allocateBlock() {
	block := make([]T, p.blockSize)
	p.blocks = append(p.blocks, block)
	if cap(p.free)-len(p.free) < p.blockSize {
		grown := make([]*T, len(p.free), len(p.free)+p.blockSize)
		copy(grown, p.free)
		p.free = grown
	}
	for i := range block {
		p.free = append(p.free, &block[i])
	}
}

// Acquire returns an object from the freelist, allocating a new block
// first if the freelist is empty. The returned object's fields are
// whatever they were left as by the previous release; callers are
// expected to overwrite every field they care about, exactly as
// original_source's acquire() contract assumes.
func (p *Pool[T]) Acquire() *T {
	if len(p.free) == 0 {
		p.allocateBlock()
	}
	n := len(p.free) - 1
	obj := p.free[n]
	p.free[n] = nil
	p.free = p.free[:n]
	return obj
}

// Release returns obj to the freelist for reuse by a later Acquire. It
// does not zero obj; the pool never shrinks.
func (p *Pool[T]) Release(obj *T) {
	p.free = append(p.free, obj)
}

// Capacity returns the total number of objects ever allocated by the pool.
func (p *Pool[T]) Capacity() int {
	return len(p.blocks) * p.blockSize
}

// Available returns the number of objects currently sitting on the freelist.
func (p *Pool[T]) Available() int {
	return len(p.free)
}
