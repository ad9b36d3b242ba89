package malloc

import "unsafe"

// poolflist manage a slab of `n` objects, free slots are tracked by a
// stack of 16-bit offsets.
type poolflist[T any] struct {
	slab     []T
	base     uintptr
	freelist []uint16
	infree   bool // pool is referred by arena's free-pool stack.
}

func newpoolflist[T any](n int64) *poolflist[T] {
	if n <= 0 || n > Maxchunks {
		panicerr("pool capacity %v out of range (0, %v]", n, Maxchunks)
	}
	pool := &poolflist[T]{
		slab:     make([]T, n),
		freelist: make([]uint16, n),
	}
	pool.base = uintptr(unsafe.Pointer(&pool.slab[0]))
	// lower slots are handed out first.
	for i := range pool.freelist {
		pool.freelist[i] = uint16(n - 1 - int64(i))
	}
	return pool
}

func (pool *poolflist[T]) alloc() (*T, bool) {
	ln := len(pool.freelist)
	if ln == 0 {
		return nil, false
	}
	off := pool.freelist[ln-1]
	pool.freelist = pool.freelist[:ln-1]
	return &pool.slab[off], true
}

func (pool *poolflist[T]) free(ptr *T, slotsize uintptr) {
	diff := uintptr(unsafe.Pointer(ptr)) - pool.base
	if (diff % slotsize) != 0 {
		panicerr("pointer %p not aligned to slot", ptr)
	}
	off := diff / slotsize
	var zero T
	pool.slab[off] = zero
	pool.freelist = append(pool.freelist, uint16(off))
}

func (pool *poolflist[T]) contains(ptr uintptr, slotsize uintptr) bool {
	return ptr >= pool.base && ptr < pool.base+(uintptr(len(pool.slab))*slotsize)
}

func (pool *poolflist[T]) capacity() int64 {
	return int64(len(pool.slab))
}

func (pool *poolflist[T]) allocated() int64 {
	return int64(len(pool.slab) - len(pool.freelist))
}

func (pool *poolflist[T]) isfull() bool {
	return len(pool.freelist) == 0
}

func (pool *poolflist[T]) isempty() bool {
	return len(pool.freelist) == len(pool.slab)
}
