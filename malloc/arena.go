package malloc

import "sort"
import "unsafe"

import "github.com/bnclabs/llrbmap/lib"

// Arena of fixed size objects of type T, implements Mallocer
// interface. Objects are carved out of pools, pools are allocated
// on demand until arena capacity is exhausted.
type Arena[T any] struct {
	slotsize  uintptr
	capacity  int64 // arena capacity in bytes.
	pcapacity int64 // number of objects per pool.
	maxpools  int64

	pools     []*poolflist[T] // sorted by base address.
	freepools []*poolflist[T] // pools with atleast one free slot.
	allocated int64           // number of objects handed out.
}

// NewArena create a new arena of T objects, setts is mixed over
// Defaultsettings(). Refer to Defaultsettings() for settings.
func NewArena[T any](setts lib.Settings) *Arena[T] {
	setts = Defaultsettings().Mixin(setts)
	arena := &Arena[T]{
		slotsize:  unsafe.Sizeof(*new(T)),
		capacity:  setts.Int64("capacity"),
		pcapacity: setts.Int64("pool.capacity"),
		maxpools:  setts.Int64("maxpools"),
	}
	if arena.slotsize == 0 {
		panicerr("cannot allocate zero sized objects")
	} else if arena.capacity <= 0 || arena.capacity > Maxarenasize {
		panicerr("arena capacity %v out of range (0, %v]", arena.capacity, Maxarenasize)
	} else if arena.pcapacity <= 0 || arena.pcapacity > Maxchunks {
		panicerr("pool.capacity %v out of range (0, %v]", arena.pcapacity, Maxchunks)
	} else if arena.maxpools <= 0 || arena.maxpools > Maxpools {
		panicerr("maxpools %v out of range (0, %v]", arena.maxpools, Maxpools)
	}
	arena.pools = make([]*poolflist[T], 0, 8)
	arena.freepools = make([]*poolflist[T], 0, 8)
	return arena
}

//---- operations

// Alloc implement Mallocer{} interface.
func (arena *Arena[T]) Alloc() *T {
	for ln := len(arena.freepools); ln > 0; ln = len(arena.freepools) {
		pool := arena.freepools[ln-1]
		if ptr, ok := pool.alloc(); ok {
			if pool.isfull() {
				arena.freepools, pool.infree = arena.freepools[:ln-1], false
			}
			arena.allocated++
			return ptr
		}
		arena.freepools, pool.infree = arena.freepools[:ln-1], false
	}

	pool := arena.newpool()
	ptr, _ := pool.alloc()
	if !pool.isfull() {
		arena.freepools, pool.infree = append(arena.freepools, pool), true
	}
	arena.allocated++
	return ptr
}

// Free implement Mallocer{} interface.
func (arena *Arena[T]) Free(ptr *T) {
	if ptr == nil {
		panicerr("free on nil pointer")
	}
	pool, idx := arena.findpool(uintptr(unsafe.Pointer(ptr)))
	if pool == nil {
		panicerr("pointer %p not allocated from this arena", ptr)
	}
	pool.free(ptr, arena.slotsize)
	arena.allocated--

	if pool.isempty() && len(arena.pools) > 1 {
		arena.droppool(pool, idx)
		return
	}
	if !pool.infree {
		arena.freepools, pool.infree = append(arena.freepools, pool), true
	}
}

// Release implement Mallocer{} interface.
func (arena *Arena[T]) Release() {
	arena.pools, arena.freepools, arena.allocated = nil, nil, 0
}

//---- statistics and maintenance

// Slabsize implement Mallocer{} interface.
func (arena *Arena[T]) Slabsize() int64 {
	return int64(arena.slotsize)
}

// Memory implement Mallocer{} interface.
func (arena *Arena[T]) Memory() (overhead, useful int64) {
	self := int64(unsafe.Sizeof(*arena))
	ptrsize := int64(unsafe.Sizeof(uintptr(0)))
	overhead = self + int64(cap(arena.pools)+cap(arena.freepools))*ptrsize
	for _, pool := range arena.pools {
		overhead += int64(unsafe.Sizeof(*pool)) + int64(cap(pool.freelist)*2)
		useful += pool.capacity() * int64(arena.slotsize)
	}
	return overhead, useful
}

// Allocated implement Mallocer{} interface.
func (arena *Arena[T]) Allocated() int64 {
	return arena.allocated * int64(arena.slotsize)
}

// Available implement Mallocer{} interface.
func (arena *Arena[T]) Available() int64 {
	return arena.capacity - arena.Allocated()
}

// Chunksizes implement Mallocer{} interface.
func (arena *Arena[T]) Chunksizes() []int64 {
	return []int64{int64(arena.slotsize)}
}

// Utilization implement Mallocer{} interface.
func (arena *Arena[T]) Utilization() ([]int, []float64) {
	_, useful := arena.Memory()
	ufactor := 0.0
	if useful > 0 {
		ufactor = float64(arena.Allocated()) / float64(useful) * 100
	}
	return []int{int(arena.slotsize)}, []float64{ufactor}
}

//---- local functions

func (arena *Arena[T]) newpool() *poolflist[T] {
	npools := int64(len(arena.pools))
	poolsize := arena.pcapacity * int64(arena.slotsize)
	if npools >= arena.maxpools {
		panicerr("%w: exceeding %v pools", ErrorOutofMemory, arena.maxpools)
	} else if (npools+1)*poolsize > arena.capacity {
		panicerr("%w: exceeding capacity %v", ErrorOutofMemory, arena.capacity)
	}
	pool := newpoolflist[T](arena.pcapacity)
	idx := sort.Search(len(arena.pools), func(i int) bool {
		return arena.pools[i].base > pool.base
	})
	arena.pools = append(arena.pools, nil)
	copy(arena.pools[idx+1:], arena.pools[idx:])
	arena.pools[idx] = pool
	return pool
}

func (arena *Arena[T]) findpool(ptr uintptr) (*poolflist[T], int) {
	// first pool whose base is beyond ptr, candidate is the one before.
	idx := sort.Search(len(arena.pools), func(i int) bool {
		return arena.pools[i].base > ptr
	})
	if idx == 0 {
		return nil, -1
	}
	pool := arena.pools[idx-1]
	if !pool.contains(ptr, arena.slotsize) {
		return nil, -1
	}
	return pool, idx - 1
}

func (arena *Arena[T]) droppool(pool *poolflist[T], idx int) {
	copy(arena.pools[idx:], arena.pools[idx+1:])
	arena.pools[len(arena.pools)-1] = nil
	arena.pools = arena.pools[:len(arena.pools)-1]
	if pool.infree {
		for i, fpool := range arena.freepools {
			if fpool == pool {
				copy(arena.freepools[i:], arena.freepools[i+1:])
				arena.freepools[len(arena.freepools)-1] = nil
				arena.freepools = arena.freepools[:len(arena.freepools)-1]
				break
			}
		}
		pool.infree = false
	}
}
