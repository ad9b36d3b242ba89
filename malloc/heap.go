package malloc

import "unsafe"

// Heap allocate every object from golang heap and count them, to be
// used when the application prefers garbage collection over a
// capacity bound arena.
type Heap[T any] struct {
	slotsize  int64
	allocated int64
}

// NewHeap return a heap allocator for type T.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{slotsize: int64(unsafe.Sizeof(*new(T)))}
}

// Alloc implement Mallocer{} interface.
func (h *Heap[T]) Alloc() *T {
	h.allocated++
	return new(T)
}

// Free implement Mallocer{} interface.
func (h *Heap[T]) Free(ptr *T) {
	if ptr == nil {
		panicerr("free on nil pointer")
	}
	var zero T
	*ptr = zero
	h.allocated--
}

// Release implement Mallocer{} interface.
func (h *Heap[T]) Release() {
	h.allocated = 0
}

// Slabsize implement Mallocer{} interface.
func (h *Heap[T]) Slabsize() int64 {
	return h.slotsize
}

// Memory implement Mallocer{} interface.
func (h *Heap[T]) Memory() (overhead, useful int64) {
	return int64(unsafe.Sizeof(*h)), h.Allocated()
}

// Allocated implement Mallocer{} interface.
func (h *Heap[T]) Allocated() int64 {
	return h.allocated * h.slotsize
}

// Available implement Mallocer{} interface, heap is bound only by
// Maxarenasize.
func (h *Heap[T]) Available() int64 {
	return Maxarenasize - h.Allocated()
}

// Chunksizes implement Mallocer{} interface.
func (h *Heap[T]) Chunksizes() []int64 {
	return []int64{h.slotsize}
}

// Utilization implement Mallocer{} interface.
func (h *Heap[T]) Utilization() ([]int, []float64) {
	ufactor := 0.0
	if h.allocated > 0 {
		ufactor = 100
	}
	return []int{int(h.slotsize)}, []float64{ufactor}
}
