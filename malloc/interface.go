package malloc

// Mallocer interface for allocating fixed size objects of type T.
type Mallocer[T any] interface {
	// Alloc return a pointer to a zero-initialized object.
	Alloc() *T

	// Free an object obtained from Alloc. Object is zeroed, so that it
	// does not keep other objects alive.
	Free(ptr *T)

	// Release all pools, mallocer cannot be used after this call.
	Release()

	// Slabsize return the size of each object in bytes.
	Slabsize() int64

	// Memory return memory allocated for managing pools, and memory
	// allocated to hold objects.
	Memory() (overhead, useful int64)

	// Allocated return memory, from `useful` memory, handed out to
	// application.
	Allocated() int64

	// Available return memory that can still be allocated before
	// reaching capacity.
	Available() int64

	// Chunksizes return the list of object sizes managed.
	Chunksizes() []int64

	// Utilization return a list of object sizes and the percentage of
	// allocated memory for each size.
	Utilization() ([]int, []float64)
}
