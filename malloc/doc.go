// Package malloc supplies slab allocation of fixed size objects for
// in-memory data structures, with a limited scope:
//
//   - Types and functions exported by this package are not thread safe.
//   - Objects are allocated from pools, each pool is a golang slice of
//     `pool.capacity` objects, and a pool manages its free slots using
//     a free-list.
//   - Pools that become completely free are given back to the garbage
//     collector, as long as the arena is left with at least one pool.
//   - Arena cannot grow beyond its configured capacity, in bytes.
//     Exceeding it is a fatal condition and panics with ErrorOutofMemory.
//   - There is no pointer re-write. Pointers handed out by Alloc() stay
//     valid until they are passed to Free() or the arena is Released.
//
// Applications can also choose the "heap" allocator, that simply
// allocates every object from golang heap while keeping the same
// book-keeping.
package malloc
