// Package llrb implement an ordered map using left-leaning-red-black
// tree, a variant of red-black tree where red links are constrained to
// the left child. Apart from the usual map operations, the tree keeps
// subtree sizes in every node, so that order statistics like Select and
// Rank can be computed in O(log n) time.
//
// Nodes are allocated from a typed slab arena, refer to package malloc.
// Use "nodearena.allocator" settings to choose between the slab arena
// and golang heap.
//
// Instances are not thread safe, applications sharing a tree across
// go-routines must serialize access to it.
package llrb
