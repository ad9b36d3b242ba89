// Package api define types and interfaces common to all ordered index
// implementations in this module.
package api

// IndexMeta methods to introspect an index instance.
type IndexMeta interface {
	// ID return the name of the index instance.
	ID() string

	// Count return number of entries indexed.
	Count() int64

	// Validate walks the index to check its structural invariants,
	// return the first violation as error.
	Validate() error

	// Destroy release resources held by the index. Calling any other
	// method on a destroyed index will panic.
	Destroy() error
}

// IndexReader methods to read entries from an ordered index. None of
// the methods shall fail, missing entries are reported with ok=false.
type IndexReader[K, V any] interface {
	// Has return true if key is indexed.
	Has(key K) bool

	// Get value for key.
	Get(key K) (value V, ok bool)

	// Min return the entry with smallest key.
	Min() (key K, value V, ok bool)

	// Max return the entry with largest key.
	Max() (key K, value V, ok bool)

	// Floor return the entry with largest key that is <= `key`.
	Floor(key K) (fkey K, value V, ok bool)

	// Ceiling return the entry with smallest key that is >= `key`.
	Ceiling(key K) (ckey K, value V, ok bool)

	// Select return the entry at position `k` in sort order, 0 based.
	Select(k int64) (key K, value V, ok bool)

	// Rank return number of keys strictly less than `key`.
	Rank(key K) int64
}

// IndexWriter methods to mutate an ordered index.
type IndexWriter[K, V any] interface {
	// Set value for key, if key is already present its value is replaced
	// and the old value is returned with updated=true.
	Set(key K, value V) (old V, updated bool)

	// Delete key from index, return the deleted value with ok=true.
	// Deleting a missing key is a no-op.
	Delete(key K) (value V, ok bool)

	// DeleteMin remove the entry with smallest key, ok=false if index
	// is empty.
	DeleteMin() (key K, value V, ok bool)

	// DeleteMax remove the entry with largest key, ok=false if index
	// is empty.
	DeleteMax() (key K, value V, ok bool)
}

// Index is an ordered map of key,value entries.
type Index[K, V any] interface {
	IndexMeta
	IndexReader[K, V]
	IndexWriter[K, V]
}
