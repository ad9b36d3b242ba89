// Package dict implement an ordered dictionary of key,value pairs based
// on golang map. Primarily meant as reference for testing more useful
// data structures.
package dict

import "cmp"
import "fmt"
import "sort"

import "github.com/bnclabs/llrbmap/api"

// Dict is a reference data structure, for validation purpose.
type Dict[K comparable, V any] struct {
	id       string
	compare  func(K, K) int
	dict     map[K]V
	sortkeys []K
	dirty    bool // sortkeys is stale.
	dead     bool
}

// NewDict create a new golang map for indexing key,value, keys are
// sorted using cmp.Compare.
func NewDict[K cmp.Ordered, V any](id string) *Dict[K, V] {
	return NewDictFunc[K, V](id, cmp.Compare[K])
}

// NewDictFunc create a new golang map for indexing key,value, keys are
// sorted using compare.
func NewDictFunc[K comparable, V any](id string, compare func(K, K) int) *Dict[K, V] {
	return &Dict[K, V]{
		id:       id,
		compare:  compare,
		dict:     make(map[K]V),
		sortkeys: make([]K, 0, 1024),
	}
}

//---- api.IndexMeta{} interface.

// ID implement api.IndexMeta{} interface.
func (d *Dict[K, V]) ID() string {
	return d.id
}

// Count implement api.IndexMeta{} interface.
func (d *Dict[K, V]) Count() int64 {
	d.assertalive()
	return int64(len(d.dict))
}

// Validate implement api.IndexMeta{} interface, check the sort order of
// keys.
func (d *Dict[K, V]) Validate() error {
	d.assertalive()
	keys := d.sorted()
	for i := 1; i < len(keys); i++ {
		if d.compare(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("dict.Validate(): %v >= %v", keys[i-1], keys[i])
		}
	}
	if len(keys) != len(d.dict) {
		return fmt.Errorf("dict.Validate(): %v keys, %v entries", len(keys), len(d.dict))
	}
	return nil
}

// Destroy implement api.IndexMeta{} interface.
func (d *Dict[K, V]) Destroy() error {
	if d.dead {
		return api.ErrorDeadIndex
	}
	d.dead = true
	d.dict, d.sortkeys = nil, nil
	return nil
}

//---- api.IndexReader{} interface.

// Has implement api.IndexReader{} interface.
func (d *Dict[K, V]) Has(key K) bool {
	d.assertalive()
	_, ok := d.dict[key]
	return ok
}

// Get implement api.IndexReader{} interface.
func (d *Dict[K, V]) Get(key K) (value V, ok bool) {
	d.assertalive()
	value, ok = d.dict[key]
	return value, ok
}

// Min implement api.IndexReader{} interface.
func (d *Dict[K, V]) Min() (key K, value V, ok bool) {
	return d.Select(0)
}

// Max implement api.IndexReader{} interface.
func (d *Dict[K, V]) Max() (key K, value V, ok bool) {
	return d.Select(d.Count() - 1)
}

// Floor implement api.IndexReader{} interface.
func (d *Dict[K, V]) Floor(key K) (fkey K, value V, ok bool) {
	d.assertalive()
	keys := d.sorted()
	// first index whose key is > key.
	i := sort.Search(len(keys), func(i int) bool {
		return d.compare(keys[i], key) > 0
	})
	if i == 0 {
		return fkey, value, false
	}
	fkey = keys[i-1]
	return fkey, d.dict[fkey], true
}

// Ceiling implement api.IndexReader{} interface.
func (d *Dict[K, V]) Ceiling(key K) (ckey K, value V, ok bool) {
	d.assertalive()
	keys := d.sorted()
	i := sort.Search(len(keys), func(i int) bool {
		return d.compare(keys[i], key) >= 0
	})
	if i == len(keys) {
		return ckey, value, false
	}
	ckey = keys[i]
	return ckey, d.dict[ckey], true
}

// Select implement api.IndexReader{} interface.
func (d *Dict[K, V]) Select(k int64) (key K, value V, ok bool) {
	d.assertalive()
	keys := d.sorted()
	if k < 0 || k >= int64(len(keys)) {
		return key, value, false
	}
	key = keys[k]
	return key, d.dict[key], true
}

// Rank implement api.IndexReader{} interface.
func (d *Dict[K, V]) Rank(key K) int64 {
	d.assertalive()
	keys := d.sorted()
	i := sort.Search(len(keys), func(i int) bool {
		return d.compare(keys[i], key) >= 0
	})
	return int64(i)
}

//---- api.IndexWriter{} interface.

// Set implement api.IndexWriter{} interface.
func (d *Dict[K, V]) Set(key K, value V) (old V, updated bool) {
	d.assertalive()
	old, updated = d.dict[key]
	d.dict[key] = value
	if !updated {
		d.dirty = true
	}
	return old, updated
}

// Delete implement api.IndexWriter{} interface.
func (d *Dict[K, V]) Delete(key K) (value V, ok bool) {
	d.assertalive()
	if value, ok = d.dict[key]; ok {
		delete(d.dict, key)
		d.dirty = true
	}
	return value, ok
}

// DeleteMin implement api.IndexWriter{} interface.
func (d *Dict[K, V]) DeleteMin() (key K, value V, ok bool) {
	if key, value, ok = d.Min(); ok {
		d.Delete(key)
	}
	return key, value, ok
}

// DeleteMax implement api.IndexWriter{} interface.
func (d *Dict[K, V]) DeleteMax() (key K, value V, ok bool) {
	if key, value, ok = d.Max(); ok {
		d.Delete(key)
	}
	return key, value, ok
}

//---- local functions

func (d *Dict[K, V]) sorted() []K {
	if !d.dirty {
		return d.sortkeys
	}
	d.sortkeys = d.sortkeys[:0]
	for key := range d.dict {
		d.sortkeys = append(d.sortkeys, key)
	}
	sort.Slice(d.sortkeys, func(i, j int) bool {
		return d.compare(d.sortkeys[i], d.sortkeys[j]) < 0
	})
	d.dirty = false
	return d.sortkeys
}

func (d *Dict[K, V]) assertalive() {
	if d.dead {
		panic(fmt.Errorf("dict %v: %w", d.id, api.ErrorDeadIndex))
	}
}
