package llrb

// ---- api.IndexReader interface

// Has implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Has(key K) bool {
	llrb.assertalive()
	llrb.n_lookups++
	return llrb.getnode(key) != nil
}

// Get implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Get(key K) (value V, ok bool) {
	llrb.assertalive()
	llrb.n_lookups++
	if nd := llrb.getnode(key); nd != nil {
		return nd.value, true
	}
	return value, false
}

// Min implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Min() (key K, value V, ok bool) {
	llrb.assertalive()
	if nd := getmin(llrb.root); nd != nil {
		return nd.key, nd.value, true
	}
	return key, value, false
}

// Max implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Max() (key K, value V, ok bool) {
	llrb.assertalive()
	if nd := getmax(llrb.root); nd != nil {
		return nd.key, nd.value, true
	}
	return key, value, false
}

// Floor implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Floor(key K) (fkey K, value V, ok bool) {
	llrb.assertalive()
	if nd := llrb.floor(llrb.root, key); nd != nil {
		return nd.key, nd.value, true
	}
	return fkey, value, false
}

// Ceiling implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Ceiling(key K) (ckey K, value V, ok bool) {
	llrb.assertalive()
	if nd := llrb.ceiling(llrb.root, key); nd != nil {
		return nd.key, nd.value, true
	}
	return ckey, value, false
}

// Select implement api.IndexReader interface. k is zero based, for
// k outside [0, Count()) ok is false.
func (llrb *LLRB[K, V]) Select(k int64) (key K, value V, ok bool) {
	llrb.assertalive()
	if nd := selectnode(llrb.root, k); nd != nil {
		return nd.key, nd.value, true
	}
	return key, value, false
}

// Rank implement api.IndexReader interface.
func (llrb *LLRB[K, V]) Rank(key K) int64 {
	llrb.assertalive()
	return llrb.rank(llrb.root, key)
}

//---- local functions

func (llrb *LLRB[K, V]) getnode(key K) *llrbnode[K, V] {
	nd := llrb.root
	for nd != nil {
		if cmpval := llrb.compare(key, nd.key); cmpval < 0 {
			nd = nd.left
		} else if cmpval > 0 {
			nd = nd.right
		} else {
			return nd
		}
	}
	return nil
}

func getmin[K, V any](nd *llrbnode[K, V]) *llrbnode[K, V] {
	if nd == nil {
		return nil
	}
	for nd.left != nil {
		nd = nd.left
	}
	return nd
}

func getmax[K, V any](nd *llrbnode[K, V]) *llrbnode[K, V] {
	if nd == nil {
		return nil
	}
	for nd.right != nil {
		nd = nd.right
	}
	return nd
}

// largest node whose key is <= key, nil if all keys are greater.
func (llrb *LLRB[K, V]) floor(nd *llrbnode[K, V], key K) *llrbnode[K, V] {
	if nd == nil {
		return nil
	}
	cmpval := llrb.compare(key, nd.key)
	if cmpval == 0 {
		return nd
	} else if cmpval < 0 {
		return llrb.floor(nd.left, key)
	}
	if fnd := llrb.floor(nd.right, key); fnd != nil {
		return fnd
	}
	return nd
}

// smallest node whose key is >= key, nil if all keys are smaller.
func (llrb *LLRB[K, V]) ceiling(nd *llrbnode[K, V], key K) *llrbnode[K, V] {
	if nd == nil {
		return nil
	}
	cmpval := llrb.compare(key, nd.key)
	if cmpval == 0 {
		return nd
	} else if cmpval > 0 {
		return llrb.ceiling(nd.right, key)
	}
	if cnd := llrb.ceiling(nd.left, key); cnd != nil {
		return cnd
	}
	return nd
}

func selectnode[K, V any](nd *llrbnode[K, V], k int64) *llrbnode[K, V] {
	if k < 0 || k >= size(nd) {
		return nil
	}
	for nd != nil {
		t := size(nd.left)
		if k < t {
			nd = nd.left
		} else if k > t {
			nd, k = nd.right, k-t-1
		} else {
			return nd
		}
	}
	return nil
}

func (llrb *LLRB[K, V]) rank(nd *llrbnode[K, V], key K) (r int64) {
	for nd != nil {
		if cmpval := llrb.compare(key, nd.key); cmpval < 0 {
			nd = nd.left
		} else if cmpval > 0 {
			r, nd = r+size(nd.left)+1, nd.right
		} else {
			return r + size(nd.left)
		}
	}
	return r
}

func height[K, V any](nd *llrbnode[K, V]) int64 {
	if nd == nil {
		return 0
	}
	lh, rh := height(nd.left), height(nd.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}
