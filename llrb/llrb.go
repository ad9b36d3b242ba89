package llrb

import "cmp"
import "fmt"
import "io"
import "strings"
import "time"

import "github.com/bnclabs/llrbmap/api"
import "github.com/bnclabs/llrbmap/lib"
import "github.com/bnclabs/llrbmap/malloc"
import humanize "github.com/dustin/go-humanize"

// LLRB manage a single instance of in-memory ordered map using
// left-leaning-red-black tree.
type LLRB[K, V any] struct { // tree container
	// all are 64-bit aligned
	llrbstats
	h_upsertdepth *lib.HistogramInt64

	// can be unaligned fields

	name      string
	compare   func(K, K) int
	nodearena malloc.Mallocer[llrbnode[K, V]]
	root      *llrbnode[K, V]
	borntime  time.Time
	dead      bool

	// settings
	allocator string
	capacity  int64
	setts     lib.Settings
	logprefix string
}

// NewLLRB a new instance of ordered map, keys are compared using
// cmp.Compare. Refer to Defaultsettings() for settings, setts is mixed
// over the default settings.
func NewLLRB[K cmp.Ordered, V any](name string, setts lib.Settings) *LLRB[K, V] {
	return NewLLRBFunc[K, V](name, cmp.Compare[K], setts)
}

// NewLLRBFunc a new instance of ordered map for any key type, compare
// shall return -1, 0, +1 if the first key is less than, equal to or
// greater than the second key.
func NewLLRBFunc[K, V any](
	name string, compare func(K, K) int, setts lib.Settings) *LLRB[K, V] {

	if compare == nil {
		panic(fmt.Errorf("NewLLRBFunc(): nil compare for %q", name))
	}
	llrb := &LLRB[K, V]{name: name, compare: compare, borntime: time.Now()}
	llrb.logprefix = fmt.Sprintf("LLRB [%s]", name)

	setts = make(lib.Settings).Mixin(Defaultsettings(), setts)
	llrb.readsettings(setts)
	llrb.nodearena = llrb.newnodearena(setts)

	// statistics
	llrb.h_upsertdepth = lib.NewhistorgramInt64(10, 100, 10)

	infof("%v started ...\n", llrb.logprefix)
	llrb.logarenasettings()
	return llrb
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz. Red links are drawn in red.
func (llrb *LLRB[K, V]) Dotdump(buffer io.Writer) {
	llrb.assertalive()
	lines := []string{
		"digraph llrb {",
		"  node[shape=record];\n",
		"}\n",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	llrb.root.dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

// ---- api.IndexMeta{} interface

// ID implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) ID() string {
	return llrb.name
}

// Count implement api.IndexMeta interface.
func (llrb *LLRB[K, V]) Count() int64 {
	llrb.assertalive()
	return size(llrb.root)
}

// Height return the number of nodes on the longest path from root to
// a leaf, zero for an empty tree.
func (llrb *LLRB[K, V]) Height() int64 {
	llrb.assertalive()
	return height(llrb.root)
}

// Stats return a map of counters and arena statistics.
func (llrb *LLRB[K, V]) Stats() map[string]interface{} {
	llrb.assertalive()
	return llrb.stats()
}

// Fullstats return Stats along with h_height histogram and n_blacks,
// computed by walking the full tree.
func (llrb *LLRB[K, V]) Fullstats() map[string]interface{} {
	llrb.assertalive()
	return llrb.fullstats()
}

// Validate implement api.IndexMeta interface. Will walk the full tree
// to confirm the sort order, the red-black rules, subtree sizes and
// statistics.
func (llrb *LLRB[K, V]) Validate() error {
	llrb.assertalive()
	if err := llrb.validate(llrb.root); err != nil {
		warnf("%v Validate(): %v\n", llrb.logprefix, err)
		return err
	}
	debugf("%v Validate(): ok for %v entries\n", llrb.logprefix, size(llrb.root))
	return nil
}

// Log statistics, if humanize is true memory figures are printed in
// human readable form.
func (llrb *LLRB[K, V]) Log(humanize bool) {
	llrb.assertalive()
	llrb.log(humanize)
}

// Clone a new instance of LLRB, with its own node arena, holding the
// same set of entries.
func (llrb *LLRB[K, V]) Clone(name string) *LLRB[K, V] {
	llrb.assertalive()
	newllrb := NewLLRBFunc[K, V](name, llrb.compare, llrb.setts)
	newllrb.llrbstats = llrb.llrbstats
	newllrb.n_clones = 0
	newllrb.h_upsertdepth = llrb.h_upsertdepth.Clone()
	newllrb.root = newllrb.clonetree(llrb.root)
	debugf("%v cloned %v nodes\n", newllrb.logprefix, newllrb.n_clones)
	infof("%v cloned from %v\n", newllrb.logprefix, llrb.logprefix)
	return newllrb
}

// Destroy implement api.IndexMeta interface. Release the node arena,
// subsequent calls to Destroy return api.ErrorDeadIndex.
func (llrb *LLRB[K, V]) Destroy() error {
	if llrb.dead {
		return api.ErrorDeadIndex
	}
	debugf("%v destroying %v entries\n", llrb.logprefix, size(llrb.root))
	llrb.nodearena.Release()
	llrb.root, llrb.setts = nil, nil
	llrb.dead = true
	infof("%v destroyed\n", llrb.logprefix)
	return nil
}

// ---- api.IndexWriter interface

// Set implement api.IndexWriter interface. If key is already present
// its value is replaced and the old value is returned with updated
// as true.
func (llrb *LLRB[K, V]) Set(key K, value V) (old V, updated bool) {
	llrb.assertalive()

	root, old, updated := llrb.upsert(llrb.root, 1 /*depth*/, key, value)
	root.setblack()
	llrb.root = root
	llrb.upsertcounts(updated)
	return old, updated
}

func (llrb *LLRB[K, V]) upsert(
	nd *llrbnode[K, V], depth int64,
	key K, value V) (newnd *llrbnode[K, V], old V, updated bool) {

	if nd == nil {
		llrb.h_upsertdepth.Add(depth)
		return llrb.newnode(key, value), old, false
	}

	if cmpval := llrb.compare(key, nd.key); cmpval < 0 {
		nd.left, old, updated = llrb.upsert(nd.left, depth+1, key, value)
	} else if cmpval > 0 {
		nd.right, old, updated = llrb.upsert(nd.right, depth+1, key, value)
	} else {
		old, nd.value, updated = nd.value, value, true
		llrb.h_upsertdepth.Add(depth)
	}

	return llrb.fixup(nd), old, updated
}

// DeleteMin implement api.IndexWriter interface.
func (llrb *LLRB[K, V]) DeleteMin() (key K, value V, ok bool) {
	llrb.assertalive()
	if llrb.root == nil {
		return key, value, false
	}

	llrb.prepareroot()
	root, deleted := llrb.deletemin(llrb.root)
	llrb.setroot(root)

	key, value = deleted.key, deleted.value
	llrb.delcount()
	llrb.freenode(deleted)
	return key, value, true
}

// using 2-3 trees, return the new subtree and the node removed from it.
func (llrb *LLRB[K, V]) deletemin(
	nd *llrbnode[K, V]) (newnd, deleted *llrbnode[K, V]) {

	if nd == nil {
		return nil, nil
	}
	if nd.left == nil {
		return nil, nd
	}
	if !isred(nd.left) && !isred(nd.left.left) {
		nd = llrb.moveredleft(nd)
	}
	nd.left, deleted = llrb.deletemin(nd.left)
	return llrb.fixup(nd), deleted
}

// DeleteMax implement api.IndexWriter interface.
func (llrb *LLRB[K, V]) DeleteMax() (key K, value V, ok bool) {
	llrb.assertalive()
	if llrb.root == nil {
		return key, value, false
	}

	llrb.prepareroot()
	root, deleted := llrb.deletemax(llrb.root)
	llrb.setroot(root)

	key, value = deleted.key, deleted.value
	llrb.delcount()
	llrb.freenode(deleted)
	return key, value, true
}

// using 2-3 trees, return the new subtree and the node removed from it.
func (llrb *LLRB[K, V]) deletemax(
	nd *llrbnode[K, V]) (newnd, deleted *llrbnode[K, V]) {

	if nd == nil {
		return nil, nil
	}
	if isred(nd.left) {
		nd = llrb.rotateright(nd)
	}
	if nd.right == nil {
		return nil, nd
	}
	if !isred(nd.right) && !isred(nd.right.left) {
		nd = llrb.moveredright(nd)
	}
	nd.right, deleted = llrb.deletemax(nd.right)
	return llrb.fixup(nd), deleted
}

// Delete implement api.IndexWriter interface. Deleting a missing key
// leaves the tree unchanged.
func (llrb *LLRB[K, V]) Delete(key K) (value V, ok bool) {
	llrb.assertalive()
	if llrb.getnode(key) == nil {
		llrb.setroot(llrb.root)
		return value, false
	}

	llrb.prepareroot()
	root, value := llrb.delete(llrb.root, key)
	llrb.setroot(root)
	llrb.delcount()
	return value, true
}

// REQUIRE: key must be present in the subtree rooted at nd.
func (llrb *LLRB[K, V]) delete(
	nd *llrbnode[K, V], key K) (newnd *llrbnode[K, V], value V) {

	if llrb.compare(key, nd.key) < 0 {
		if !isred(nd.left) && !isred(nd.left.left) {
			nd = llrb.moveredleft(nd)
		}
		nd.left, value = llrb.delete(nd.left, key)

	} else {
		if isred(nd.left) {
			nd = llrb.rotateright(nd)
		}
		// key equals nd.key and no right child, nd is a leaf.
		if llrb.compare(key, nd.key) == 0 && nd.right == nil {
			value = nd.value
			llrb.freenode(nd)
			return nil, value
		}
		if !isred(nd.right) && !isred(nd.right.left) {
			nd = llrb.moveredright(nd)
		}
		if llrb.compare(key, nd.key) == 0 {
			// replace with in-order successor, and remove successor
			// from the right subtree.
			value = nd.value
			var successor *llrbnode[K, V]
			nd.right, successor = llrb.deletemin(nd.right)
			if successor == nil {
				panic(fmt.Errorf("delete(): missing successor for %v", key))
			}
			nd.key, nd.value = successor.key, successor.value
			llrb.freenode(successor)

		} else {
			nd.right, value = llrb.delete(nd.right, key)
		}
	}
	return llrb.fixup(nd), value
}

// rotation routines for 2-3 algorithm

func (llrb *LLRB[K, V]) prepareroot() {
	if root := llrb.root; !isred(root.left) && !isred(root.right) {
		root.setred()
	}
}

func (llrb *LLRB[K, V]) setroot(root *llrbnode[K, V]) {
	if root != nil {
		root.setblack()
	}
	llrb.root = root
}

func (llrb *LLRB[K, V]) walkuprot23(nd *llrbnode[K, V]) *llrbnode[K, V] {
	if isred(nd.right) && !isred(nd.left) {
		nd = llrb.rotateleft(nd)
	}
	if isred(nd.left) && isred(nd.left.left) {
		nd = llrb.rotateright(nd)
	}
	if isred(nd.left) && isred(nd.right) {
		llrb.flip(nd)
	}
	return nd
}

func (llrb *LLRB[K, V]) rotateleft(nd *llrbnode[K, V]) *llrbnode[K, V] {
	y := nd.right
	if y.isblack() {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.right = y.left
	y.left = nd
	y.black = nd.black
	nd.setred()
	y.n = nd.n
	nd.updatesize()
	llrb.n_rotleft++
	return y
}

func (llrb *LLRB[K, V]) rotateright(nd *llrbnode[K, V]) *llrbnode[K, V] {
	x := nd.left
	if x.isblack() {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.left = x.right
	x.right = nd
	x.black = nd.black
	nd.setred()
	x.n = nd.n
	nd.updatesize()
	llrb.n_rotright++
	return x
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB[K, V]) flip(nd *llrbnode[K, V]) {
	nd.left.togglelink()
	nd.right.togglelink()
	nd.togglelink()
	llrb.n_flips++
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB[K, V]) moveredleft(nd *llrbnode[K, V]) *llrbnode[K, V] {
	llrb.flip(nd)
	if isred(nd.right.left) {
		nd.right = llrb.rotateright(nd.right)
		nd = llrb.rotateleft(nd)
		llrb.flip(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (llrb *LLRB[K, V]) moveredright(nd *llrbnode[K, V]) *llrbnode[K, V] {
	llrb.flip(nd)
	if isred(nd.left.left) {
		nd = llrb.rotateright(nd)
		llrb.flip(nd)
	}
	return nd
}

func (llrb *LLRB[K, V]) fixup(nd *llrbnode[K, V]) *llrbnode[K, V] {
	return llrb.walkuprot23(nd).updatesize()
}

//---- local functions

func (llrb *LLRB[K, V]) assertalive() {
	if llrb.dead {
		panic(fmt.Errorf("%v %w", llrb.logprefix, api.ErrorDeadIndex))
	}
}

func (llrb *LLRB[K, V]) newnode(key K, value V) *llrbnode[K, V] {
	nd := llrb.nodearena.Alloc()
	nd.key, nd.value, nd.n = key, value, 1
	nd.left, nd.right = nil, nil
	nd.setred()
	llrb.n_nodes++
	return nd
}

func (llrb *LLRB[K, V]) freenode(nd *llrbnode[K, V]) {
	if nd != nil {
		llrb.nodearena.Free(nd)
		llrb.n_frees++
	}
}

func (llrb *LLRB[K, V]) clonetree(nd *llrbnode[K, V]) *llrbnode[K, V] {
	if nd == nil {
		return nil
	}

	newnd := llrb.nodearena.Alloc()
	*newnd = *nd
	llrb.n_clones++

	newnd.left = llrb.clonetree(nd.left)
	newnd.right = llrb.clonetree(nd.right)
	return newnd
}

func (llrb *LLRB[K, V]) upsertcounts(updated bool) {
	if updated {
		llrb.n_updates++
		return
	}
	llrb.n_count++
	llrb.n_inserts++
}

func (llrb *LLRB[K, V]) delcount() {
	llrb.n_count--
	llrb.n_deletes++
}

func (llrb *LLRB[K, V]) logarenasettings() {
	stats := llrb.statsmem(make(map[string]interface{}))
	blocks := stats["node.blocks"].([]int64)
	cp := humanize.Bytes(uint64(llrb.capacity))
	fmsg := "%v node arena %q %v blocks of %v bytes cap %v\n"
	infof(fmsg, llrb.logprefix, llrb.allocator, len(blocks), blocks, cp)
}
