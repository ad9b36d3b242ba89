package llrb

import "fmt"
import "strings"
import "encoding/json"

import gohumanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/llrbmap/lib"
import "github.com/bnclabs/llrbmap/log"

type llrbstats struct { // 64-bit aligned statistics
	n_count    int64
	n_lookups  int64
	n_inserts  int64
	n_updates  int64
	n_deletes  int64
	n_nodes    int64
	n_frees    int64
	n_clones   int64
	n_rotleft  int64
	n_rotright int64
	n_flips    int64
}

func (llrb *LLRB[K, V]) stats() map[string]interface{} {
	stats := llrb.statsmem(map[string]interface{}{})
	stats = llrb.stattree(stats)
	stats["h_upsertdepth"] = llrb.h_upsertdepth.Fullstats()
	return stats
}

func (llrb *LLRB[K, V]) fullstats() map[string]interface{} {
	stats := llrb.stats()
	h_height := lib.NewhistorgramInt64(1, 256, 1)
	heightstats(llrb.root, 1 /*depth*/, h_height)
	stats["h_height"] = h_height.Fullstats()
	stats["n_blacks"] = countblacks(llrb.root)
	return stats
}

// memory statistics for node-arena.
func (llrb *LLRB[K, V]) statsmem(stats map[string]interface{}) map[string]interface{} {
	overhead, useful := llrb.nodearena.Memory()
	stats["node.overhead"] = overhead
	stats["node.useful"] = useful
	stats["node.allocated"] = llrb.nodearena.Allocated()
	stats["node.available"] = llrb.nodearena.Available()
	stats["node.blocks"] = llrb.nodearena.Chunksizes()
	stats["node.capacity"] = llrb.capacity
	return stats
}

// tree statistics -
func (llrb *LLRB[K, V]) stattree(stats map[string]interface{}) map[string]interface{} {
	stats["n_count"] = llrb.n_count
	stats["n_lookups"] = llrb.n_lookups
	stats["n_inserts"] = llrb.n_inserts
	stats["n_updates"] = llrb.n_updates
	stats["n_deletes"] = llrb.n_deletes
	stats["n_nodes"] = llrb.n_nodes
	stats["n_frees"] = llrb.n_frees
	stats["n_clones"] = llrb.n_clones
	stats["n_rotleft"] = llrb.n_rotleft
	stats["n_rotright"] = llrb.n_rotright
	stats["n_flips"] = llrb.n_flips
	return stats
}

func (llrb *LLRB[K, V]) log(humanize bool) {
	stats := llrb.fullstats()

	dohumanize := func(val interface{}) interface{} {
		if humanize {
			return gohumanize.Bytes(uint64(val.(int64)))
		}
		return val.(int64)
	}
	overh := dohumanize(stats["node.overhead"])
	use := dohumanize(stats["node.useful"])
	alloc := dohumanize(stats["node.allocated"])
	avail := dohumanize(stats["node.available"])
	fmsg := "%v nodemem: %v useful, overhd %v allocated %v avail %v\n"
	log.Infof(fmsg, llrb.logprefix, use, overh, alloc, avail)

	// node utilization
	outs := []string{}
	fmsg = "  %4v chunk-size, utilz: %2.2f%%"
	sizes, zs := llrb.nodearena.Utilization()
	for i, size := range sizes {
		outs = append(outs, fmt.Sprintf(fmsg, size, zs[i]))
	}
	out := strings.Join(outs, "\n")
	log.Infof("%v node utilization:\n%v\n", llrb.logprefix, out)

	// depth histograms
	fmsg = "%v h_upsertdepth %v\n"
	log.Infof(fmsg, llrb.logprefix, llrb.h_upsertdepth.Logstring())
	h_height := lib.NewhistorgramInt64(1, 256, 1)
	heightstats(llrb.root, 1 /*depth*/, h_height)
	log.Infof("%v h_height %v\n", llrb.logprefix, h_height.Logstring())

	// log statistics
	text, err := json.Marshal(stats)
	if err != nil {
		panic(fmt.Errorf("log(): %v", err))
	}
	log.Infof("%v stats %v\n", llrb.logprefix, string(text))
}

func heightstats[K, V any](nd *llrbnode[K, V], depth int64, h *lib.HistogramInt64) {
	if nd == nil {
		return
	}
	h.Add(depth)
	heightstats(nd.left, depth+1, h)
	heightstats(nd.right, depth+1, h)
}

// number of black links from root to the leftmost leaf.
func countblacks[K, V any](nd *llrbnode[K, V]) (blacks int64) {
	for ; nd != nil; nd = nd.left {
		if !isred(nd) {
			blacks++
		}
	}
	return blacks
}
