package llrb

import "fmt"

import "github.com/bnclabs/llrbmap/api"
import "github.com/bnclabs/llrbmap/lib"
import "github.com/bnclabs/llrbmap/malloc"
import sigar "github.com/cloudfoundry/gosigar"

// Defaultsettings for llrb instance.
//
// "nodearena.allocator" (string, default: "flist")
//		Allocator for tree nodes, "flist" use a slab arena with
//		free-lists, "heap" use golang heap.
//
// "nodearena.capacity" (int64, default: free system memory)
//		Maximum memory, in bytes, that can be used for tree nodes.
//
// "nodearena.pool.capacity" (int64, default: 1024)
//		Number of nodes carved out of a single pool.
//
// "nodearena.maxpools" (int64, default: malloc.Maxpools)
//		Maximum number of pools for node arena.
func Defaultsettings() lib.Settings {
	_, _, free := getsysmem()
	capacity := int64(free)
	if capacity <= 0 || capacity > malloc.Maxarenasize {
		capacity = malloc.Maxarenasize
	}
	setts := malloc.Defaultsettings().Mixin(lib.Settings{
		"allocator":     "flist",
		"capacity":      capacity,
		"pool.capacity": int64(1024),
		"maxpools":      malloc.Maxpools,
	})
	return setts.AddPrefix("nodearena.")
}

func (llrb *LLRB[K, V]) readsettings(setts lib.Settings) {
	llrb.allocator = setts.String("nodearena.allocator")
	switch llrb.allocator {
	case "flist", "heap":
	default:
		fmsg := "%v %w: nodearena.allocator %q"
		panic(fmt.Errorf(fmsg, llrb.logprefix, api.ErrorInvalidSettings, llrb.allocator))
	}
	llrb.capacity = setts.Int64("nodearena.capacity")
	llrb.setts = setts
}

func (llrb *LLRB[K, V]) newnodearena(setts lib.Settings) malloc.Mallocer[llrbnode[K, V]] {
	nodesetts := setts.Section("nodearena.").Trim("nodearena.")
	return malloc.NewMallocer[llrbnode[K, V]](nodesetts)
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		return 0, 0, 0
	}
	return mem.Total, mem.Used, mem.ActualFree
}
