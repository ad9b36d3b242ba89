package main

import "flag"
import "fmt"
import "math/rand"

import "github.com/bnclabs/llrbmap/lib"
import "github.com/bnclabs/llrbmap/malloc"
import humanize "github.com/dustin/go-humanize"

var options struct {
	n         int
	pcapacity int
	freepct   int
	allocator string
	seed      int
}

// entry of the size of a tree node holding two string headers.
type entry struct {
	key, value string
	n          int64
	black      bool
	left       *entry
	right      *entry
}

func argParse() {
	flag.IntVar(&options.n, "n", 1000000,
		"number of entries to allocate")
	flag.IntVar(&options.pcapacity, "pool", 1024,
		"number of entries per pool")
	flag.IntVar(&options.freepct, "free", 50,
		"percentage of entries to free, randomly picked")
	flag.StringVar(&options.allocator, "allocator", "flist",
		"flist or heap")
	flag.IntVar(&options.seed, "seed", 1,
		"seed for picking entries to free")
	flag.Parse()

	if options.freepct < 0 || options.freepct > 100 {
		fmt.Printf("-free %v out of range [0, 100], using 50\n", options.freepct)
		options.freepct = 50
	}
}

func main() {
	argParse()
	setts := lib.Settings{
		"allocator":     options.allocator,
		"pool.capacity": int64(options.pcapacity),
	}
	mallocer := malloc.NewMallocer[entry](setts)
	defer mallocer.Release()

	ptrs := make([]*entry, options.n)
	for i := range ptrs {
		ptrs[i] = mallocer.Alloc()
	}
	tellutilization("allocated", mallocer)

	rnd := rand.New(rand.NewSource(int64(options.seed)))
	nfree := (options.n * options.freepct) / 100
	for _, i := range rnd.Perm(options.n)[:nfree] {
		mallocer.Free(ptrs[i])
		ptrs[i] = nil
	}
	tellutilization(fmt.Sprintf("freed %v", nfree), mallocer)
}

func tellutilization(what string, mallocer malloc.Mallocer[entry]) {
	overhead, useful := mallocer.Memory()
	fmt.Printf("%v: slab %v bytes, overhead %v useful %v allocated %v\n",
		what, mallocer.Slabsize(), humanize.Bytes(uint64(overhead)),
		humanize.Bytes(uint64(useful)),
		humanize.Bytes(uint64(mallocer.Allocated())))
	sizes, zs := mallocer.Utilization()
	for i, size := range sizes {
		fmt.Printf("  size %4v, util %2.2f%%\n", size, zs[i])
	}
}
