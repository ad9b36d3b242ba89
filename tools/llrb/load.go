package main

import "flag"
import "fmt"
import "math/rand"
import "time"

import "github.com/bnclabs/llrbmap/lib"
import "github.com/bnclabs/llrbmap/llrb"
import humanize "github.com/dustin/go-humanize"
import sigar "github.com/cloudfoundry/gosigar"

var loadopts struct {
	n         int
	seed      int
	allocator string
	klen      [2]int // min-klen, max-klen
	log       string
}

func parseLoadopts(args []string) error {
	f := flag.NewFlagSet("load", flag.ContinueOnError)

	var klen string

	f.IntVar(&loadopts.n, "n", 100000,
		"number of items to generate and insert")
	f.IntVar(&loadopts.seed, "seed", int(time.Now().UnixNano()%1000000),
		"seed value for generating keys")
	f.StringVar(&loadopts.allocator, "allocator", "flist",
		"node allocator, flist or heap")
	f.StringVar(&klen, "klen", "8,32",
		"minklen,maxklen - generate keys between [minklen,maxklen)")
	f.StringVar(&loadopts.log, "log", "warn", "log level")
	if err := f.Parse(args); err != nil {
		return err
	}

	klens := lib.Parsecsv(klen)
	if len(klens) != 2 {
		return fmt.Errorf("invalid -klen %q", klen)
	}
	for i, s := range klens {
		if _, err := fmt.Sscanf(s, "%d", &loadopts.klen[i]); err != nil {
			return fmt.Errorf("invalid -klen %q: %v", klen, err)
		}
	}
	if loadopts.klen[0] <= 0 || loadopts.klen[1] <= loadopts.klen[0] {
		return fmt.Errorf("invalid -klen %q", klen)
	}
	return nil
}

func doLoad(args []string) error {
	if err := parseLoadopts(args); err != nil {
		return err
	}
	setlogging(loadopts.log)
	fmt.Printf("seed: %v\n", loadopts.seed)

	before := sysmem()
	tree := llrb.NewLLRB[string, string]("load", treesettings(loadopts.allocator))
	defer tree.Destroy()

	rnd := rand.New(rand.NewSource(int64(loadopts.seed)))
	now := time.Now()
	for i := 0; i < loadopts.n; i++ {
		key := makekey(rnd, loadopts.klen[0], loadopts.klen[1])
		tree.Set(key, key)
	}
	fmt.Printf("Took %v to insert %v items, %v unique\n",
		time.Since(now), loadopts.n, tree.Count())

	now = time.Now()
	if err := tree.Validate(); err != nil {
		return err
	}
	fmt.Printf("Took %v to validate, height %v\n", time.Since(now), tree.Height())

	stats := tree.Stats()
	alloc := humanize.Bytes(uint64(stats["node.allocated"].(int64)))
	useful := humanize.Bytes(uint64(stats["node.useful"].(int64)))
	overhead := humanize.Bytes(uint64(stats["node.overhead"].(int64)))
	fmt.Printf("Nodes{allocated:%v useful:%v overhead:%v}\n", alloc, useful, overhead)
	after := sysmem()
	fmt.Printf("System{free before:%v after:%v}\n",
		humanize.Bytes(before), humanize.Bytes(after))
	fmt.Println(lib.Prettystats(tree.Fullstats(), true))
	tree.Log(true)
	return nil
}

func makekey(rnd *rand.Rand, minlen, maxlen int) string {
	key := make([]byte, minlen+rnd.Intn(maxlen-minlen))
	for i := range key {
		key[i] = byte(97 + rnd.Intn(26))
	}
	return string(key)
}

func sysmem() uint64 {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		return 0
	}
	return mem.ActualFree
}
