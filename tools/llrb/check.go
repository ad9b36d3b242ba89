package main

import "flag"
import "fmt"
import "math/rand"
import "sort"
import "time"

import "github.com/bnclabs/llrbmap/api"
import "github.com/bnclabs/llrbmap/dict"
import "github.com/bnclabs/llrbmap/lib"
import "github.com/bnclabs/llrbmap/llrb"
import "github.com/bnclabs/llrbmap/log"

var checkopts struct {
	n         int
	ops       int
	seed      int
	vtick     int
	allocator string
	log       string
}

var checkops = []string{
	"set", "set", "set", "get", "delete", "delmin", "delmax",
	"min", "max", "floor", "ceiling", "select", "rank",
}

func parseCheckopts(args []string) error {
	f := flag.NewFlagSet("check", flag.ContinueOnError)

	f.IntVar(&checkopts.n, "n", 10000,
		"key space, keys are generated between [0, n)")
	f.IntVar(&checkopts.ops, "ops", 1000000,
		"number of operations to apply")
	f.IntVar(&checkopts.seed, "seed", int(time.Now().UnixNano()%1000000),
		"seed value for generating operations")
	f.IntVar(&checkopts.vtick, "vtick", 1000,
		"validate tree for every vtick operations")
	f.StringVar(&checkopts.allocator, "allocator", "flist",
		"node allocator, flist or heap")
	f.StringVar(&checkopts.log, "log", "warn", "log level")
	if err := f.Parse(args); err != nil {
		return err
	}
	if checkopts.n <= 0 || checkopts.vtick <= 0 {
		return fmt.Errorf("-n and -vtick must be > 0")
	}
	return nil
}

func doCheck(args []string) error {
	if err := parseCheckopts(args); err != nil {
		return err
	}
	setlogging(checkopts.log)
	fmt.Printf("seed: %v\n", checkopts.seed)

	tree := llrb.NewLLRB[int, int]("check", treesettings(checkopts.allocator))
	defer tree.Destroy()
	ref := dict.NewDict[int, int]("dict")

	rnd := rand.New(rand.NewSource(int64(checkopts.seed)))
	counts := map[string]int64{}
	latencies := map[string]*lib.AverageInt64{}
	for _, op := range checkops {
		latencies[op] = &lib.AverageInt64{}
	}

	for i := 0; i < checkopts.ops; i++ {
		op := checkops[rnd.Intn(len(checkops))]
		key := rnd.Intn(checkopts.n)
		now := time.Now()
		if err := checkop(tree, ref, op, key, i); err != nil {
			return fmt.Errorf("op %v %v(%v): %v", i, op, key, err)
		}
		latencies[op].Add(int64(time.Since(now)))
		counts[op]++

		if (i+1)%checkopts.vtick == 0 {
			if err := tree.Validate(); err != nil {
				return fmt.Errorf("op %v: %v", i, err)
			}
			log.Debugf("validated after %v ops, count %v\n", i+1, tree.Count())
		}
	}
	if err := tree.Validate(); err != nil {
		return err
	}

	ops := make([]string, 0, len(counts))
	for op := range counts {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		av := latencies[op]
		fmt.Printf("%-8v %8v ops, mean %v max %v\n",
			op, counts[op], time.Duration(av.Mean()), time.Duration(av.Max()))
	}
	fmt.Printf("completed %v ops, final count %v height %v\n",
		checkopts.ops, tree.Count(), tree.Height())
	return nil
}

// checkop apply op on both indexes and compare the outcome.
func checkop(tree, ref api.Index[int, int], op string, key, value int) error {
	mismatch := func(got, expected []interface{}) error {
		return fmt.Errorf("got %v, expected %v", got, expected)
	}

	switch op {
	case "set":
		o1, u1 := tree.Set(key, value)
		o2, u2 := ref.Set(key, value)
		if o1 != o2 || u1 != u2 {
			return mismatch([]interface{}{o1, u1}, []interface{}{o2, u2})
		}
	case "get":
		v1, ok1 := tree.Get(key)
		v2, ok2 := ref.Get(key)
		if v1 != v2 || ok1 != ok2 {
			return mismatch([]interface{}{v1, ok1}, []interface{}{v2, ok2})
		}
	case "delete":
		v1, ok1 := tree.Delete(key)
		v2, ok2 := ref.Delete(key)
		if v1 != v2 || ok1 != ok2 {
			return mismatch([]interface{}{v1, ok1}, []interface{}{v2, ok2})
		}
	case "rank":
		if r1, r2 := tree.Rank(key), ref.Rank(key); r1 != r2 {
			return mismatch([]interface{}{r1}, []interface{}{r2})
		}
	default:
		var k1, k2, v1, v2 int
		var ok1, ok2 bool
		switch op {
		case "delmin":
			k1, v1, ok1 = tree.DeleteMin()
			k2, v2, ok2 = ref.DeleteMin()
		case "delmax":
			k1, v1, ok1 = tree.DeleteMax()
			k2, v2, ok2 = ref.DeleteMax()
		case "min":
			k1, v1, ok1 = tree.Min()
			k2, v2, ok2 = ref.Min()
		case "max":
			k1, v1, ok1 = tree.Max()
			k2, v2, ok2 = ref.Max()
		case "floor":
			k1, v1, ok1 = tree.Floor(key)
			k2, v2, ok2 = ref.Floor(key)
		case "ceiling":
			k1, v1, ok1 = tree.Ceiling(key)
			k2, v2, ok2 = ref.Ceiling(key)
		case "select":
			k := int64(key) % (ref.Count() + 1)
			k1, v1, ok1 = tree.Select(k)
			k2, v2, ok2 = ref.Select(k)
		default:
			return fmt.Errorf("unknown op %q", op)
		}
		if k1 != k2 || v1 != v2 || ok1 != ok2 {
			return mismatch([]interface{}{k1, v1, ok1}, []interface{}{k2, v2, ok2})
		}
	}
	if c1, c2 := tree.Count(), ref.Count(); c1 != c2 {
		return fmt.Errorf("count %v, expected %v", c1, c2)
	}
	return nil
}
