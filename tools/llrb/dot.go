package main

import "bytes"
import "flag"
import "fmt"
import "os"

import "github.com/bnclabs/llrbmap/llrb"

var dotopts struct {
	n       int
	outfile string
}

func parseDotopts(args []string) error {
	f := flag.NewFlagSet("dot", flag.ContinueOnError)

	f.IntVar(&dotopts.n, "n", 16,
		"number of items, 0 to n-1, to insert before dumping")
	f.StringVar(&dotopts.outfile, "o", "llrb.dot",
		"output file for graphviz script")
	return f.Parse(args)
}

func doDot(args []string) error {
	if err := parseDotopts(args); err != nil {
		return err
	}

	tree := llrb.NewLLRB[int, int]("dot", nil)
	defer tree.Destroy()
	for i := 0; i < dotopts.n; i++ {
		tree.Set(i, i)
	}

	buffer := bytes.NewBuffer(nil)
	tree.Dotdump(buffer)
	if err := os.WriteFile(dotopts.outfile, buffer.Bytes(), 0666); err != nil {
		return err
	}
	fmt.Printf("dumped %v nodes to %v\n", tree.Count(), dotopts.outfile)
	return nil
}
