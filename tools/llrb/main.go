package main

import "fmt"
import "os"
import "strings"

import "github.com/bnclabs/llrbmap/lib"
import "github.com/bnclabs/llrbmap/llrb"
import "github.com/bnclabs/llrbmap/log"

var subcommands = map[string]func(args []string) error{
	"load":   doLoad,
	"check":  doCheck,
	"script": doScript,
	"dot":    doDot,
}

func usage() {
	names := []string{"load", "check", "script", "dot"}
	fmt.Fprintf(os.Stderr, "usage: llrb <%v> [options]\n", strings.Join(names, "|"))
	fmt.Fprintf(os.Stderr, "  llrb <subcommand> -h for subcommand options\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	fn, ok := subcommands[os.Args[1]]
	if !ok {
		usage()
		os.Exit(1)
	}
	if err := fn(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", os.Args[1], err)
		os.Exit(2)
	}
}

func setlogging(level string) {
	log.SetLogger(nil, lib.Settings{"log.level": level})
	llrb.LogComponents("all")
}

func treesettings(allocator string) lib.Settings {
	return lib.Settings{"nodearena.allocator": allocator}
}
