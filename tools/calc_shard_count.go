//go:build ignore
// +build ignore

// This tool prints the shard count NewTableForGOMAXPROCS would pick
// for a given GOMAXPROCS value. Run with:
//
//	go run tools/calc_shard_count.go -procs 12
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/kolkov/srcu/internal/srcu/cpulocal"
)

func main() {
	procs := flag.Int("procs", 0, "GOMAXPROCS value to size for (0 = use runtime.GOMAXPROCS(0))")
	flag.Parse()

	n := *procs
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}

	count := cpulocal.ShardCountFor(n)
	fmt.Printf("GOMAXPROCS: %d\n", n)
	fmt.Printf("shard count (next power of two, floor 1): %d\n", count)
}
