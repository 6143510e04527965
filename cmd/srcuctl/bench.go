package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/kolkov/srcu/srcu"
)

// benchCommand implements 'srcuctl bench': a small built-in workload
// that holds a fixed number of readers open on a Domain and reports
// how long Synchronize and SynchronizeExpedited each take to observe
// them leave. This is meant to give a quick feel for the tradeoff, not
// to replace a `go test -bench` run under controlled conditions.
func benchCommand(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	readers := fs.Int("readers", 16, "number of concurrent readers held open per round")
	hold := fs.Duration("hold", 5*time.Millisecond, "how long each reader holds its critical section open")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	normal := benchRound(*readers, *hold, false)
	expedited := benchRound(*readers, *hold, true)

	fmt.Printf("readers=%d hold=%s\n", *readers, *hold)
	fmt.Printf("Synchronize:           %s\n", normal)
	fmt.Printf("SynchronizeExpedited:  %s\n", expedited)
}

func benchRound(readers int, hold time.Duration, expedited bool) time.Duration {
	d := srcu.NewDomain()
	defer d.Close()

	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		tok := d.Enter()
		go func() {
			defer wg.Done()
			time.Sleep(hold)
			d.Leave(tok)
		}()
	}

	start := time.Now()
	if expedited {
		d.SynchronizeExpedited()
	} else {
		d.Synchronize()
	}
	elapsed := time.Since(start)

	wg.Wait()
	return elapsed
}
