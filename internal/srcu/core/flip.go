package core

import (
	"sync/atomic"
	"time"

	"github.com/kolkov/srcu/internal/srcu/cpulocal"
)

// readerDelay is the busy-wait granularity used between drain checks
// in the fast common case: short enough that a reader mid-enter at the
// moment of the flip has almost certainly finished by the time we
// check again.
const readerDelay = 5 * time.Microsecond

// schedulingTick approximates "yield the CPU for about one scheduling
// tick" — the coarse, interruptible sleep a drain loop falls back to
// once busy-waiting stops being worth it.
const schedulingTick = time.Millisecond

// expeditedMaxBusySpins bounds how many extra busy-wait rounds an
// expedited grace period will spend before it, too, falls back to
// yielding.
const expeditedMaxBusySpins = 10

// lastBackoffStamp records the most recent (shard, attempt) a drain
// loop was still waiting on when it had to fall back to yielding.
// Only ever read through LastBackoffStamp; never read by any
// correctness-relevant code path.
var lastBackoffStamp atomic.Uint32

// LastBackoffStamp returns the most recent diagnostic Stamp recorded
// by a flip that needed to yield at least once. Exported within the
// package tree (not re-exported by srcu); no package in this module
// calls it.
func LastBackoffStamp() Stamp {
	return Stamp(lastBackoffStamp.Load())
}

// flipAndWait performs one index flip and waits for the bank it just
// stopped handing out to new readers to drain.
func (d *Domain) flipAndWait(expedited bool) {
	table := mustTable(d)

	// Step 1: b is the bit new readers have been using up to this
	// point; the increment immediately redirects new readers to
	// 1-b. Unordered add is sufficient: Synchronize is the only
	// caller, and it always holds d.mu.
	old := d.completed.Add(1) - 1
	b := Token(old & 1)

	if drained(table, b) {
		return
	}

	spinWait(readerDelay)
	if drained(table, b) {
		return
	}

	attempt := 0
	for {
		if expedited && attempt < expeditedMaxBusySpins {
			spinWait(readerDelay)
		} else {
			time.Sleep(schedulingTick)
		}
		attempt++

		if drained(table, b) {
			return
		}

		lastBackoffStamp.Store(uint32(NewStamp(laggingShard(table, b), attempt)))
	}
}

// spinWait busy-waits for roughly d without yielding the goroutine to
// the scheduler. time.Sleep is deliberately
// not used here: it parks the goroutine, which is exactly the
// behavior the "busy-wait" collaborator is meant not to have.
func spinWait(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}

// laggingShard returns the lowest-indexed shard still holding an open
// reader on bank b, or -1 if none (the table looked drained the moment
// this ran, a legitimate outcome of a race with the reader that's
// finishing). Purely diagnostic, called only on the slow, already-
// yielding path in the loop above.
func laggingShard(table *cpulocal.Table, b Token) int {
	for i := 0; i <= table.HighWater(); i++ {
		if table.At(i).C[b].Load() != 0 {
			return i
		}
	}
	return -1
}
