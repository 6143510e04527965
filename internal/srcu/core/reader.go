package core

import "github.com/kolkov/srcu/internal/srcu/cpulocal"

// enterHook, when non-nil, runs inside Enter after the bank load and
// before the counter bump, standing in for an arbitrarily long
// scheduling delay in that window. Nil in production (a single
// pointer-nil check on the hot path); set only by tests that need to
// force the interleaving described below.
var enterHook func()

// Enter begins a read-side critical section and returns the Token
// that must be passed to the matching Leave. Never blocks, never
// fails, O(1): one atomic load, one shard lookup (cached per
// goroutine — see internal/srcu/cpulocal), and two atomic adds.
//
// Contract: the caller pairs
// exactly one Leave with this Token on the same Domain. The leave may
// happen on a different goroutine than the enter, and may be preceded
// by arbitrary blocking or scheduling — that permissiveness is SRCU's
// entire point.
func (d *Domain) Enter() Token {
	table := mustTable(d)

	// Step 2: read which bank new readers are currently using. A plain
	// atomic load is used rather than anything hand-rolled as a
	// "consume" ordering — Go's sync/atomic gives sequentially
	// consistent loads, which is the strongest ordering the original
	// fence pairing ever asked for.
	//
	// The gap between this load and the counter bump below is where
	// the original relies on preempt_disable() to bound how long a
	// reader can be suspended mid-enter: on that implementation the
	// window is a handful of instructions, bounded by hardware IRQ
	// latency, never by the scheduler. Go has no equivalent of
	// disabling preemption for a goroutine, so this window is bounded
	// only by however long the Go scheduler takes to run this
	// goroutine again, which is not a hard bound. See
	// preemption_test.go for a forced reproduction of this gap and
	// DESIGN.md for the accepted risk this leaves open.
	b := Token(d.completed.Load() & 1)

	if enterHook != nil {
		enterHook()
	}

	shard := table.Shard(cpulocal.ShardFor(table))

	// Step 3: bump the active-count contribution for this bank on this
	// shard.
	shard.C[b].Add(1)

	// Fence B: the atomic Add above already establishes a total order
	// with any atomic operation a concurrent drained() call performs
	// on the same word (fence A/D on the writer side), which is what
	// pairs an enter's c-bump with a writer's active() sweep. No
	// separate fence instruction is needed between the c bump and the
	// seq bump below; the ordering guarantee fence B describes in the
	// original is a byproduct of both being sequentially consistent
	// atomic operations on their own words.

	// Step 5: record that an enter into this bank happened on this
	// shard. seq only ever increases, and is the witness drained()
	// uses to tell "zero transiently" from "zero stably" apart.
	shard.Seq[b].Add(1)

	return b
}

// Leave ends the read-side critical section identified by tok. Never
// blocks, never fails. tok must be the value a matching Enter
// returned; using any other value, or calling Leave more than once
// for one Enter, is a misuse the library does not detect (see the
// note on Token being an unenforced affine guard in domain.go).
func (d *Domain) Leave(tok Token) {
	table := mustTable(d)
	shard := table.Shard(cpulocal.ShardFor(table))

	// Fence C: every data access inside the critical section happens
	// before this decrement in program order on this goroutine; Go's
	// memory model guarantees that ordering without an explicit fence
	// since there is no reordering across a single goroutine's own
	// sequential execution. What fence C buys in the original (a
	// compiler/CPU reordering barrier) is therefore already free here.

	// leaveDelta is the all-ones uint64 pattern: adding it is equivalent
	// to subtracting one modulo 2^64. The additive form keeps every
	// mutation of c a same-direction atomic Add rather than mixing Add
	// and a signed decrement.
	const leaveDelta = ^uint64(0)
	shard.C[tok].Add(leaveDelta)
}
