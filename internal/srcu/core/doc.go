// Package core implements the Sleepable RCU grace-period algorithm:
// the two-bank per-shard reference counting scheme, the index-flip
// protocol, and the piggyback short-circuit that lets concurrent
// writers share a single drain.
//
// # Architecture
//
// The package has one central type, [Domain], and four pieces of
// logic hung off it:
//
//  1. enter/leave (reader.go): the wait-free read-side fast path.
//  2. active/seqSum/drained (counters.go): per-bank summation and the
//     validation check that tells a writer whether a bank has
//     stably reached zero outstanding readers.
//  3. flipAndWait (flip.go): one index flip plus the adaptive
//     back-off loop that waits for the flipped-away bank to drain.
//  4. Synchronize (synchronize.go): the public grace-period driver,
//     including the piggyback short-circuit for overlapping writers.
//
// # Memory ordering
//
// The design this package implements relies on four fence pairings
// (A/B/C/D, named in the original kernel srcu algorithm) to make a
// "zero readers" observation trustworthy despite summing per-shard
// counters non-atomically. Go's sync/atomic types are sequentially
// consistent, which is strictly stronger than the acquire/release
// pairing the original asks for, so every fence call in this package
// is implemented as a plain atomic load/add/store — there is nothing
// weaker available to reach for, and nothing more is needed. The doc
// comments on reader.go and counters.go name which original fence each
// atomic operation stands in for, so the correctness argument can
// still be checked operation-by-operation.
//
// # Thread safety
//
// enter/leave are lock-free and safe to call from any number of
// goroutines concurrently, including goroutines that hold no
// reference to each other. Synchronize serializes writers on
// Domain.mu; it never blocks a reader and is never called while
// holding a read-side token on the same Domain (doing so is a
// programming error that self-deadlocks, and is not detected).
package core
