// Package cpulocal provides a fixed-size table of padded, per-shard
// counter pairs and a cheap, cached goroutine-to-shard assignment.
//
// # Background
//
// The SRCU algorithm this module supports was designed around per-CPU
// storage: each logical CPU owns a private (active, sequence) counter
// pair per bank, and a reader disables preemption for the duration of
// a single increment so the counter update is effectively CPU-local.
//
// Go has no user-mode equivalent of "pin to this CPU, disable
// preemption". cpulocal replaces that with goroutine-affined sharding:
// every goroutine is assigned a shard index once (cached for the life
// of the goroutine) and thereafter updates only that shard's counters
// with atomic adds. Sharding exists to reduce cross-goroutine cache
// contention — the same reason the original pins to a CPU — and each
// individual counter update is race-free on its own: a single atomic
// add never tears.
//
// That is not the same claim as the original's, though. The original
// also uses preempt_disable() to bound how long a reader can be
// suspended between reading which bank to use and recording its
// presence in that bank's counter, to a handful of IRQ-bounded
// instructions. Nothing here reproduces that bound: a goroutine can be
// descheduled for an arbitrary time in that same gap, so a concurrent
// drain check can observe a bank as stably empty before a reader that
// already committed to that bank has made its entry visible. See
// internal/srcu/core's Enter doc comment and preemption_test.go for a
// forced reproduction, and DESIGN.md for why this gap is accepted
// rather than closed.
//
// # Architecture
//
//   - [Table]: fixed array of [Shard], sized to the next power of two
//     at or above GOMAXPROCS, with a high-water mark so summation
//     (internal/srcu/core's active/seqSum) does not have to walk shards
//     that were never touched.
//   - [ShardFor]: returns the cached shard index for the calling
//     goroutine, computing and caching it on first use.
//
// # Cache staleness
//
// Goroutine ids are reused by the Go runtime after a goroutine exits.
// [ShardFor]'s cache is never proactively cleared on goroutine exit
// (Go offers no such hook), so a later goroutine that reuses an id
// inherits the previous holder's shard assignment. This is harmless:
// the assignment only ever selects which shard's counters an Enter/
// Leave pair touches, and any shard is a valid choice for any
// goroutine at any time. At worst a reused id causes a slightly
// uneven shard distribution, never an incorrect one.
package cpulocal

