package cpulocal

import (
	"runtime"
	"sync/atomic"
)

// cacheLineSize is the assumed cache line width used to pad [Shard] so
// that two goroutines updating different shards never contend on the
// same line. 64 bytes covers amd64 and arm64; over-padding on a
// narrower target costs a little memory, never correctness.
const cacheLineSize = 64

// Shard holds one logical CPU's contribution to both banks of the
// domain's reference counters.
//
// c[b] is the outstanding-readers contribution for bank b (enters
// minus leaves, modulo 2^64 — see the USAGE_COUNT trick in the core
// package's reader.go). seq[b] counts total enters observed into bank
// b on this shard; it only ever increases.
//
// Layout mirrors the two two-element arrays (c, seq) per CPU described
// by the original per-CPU-storage data model, padded out to a full
// cache line so that Shard[i] and Shard[i+1] never false-share.
//
// The word-sized atomic add each bump costs is race-free on its own,
// but that is not the whole correctness story: the original also
// disables preemption around the load-then-bump sequence in the core
// package's Enter, bounding how long a reader can be suspended between
// reading which bank to use and recording its presence in it to a
// few instructions. Nothing here reproduces that bound — a goroutine
// can be descheduled for an arbitrary time in that same gap — so a
// Synchronize can observe a bank as drained before a reader that read
// that bank has actually bumped it. See core/reader.go's Enter comment
// and core/preemption_test.go for the reproduction, and DESIGN.md for
// why this is accepted rather than closed.
type Shard struct {
	C   [2]atomic.Uint64
	Seq [2]atomic.Uint64

	// _pad keeps sizeof(Shard) a multiple of cacheLineSize. Two
	// uint64 arrays of two elements each are 32 bytes; pad the rest.
	_pad [cacheLineSize - 32]byte
}

// Table is a fixed-size array of [Shard], sized once at construction
// and never resized. It replaces the original's
// allocate(n_cpus, slot_size)/slot(ptr, cpu)/free(ptr) per-CPU storage
// allocator: there is no free-standing allocator abstraction in Go, so
// Table simply owns a slice sized up front.
type Table struct {
	shards []Shard

	// highWater is the index of the highest shard any goroutine has
	// ever been assigned, so summation doesn't have to walk shards
	// nothing ever touched. Mirrors the sparse maxTID optimization in
	// a vector-clock implementation: most of the table stays at zero
	// for the life of a short-lived program.
	highWater atomic.Uint32
}

// NewTable allocates a Table with n shards. n is clamped to at least 1
// so a GOMAXPROCS(0) of 1 (or a misconfigured 0) still produces a
// usable, single-shard table.
func NewTable(n int) *Table {
	if n < 1 {
		n = 1
	}
	return &Table{shards: make([]Shard, n)}
}

// NewTableForGOMAXPROCS sizes a Table to the next power of two at or
// above runtime.GOMAXPROCS(0). The goroutine-to-shard mapping (see
// handle.go) uses a plain modulo, so any size works; the power of two
// only fixes the sizing rule.
func NewTableForGOMAXPROCS() *Table {
	return NewTable(ShardCountFor(runtime.GOMAXPROCS(0)))
}

// ShardCountFor returns the next power of two greater than or equal to
// procs, with a floor of 1. Exported so tools/calc_shard_count.go can
// print the derivation without duplicating it.
func ShardCountFor(procs int) int {
	if procs < 1 {
		return 1
	}
	n := 1
	for n < procs {
		n <<= 1
	}
	return n
}

// Len returns the number of shards in the table.
func (t *Table) Len() int {
	return len(t.shards)
}

// Shard returns a pointer to the shard at idx, recording idx as a new
// high-water mark if it exceeds the previous one. idx must be in
// [0, Len()); callers obtain it from [ShardFor], which always returns
// a value in range for the same Table's shard count.
//
// Use this form when the shard may be written to (enter/leave). Pure
// readers that only want to summarize the table should use [Table.At],
// which skips the high-water bookkeeping.
func (t *Table) Shard(idx int) *Shard {
	s := &t.shards[idx]
	for {
		cur := t.highWater.Load()
		if uint32(idx) <= cur {
			return s
		}
		if t.highWater.CompareAndSwap(cur, uint32(idx)) {
			return s
		}
	}
}

// At returns a pointer to the shard at idx without touching the
// high-water mark. Used by summation (internal/srcu/core's
// active/seqSum) which already bounds its scan by [Table.HighWater]
// and has no business pushing the mark forward itself.
func (t *Table) At(idx int) *Shard {
	return &t.shards[idx]
}

// HighWater returns the highest shard index ever handed out by
// [Table.Shard]. Shards beyond it were never assigned to any goroutine
// and are therefore still all-zero, so summation can treat the
// [0, HighWater()] range as the entire table without missing any
// contribution. It is purely a scan-bound optimization, never a
// correctness boundary: scanning past it (up to Len()) is always safe,
// just wasted work on a table most of which is untouched.
func (t *Table) HighWater() int {
	return int(t.highWater.Load())
}
