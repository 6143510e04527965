package core

import "github.com/kolkov/srcu/internal/srcu/cpulocal"

// active sums c[·][b] across every shard the table has ever handed
// out, using a plain atomic load per slot — equivalent to the
// ACCESS_ONCE semantics of the original kernel srcu, which Go's
// atomic.Uint64.Load already provides (the compiler may neither fuse
// nor split the load). The sum may transiently look like a large value
// due to unsigned
// wraparound during a race between an enter and the sweep; that is
// expected and harmless, since only the test against zero in drained
// is ever meaningful.
func active(table *cpulocal.Table, b Token) uint64 {
	var sum uint64
	for i := 0; i <= table.HighWater(); i++ {
		sum += table.At(i).C[b].Load()
	}
	return sum
}

// seqSum sums seq[·][b] across every shard the table has ever handed
// out. Unlike active, this sum only ever increases over wall time.
func seqSum(table *cpulocal.Table, b Token) uint64 {
	var sum uint64
	for i := 0; i <= table.HighWater(); i++ {
		sum += table.At(i).Seq[b].Load()
	}
	return sum
}

// drained decides whether bank b has stably reached zero outstanding
// readers.
//
// A bare active()==0 is not sufficient: summation walks shards one at
// a time, so an enter on shard i and the matching leave on shard j>i
// can straddle the sweep, producing a spurious zero even though a
// reader is still (briefly) open. seq is a witness of enters only —
// it never decreases — so if the active sweep missed an enter but
// observed its leave, that enter's seq bump must land strictly between
// the s1 snapshot below and the post-check seqSum, making the final
// equality fail and drained report false. If seqSum is unchanged
// across the whole check, no enter was missed, so any leave the sweep
// did observe belonged to an enter the sweep also accounted for, and
// the zero is stable.
func drained(table *cpulocal.Table, b Token) bool {
	s1 := seqSum(table, b)
	// Fence A: pairs with fence B on the reader side (see reader.go);
	// implemented as the sequentially consistent atomic load inside
	// seqSum/active themselves, no separate barrier required in Go.
	if active(table, b) != 0 {
		return false
	}
	// Fence D: pairs with fence C on the reader side; same note.
	return seqSum(table, b) == s1
}
