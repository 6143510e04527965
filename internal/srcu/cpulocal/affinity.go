package cpulocal

import "sync"

// handles caches one *Handle per (goroutine, Table) pair. A sync.Map
// is the right fit here: writes (a goroutine's first Enter on a given
// domain) are rare relative to reads (every subsequent Enter/Leave),
// so the read-mostly fast path matters far more than write throughput.
var handles sync.Map // map[affinityKey]*Handle

// affinityKey identifies a cached Handle. Keying on the Table pointer
// as well as the goroutine id lets a single goroutine hold independent
// shard assignments in independent domains, since distinct Domains
// never share storage.
type affinityKey struct {
	table *Table
	gid   int64
}

// ShardFor returns the calling goroutine's shard index into t,
// computing and caching it on first use. The cache holds the shard
// index, so it is derived once per goroutine; the goroutine id that
// keys the cache is still extracted (see goid.go) on every call.
func ShardFor(t *Table) int {
	gid := currentGoroutineID()
	key := affinityKey{table: t, gid: gid}

	if v, ok := handles.Load(key); ok {
		return v.(*Handle).Shard
	}

	h := newHandle(gid, t.Len())
	// LoadOrStore so two racing first-calls from... they can't: a
	// single goroutine id is never concurrent with itself. The race
	// that can happen is the runtime reusing a goroutine id after the
	// original goroutine exits without ever clearing its cache entry;
	// that's a harmless stale entry (see doc.go), not a correctness
	// issue. LoadOrStore keeps whichever entry is already present.
	actual, _ := handles.LoadOrStore(key, h)
	return actual.(*Handle).Shard
}

// forgetGoroutine drops any cached handles for gid. Exposed for tests
// that want to simulate goroutine-id reuse; production code never
// needs to call this; the cache is allowed to grow stale (see doc.go).
func forgetGoroutine(gid int64) {
	handles.Range(func(k, _ any) bool {
		if k.(affinityKey).gid == gid {
			handles.Delete(k)
		}
		return true
	})
}
