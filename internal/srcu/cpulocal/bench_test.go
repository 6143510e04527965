package cpulocal

import "testing"

// BenchmarkShardForCached measures the cached lookup path: every call
// after a goroutine's first hits the sync.Map entry, though each call
// still extracts the goroutine identity for the lookup key.
func BenchmarkShardForCached(b *testing.B) {
	tbl := NewTable(64)
	ShardFor(tbl)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ShardFor(tbl)
	}
}

// BenchmarkCurrentGoroutineID measures the raw goroutine-identity
// extraction cost: parsing the header line out of runtime.Stack's
// output (see goid_generic.go).
func BenchmarkCurrentGoroutineID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = currentGoroutineID()
	}
}

// BenchmarkShardForConcurrent measures cached lookups from many
// goroutines at once, the steady-state Enter/Leave access pattern.
func BenchmarkShardForConcurrent(b *testing.B) {
	tbl := NewTable(64)
	ShardFor(tbl)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = ShardFor(tbl)
		}
	})
}
