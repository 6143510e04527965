package core

import "testing"

// BenchmarkEnterLeave measures the uncontended reader fast path.
func BenchmarkEnterLeave(b *testing.B) {
	d := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tok := d.Enter()
		d.Leave(tok)
	}
}

// BenchmarkEnterLeaveParallel measures the reader fast path under
// concurrent load from multiple goroutines.
func BenchmarkEnterLeaveParallel(b *testing.B) {
	d := New()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			tok := d.Enter()
			d.Leave(tok)
		}
	})
}

// BenchmarkSynchronizeNoReaders measures a grace period with nothing
// to wait for: two index flips and two drained() checks, no backoff.
func BenchmarkSynchronizeNoReaders(b *testing.B) {
	d := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Synchronize(false)
	}
}

// BenchmarkSynchronizeExpeditedNoReaders is the expedited counterpart
// of BenchmarkSynchronizeNoReaders.
func BenchmarkSynchronizeExpeditedNoReaders(b *testing.B) {
	d := New()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Synchronize(true)
	}
}

// BenchmarkConcurrentSynchronizePiggyback measures how much of the
// grace-period cost is shared when many goroutines call Synchronize on
// the same Domain at once.
func BenchmarkConcurrentSynchronizePiggyback(b *testing.B) {
	d := New()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			d.Synchronize(false)
		}
	})
}
