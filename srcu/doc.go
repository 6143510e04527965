// Package srcu provides sleepable read-copy-update domains: a
// synchronization primitive that lets an unbounded number of readers
// traverse shared data without taking a lock, while writers can still
// wait for every in-flight reader to finish before reclaiming the data
// a reader might be using.
//
// # Quick Start
//
//	d := srcu.NewDomain()
//	defer d.Close()
//
//	tok := d.Enter()
//	// ... read shared data protected by d ...
//	d.Leave(tok)
//
// A writer that wants to reclaim old data waits for a grace period:
//
//	old := swapPointer(newData)
//	d.Synchronize() // waits for every reader that saw old to finish
//	free(old)
//
// # API Overview
//
// The package provides functions for:
//   - Domain lifecycle: [NewDomain], [Domain.Close]
//   - Read-side critical sections: [Domain.Enter], [Domain.Leave]
//   - Grace periods: [Domain.Synchronize], [Domain.SynchronizeExpedited]
//   - Diagnostics: [Domain.BatchesCompleted], [GetInfo]
//
// # How It Works
//
// Unlike sync.RWMutex, a reader's Enter never blocks regardless of how
// many writers are waiting, and unlike sync.Mutex-protected data, a
// reader is allowed to sleep, block on I/O, or run for an arbitrarily
// long time inside its critical section. The cost of that permissiveness
// is that Synchronize may itself have to wait just as long: it returns
// only once every reader that entered before the call has left.
//
// Internally each Domain keeps two banks of per-shard counters. New
// readers always use the bank the domain currently points at; a writer
// flips that pointer, then waits for the bank it just stopped handing
// out to drain to zero. Two flips are needed per Synchronize call to
// give a correct answer even for a reader that entered on the old bank
// an instant before the flip; see the internal/srcu/core package for
// the full algorithm.
//
// # Compatibility
//
// Platform support:
//   - Go version: 1.24 or later
//   - Architecture: any (every architecture uses the same portable
//     goroutine-id path; there is no architecture-specific fast path)
//
// # Links
//
// Project repository:
// https://github.com/kolkov/srcu
package srcu
