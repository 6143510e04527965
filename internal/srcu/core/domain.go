package core

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kolkov/srcu/internal/srcu/cpulocal"
)

// Token is the value returned by Enter and consumed by the matching
// Leave: the bank a read-side critical section was assigned to. It is
// an affine guard in spirit — meant to be produced once and consumed
// exactly once — but Go has no type-level way to forbid reuse or
// drop, so misuse (a second Leave with the same Token, or none at all)
// is undiagnosed at runtime.
type Token uint8

// Domain is one independent SRCU instance: a monotonic completed
// counter, a writer mutex, and a table of per-shard counter pairs.
// Grace periods on distinct Domains never interact.
type Domain struct {
	// completed is the monotonic batch counter. Its low bit selects
	// which bank new readers use. Only ever written while mu is held
	// (inside flipAndWait); read anywhere, anytime, lock-free.
	completed atomic.Uint64

	// mu serializes writers. Never held across a read-side critical
	// section, never acquired by enter/leave.
	mu sync.Mutex

	// table holds the per-shard (active, sequence) counter pairs.
	// nil after Close succeeds; non-nil otherwise.
	table atomic.Pointer[cpulocal.Table]
}

// New constructs a Domain with per-shard storage sized to the current
// GOMAXPROCS. The original kernel srcu_init can fail on allocator
// exhaustion; make never reports allocation failure to its caller in
// Go (it panics on true OOM, which no caller can meaningfully recover
// from), so New has no error return. It is kept as a function
// returning a single value, not New() (*Domain, error), to avoid a
// phantom error case that can never actually occur in this runtime.
func New() *Domain {
	d := &Domain{}
	d.table.Store(cpulocal.NewTableForGOMAXPROCS())
	return d
}

// ErrClosed is returned by Close when the domain has already been
// closed successfully. Enter, Leave and Synchronize on a closed Domain
// panic instead (see mustTable).
var ErrClosed = fmt.Errorf("srcu: domain is closed")

// shardTable returns the live shard table, or nil if the domain has
// already been closed.
func (d *Domain) shardTable() *cpulocal.Table {
	return d.table.Load()
}

// mustTable loads the shard table and panics with a clear message if
// the domain has already been closed. Enter/Leave/Synchronize on a
// closed Domain is a programming error with no well-defined result;
// panicking here is strictly friendlier than the nil-deref that would
// otherwise follow a few lines later.
func mustTable(d *Domain) *cpulocal.Table {
	t := d.shardTable()
	if t == nil {
		panic("srcu: use of Domain after Close")
	}
	return t
}

// BatchesCompleted returns the number of grace periods completed so
// far. Advisory only: a caller observing a particular value has no
// guarantee about what happens to the counter immediately afterward.
func (d *Domain) BatchesCompleted() uint64 {
	return d.completed.Load()
}

// Close releases the domain's per-shard storage. If any reader is
// still active on either bank, Close leaves the storage allocated
// (a leak is preferable to freeing memory a running reader might
// still touch) and returns a non-nil error describing which banks are
// still open and how many readers each holds; the domain remains unusable either way —
// a failed Close is not retryable by calling Close again with readers
// still draining, callers must wait for those readers to finish first.
func (d *Domain) Close() error {
	table := d.shardTable()
	if table == nil {
		return ErrClosed
	}

	if rep := collectLeakReport(table); !rep.Empty() {
		return rep
	}

	d.table.Store(nil)
	return nil
}
