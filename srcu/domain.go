package srcu

import core "github.com/kolkov/srcu/internal/srcu/core"

// Domain is one independent sleepable-RCU instance. Grace periods on
// distinct Domains never wait on each other's readers; a program that
// protects unrelated data structures should generally give each its
// own Domain rather than share one, so that a slow reader on one
// structure can't stall a writer waiting on another.
//
// The zero Domain is not usable; construct one with [NewDomain].
type Domain struct {
	d *core.Domain
}

// NewDomain constructs a ready-to-use Domain. Its per-shard storage is
// sized to the current GOMAXPROCS.
func NewDomain() *Domain {
	return &Domain{d: core.New()}
}

// ErrClosed is returned by Close when the Domain has already been
// closed successfully. Enter, Leave and Synchronize on a closed Domain
// panic instead.
var ErrClosed = core.ErrClosed

// Close releases the Domain's storage. If any reader is still active,
// Close refuses to free anything and returns a non-nil error
// describing which banks are still open; the Domain remains unusable
// regardless of whether Close succeeds. Callers that hit an error here
// should wait for the offending readers to leave and call Close again
// — never assume a single Close call is sufficient cleanup under
// contention.
func (dm *Domain) Close() error {
	return dm.d.Close()
}

// BatchesCompleted returns the number of grace periods this Domain has
// completed so far. Useful for tests and diagnostics; carries no
// guarantee about what happens to the counter immediately afterward.
func (dm *Domain) BatchesCompleted() uint64 {
	return dm.d.BatchesCompleted()
}
