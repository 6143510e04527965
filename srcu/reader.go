package srcu

import core "github.com/kolkov/srcu/internal/srcu/core"

// ReadToken is returned by Enter and must be passed to the matching
// Leave. A ReadToken is only ever valid for the Domain that produced
// it; passing one to a different Domain's Leave is a misuse this
// package does not detect.
type ReadToken = core.Token

// Enter begins a read-side critical section on dm and returns the
// ReadToken the matching Leave needs. Enter never blocks and never
// fails, regardless of how many writers are concurrently waiting on a
// grace period.
//
// The matching Leave may happen on any goroutine, at any point after
// this call returns, including after arbitrary blocking, I/O, or
// scheduling delay — that permissiveness, not raw throughput, is
// SRCU's reason to exist over sync.RWMutex.
func (dm *Domain) Enter() ReadToken {
	return dm.d.Enter()
}

// Leave ends the read-side critical section identified by tok. tok
// must be the value a matching Enter on the same Domain returned;
// using any other value, or calling Leave more than once for one
// Enter, is undefined and not diagnosed at runtime.
func (dm *Domain) Leave(tok ReadToken) {
	dm.d.Leave(tok)
}
