package core

// Synchronize waits for a full grace period: every read-side critical
// section that began before this call returns must have ended by the
// time it returns. expedited trades CPU for latency by busy-waiting
// longer before yielding (see flip.go).
//
// There is no timeout and no cancellation — a blocked Synchronize
// returns only once the readers it's waiting on finish, however long
// that takes.
func (d *Domain) Synchronize(expedited bool) {
	_ = mustTable(d) // fail fast on a closed domain before taking the lock

	// Step 1/3: a full fence around the snapshot load. atomic.Uint64's
	// sequentially consistent Load already orders this snapshot after
	// every prior write the calling goroutine made and before anything
	// that follows, so no separate fence call is needed in Go.
	snapshot := d.completed.Load()

	d.mu.Lock()
	defer d.mu.Unlock()

	// Piggyback short-circuit (step 5): another writer may have
	// advanced completed while we waited for the mutex.
	cur := d.completed.Load()
	switch {
	case cur == snapshot+3:
		// Two full flip pairs happened on our behalf. One of the
		// advances may have landed before our step-1 fence, so three
		// advances are needed to guarantee two full brackets around
		// this call. Nothing left to do.
		return
	case cur == snapshot+2:
		// One full flip pair already happened; a second is still
		// needed to guarantee any reader whose seq-advance landed on
		// the new bank during the helper's first flip gets reassigned
		// and actually waited on.
		d.flipAndWait(expedited)
	default:
		// snapshot+0 or snapshot+1: no useful help arrived yet, do
		// both flips ourselves. Any advance beyond snapshot+3 also
		// lands here and gets both flips.
		d.flipAndWait(expedited)
		d.flipAndWait(expedited)
	}
}
