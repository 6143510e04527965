package core

import (
	"fmt"
	"strings"

	"github.com/kolkov/srcu/internal/srcu/cpulocal"
)

// BankLeak names one bank's still-outstanding reader count as
// observed at Close time.
type BankLeak struct {
	Bank  Token
	Count uint64
}

// LeakReport is returned by Close when readers are still active on
// one or both banks. It implements error so callers that only check
// `if err != nil` still get correct behavior, while callers that want
// the detail can type-assert.
//
// It names which bank(s) are still open and by how much, which is all
// a per-shard atomic counter can tell us (there is no captured stack
// trace for "a reader is still in its critical section", only the
// fact that one is).
type LeakReport struct {
	Banks []BankLeak
}

// Empty reports whether the leak report actually found anything.
func (r *LeakReport) Empty() bool {
	return len(r.Banks) == 0
}

func (r *LeakReport) Error() string {
	if r.Empty() {
		return "srcu: no leaked readers"
	}
	var b strings.Builder
	b.WriteString("srcu: cleanup refused, readers still active: ")
	parts := make([]string, 0, len(r.Banks))
	for _, bank := range r.Banks {
		parts = append(parts, fmt.Sprintf("bank %d has %d outstanding", bank.Bank, bank.Count))
	}
	b.WriteString(strings.Join(parts, "; "))
	return b.String()
}

// collectLeakReport sums active() for both banks and returns a report
// naming every bank with a non-zero count, so Close can refuse to free
// storage while a reader might still dereference it.
func collectLeakReport(table *cpulocal.Table) *LeakReport {
	rep := &LeakReport{}
	for _, b := range [2]Token{0, 1} {
		if n := active(table, b); n != 0 {
			rep.Banks = append(rep.Banks, BankLeak{Bank: b, Count: n})
		}
	}
	return rep
}
