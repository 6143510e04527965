package srcu_test

import (
	"fmt"

	"github.com/kolkov/srcu/srcu"
)

// Example demonstrates basic usage of an srcu Domain protecting a
// pointer to shared, immutable data.
func Example() {
	d := srcu.NewDomain()
	defer d.Close()

	data := "v1"
	current := &data

	tok := d.Enter()
	fmt.Println(*current)
	d.Leave(tok)

	// Output:
	// v1
}

// Example_writerReplacesData shows a writer swapping the pointer a
// Domain protects and waiting for every reader that might still be
// looking at the old value before it lets it go.
func Example_writerReplacesData() {
	d := srcu.NewDomain()
	defer d.Close()

	current := "v1"

	tok := d.Enter()
	seenByReader := current
	d.Leave(tok)

	current = "v2"
	d.Synchronize() // waits for the reader above, which has already left

	fmt.Println(seenByReader, current)

	// Output:
	// v1 v2
}

// Example_expedited shows requesting a lower-latency grace period at
// the cost of extra CPU spent busy-waiting.
func Example_expedited() {
	d := srcu.NewDomain()
	defer d.Close()

	tok := d.Enter()
	d.Leave(tok)

	d.SynchronizeExpedited()

	fmt.Println("grace period complete")

	// Output:
	// grace period complete
}
