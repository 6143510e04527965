package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFlipAndWaitReturnsImmediatelyWhenAlreadyDrained(t *testing.T) {
	d := New()
	start := time.Now()
	d.flipAndWait(false)
	require.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestFlipAndWaitWaitsForOpenReader(t *testing.T) {
	d := New()
	tok := d.Enter()

	releasedAt := make(chan time.Time, 1)
	go func() {
		time.Sleep(10 * time.Millisecond)
		d.Leave(tok)
		releasedAt <- time.Now()
	}()

	before := time.Now()
	d.flipAndWait(false)
	after := time.Now()

	released := <-releasedAt
	require.False(t, after.Before(released), "flipAndWait returned before the reader actually left")
	require.GreaterOrEqual(t, after.Sub(before), 9*time.Millisecond)
}

func TestExpeditedFlipAndWaitStillWaitsForReader(t *testing.T) {
	d := New()
	tok := d.Enter()

	go func() {
		time.Sleep(2 * time.Millisecond)
		d.Leave(tok)
	}()

	d.flipAndWait(true)
	table := d.shardTable()
	require.True(t, drained(table, tok))
}

func TestSpinWaitRespectsDuration(t *testing.T) {
	start := time.Now()
	spinWait(2 * time.Millisecond)
	require.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}
