package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDomainStartsAtZero(t *testing.T) {
	d := New()
	require.Zero(t, d.BatchesCompleted())
}

func TestCloseOnCleanDomainSucceeds(t *testing.T) {
	d := New()
	require.NoError(t, d.Close())
}

func TestCloseTwiceReturnsErrClosed(t *testing.T) {
	d := New()
	require.NoError(t, d.Close())
	require.ErrorIs(t, d.Close(), ErrClosed)
}

func TestCloseWithLeakedReaderFails(t *testing.T) {
	d := New()
	_ = d.Enter()

	err := d.Close()
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrClosed))

	var rep *LeakReport
	require.ErrorAs(t, err, &rep)
	require.False(t, rep.Empty())
	require.Len(t, rep.Banks, 1)
}

func TestOperationsOnClosedDomainPanic(t *testing.T) {
	d := New()
	require.NoError(t, d.Close())

	require.Panics(t, func() { d.Enter() })
	require.Panics(t, func() { d.Synchronize(false) })
}

func TestBatchesCompletedAdvancesOnSynchronize(t *testing.T) {
	d := New()
	before := d.BatchesCompleted()
	d.Synchronize(false)
	require.Greater(t, d.BatchesCompleted(), before)
}
