package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrainedTrueOnFreshTable(t *testing.T) {
	d := New()
	table := d.shardTable()
	require.True(t, drained(table, 0))
	require.True(t, drained(table, 1))
}

func TestDrainedFalseWhileReaderOpen(t *testing.T) {
	d := New()
	table := d.shardTable()

	tok := d.Enter()
	require.False(t, drained(table, tok))
	d.Leave(tok)
	require.True(t, drained(table, tok))
}

func TestActiveSumsAcrossShards(t *testing.T) {
	d := New()
	table := d.shardTable()

	const readers = 8
	toks := make([]Token, readers)
	done := make(chan struct{})
	for i := range toks {
		i := i
		go func() {
			toks[i] = d.Enter()
			done <- struct{}{}
		}()
		<-done
	}

	total := active(table, 0) + active(table, 1)
	require.EqualValues(t, readers, total)

	for _, tok := range toks {
		d.Leave(tok)
	}
	require.Zero(t, active(table, 0)+active(table, 1))
}

func TestSeqSumOnlyIncreases(t *testing.T) {
	d := New()
	table := d.shardTable()

	tok := d.Enter()
	s1 := seqSum(table, tok)
	d.Leave(tok)

	tok2 := d.Enter()
	s2 := seqSum(table, tok2)
	d.Leave(tok2)

	require.GreaterOrEqual(t, s2, s1)
}
