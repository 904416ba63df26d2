package itemset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// items: 0=color=red 1=color=blue 2=shape=round 3=shape=square
func colorShape(t *testing.T) *Transactions {
	t.Helper()
	b := NewBuilder(4, 4, func(id ItemID) int { return int(id) / 2 })
	require.NoError(t, b.Add(0, 2))
	require.NoError(t, b.Add(0, 2))
	require.NoError(t, b.Add(0, 3))
	require.NoError(t, b.Add(1, 2))
	return b.Build()
}

func TestTransactions_Counts(t *testing.T) {
	tx := colorShape(t)
	require.Equal(t, 4, tx.Len())
	require.Equal(t, 4, tx.NumItems())

	tests := []struct {
		set   Itemset
		count int
	}{
		{New(), 4},
		{New(0), 3},
		{New(2), 3},
		{New(0, 2), 2},
		{New(0, 1), 0},
		{New(0, 2, 3), 0},
		{New(1, 2), 1},
	}
	for _, tt := range tests {
		t.Run(tt.set.String(), func(t *testing.T) {
			assert.Equal(t, tt.count, tx.Count(tt.set))
			assert.InDelta(t, float64(tt.count)/4, tx.Support(tt.set), 1e-12)
			assert.Equal(t, uint(tt.count), tx.Cover(tt.set).Count())
		})
	}
}

func TestTransactions_Attributes(t *testing.T) {
	tx := colorShape(t)
	assert.True(t, tx.SameAttribute(0, 1))
	assert.True(t, tx.SameAttribute(2, 3))
	assert.False(t, tx.SameAttribute(1, 2))

	plain := NewBuilder(2, 0, nil).Build()
	assert.False(t, plain.SameAttribute(0, 1))
}

func TestTransactions_RowAndTIDs(t *testing.T) {
	tx := colorShape(t)
	assert.Equal(t, []ItemID{0, 3}, tx.Row(2).Items())
	assert.Equal(t, []ItemID{1, 2}, tx.Row(3).Items())

	tids := tx.TIDs(0)
	tids.Clear(0)
	assert.Equal(t, 3, tx.ItemCount(0), "TIDs must return a copy")
}

func TestBuilder_RejectsUnknownItem(t *testing.T) {
	b := NewBuilder(2, 1, nil)
	assert.Error(t, b.Add(2))
	assert.Error(t, b.Add(-1))
}

func TestTransactions_EmptySupport(t *testing.T) {
	tx := NewBuilder(1, 0, nil).Build()
	assert.Equal(t, 0, tx.Len())
	assert.Zero(t, tx.Support(New(0)))
}
