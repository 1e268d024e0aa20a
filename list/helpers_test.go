package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/indexlist/compare"
)

// newInts builds an int list holding vals in order.
func newInts(t testing.TB, vals ...int) *list[int] {
	t.Helper()
	l := New[int](Options[int]{Compare: compare.Ordered[int]}).(*list[int])
	for _, v := range vals {
		l.Append(v)
	}
	return l
}

// requireConsistent checks that the chain, the position index and the
// bookkeeping fields agree.
func requireConsistent[T any](t testing.TB, l *list[T]) {
	t.Helper()

	require.LessOrEqual(t, l.len, l.index.capacity(), "length exceeds capacity")
	if l.len == 0 {
		require.Nil(t, l.first, "empty list has a head")
		require.Nil(t, l.last, "empty list has a tail")
	} else {
		require.Same(t, l.index.slots[0], l.first, "head disagrees with slot 0")
		require.Same(t, l.index.slots[l.len-1], l.last, "tail disagrees with last slot")
	}

	n := l.first
	for i := 0; i < l.len; i++ {
		require.NotNil(t, n, "chain shorter than length at %d", i)
		require.Same(t, n, l.index.slots[i], "slot %d disagrees with chain", i)
		if i == 0 {
			require.Nil(t, n.prev)
		} else {
			require.Same(t, l.index.slots[i-1], n.prev, "prev link broken at %d", i)
		}
		n = n.next
	}
	require.Nil(t, n, "chain longer than length")

	for i := l.len; i < l.index.capacity(); i++ {
		require.Nil(t, l.index.slots[i], "stale slot %d past length", i)
	}
}

// countingMetrics records every hook call.
type countingMetrics struct {
	inserts, removes, sorts int
	reindexed               int
	grows                   []int
	misuse                  map[Op]int
	lastLen, lastCap        int
}

func newCountingMetrics() *countingMetrics { return &countingMetrics{misuse: map[Op]int{}} }

func (m *countingMetrics) Insert()           { m.inserts++ }
func (m *countingMetrics) Remove()           { m.removes++ }
func (m *countingMetrics) Misuse(op Op)      { m.misuse[op]++ }
func (m *countingMetrics) Grow(capacity int) { m.grows = append(m.grows, capacity) }
func (m *countingMetrics) Reindex(slots int) { m.reindexed += slots }
func (m *countingMetrics) Sort(n int)        { m.sorts++ }
func (m *countingMetrics) Size(length, capacity int) {
	m.lastLen, m.lastCap = length, capacity
}
