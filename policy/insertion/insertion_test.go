package insertion

import (
	"math/rand"
	"sort"
	"testing"
)

// --- test doubles ---

type rec struct {
	key int
	seq int // original position, used to check stability
}

func byKey(a, b rec) int { return a.key - b.key }

// --- tests ---

// Sort must order ascending and keep ties in their original order.
func TestInsertion_StableAscending(t *testing.T) {
	t.Parallel()

	items := []rec{{3, 0}, {1, 1}, {3, 2}, {2, 3}, {1, 4}}
	New[rec]().Sort(items, byKey)

	want := []rec{{1, 1}, {1, 4}, {2, 3}, {3, 0}, {3, 2}}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("pos %d: want %+v, got %+v (all: %+v)", i, want[i], items[i], items)
		}
	}
}

// Empty and single-element inputs are left untouched.
func TestInsertion_Trivial(t *testing.T) {
	t.Parallel()

	New[rec]().Sort(nil, byKey)

	one := []rec{{5, 0}}
	New[rec]().Sort(one, byKey)
	if one[0] != (rec{5, 0}) {
		t.Fatalf("single element changed: %+v", one)
	}
}

// Output must match sort.SliceStable on random input with many ties.
func TestInsertion_MatchesSliceStable(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := r.Intn(64)
		items := make([]rec, n)
		for i := range items {
			items[i] = rec{key: r.Intn(8), seq: i}
		}
		want := append([]rec(nil), items...)
		sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })

		New[rec]().Sort(items, byKey)
		for i := range want {
			if items[i] != want[i] {
				t.Fatalf("round %d pos %d: want %+v, got %+v", round, i, want[i], items[i])
			}
		}
	}
}
