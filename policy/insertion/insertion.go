// Package insertion implements the classic insertion sort strategy.
//
// It is O(n²) in comparisons and moves and only worth picking for short lists
// or input that is already nearly sorted. Output is identical to the merge
// strategy.
package insertion

import (
	"github.com/IvanBrykalov/indexlist/compare"
	"github.com/IvanBrykalov/indexlist/policy"
)

type insertion[T any] struct{}

// New returns a Sorter that builds the ordered prefix one value at a time.
func New[T any]() policy.Sorter[T] { return insertion[T]{} }

// Sort places each value after every already-placed value that does not sort
// after it, so ties keep first-encountered-first order.
func (insertion[T]) Sort(items []T, cmp compare.Func[T]) {
	for i := 1; i < len(items); i++ {
		v := items[i]
		j := i
		for j > 0 && cmp(items[j-1], v) > 0 {
			items[j] = items[j-1]
			j--
		}
		items[j] = v
	}
}
