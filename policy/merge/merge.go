// Package merge implements the default stable sort strategy.
package merge

import (
	"golang.org/x/exp/slices"

	"github.com/IvanBrykalov/indexlist/compare"
	"github.com/IvanBrykalov/indexlist/policy"
)

type merge[T any] struct{}

// New returns a Sorter backed by slices.SortStableFunc
// (O(n log n) comparisons, stable).
func New[T any]() policy.Sorter[T] { return merge[T]{} }

// Sort orders items ascending under cmp, keeping equal values in place order.
func (merge[T]) Sort(items []T, cmp compare.Func[T]) {
	slices.SortStableFunc(items, cmp)
}
