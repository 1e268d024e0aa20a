// Package policy defines the pluggable sort strategy used by list.Sort.
package policy

import "github.com/IvanBrykalov/indexlist/compare"

// Sorter orders a snapshot of a list's values in place.
//
// Semantics:
//   - Implementations must be stable: values cmp reports as equal keep the
//     relative order they had in items.
//   - cmp is already oriented (descending sorts pass a reversed comparison),
//     so a Sorter always orders ascending under cmp.
//   - Sort is called synchronously by the owning list; it must not retain
//     items after returning.
type Sorter[T any] interface {
	Sort(items []T, cmp compare.Func[T])
}
