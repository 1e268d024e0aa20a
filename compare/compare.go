// Package compare provides three-way comparison functions used by list
// search and sort.
//
// A comparison returns a negative number when a sorts before b, zero when a
// and b are equal and a positive number otherwise. Equality-only comparators
// (such as Equal) return zero or a positive number and are only meaningful for
// search and removal by value.
package compare

import "golang.org/x/exp/constraints"

// Func is a three-way comparison over values of type T.
type Func[T any] func(a, b T) int

// Ordered compares values of an ordered type with the builtin operators.
func Ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Equal reports 0 when a == b and 1 otherwise. For pointer types this is
// reference identity, which makes it a reasonable default comparator for
// lists of caller-owned objects.
func Equal[T comparable](a, b T) int {
	if a == b {
		return 0
	}
	return 1
}

// Reverse returns a comparison that orders values the opposite way to cmp.
// Values cmp considers equal stay equal.
func Reverse[T any](cmp Func[T]) Func[T] {
	return func(a, b T) int { return cmp(b, a) }
}
