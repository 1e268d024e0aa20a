package list

import "github.com/IvanBrykalov/indexlist/compare"

// List is an ordered sequence with O(1) positional access.
//
// Implementations returned by New are NOT safe for concurrent use; wrap them
// with Synchronized when several goroutines share one list.
//
// Positions are zero-based. Mutations cost O(1) for the splice plus O(k) to
// refresh the position index for the k elements after the mutation point.
type List[T any] interface {
	// Len returns the number of elements.
	Len() int

	// Cap returns the capacity of the position index (never below Len).
	Cap() int

	// At returns the value at pos. It returns false if pos < 0 or pos >= Len.
	At(pos int) (T, bool)

	// InsertAt inserts v so that it becomes the element at pos; later
	// elements shift right. pos == Len appends.
	// A negative pos is a misuse and returns a *MisuseError wrapping
	// ErrNegativePosition; pos > Len is silently ignored.
	InsertAt(v T, pos int) error

	// PushFront inserts v at position 0.
	PushFront(v T)

	// Append inserts v at position Len.
	Append(v T)

	// RemoveAt deletes the element at pos; later elements shift left.
	// A negative pos is a misuse (ErrNegativePosition); pos >= Len is
	// silently ignored.
	RemoveAt(pos int) error

	// RemoveValue deletes the first element equal to v under the list
	// comparator. A missing value is a misuse and returns a *MisuseError
	// wrapping ErrNotFound; the list is left untouched.
	RemoveValue(v T) error

	// IndexOf returns the smallest position whose element equals v under the
	// list comparator, or -1.
	IndexOf(v T) int

	// Find returns the stored element equal to v (not v itself) and true, or
	// false when none matches.
	Find(v T) (T, bool)

	// ForEach calls fn for every element, front to back. fn may remove the
	// element it is visiting; removing other elements or inserting during the
	// walk has unspecified results.
	ForEach(fn func(v T))

	// Values returns a snapshot of the elements in order.
	Values() []T

	// Sort reorders the elements by cmp (the list comparator when nil),
	// ascending or descending. Equal elements keep their relative order.
	Sort(cmp compare.Func[T], ascending bool)

	// Clear removes every element. Capacity is kept.
	Clear()

	// Close clears the list and releases the position index. After Close,
	// InsertAt, RemoveAt and RemoveValue return ErrClosed, PushFront and
	// Append are ignored and reads report absence. Close is idempotent.
	Close() error
}
