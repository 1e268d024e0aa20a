package list

import (
	"github.com/rs/zerolog"

	"github.com/IvanBrykalov/indexlist/compare"
	"github.com/IvanBrykalov/indexlist/policy"
)

// Op names a list operation in errors, logs and metrics.
type Op int

const (
	// OpInsertAt covers InsertAt, PushFront and Append.
	OpInsertAt Op = iota
	// OpRemoveAt covers RemoveAt.
	OpRemoveAt
	// OpRemoveValue covers RemoveValue.
	OpRemoveValue
)

func (o Op) String() string {
	switch o {
	case OpInsertAt:
		return "InsertAt"
	case OpRemoveAt:
		return "RemoveAt"
	case OpRemoveValue:
		return "RemoveValue"
	default:
		return "Unknown"
	}
}

// Metrics exposes list-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Insert()
	Remove()
	// Misuse is called once per rejected call (negative position, missing value).
	Misuse(op Op)
	// Grow reports the new index capacity after a doubling.
	Grow(capacity int)
	// Reindex reports how many index slots a mutation rewrote.
	Reindex(slots int)
	// Sort reports the number of values ordered by a Sort call.
	Sort(n int)
	Size(length, capacity int)
}

// Options configures a list. Zero values are safe except Compare;
// defaults are applied in New():
//   - InitialCapacity <= 0 => 2, otherwise rounded up to a power of two
//   - nil Sorter           => merge (stable, O(n log n))
//   - nil Metrics          => NoopMetrics
//   - nil Logger           => zerolog.Nop()
type Options[T any] struct {
	// Compare is the default comparator, used by IndexOf, Find, RemoveValue
	// and by Sort when no comparator is passed. Required.
	Compare compare.Func[T]

	// InitialCapacity sizes the position index up front.
	InitialCapacity int

	// Sorter is the strategy used by Sort.
	Sorter policy.Sorter[T]

	// Observability
	Metrics Metrics
	// Logger receives misuse reports (error level) and index growth (debug).
	Logger *zerolog.Logger
}
