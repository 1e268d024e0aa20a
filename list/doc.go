// Package list provides a generic ordered sequence with O(1) access by
// position.
//
// Design
//
//   - Storage: elements live in a doubly linked chain of list-owned nodes.
//     Inserting or deleting at a known position is a constant-time splice.
//
//   - Position index: a slice of node pointers (slot i = node at position i)
//     makes At O(1). After each mutation the slots from the mutation point to
//     the tail are rederived by walking the chain, so the cost of a mutation
//     is O(1) plus the length of the suffix behind it. The slice doubles when
//     full and never shrinks.
//
//   - Comparator: the list never looks at element values itself. Options.Compare
//     drives IndexOf, Find, RemoveValue and the default Sort order; see the
//     compare package for ready-made comparators.
//
//   - Sort: values are copied out, ordered by a stable policy.Sorter (merge by
//     default, insertion as an alternative) and written back along the chain.
//
//   - Misuse: negative positions and removing a value that is not present are
//     programming errors. They return a *MisuseError (checked before anything
//     is touched), are logged through Options.Logger and counted through
//     Options.Metrics. Positions past the end are silently ignored instead.
//
// Basic usage
//
//	l := list.New[int](list.Options[int]{Compare: compare.Ordered[int]})
//	l.Append(1)
//	l.Append(2)
//	l.PushFront(0)           // [0 1 2]
//	_ = l.RemoveAt(1)        // [0 2]
//	i := l.IndexOf(2)        // 1
//	l.Sort(nil, false)       // [2 0]
//	v, ok := l.At(0)         // 2, true
//
// Aborting on misuse
//
//	list.Must(l.RemoveValue(42)) // panics with a *MisuseError
//
// Thread-safety
//
// Lists returned by New are single-owner. Use Synchronized to share one
// between goroutines.
package list
