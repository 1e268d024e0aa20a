package list

// node is a doubly linked list element owned by a list.
// It stores the caller value alongside the chain links; the list never
// inspects val except through the configured comparator.
type node[T any] struct {
	val T

	// Chain links: the head has no prev, the tail has no next.
	prev *node[T]
	next *node[T]
}
