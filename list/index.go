package list

// indexCache maps logical positions to nodes.
//
// slots[i] is the node at position i for every i below the owning list's
// length, and nil past it. len(slots) is the capacity: it grows by doubling
// and is never shrunk while the list is open.
type indexCache[T any] struct {
	slots []*node[T]
}

func newIndexCache[T any](capacity int) indexCache[T] {
	return indexCache[T]{slots: make([]*node[T], capacity)}
}

func (c *indexCache[T]) capacity() int { return len(c.slots) }

// at returns the node at pos, or nil when pos is outside [0, n).
func (c *indexCache[T]) at(pos, n int) *node[T] {
	if pos < 0 || pos >= n {
		return nil
	}
	return c.slots[pos]
}

// reserve doubles the capacity until it can hold n entries.
// It reports whether the backing slice was reallocated.
func (c *indexCache[T]) reserve(n int) bool {
	if n <= len(c.slots) {
		return false
	}
	capacity := max(len(c.slots), 1)
	for capacity < n {
		capacity *= 2
	}
	slots := make([]*node[T], capacity)
	copy(slots, c.slots)
	c.slots = slots
	return true
}

// rebuild rederives slots [from, n) by walking the chain, starting from the
// still valid slot at from-1 (or from first when from is 0). It returns the
// number of slots written.
//
// This is the only place positions are recomputed from links; the cost is
// bounded by the suffix after the mutation point.
func (c *indexCache[T]) rebuild(first *node[T], from, n int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < n; i++ {
		if i == 0 {
			c.slots[0] = first
		} else {
			c.slots[i] = c.slots[i-1].next
		}
	}
	return max(n-from, 0)
}

// forget drops references held in slots [from, to) so unlinked nodes can be
// collected.
func (c *indexCache[T]) forget(from, to int) {
	clear(c.slots[from:to])
}
