package list

import (
	"github.com/rs/zerolog"

	"github.com/IvanBrykalov/indexlist/compare"
	"github.com/IvanBrykalov/indexlist/internal/util"
	"github.com/IvanBrykalov/indexlist/policy/merge"
)

const defaultCapacity = 2

// list is a doubly linked sequence plus a position index (see indexCache).
// Every insertion goes through place and every positional deletion through
// unlink; both leave the index clean before returning.
type list[T any] struct {
	first *node[T]
	last  *node[T]
	len   int
	index indexCache[T]

	opt    Options[T]
	log    zerolog.Logger
	closed bool
}

// New constructs an empty list with the provided Options.
// Defaults:
//   - InitialCapacity <= 0 -> 2
//   - nil Sorter           -> merge
//   - nil Metrics          -> NoopMetrics
//   - nil Logger           -> zerolog.Nop()
func New[T any](opt Options[T]) List[T] {
	if opt.Compare == nil {
		panic("Compare must be set")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Sorter == nil {
		opt.Sorter = merge.New[T]()
	}

	capacity := defaultCapacity
	if opt.InitialCapacity > 0 {
		capacity = int(util.NextPow2(uint64(opt.InitialCapacity)))
	}

	logger := zerolog.Nop()
	if opt.Logger != nil {
		logger = opt.Logger.With().Str("component", "indexlist").Logger()
	}

	return &list[T]{
		index: newIndexCache[T](capacity),
		opt:   opt,
		log:   logger,
	}
}

// ---- List[T] implementation ----

func (l *list[T]) Len() int { return l.len }

func (l *list[T]) Cap() int { return l.index.capacity() }

func (l *list[T]) At(pos int) (T, bool) {
	if n := l.index.at(pos, l.len); n != nil {
		return n.val, true
	}
	var zero T
	return zero, false
}

func (l *list[T]) InsertAt(v T, pos int) error {
	if l.closed {
		return ErrClosed
	}
	if pos < 0 {
		return l.misuse(OpInsertAt, pos, nil, ErrNegativePosition)
	}
	if pos > l.len {
		return nil
	}
	l.place(&node[T]{val: v}, pos)
	return nil
}

func (l *list[T]) PushFront(v T) { _ = l.InsertAt(v, 0) }

func (l *list[T]) Append(v T) { _ = l.InsertAt(v, l.len) }

func (l *list[T]) RemoveAt(pos int) error {
	if l.closed {
		return ErrClosed
	}
	if pos < 0 {
		return l.misuse(OpRemoveAt, pos, nil, ErrNegativePosition)
	}
	if pos >= l.len {
		return nil
	}
	l.unlink(pos)
	return nil
}

func (l *list[T]) RemoveValue(v T) error {
	if l.closed {
		return ErrClosed
	}
	pos := l.IndexOf(v)
	if pos < 0 {
		return l.misuse(OpRemoveValue, pos, v, ErrNotFound)
	}
	l.unlink(pos)
	return nil
}

func (l *list[T]) IndexOf(v T) int {
	pos := 0
	for n := l.first; n != nil; n = n.next {
		if l.opt.Compare(n.val, v) == 0 {
			return pos
		}
		pos++
	}
	return -1
}

func (l *list[T]) Find(v T) (T, bool) {
	for n := l.first; n != nil; n = n.next {
		if l.opt.Compare(n.val, v) == 0 {
			return n.val, true
		}
	}
	var zero T
	return zero, false
}

func (l *list[T]) ForEach(fn func(v T)) {
	n := l.first
	for n != nil {
		// Capture next first: fn may unlink n.
		next := n.next
		fn(n.val)
		n = next
	}
}

func (l *list[T]) Values() []T {
	out := make([]T, l.len)
	for i := range out {
		out[i] = l.index.slots[i].val
	}
	return out
}

// Sort extracts the values, orders them with the configured Sorter and
// writes them back along the chain. Nodes keep their positions, so the index
// stays clean without a rebuild.
func (l *list[T]) Sort(cmp compare.Func[T], ascending bool) {
	if l.len < 2 {
		return
	}
	if cmp == nil {
		cmp = l.opt.Compare
	}
	if !ascending {
		cmp = compare.Reverse(cmp)
	}

	vals := l.Values()
	l.opt.Sorter.Sort(vals, cmp)
	for i, v := range vals {
		l.index.slots[i].val = v
	}
	l.opt.Metrics.Sort(len(vals))
}

func (l *list[T]) Clear() {
	for n := l.first; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
		l.opt.Metrics.Remove()
	}
	l.index.forget(0, l.len)
	l.first, l.last, l.len = nil, nil, 0
	l.opt.Metrics.Size(0, l.index.capacity())
}

func (l *list[T]) Close() error {
	if l.closed {
		return nil
	}
	l.Clear()
	l.index = indexCache[T]{}
	l.closed = true
	return nil
}

// -------------------- internals --------------------

// place splices n in so that it ends up at pos (0 <= pos <= len), then
// refreshes the index from pos-1 onwards.
func (l *list[T]) place(n *node[T], pos int) {
	n.prev = l.index.at(pos-1, l.len)
	n.next = l.index.at(pos, l.len)

	if n.prev != nil {
		n.prev.next = n
	} else {
		l.first = n
	}
	if n.next != nil {
		n.next.prev = n
	} else {
		l.last = n
	}
	l.len++

	if l.index.reserve(l.len) {
		l.opt.Metrics.Grow(l.index.capacity())
		l.log.Debug().
			Int("capacity", l.index.capacity()).
			Int("length", l.len).
			Msg("position index grown")
	}
	l.opt.Metrics.Reindex(l.index.rebuild(l.first, pos-1, l.len))
	l.opt.Metrics.Insert()
	l.opt.Metrics.Size(l.len, l.index.capacity())
}

// unlink removes the node at pos (0 <= pos < len) and refreshes the index
// from pos onwards.
func (l *list[T]) unlink(pos int) {
	n := l.index.slots[pos]

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.last = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--

	l.index.forget(l.len, l.len+1)
	l.opt.Metrics.Reindex(l.index.rebuild(l.first, pos, l.len))
	l.opt.Metrics.Remove()
	l.opt.Metrics.Size(l.len, l.index.capacity())
}

// misuse reports a rejected call. It runs before any mutation.
func (l *list[T]) misuse(op Op, pos int, v any, err error) error {
	l.opt.Metrics.Misuse(op)

	ev := l.log.Error().Str("op", op.String())
	if op == OpRemoveValue {
		ev = ev.Interface("value", v)
	} else {
		ev = ev.Int("position", pos)
	}
	ev.Msg(err.Error())

	return &MisuseError{Op: op, Position: pos, Value: v, Err: err}
}
