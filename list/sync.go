package list

import (
	"sync"

	"github.com/IvanBrykalov/indexlist/compare"
)

// synchronized guards a List with a read/write lock.
type synchronized[T any] struct {
	mu sync.RWMutex
	l  List[T]
}

// Synchronized returns a List whose methods are safe for concurrent use.
// Reads (Len, Cap, At, IndexOf, Find, Values, ForEach) share a read lock;
// everything else takes the write lock.
//
// ForEach holds the read lock while fn runs, so fn must not call back into
// the returned List; collect positions and mutate after the walk instead.
func Synchronized[T any](l List[T]) List[T] {
	if s, ok := l.(*synchronized[T]); ok {
		return s
	}
	return &synchronized[T]{l: l}
}

func (s *synchronized[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Len()
}

func (s *synchronized[T]) Cap() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Cap()
}

func (s *synchronized[T]) At(pos int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.At(pos)
}

func (s *synchronized[T]) InsertAt(v T, pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.InsertAt(v, pos)
}

func (s *synchronized[T]) PushFront(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.PushFront(v)
}

func (s *synchronized[T]) Append(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Append(v)
}

func (s *synchronized[T]) RemoveAt(pos int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveAt(pos)
}

func (s *synchronized[T]) RemoveValue(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveValue(v)
}

func (s *synchronized[T]) IndexOf(v T) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.IndexOf(v)
}

func (s *synchronized[T]) Find(v T) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Find(v)
}

func (s *synchronized[T]) ForEach(fn func(v T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.l.ForEach(fn)
}

func (s *synchronized[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Values()
}

func (s *synchronized[T]) Sort(cmp compare.Func[T], ascending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Sort(cmp, ascending)
}

func (s *synchronized[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Clear()
}

func (s *synchronized[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Close()
}
