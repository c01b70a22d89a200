package tensor

import "sync/atomic"

// storage is a reference-counted contiguous buffer. Broadcast views share the
// storage of the tensor they were created from.
type storage[E Float] struct {
	data []E
	refs atomic.Int32
}

func newStorage[E Float](n int) *storage[E] {
	s := &storage[E]{data: make([]E, n)}
	s.refs.Store(1)
	return s
}

func (s *storage[E]) addRef() {
	s.refs.Add(1)
}

func (s *storage[E]) release() {
	if s.refs.Add(-1) == 0 {
		s.data = nil
	}
}

func (s *storage[E]) shared() bool {
	return s.refs.Load() > 1
}
