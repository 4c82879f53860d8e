package screens

// subscribers is an ordered set of callbacks. Cancelled callbacks are removed
// without disturbing the order of the others.
type subscribers[T any] struct {
	fns    map[int]func(T)
	nextID int
}

func (s *subscribers[T]) add(fn func(T)) (cancel func()) {
	if s.fns == nil {
		s.fns = make(map[int]func(T))
	}
	id := s.nextID
	s.nextID++
	s.fns[id] = fn
	return func() {
		delete(s.fns, id)
	}
}

func (s *subscribers[T]) publish(v T) {
	for i := 0; i < s.nextID; i++ {
		if fn, ok := s.fns[i]; ok {
			fn(v)
		}
	}
}
