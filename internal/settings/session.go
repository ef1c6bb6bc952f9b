package settings

import (
	"sync"

	"annotation-review/internal/domain"
)

// Session holds the live value of one reducer instance.
// Dispatches are applied one at a time in arrival order.
type Session[T any] struct {
	mu      sync.RWMutex
	kind    domain.SettingsKind
	reducer *Reducer[T]
	current T
}

// NewSession starts a session at the reducer's initial value.
func NewSession[T any](kind domain.SettingsKind, reducer *Reducer[T]) *Session[T] {
	return &Session[T]{
		kind:    kind,
		reducer: reducer,
		current: reducer.Initial(),
	}
}

// Kind reports which settings concern the session manages.
func (s *Session[T]) Kind() domain.SettingsKind {
	return s.kind
}

// Current returns a snapshot of the live value.
func (s *Session[T]) Current() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.current)
}

// Initial returns the value reset restores.
func (s *Session[T]) Initial() T {
	return s.reducer.Initial()
}

// Fields exposes the reducer's field descriptors.
func (s *Session[T]) Fields() []Field[T] {
	return s.reducer.Fields()
}

// Dispatch applies action and returns the resulting value.
// A failed action leaves the live value untouched.
func (s *Session[T]) Dispatch(action Action) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.reducer.Reduce(s.current, action)
	if err != nil {
		return clone(s.current), err
	}
	s.current = next
	return clone(next), nil
}
