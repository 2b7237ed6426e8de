package state

import (
	"sync"
)

// Store holds a single authoritative value of S and notifies subscribers
// whenever it changes. The zero value is not usable; construct with New.
//
// Values are treated as immutable: updaters return a new S rather than
// mutating the one they were given, so a Snapshot handed to a reader can
// never drift underneath it.
type Store[S any] struct {
	mu     sync.RWMutex
	value  S
	subs   map[uint64]func()
	nextID uint64
}

// New builds a Store seeded with initial.
func New[S any](initial S) *Store[S] {
	return &Store[S]{
		value: initial,
		subs:  make(map[uint64]func()),
	}
}

// Snapshot returns the current value.
func (s *Store[S]) Snapshot() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the stored value and notifies every subscriber.
func (s *Store[S]) Set(next S) {
	s.Update(func(S) S { return next })
}

// Update applies fn to the current value under the write lock, stores the
// result, then notifies every subscriber registered at that moment. The new
// value is returned.
func (s *Store[S]) Update(fn func(S) S) S {
	s.mu.Lock()
	s.value = fn(s.value)
	next := s.value
	ids := make([]uint64, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	s.notify(ids)
	return next
}

// Subscribe registers fn to run after every change. Callbacks receive no
// payload; they re-read Snapshot. The returned function removes the
// subscription and may be called any number of times, including from inside
// a callback.
func (s *Store[S]) Subscribe(fn func()) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Subscribers reports how many callbacks are registered.
func (s *Store[S]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *Store[S]) notify(ids []uint64) {
	for _, id := range ids {
		// A callback earlier in this cycle may have unsubscribed this one.
		s.mu.RLock()
		fn, ok := s.subs[id]
		s.mu.RUnlock()
		if ok {
			fn()
		}
	}
}
