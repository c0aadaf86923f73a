// Package observable provides a scalar value that notifies subscribers when it
// changes. The slider publishes its two endpoints through it.
package observable

import (
	"sort"
	"sync"
)

// Observer is called with the previous and the new value after a change.
type Observer func(prev, next float64)

// Subscription represents an active observer subscription.
type Subscription struct {
	id     uint64
	scalar *Scalar
}

// Unsubscribe removes this subscription. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.scalar == nil {
		return
	}
	s.scalar.unsubscribe(s.id)
	s.scalar = nil
}

// Scalar is a float64 with change notification. The zero value is ready to use.
type Scalar struct {
	mu        sync.RWMutex
	value     float64
	observers map[uint64]Observer
	nextID    uint64
}

// NewScalar returns a Scalar holding v.
func NewScalar(v float64) *Scalar {
	return &Scalar{value: v}
}

// Get returns the current value.
func (s *Scalar) Get() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v and notifies observers in subscription order. Observers run
// after the lock is released so they may read the scalar.
func (s *Scalar) Set(v float64) {
	s.mu.Lock()
	prev := s.value
	s.value = v
	observers := s.snapshot()
	s.mu.Unlock()

	for _, o := range observers {
		o(prev, v)
	}
}

// Subscribe registers an observer for every subsequent Set.
func (s *Scalar) Subscribe(o Observer) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.observers == nil {
		s.observers = make(map[uint64]Observer)
	}
	s.nextID++
	s.observers[s.nextID] = o
	return &Subscription{id: s.nextID, scalar: s}
}

// SubscriberCount returns the number of active subscriptions.
func (s *Scalar) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

func (s *Scalar) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observers, id)
}

// snapshot must be called with s.mu held.
func (s *Scalar) snapshot() []Observer {
	ids := make([]uint64, 0, len(s.observers))
	for id := range s.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]Observer, len(ids))
	for i, id := range ids {
		out[i] = s.observers[id]
	}
	return out
}
