// Package observer keeps ordered observer lists for the transfers core.
package observer

import "sync"

// Manager notifies observers in registration order. The zero value is ready to use.
// Notify calls observers without holding the lock, so an observer may add or
// remove observers while being notified.
type Manager[T comparable] struct {
	mu        sync.Mutex
	observers []T
}

// Add registers o and reports false if it was already registered.
func (m *Manager[T]) Add(o T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.observers {
		if existing == o {
			return false
		}
	}
	m.observers = append(m.observers, o)
	return true
}

// Remove unregisters o and reports whether it was registered.
func (m *Manager[T]) Remove(o T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.observers {
		if existing == o {
			m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Manager[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.observers)
}

// Notify calls fn for every observer registered when Notify was called.
func (m *Manager[T]) Notify(fn func(T)) {
	m.mu.Lock()
	observers := append([]T(nil), m.observers...)
	m.mu.Unlock()

	for _, o := range observers {
		fn(o)
	}
}
