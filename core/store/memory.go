package store

import (
	"sync"

	coreerrors "github.com/frontdash/partner-desktop/core/errors"
)

// ErrNotFound is returned when a memory store holds nothing.
var ErrNotFound = coreerrors.New(coreerrors.ErrCodeNotFound, "store: not found")

// Memory is an in-process SessionStore, the default for a desktop session
// that should not outlive the process.
type Memory[T any] struct {
	mu    sync.RWMutex
	value T
	has   bool
}

// NewMemory creates an empty memory store.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{}
}

// SaveSession stores the value.
func (m *Memory[T]) SaveSession(session T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = session
	m.has = true
	return nil
}

// LoadSession returns the value or ErrNotFound.
func (m *Memory[T]) LoadSession() (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.has {
		var zero T
		return zero, ErrNotFound
	}
	return m.value, nil
}

// ClearSession drops the value.
func (m *Memory[T]) ClearSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.value = zero
	m.has = false
	return nil
}
