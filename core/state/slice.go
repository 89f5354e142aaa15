package state

import "sync"

// Snapshot is a point-in-time copy of one slice, safe for the caller to keep.
type Snapshot[T any] struct {
	Value     T
	HasValue  bool
	IsLoading bool
	IsSaving  bool
	LastError string
}

// Settled reports that no operation is in flight.
func (s Snapshot[T]) Settled() bool {
	return !s.IsLoading && !s.IsSaving
}

// Slice is one resource's client-side state: the cached value, the in-flight
// flags, and the last error. Only the owning store's actions mutate it;
// everyone else reads snapshots.
type Slice[T any] struct {
	mu        sync.RWMutex
	value     T
	hasValue  bool
	isLoading bool
	isSaving  bool
	lastError string
	onChange  func()
}

func newSlice[T any](onChange func()) *Slice[T] {
	return &Slice[T]{onChange: onChange}
}

// Snapshot returns the slice's current state.
func (s *Slice[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[T]{
		Value:     s.value,
		HasValue:  s.hasValue,
		IsLoading: s.isLoading,
		IsSaving:  s.isSaving,
		LastError: s.lastError,
	}
}

// Value returns the cached value and whether one exists.
func (s *Slice[T]) Value() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.hasValue
}

func (s *Slice[T]) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Slice[T]) beginLoad() {
	s.mu.Lock()
	s.isLoading = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()
}

func (s *Slice[T]) beginSave() {
	s.mu.Lock()
	s.isSaving = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()
}

// settle resolves an in-flight operation. On success the value is replaced;
// on failure the previous value is untouched and the message recorded.
func (s *Slice[T]) settle(value T, err error) {
	s.mu.Lock()
	s.isLoading = false
	s.isSaving = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.value = value
		s.hasValue = true
		s.lastError = ""
	}
	s.mu.Unlock()
	s.notify()
}

// settleKeep resolves an operation whose success does not carry a new value
// (deletes, toggles confirmed elsewhere).
func (s *Slice[T]) settleKeep(err error) {
	s.mu.Lock()
	s.isLoading = false
	s.isSaving = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
	s.mu.Unlock()
	s.notify()
}

// replace overwrites the value directly. Used only by the optimistic
// availability toggle and its rollback.
func (s *Slice[T]) replace(value T) {
	s.mu.Lock()
	s.value = value
	s.hasValue = true
	s.mu.Unlock()
	s.notify()
}

// Reset drops the cached value and error, e.g. after logout.
func (s *Slice[T]) Reset() {
	s.mu.Lock()
	var zero T
	s.value = zero
	s.hasValue = false
	s.isLoading = false
	s.isSaving = false
	s.lastError = ""
	s.mu.Unlock()
	s.notify()
}
