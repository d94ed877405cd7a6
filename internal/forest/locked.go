package forest

import "sync"

// Locked guards a Forest with a single mutex. FindSet mutates parent links,
// so reads take the exclusive lock too.
type Locked[T comparable] struct {
	mu sync.Mutex
	f  *Forest[T]
}

// NewLocked creates a mutex-guarded forest over universe
func NewLocked[T comparable](universe []T) (*Locked[T], error) {
	f, err := New(universe)
	if err != nil {
		return nil, err
	}
	return &Locked[T]{f: f}, nil
}

// FindSet returns the representative of x's set under the lock
func (l *Locked[T]) FindSet(x T) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.FindSet(x)
}

// Link merges the sets of x and y under the lock
func (l *Locked[T]) Link(x, y T) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Link(x, y)
}

// Union is Link under its conventional name
func (l *Locked[T]) Union(x, y T) (bool, error) {
	return l.Link(x, y)
}

// Connected reports whether x and y share a set
func (l *Locked[T]) Connected(x, y T) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Connected(x, y)
}

// Representatives returns every element's representative in universe order
func (l *Locked[T]) Representatives() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Representatives()
}

// Count returns the number of disjoint sets
func (l *Locked[T]) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Count()
}

// Do runs fn with exclusive access to the underlying forest, for sequences
// of calls that must observe one consistent state.
func (l *Locked[T]) Do(fn func(f *Forest[T]) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.f)
}
