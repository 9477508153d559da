package intervalmap

import (
	"log/slog"
	"sync"
)

var _ = (Map[uint8, int])((*LockedMap[uint8, int])(nil))

// LockedMap wraps an IntervalMap for concurrent use. Lookups may run in
// parallel with each other, while Assign is exclusive.
type LockedMap[K any, V comparable] struct {
	m    *IntervalMap[K, V]
	lock sync.RWMutex
}

// NewLocked takes ownership of m. The caller must not use m afterwards.
func NewLocked[K any, V comparable](m *IntervalMap[K, V]) *LockedMap[K, V] {
	return &LockedMap[K, V]{m: m}
}

func (l *LockedMap[K, V]) Assign(begin, end K, value V) {
	l.lock.Lock()
	defer l.lock.Unlock()

	before := l.m.Len()
	l.m.Assign(begin, end, value)
	slog.Debug("intervalmap/LockedMap: Assign", "begin", begin, "end", end,
		"breakpoints", l.m.Len(), "delta", l.m.Len()-before)
}

func (l *LockedMap[K, V]) Get(key K) V {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.m.Get(key)
}

func (l *LockedMap[K, V]) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.m.Len()
}

func (l *LockedMap[K, V]) Breakpoints() []Breakpoint[K, V] {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.m.Breakpoints()
}

// Iterate holds the read lock for the whole iteration. iter must not call
// Assign on l.
func (l *LockedMap[K, V]) Iterate(start K, iter func(Interval[K, V]) bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	l.m.Iterate(start, iter)
}

// Snapshot returns an unlocked copy of the current contents.
func (l *LockedMap[K, V]) Snapshot() *IntervalMap[K, V] {
	// Cloning the B-tree updates its copy-on-write state, so this needs the
	// write lock.
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.m.Clone()
}
