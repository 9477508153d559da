package intervalmap

import (
	"log"

	"github.com/google/btree"
)

const defaultDegree = 16

var _ = (Map[uint8, int])((*IntervalMap[uint8, int])(nil))

// noCopy trips go vet's copylocks check. An IntervalMap must be used through
// the pointer returned by its constructor; use Clone for a second map.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type Options[K any] struct {
	// Ordering and minimum of the key type. Required.
	Domain Domain[K]

	// Degree of the B-tree holding the breakpoints. Defaults to 16.
	Degree int
}

func setDefaultIfZero[T comparable](v *T, defaultVal T) {
	var zeroVal T
	if *v == zeroVal {
		*v = defaultVal
	}
}

// IntervalMap maps every key of a domain to a value, storing one breakpoint
// per change of value. A breakpoint (k, v) maps all keys from k up to the next
// breakpoint (exclusive) to v.
//
// The first breakpoint is always at the domain minimum, and no two adjacent
// breakpoints hold equal values.
//
// IntervalMap is not safe for concurrent use. See LockedMap.
type IntervalMap[K any, V comparable] struct {
	noCopy noCopy

	domain Domain[K]
	tree   *btree.BTreeG[Breakpoint[K, V]]
}

// New returns a map with every key of K mapped to initial.
func New[K Integer, V comparable](initial V) *IntervalMap[K, V] {
	return NewWithOptions(initial, Options[K]{Domain: Integers[K]()})
}

// NewWithOptions returns a map over opts.Domain with every key mapped to
// initial.
func NewWithOptions[K any, V comparable](initial V, opts Options[K]) *IntervalMap[K, V] {
	if opts.Domain == nil {
		panic("intervalmap: nil Domain")
	}
	setDefaultIfZero(&opts.Degree, defaultDegree)

	d := opts.Domain
	m := &IntervalMap[K, V]{
		domain: d,
		tree: btree.NewG(opts.Degree, func(a, b Breakpoint[K, V]) bool {
			return d.Less(a.Key, b.Key)
		}),
	}
	m.tree.ReplaceOrInsert(Breakpoint[K, V]{Key: d.Min(), Value: initial})
	return m
}

func pivot[K, V any](key K) Breakpoint[K, V] {
	return Breakpoint[K, V]{Key: key}
}

func (m *IntervalMap[K, V]) equal(a, b K) bool {
	return !m.domain.Less(a, b) && !m.domain.Less(b, a)
}

// floor returns the breakpoint in effect at key.
func (m *IntervalMap[K, V]) floor(key K) (bp Breakpoint[K, V]) {
	found := false
	m.tree.DescendLessOrEqual(pivot[K, V](key), func(i Breakpoint[K, V]) bool {
		bp = i
		found = true
		return false
	})
	if !found {
		log.Panicf("intervalmap: no breakpoint at or below %v", key)
	}
	return
}

// before returns the breakpoint in effect just before key. key must be above
// the domain minimum.
func (m *IntervalMap[K, V]) before(key K) (bp Breakpoint[K, V]) {
	found := false
	m.tree.DescendLessOrEqual(pivot[K, V](key), func(i Breakpoint[K, V]) bool {
		if !m.domain.Less(i.Key, key) {
			return true
		}
		bp = i
		found = true
		return false
	})
	if !found {
		log.Panicf("intervalmap: no breakpoint below %v", key)
	}
	return
}

// ceil returns the first breakpoint at or above key.
func (m *IntervalMap[K, V]) ceil(key K) (bp Breakpoint[K, V], ok bool) {
	m.tree.AscendGreaterOrEqual(pivot[K, V](key), func(i Breakpoint[K, V]) bool {
		bp = i
		ok = true
		return false
	})
	return
}

// after returns the first breakpoint strictly above key.
func (m *IntervalMap[K, V]) after(key K) (bp Breakpoint[K, V], ok bool) {
	m.tree.AscendGreaterOrEqual(pivot[K, V](key), func(i Breakpoint[K, V]) bool {
		if !m.domain.Less(key, i.Key) {
			return true
		}
		bp = i
		ok = true
		return false
	})
	return
}

func (m *IntervalMap[K, V]) insert(bp Breakpoint[K, V]) {
	old, replaced := m.tree.ReplaceOrInsert(bp)
	if replaced {
		log.Panicf("intervalmap: unexpected old breakpoint: %+v, inserting: %+v", old, bp)
	}
}

// eraseBetween removes every breakpoint strictly between start and stop. If
// !bounded, everything above start is removed.
func (m *IntervalMap[K, V]) eraseBetween(start, stop K, bounded bool) {
	var keys []K
	m.tree.AscendGreaterOrEqual(pivot[K, V](start), func(i Breakpoint[K, V]) bool {
		if !m.domain.Less(start, i.Key) {
			return true
		} else if bounded && !m.domain.Less(i.Key, stop) {
			return false
		}
		keys = append(keys, i.Key)
		return true
	})

	// The tree can't be modified while iterating.
	for _, k := range keys {
		if _, ok := m.tree.Delete(pivot[K, V](k)); !ok {
			log.Panicf("intervalmap: breakpoint not deleted: %v", k)
		}
	}
}

// Assign maps every key in [begin, end) to value. Other keys keep their
// values. If !(begin < end), Assign does nothing.
func (m *IntervalMap[K, V]) Assign(begin, end K, value V) {
	if !m.domain.Less(begin, end) {
		return
	}

	// End boundary. |stop| is the first breakpoint left standing after the
	// assigned run, or !bounded if the run reaches the top of the domain.
	var stop K
	bounded := false
	prev := m.before(end)
	next, hasNext := m.ceil(end)
	atEnd := hasNext && m.equal(next.Key, end)
	switch {
	case atEnd && next.Value == value:
		// The run continues into the interval starting at |end|, so the
		// breakpoint at |end| goes away.
		var succ Breakpoint[K, V]
		succ, bounded = m.after(end)
		stop = succ.Key
	case prev.Value != value:
		// Keys from |end| onwards keep the value they had before.
		if !atEnd {
			m.insert(Breakpoint[K, V]{Key: end, Value: prev.Value})
		}
		stop, bounded = end, true
	case hasNext:
		stop, bounded = next.Key, true
	}

	// Start boundary. This must come after the end, since a breakpoint
	// inserted at |end| changes what lies between the two.
	start := begin
	if m.equal(begin, m.domain.Min()) {
		// The first breakpoint can never be removed, only overwritten.
		m.tree.ReplaceOrInsert(Breakpoint[K, V]{Key: m.domain.Min(), Value: value})
	} else if p := m.before(begin); p.Value == value {
		// Extend the preceding run.
		start = p.Key
	} else {
		m.tree.ReplaceOrInsert(Breakpoint[K, V]{Key: begin, Value: value})
	}

	m.eraseBetween(start, stop, bounded)
}

// Get returns the value mapped to key.
func (m *IntervalMap[K, V]) Get(key K) V {
	return m.floor(key).Value
}

// Len returns the number of breakpoints, which is always at least 1.
func (m *IntervalMap[K, V]) Len() int {
	return m.tree.Len()
}

// Min returns the lowest key of the map's domain.
func (m *IntervalMap[K, V]) Min() K {
	return m.domain.Min()
}

// Breakpoints returns a copy of the breakpoints in increasing key order.
func (m *IntervalMap[K, V]) Breakpoints() []Breakpoint[K, V] {
	bps := make([]Breakpoint[K, V], 0, m.tree.Len())
	m.tree.Ascend(func(i Breakpoint[K, V]) bool {
		bps = append(bps, i)
		return true
	})
	return bps
}

// Iterate calls iter on each interval in increasing key order, starting with
// the one containing |start|, whose Begin is clipped to |start|. Iteration
// stops when iter returns false. The map must not be modified by iter.
func (m *IntervalMap[K, V]) Iterate(start K, iter func(Interval[K, V]) bool) {
	r := Interval[K, V]{
		Begin: start,
		Value: m.floor(start).Value,
	}
	stopped := false
	m.tree.AscendGreaterOrEqual(pivot[K, V](start), func(i Breakpoint[K, V]) bool {
		if !m.domain.Less(start, i.Key) {
			return true
		}
		r.End = i.Key
		if !iter(r) {
			stopped = true
			return false
		}
		r = Interval[K, V]{Begin: i.Key, Value: i.Value}
		return true
	})
	if stopped {
		return
	}
	r.Unbounded = true
	iter(r)
}

// Clone returns a deep copy of m. Modifying either map does not affect the
// other.
func (m *IntervalMap[K, V]) Clone() *IntervalMap[K, V] {
	return &IntervalMap[K, V]{
		domain: m.domain,
		tree:   m.tree.Clone(),
	}
}
