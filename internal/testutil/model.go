package testutil

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/go-cmp/cmp"

	"github.com/akmistry/intervalmap"
)

const numKeys = 256

// Model is a flat reference implementation of an interval map over uint8
// keys, storing one value per key.
type Model[V comparable] struct {
	values [numKeys]V
}

func NewModel[V comparable](initial V) *Model[V] {
	m := new(Model[V])
	for i := range m.values {
		m.values[i] = initial
	}
	return m
}

func (m *Model[V]) Assign(begin, end uint8, value V) {
	for k := int(begin); k < int(end); k++ {
		m.values[k] = value
	}
}

func (m *Model[V]) Get(key uint8) V {
	return m.values[key]
}

func (m *Model[V]) Clone() *Model[V] {
	c := *m
	return &c
}

// Changed returns the set of keys whose values differ between m and other.
func (m *Model[V]) Changed(other *Model[V]) *bitset.BitSet {
	changed := bitset.New(numKeys)
	for k := range m.values {
		if m.values[k] != other.values[k] {
			changed.Set(uint(k))
		}
	}
	return changed
}

// Breakpoints returns the canonical breakpoint list for the model's values.
func (m *Model[V]) Breakpoints() []intervalmap.Breakpoint[uint8, V] {
	bps := []intervalmap.Breakpoint[uint8, V]{{Key: 0, Value: m.values[0]}}
	for k := 1; k < numKeys; k++ {
		if m.values[k] != m.values[k-1] {
			bps = append(bps, intervalmap.Breakpoint[uint8, V]{Key: uint8(k), Value: m.values[k]})
		}
	}
	return bps
}

// RandomRange returns a random non-empty range [begin, end).
func RandomRange() (begin, end uint8) {
	b := rand.Intn(numKeys - 1)
	e := b + 1 + rand.Intn(numKeys-1-b)
	return uint8(b), uint8(e)
}

// CheckMap compares every key and the breakpoint list of |tested| against
// |expected|.
func CheckMap[V comparable](t *testing.T, tested intervalmap.Map[uint8, V], expected *Model[V]) {
	t.Helper()

	for k := 0; k < numKeys; k++ {
		v := tested.Get(uint8(k))
		exp := expected.Get(uint8(k))
		if v != exp {
			t.Errorf("Get(%d) %v != expected %v", k, v, exp)
		}
	}

	if diff := cmp.Diff(expected.Breakpoints(), tested.Breakpoints()); diff != "" {
		t.Errorf("Breakpoints() mismatch (-expected +tested):\n%s", diff)
	}
}

// CheckIterate verifies that iterating |tested| from |start| covers every key
// from |start| upwards exactly once, with the values of |expected|.
func CheckIterate[V comparable](t *testing.T, tested intervalmap.Map[uint8, V], expected *Model[V], start uint8) {
	t.Helper()

	next := int(start)
	var prev *intervalmap.Interval[uint8, V]
	tested.Iterate(start, func(r intervalmap.Interval[uint8, V]) bool {
		if int(r.Begin) != next {
			t.Errorf("Iterate(%d) Begin %d != expected %d", start, r.Begin, next)
		}
		if prev != nil && prev.Value == r.Value {
			t.Errorf("Iterate(%d) adjacent intervals at %d both have value %v",
				start, r.Begin, r.Value)
		}
		end := int(r.End)
		if r.Unbounded {
			end = numKeys
		}
		for k := int(r.Begin); k < end; k++ {
			if exp := expected.Get(uint8(k)); exp != r.Value {
				t.Errorf("Iterate(%d) key %d value %v != expected %v", start, k, r.Value, exp)
			}
		}
		next = end
		prev = &r
		return true
	})
	if next != numKeys {
		t.Errorf("Iterate(%d) ended at %d != %d", start, next, numKeys)
	}
}
