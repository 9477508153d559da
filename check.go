package intervalmap

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty        = errors.New("no breakpoints")
	ErrMissingMin   = errors.New("first breakpoint not at domain minimum")
	ErrOutOfOrder   = errors.New("breakpoints out of order")
	ErrNotCanonical = errors.New("adjacent breakpoints with equal values")
)

// Check verifies the map's structural invariants, returning the first
// violation found.
func (m *IntervalMap[K, V]) Check() error {
	bps := m.Breakpoints()
	if len(bps) == 0 {
		return ErrEmpty
	}
	if !m.equal(bps[0].Key, m.domain.Min()) {
		return fmt.Errorf("%w: first key %v", ErrMissingMin, bps[0].Key)
	}
	for i := 1; i < len(bps); i++ {
		prev, bp := bps[i-1], bps[i]
		if !m.domain.Less(prev.Key, bp.Key) {
			return fmt.Errorf("%w: %v before %v", ErrOutOfOrder, prev.Key, bp.Key)
		}
		if prev.Value == bp.Value {
			return fmt.Errorf("%w: %v and %v both map to %v",
				ErrNotCanonical, prev.Key, bp.Key, bp.Value)
		}
	}
	return nil
}
