package intervalmap

// Breakpoint marks the start of a maximal run of keys sharing Value. The run
// extends up to the next breakpoint's Key (exclusive).
type Breakpoint[K, V any] struct {
	Key   K
	Value V
}

// Interval is a maximal run of keys [Begin, End) mapped to Value. The last
// interval of a map is Unbounded: it covers every key from Begin to the top
// of the domain inclusive, and End is the zero value.
type Interval[K, V any] struct {
	Begin, End K
	Unbounded  bool
	Value      V
}

// Map is implemented by IntervalMap and LockedMap.
type Map[K any, V comparable] interface {
	Assign(begin, end K, value V)
	Get(key K) V

	Len() int
	Breakpoints() []Breakpoint[K, V]

	IntervalIterator[K, V]
}

type IntervalIterator[K, V any] interface {
	Iterate(start K, iter func(Interval[K, V]) bool)
}
