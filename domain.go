package intervalmap

import (
	"math"
)

// Domain describes a totally ordered key type with a lowest representable
// value. Less must be a strict total order, and no key may be Less than Min().
type Domain[K any] interface {
	Min() K
	Less(a, b K) bool
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

// MinInteger returns the lowest value representable by K.
func MinInteger[K Integer]() K {
	var k K
	if ^k > 0 {
		// Unsigned
		return 0
	}
	// Walk a single bit up until it lands in the sign bit.
	k = 1
	for k > 0 {
		k <<= 1
	}
	return k
}

type integerDomain[K Integer] struct {
	min K
}

func (d integerDomain[K]) Min() K {
	return d.min
}

func (integerDomain[K]) Less(a, b K) bool {
	return a < b
}

func Integers[K Integer]() Domain[K] {
	return integerDomain[K]{min: MinInteger[K]()}
}

type stringDomain[K ~string] struct{}

func (stringDomain[K]) Min() K {
	return ""
}

func (stringDomain[K]) Less(a, b K) bool {
	return a < b
}

// Strings orders keys lexically by byte. The empty string is the minimum.
func Strings[K ~string]() Domain[K] {
	return stringDomain[K]{}
}

type floatDomain[K Float] struct{}

func (floatDomain[K]) Min() K {
	return K(math.Inf(-1))
}

func (floatDomain[K]) Less(a, b K) bool {
	return a < b
}

// Floats orders keys numerically, with -Inf as the minimum. NaN keys have no
// place in a total order and must not be used.
func Floats[K Float]() Domain[K] {
	return floatDomain[K]{}
}
