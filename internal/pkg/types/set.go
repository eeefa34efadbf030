// Package types holds small generic containers.
package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is an unordered collection of distinct values. The zero value is nil
// and may be read but not written.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// All yields every element in no particular order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.All())
}
