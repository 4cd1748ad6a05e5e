package policy

import (
	"cmp"
	"slices"
)

// Set is a small unordered set used for department IDs and permission codes.
type Set[T cmp.Ordered] map[T]struct{}

type (
	IDSet   = Set[int64]
	CodeSet = Set[string]
)

func NewSet[T cmp.Ordered](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)
	return s
}

func (s Set[T]) Add(items ...T) {
	for _, it := range items {
		s[it] = struct{}{}
	}
}

func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

// Union adds every member of other into s.
func (s Set[T]) Union(other Set[T]) {
	for it := range other {
		s[it] = struct{}{}
	}
}

// Sorted returns the members in ascending order. The result is never nil so
// it encodes as an empty JSON array.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	slices.Sort(out)
	return out
}

// IsSubsetOf reports whether every member of s is in other.
func (s Set[T]) IsSubsetOf(other Set[T]) bool {
	for it := range s {
		if !other.Has(it) {
			return false
		}
	}
	return true
}
