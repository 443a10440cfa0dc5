package collections

import (
	"cmp"
	"iter"
	"reflect"
	"slices"
)

type setState[T comparable] struct {
	order []T
	index map[T]struct{}
}

// Set keeps unique items in insertion order. Copies of a Set share the
// same underlying set. The zero value is absent and cannot be modified.
type Set[T comparable] struct {
	state *setState[T]
}

func NewSet[T comparable](items ...T) Set[T] {

	s := Set[T]{state: &setState[T]{
		order: make([]T, 0, len(items)),
		index: make(map[T]struct{}, len(items)),
	}}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add returns false if the item was already in the set.
func (s Set[T]) Add(item T) bool {
	if _, exists := s.state.index[item]; exists {
		return false
	}
	s.state.index[item] = struct{}{}
	s.state.order = append(s.state.order, item)
	return true
}

func (s Set[T]) Contains(item T) bool {
	if s.state == nil {
		return false
	}
	_, exists := s.state.index[item]
	return exists
}

func (s Set[T]) All() iter.Seq[T] {
	if s.state == nil {
		return slices.Values([]T(nil))
	}
	return slices.Values(s.state.order)
}

func (s Set[T]) Kind() Kind                { return KindSet }
func (s Set[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }
func (s Set[T]) IsNil() bool               { return s.state == nil }

func (s Set[T]) Len() int {
	if s.state == nil {
		return 0
	}
	return len(s.state.order)
}

func (s Set[T]) Items() any {
	if s.state == nil {
		return []T(nil)
	}
	return s.state.order
}

func (s Set[T]) Collect(items any) Container {
	return NewSet(collectSlice[T](items)...)
}

// SortedSet keeps unique items in ascending order. It is immutable.
type SortedSet[T cmp.Ordered] struct {
	items []T
}

func NewSortedSet[T cmp.Ordered](items ...T) SortedSet[T] {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []T{}
	}
	slices.Sort(sorted)
	return SortedSet[T]{items: slices.Compact(sorted)}
}

func (s SortedSet[T]) Contains(item T) bool {
	_, found := slices.BinarySearch(s.items, item)
	return found
}

func (s SortedSet[T]) Min() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[0], true
}

func (s SortedSet[T]) Max() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s SortedSet[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

func (s SortedSet[T]) Kind() Kind                { return KindSortedSet }
func (s SortedSet[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }
func (s SortedSet[T]) Len() int                  { return len(s.items) }
func (s SortedSet[T]) Items() any                { return s.items }
func (s SortedSet[T]) IsNil() bool               { return s.items == nil }

func (s SortedSet[T]) Collect(items any) Container {
	return NewSortedSet(collectSlice[T](items)...)
}
