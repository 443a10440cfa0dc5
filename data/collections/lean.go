package collections

import (
	"iter"
	"reflect"
)

const leanCapacity = 5

// LeanCollection stores up to five items inline and spills into a
// slice beyond that. It is never absent; the zero value is empty.
type LeanCollection[T any] struct {
	n     int
	small [leanCapacity]T
	many  []T
}

func NewLeanCollection[T any](items ...T) LeanCollection[T] {
	lc := LeanCollection[T]{n: len(items)}
	if len(items) > leanCapacity {
		lc.many = append(make([]T, 0, len(items)), items...)
	} else {
		copy(lc.small[:], items)
	}
	return lc
}

// With returns a copy of the collection with item appended.
func (lc LeanCollection[T]) With(item T) LeanCollection[T] {

	switch {
	case lc.n < leanCapacity:
		lc.small[lc.n] = item
	case lc.n == leanCapacity:
		lc.many = make([]T, 0, leanCapacity*2)
		lc.many = append(append(lc.many, lc.small[:]...), item)
		lc.small = [leanCapacity]T{}
	default:
		lc.many = append(lc.many[:lc.n:lc.n], item)
	}
	lc.n++
	return lc
}

func (lc LeanCollection[T]) At(i int) T {
	if lc.n > leanCapacity {
		return lc.many[i]
	}
	if i >= lc.n {
		panic("collections: index out of range")
	}
	return lc.small[i]
}

// Inline reports whether the items are held without a backing slice.
func (lc LeanCollection[T]) Inline() bool {
	return lc.n <= leanCapacity
}

func (lc LeanCollection[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < lc.n; i++ {
			if !yield(lc.At(i)) {
				return
			}
		}
	}
}

func (lc LeanCollection[T]) Kind() Kind                { return KindLean }
func (lc LeanCollection[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }
func (lc LeanCollection[T]) Len() int                  { return lc.n }
func (lc LeanCollection[T]) IsNil() bool               { return false }

func (lc LeanCollection[T]) Items() any {
	if lc.n > leanCapacity {
		return lc.many
	}
	return append([]T{}, lc.small[:lc.n]...)
}

func (lc LeanCollection[T]) Collect(items any) Container {
	return NewLeanCollection(collectSlice[T](items)...)
}
