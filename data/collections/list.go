package collections

import (
	"iter"
	"reflect"
	"slices"
)

// ReadOnlyList is an immutable list. The zero value is absent.
type ReadOnlyList[T any] struct {
	items []T
}

func NewReadOnlyList[T any](items ...T) ReadOnlyList[T] {
	return ReadOnlyList[T]{items: append(make([]T, 0, len(items)), items...)}
}

func (l ReadOnlyList[T]) At(i int) T {
	return l.items[i]
}

func (l ReadOnlyList[T]) All() iter.Seq[T] {
	return slices.Values(l.items)
}

func (l ReadOnlyList[T]) Slice() []T {
	return slices.Clone(l.items)
}

func (l ReadOnlyList[T]) Kind() Kind                { return KindReadOnlyList }
func (l ReadOnlyList[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }
func (l ReadOnlyList[T]) Len() int                  { return len(l.items) }
func (l ReadOnlyList[T]) Items() any                { return l.items }
func (l ReadOnlyList[T]) IsNil() bool               { return l.items == nil }

func (l ReadOnlyList[T]) Collect(items any) Container {
	return ReadOnlyList[T]{items: collectSlice[T](items)}
}

type ChangeType int

const (
	ItemAdded ChangeType = iota
	ItemRemoved
	ItemReplaced
	ListReset
)

type Change[T any] struct {
	Type  ChangeType
	Index int
	Item  T
}

type observableState[T any] struct {
	items     []T
	observers []func(Change[T])
}

// ObservableList notifies subscribers of every modification. Copies of
// an ObservableList share the same underlying list. The zero value is
// absent and cannot be modified or subscribed to, use NewObservableList.
type ObservableList[T any] struct {
	state *observableState[T]
}

func NewObservableList[T any](items ...T) ObservableList[T] {
	return ObservableList[T]{
		state: &observableState[T]{items: append(make([]T, 0, len(items)), items...)},
	}
}

// Subscribe panics on the zero value.
func (l ObservableList[T]) Subscribe(observer func(Change[T])) {
	l.state.observers = append(l.state.observers, observer)
}

func (l ObservableList[T]) Add(item T) {
	l.state.items = append(l.state.items, item)
	l.notify(Change[T]{Type: ItemAdded, Index: len(l.state.items) - 1, Item: item})
}

func (l ObservableList[T]) Set(i int, item T) {
	l.state.items[i] = item
	l.notify(Change[T]{Type: ItemReplaced, Index: i, Item: item})
}

func (l ObservableList[T]) RemoveAt(i int) {
	item := l.state.items[i]
	l.state.items = slices.Delete(l.state.items, i, i+1)
	l.notify(Change[T]{Type: ItemRemoved, Index: i, Item: item})
}

func (l ObservableList[T]) Clear() {
	l.state.items = l.state.items[:0]
	l.notify(Change[T]{Type: ListReset, Index: -1})
}

func (l ObservableList[T]) At(i int) T {
	return l.state.items[i]
}

func (l ObservableList[T]) notify(c Change[T]) {
	for _, o := range l.state.observers {
		o(c)
	}
}

func (l ObservableList[T]) Kind() Kind                { return KindObservableList }
func (l ObservableList[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }
func (l ObservableList[T]) IsNil() bool               { return l.state == nil }

func (l ObservableList[T]) Len() int {
	if l.state == nil {
		return 0
	}
	return len(l.state.items)
}

func (l ObservableList[T]) Items() any {
	if l.state == nil {
		return []T(nil)
	}
	return l.state.items
}

func (l ObservableList[T]) Collect(items any) Container {
	return ObservableList[T]{state: &observableState[T]{items: collectSlice[T](items)}}
}
