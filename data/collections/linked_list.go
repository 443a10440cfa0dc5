package collections

import (
	"container/list"
	"iter"
	"reflect"
)

// LinkedList is a typed wrapper of container/list. The zero value is absent.
type LinkedList[T any] struct {
	l *list.List
}

func NewLinkedList[T any](items ...T) LinkedList[T] {
	ll := LinkedList[T]{l: list.New()}
	for _, item := range items {
		ll.l.PushBack(item)
	}
	return ll
}

func (ll LinkedList[T]) PushBack(item T) {
	ll.l.PushBack(item)
}

func (ll LinkedList[T]) PushFront(item T) {
	ll.l.PushFront(item)
}

func (ll LinkedList[T]) Front() (T, bool) {
	var zero T
	if ll.Len() == 0 {
		return zero, false
	}
	return ll.l.Front().Value.(T), true
}

func (ll LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll.l == nil {
			return
		}
		for e := ll.l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}
}

func (ll LinkedList[T]) Kind() Kind                { return KindLinkedList }
func (ll LinkedList[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }
func (ll LinkedList[T]) IsNil() bool               { return ll.l == nil }

func (ll LinkedList[T]) Len() int {
	if ll.l == nil {
		return 0
	}
	return ll.l.Len()
}

func (ll LinkedList[T]) Items() any {
	if ll.l == nil {
		return []T(nil)
	}
	items := make([]T, 0, ll.l.Len())
	for item := range ll.All() {
		items = append(items, item)
	}
	return items
}

func (ll LinkedList[T]) Collect(items any) Container {
	return NewLinkedList(collectSlice[T](items)...)
}
