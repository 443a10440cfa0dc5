package collections

import (
	"reflect"
	"slices"
)

type sequenceState[T any] struct {
	items []T
}

// Stack is a last in first out collection. It enumerates from the
// bottom to the top so that a formatted stack parses back into the
// same stack. Copies of a Stack share the same underlying items.
// The zero value is absent and cannot be modified, use NewStack.
type Stack[T any] struct {
	state *sequenceState[T]
}

func NewStack[T any](items ...T) Stack[T] {
	return Stack[T]{state: &sequenceState[T]{items: append(make([]T, 0, len(items)), items...)}}
}

// Push panics on the zero value.
func (s Stack[T]) Push(item T) {
	s.state.items = append(s.state.items, item)
}

func (s Stack[T]) Pop() (T, bool) {

	var (
		item T
	)

	if s.Len() == 0 {
		return item, false
	}
	last := len(s.state.items) - 1
	item = s.state.items[last]
	s.state.items = s.state.items[:last]
	return item, true
}

func (s Stack[T]) Peek() (T, bool) {

	var (
		item T
	)

	if s.Len() == 0 {
		return item, false
	}
	return s.state.items[len(s.state.items)-1], true
}

func (s Stack[T]) Kind() Kind                { return KindStack }
func (s Stack[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }
func (s Stack[T]) IsNil() bool               { return s.state == nil }

func (s Stack[T]) Len() int {
	if s.state == nil {
		return 0
	}
	return len(s.state.items)
}

func (s Stack[T]) Items() any {
	if s.state == nil {
		return []T(nil)
	}
	return s.state.items
}

func (s Stack[T]) Collect(items any) Container {
	return Stack[T]{state: &sequenceState[T]{items: slices.Clone(collectSlice[T](items))}}
}

// Queue is a first in first out collection enumerated from the front.
// The zero value is absent and cannot be modified, use NewQueue.
type Queue[T any] struct {
	state *sequenceState[T]
}

func NewQueue[T any](items ...T) Queue[T] {
	return Queue[T]{state: &sequenceState[T]{items: append(make([]T, 0, len(items)), items...)}}
}

// Enqueue panics on the zero value.
func (q Queue[T]) Enqueue(item T) {
	q.state.items = append(q.state.items, item)
}

func (q Queue[T]) Dequeue() (T, bool) {

	var (
		item T
	)

	if q.Len() == 0 {
		return item, false
	}
	item = q.state.items[0]
	q.state.items = q.state.items[1:]
	return item, true
}

func (q Queue[T]) Kind() Kind                { return KindQueue }
func (q Queue[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }
func (q Queue[T]) IsNil() bool               { return q.state == nil }

func (q Queue[T]) Len() int {
	if q.state == nil {
		return 0
	}
	return len(q.state.items)
}

func (q Queue[T]) Items() any {
	if q.state == nil {
		return []T(nil)
	}
	return q.state.items
}

func (q Queue[T]) Collect(items any) Container {
	return Queue[T]{state: &sequenceState[T]{items: slices.Clone(collectSlice[T](items))}}
}
