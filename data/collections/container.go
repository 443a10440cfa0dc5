// Package collections holds the collection shapes the text codecs know
// how to build in addition to Go's own slices, arrays and maps.
package collections

import (
	"reflect"
)

type Kind int

const (
	KindList Kind = iota
	KindArray
	KindReadOnlyList
	KindObservableList
	KindSet
	KindSortedSet
	KindStack
	KindQueue
	KindLinkedList
	KindLean
)

var kindNames = map[Kind]string{
	KindList:           "list",
	KindArray:          "array",
	KindReadOnlyList:   "read-only list",
	KindObservableList: "observable list",
	KindSet:            "set",
	KindSortedSet:      "sorted set",
	KindStack:          "stack",
	KindQueue:          "queue",
	KindLinkedList:     "linked list",
	KindLean:           "lean collection",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Container is implemented by every collection type in this package
// with value receivers, so the zero value of a container type can be
// used to build new instances through reflection.
type Container interface {
	Kind() Kind
	ElementType() reflect.Type
	Len() int
	// Items returns the elements as a []T in enumeration order.
	Items() any
	// Collect returns a new container of the receiver's type
	// holding the given items, which have to be a []T.
	Collect(items any) Container
	// IsNil reports whether the container is absent
	// as opposed to present but empty.
	IsNil() bool
}

// ContainerType is the reflected Container interface type.
var ContainerType = reflect.TypeFor[Container]()

// IsContainer reports whether the given type is a collection of this
// package. A struct embedding a collection has its methods promoted
// but is not a container.
func IsContainer(t reflect.Type) bool {
	return t.Kind() != reflect.Interface &&
		t.PkgPath() == ContainerType.PkgPath() &&
		t.Implements(ContainerType)
}

// New builds a container of type t from the elements in items, which
// has to be a []T where T is the container's element type.
func New(t reflect.Type, items any) Container {
	return reflect.Zero(t).Interface().(Container).Collect(items)
}

func collectSlice[T any](items any) []T {
	if items == nil {
		return []T{}
	}
	s := items.([]T)
	if s == nil {
		return []T{}
	}
	return s
}
