// Package graduated holds values that vary by aggression level. A value
// stores one, three (passive, normal, aggressive) or nine variants and
// always keeps the most compact equivalent form.
package graduated

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

var ErrInvalidArity = errors.New("graduated value has to consist of 1, 3 or 9 elements")

// ValidArities lists the element counts a graduated value can have.
var ValidArities = []int{1, 3, 9}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func equal[T any](a, b T) bool {
	return cmp.Equal(a, b, exportAll)
}

// Value is a graduated value. The zero Value holds a single zero T.
type Value[T any] struct {
	arity  int
	values [9]T
}

func One[T any](v T) Value[T] {
	return Value[T]{arity: 1, values: [9]T{v}}
}

func Three[T any](passive, normal, aggressive T) Value[T] {

	if equal(passive, normal) && equal(normal, aggressive) {
		return One(passive)
	}
	return Value[T]{arity: 3, values: [9]T{passive, normal, aggressive}}
}

func Nine[T any](values [9]T) Value[T] {

	for block := 0; block < 9; block += 3 {
		if !equal(values[block], values[block+1]) || !equal(values[block], values[block+2]) {
			return Value[T]{arity: 9, values: values}
		}
	}
	return Three(values[0], values[3], values[6])
}

// FromValues builds a compacted value from 0, 1, 3 or 9 raw values.
// No values yield the zero Value.
func FromValues[T any](values ...T) (Value[T], error) {

	switch len(values) {
	case 0:
		return Value[T]{}, nil
	case 1:
		return One(values[0]), nil
	case 3:
		return Three(values[0], values[1], values[2]), nil
	case 9:
		return Nine([9]T(values)), nil
	default:
		return Value[T]{}, fmt.Errorf("%w but %d were given", ErrInvalidArity, len(values))
	}
}

func (v Value[T]) Arity() int {
	return max(v.arity, 1)
}

// Values returns the stored, compacted elements.
func (v Value[T]) Values() []T {
	return append([]T(nil), v.values[:v.Arity()]...)
}

// Expand returns the full nine element view. One value is
// replicated nine times and each of three values three times.
func (v Value[T]) Expand() [9]T {

	var (
		expanded [9]T
	)

	switch v.Arity() {
	case 1:
		for i := range expanded {
			expanded[i] = v.values[0]
		}
	case 3:
		for i := range expanded {
			expanded[i] = v.values[i/3]
		}
	default:
		expanded = v.values
	}
	return expanded
}

func (v Value[T]) Passive() T {
	return v.values[0]
}

func (v Value[T]) Normal() T {
	return v.Expand()[4]
}

func (v Value[T]) Aggressive() T {
	return v.Expand()[8]
}

// Equal compares the expanded views of both values.
func (v Value[T]) Equal(other Value[T]) bool {
	return equal(v.Expand(), other.Expand())
}

func (v Value[T]) String() string {

	parts := make([]string, v.Arity())
	for i, e := range v.values[:v.Arity()] {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, "#")
}

// Shape gives access to a graduated value without knowing its element
// type. It is implemented by every Value.
type Shape interface {
	ElementType() reflect.Type
	Arity() int
	// Items returns the stored elements as a []T.
	Items() any
	// Collect returns a new compacted value of the receiver's
	// type from a []T holding 0, 1, 3 or 9 elements.
	Collect(items any) (Shape, error)
}

var ShapeType = reflect.TypeFor[Shape]()

// IsGraduated reports whether t is a Value of this package. Structs
// that only embed a Value are not graduated values themselves.
func IsGraduated(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == ShapeType.PkgPath() &&
		t.Implements(ShapeType)
}

func (v Value[T]) ElementType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (v Value[T]) Items() any {
	return v.Values()
}

func (v Value[T]) Collect(items any) (Shape, error) {

	collected, err := FromValues(items.([]T)...)
	if err != nil {
		return nil, err
	}
	return collected, nil
}
