// Package tuples provides fixed-arity generic tuples. Tuples are
// formatted as bordered, delimiter separated elements, e.g. "(1,Text)".
package tuples

import (
	"reflect"
)

// Tuple is implemented by Tuple1 to Tuple8.
type Tuple interface {
	Arity() int
}

var TupleType = reflect.TypeFor[Tuple]()

// MaxArity is the largest number of elements a tuple can hold.
const MaxArity = 8

// IsTuple reports whether t is one of the tuple types of this package.
func IsTuple(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.PkgPath() == TupleType.PkgPath() && t.Implements(TupleType)
}

type Tuple1[T1 any] struct {
	V1 T1
}

func New1[T1 any](v1 T1) Tuple1[T1] {
	return Tuple1[T1]{V1: v1}
}

func (t Tuple1[T1]) Arity() int {
	return 1
}

type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

func New2[T1, T2 any](v1 T1, v2 T2) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{V1: v1, V2: v2}
}

func (t Tuple2[T1, T2]) Arity() int {
	return 2
}

type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

func New3[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{V1: v1, V2: v2, V3: v3}
}

func (t Tuple3[T1, T2, T3]) Arity() int {
	return 3
}

type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

func New4[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{V1: v1, V2: v2, V3: v3, V4: v4}
}

func (t Tuple4[T1, T2, T3, T4]) Arity() int {
	return 4
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

func New5[T1, T2, T3, T4, T5 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
}

func (t Tuple5[T1, T2, T3, T4, T5]) Arity() int {
	return 5
}

type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

func New6[T1, T2, T3, T4, T5, T6 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Tuple6[T1, T2, T3, T4, T5, T6] {
	return Tuple6[T1, T2, T3, T4, T5, T6]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6}
}

func (t Tuple6[T1, T2, T3, T4, T5, T6]) Arity() int {
	return 6
}

type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

func New7[T1, T2, T3, T4, T5, T6, T7 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) Tuple7[T1, T2, T3, T4, T5, T6, T7] {
	return Tuple7[T1, T2, T3, T4, T5, T6, T7]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7}
}

func (t Tuple7[T1, T2, T3, T4, T5, T6, T7]) Arity() int {
	return 7
}

type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

func New8[T1, T2, T3, T4, T5, T6, T7, T8 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) Tuple8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8}
}

func (t Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Arity() int {
	return 8
}
