package collections

import (
	"fmt"
	"reflect"
)

// Pair is implemented by KeyValue so that codecs can
// recognise key/value pairs without knowing K and V.
type Pair interface {
	KeyValueTypes() (key, value reflect.Type)
}

var PairType = reflect.TypeFor[Pair]()

// IsPair reports whether t is a KeyValue of this package.
func IsPair(t reflect.Type) bool {
	return t.Kind() == reflect.Struct &&
		t.PkgPath() == PairType.PkgPath() &&
		t.Implements(PairType)
}

type KeyValue[K any, V any] struct {
	Key   K
	Value V
}

func NewKeyValue[K any, V any](key K, value V) KeyValue[K, V] {
	return KeyValue[K, V]{Key: key, Value: value}
}

func (kv KeyValue[K, V]) KeyValueTypes() (reflect.Type, reflect.Type) {
	return reflect.TypeFor[K](), reflect.TypeFor[V]()
}

func (kv KeyValue[K, V]) String() string {
	return fmt.Sprintf("%v=%v", kv.Key, kv.Value)
}
