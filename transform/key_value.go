package transform

import (
	"fmt"
	"reflect"

	"github.com/mevansam/textparsers/data/collections"
	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/tokens"
)

// keyValueCodec handles collections.KeyValue pairs written as key=value.
// Unlike dictionary keys, the key of a single pair may be absent.
type keyValueCodec struct {
	t      reflect.Type
	key    Transformer
	value  Transformer
	scheme tokens.Scheme
}

type keyValueCreator struct{}

func (keyValueCreator) Priority() int { return PriorityKeyValue }

func (keyValueCreator) CanHandle(t reflect.Type, r *Resolver) bool {

	if !collections.IsPair(t) {
		return false
	}
	key, value := reflect.Zero(t).Interface().(collections.Pair).KeyValueTypes()
	return r.canResolveAll(key, value)
}

func (keyValueCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {

	var (
		err error
	)

	keyType, valueType := reflect.Zero(t).Interface().(collections.Pair).KeyValueTypes()
	c := &keyValueCodec{t: t}
	if c.key, err = r.Resolve(keyType); err != nil {
		return nil, err
	}
	if c.value, err = r.Resolve(valueType); err != nil {
		return nil, err
	}
	settings := r.Settings().KeyValue
	if c.scheme, err = tokens.NewScheme(settings.Delimiter, settings.Escape, settings.NullMarker, 0, 0); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *keyValueCodec) Type() reflect.Type {
	return c.t
}

func (c *keyValueCodec) Parse(text string) (reflect.Value, error) {

	var (
		err        error
		key, value reflect.Value
	)

	kv := reflect.New(c.t).Elem()
	if len(text) == 0 {
		return kv, nil
	}

	e := c.scheme.Tokenize(text).Enumerator()
	e.Next()
	keyToken := c.scheme.Unescape(e.Current())
	if !e.Next() {
		return reflect.Value{}, syntaxError(text, "'%s' has no matching value", e.Current())
	}
	valueToken := c.scheme.Unescape(e.Current())
	if e.Next() {
		return reflect.Value{}, syntaxError(text, "'%s' pair cannot have more than 2 elements: '%s'", text, e.Rest())
	}

	if key, err = parseElement(c.key, keyToken); err != nil {
		return reflect.Value{}, err
	}
	if value, err = parseElement(c.value, valueToken); err != nil {
		return reflect.Value{}, err
	}
	kv.Field(0).Set(key)
	kv.Field(1).Set(value)
	return kv, nil
}

func (c *keyValueCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

func (c *keyValueCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {

	scratch := streams.AcquireTextBuffer()
	defer scratch.Release()

	if err := formatElement(out, scratch, c.scheme, c.key, v.Field(0)); err != nil {
		return false, err
	}
	out.WriteRune(c.scheme.Delimiter)
	if err := formatElement(out, scratch, c.scheme, c.value, v.Field(1)); err != nil {
		return false, err
	}
	return true, nil
}

func (c *keyValueCodec) String() string {
	return fmt.Sprintf("Transform %s as key%cvalue pair", typeName(c.t), c.scheme.Delimiter)
}
