package transform

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/mevansam/textparsers/streams"
)

// LegacyConverterProvider supplies transformers from another
// conversion system. It is consulted after every built in creator
// apart from the encoding.TextMarshaler bridge.
type LegacyConverterProvider interface {
	TryGetLegacyConverter(t reflect.Type) (Transformer, bool)
}

type legacyCreator struct{}

func (legacyCreator) Priority() int { return PriorityLegacy }

func (legacyCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	if r.store.legacy == nil {
		return false
	}
	_, ok := r.store.legacy.TryGetLegacyConverter(t)
	return ok
}

func (legacyCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {
	converter, _ := r.store.legacy.TryGetLegacyConverter(t)
	return converter, nil
}

// textMarshalerCodec bridges types implementing encoding.TextMarshaler
// and encoding.TextUnmarshaler, e.g. net.IP or netip.Addr.
type textMarshalerCodec struct {
	t reflect.Type
}

type textMarshalerCreator struct{}

func (textMarshalerCreator) Priority() int { return PriorityTextMarshaling }

func (textMarshalerCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	return t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && implementsTextMarshaling(t)
}

func (textMarshalerCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {
	return &textMarshalerCodec{t: t}, nil
}

func (c *textMarshalerCodec) Type() reflect.Type {
	return c.t
}

func (c *textMarshalerCodec) Parse(text string) (reflect.Value, error) {

	p := reflect.New(c.t)
	if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
		return reflect.Value{}, &SyntaxError{
			Text:    text,
			Message: fmt.Sprintf("'%s' cannot be parsed as %s", text, c.t),
			Err:     err,
		}
	}
	return p.Elem(), nil
}

func (c *textMarshalerCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

func (c *textMarshalerCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {

	if isAbsent(v) {
		return false, nil
	}

	marshaler, ok := v.Interface().(encoding.TextMarshaler)
	if !ok {
		// pointer receiver
		p := reflect.New(c.t)
		p.Elem().Set(v)
		marshaler = p.Interface().(encoding.TextMarshaler)
	}
	text, err := marshaler.MarshalText()
	if err != nil {
		return false, err
	}
	out.Write(text)
	return true, nil
}

func (c *textMarshalerCodec) String() string {
	return fmt.Sprintf("Transform %s using text marshaling", typeName(c.t))
}
