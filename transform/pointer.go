package transform

import (
	"fmt"
	"reflect"

	"github.com/mevansam/textparsers/streams"
)

// pointerCodec makes any supported type nullable. Absent
// text and the null marker map to a nil pointer.
type pointerCodec struct {
	t       reflect.Type
	element Transformer
}

type pointerCreator struct{}

func (pointerCreator) Priority() int { return PriorityPointer }

func (pointerCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	return t.Kind() == reflect.Pointer && r.CanResolve(t.Elem())
}

func (pointerCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {

	element, err := r.Resolve(t.Elem())
	if err != nil {
		return nil, err
	}
	return &pointerCodec{t: t, element: element}, nil
}

func (c *pointerCodec) Type() reflect.Type {
	return c.t
}

func (c *pointerCodec) Parse(text string) (reflect.Value, error) {

	v, err := c.element.Parse(text)
	if err != nil {
		return reflect.Value{}, err
	}
	p := reflect.New(c.t.Elem())
	p.Elem().Set(v)
	return p, nil
}

func (c *pointerCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

func (c *pointerCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {
	if v.IsNil() {
		return false, nil
	}
	return c.element.Format(out, v.Elem())
}

func (c *pointerCodec) String() string {
	return fmt.Sprintf("Transform %s", typeName(c.t))
}
