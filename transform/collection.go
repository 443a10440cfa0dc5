package transform

import (
	"fmt"
	"reflect"

	"github.com/mevansam/textparsers/data/collections"
	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/tokens"
)

// collectionCodec handles slices, arrays and the containers of the
// collections package. Absent text parses to a nil slice or an absent
// container while empty text parses to an empty one.
type collectionCodec struct {
	t           reflect.Type
	kind        collections.Kind
	elementType reflect.Type
	element     Transformer
	scheme      tokens.Scheme
}

type collectionCreator struct{}

func (collectionCreator) Priority() int { return PriorityCollection }

func (collectionCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	elementType, _, ok := collectionElement(t)
	return ok && r.CanResolve(elementType)
}

func (collectionCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {

	var (
		err error
	)

	elementType, kind, _ := collectionElement(t)
	c := &collectionCodec{
		t:           t,
		kind:        kind,
		elementType: elementType,
	}
	if c.element, err = r.Resolve(elementType); err != nil {
		return nil, err
	}
	settings := r.Settings().Collection
	if c.scheme, err = tokens.NewScheme(settings.Delimiter, settings.Escape, settings.NullMarker, 0, 0); err != nil {
		return nil, err
	}
	return c, nil
}

func collectionElement(t reflect.Type) (reflect.Type, collections.Kind, bool) {

	switch {
	case t.PkgPath() != "" && implementsTextMarshaling(t):
		// named slices such as net.IP have their own text
		return nil, 0, false
	case t.Kind() == reflect.Slice:
		return t.Elem(), collections.KindList, true
	case t.Kind() == reflect.Array:
		return t.Elem(), collections.KindArray, true
	case t.Kind() == reflect.Struct && collections.IsContainer(t):
		c := reflect.Zero(t).Interface().(collections.Container)
		return c.ElementType(), c.Kind(), true
	}
	return nil, 0, false
}

func (c *collectionCodec) Type() reflect.Type {
	return c.t
}

func (c *collectionCodec) Parse(text string) (reflect.Value, error) {

	var (
		err     error
		element reflect.Value
	)

	if len(text) == 0 {
		return c.build(text, reflect.MakeSlice(reflect.SliceOf(c.elementType), 0, 0))
	}

	seq := c.scheme.PreParse(text)
	items := reflect.MakeSlice(reflect.SliceOf(c.elementType), 0, seq.Count())
	for p := range seq.All() {
		if element, err = parseElement(c.element, p); err != nil {
			return reflect.Value{}, err
		}
		items = reflect.Append(items, element)
	}
	return c.build(text, items)
}

func (c *collectionCodec) build(text string, items reflect.Value) (reflect.Value, error) {

	switch c.kind {
	case collections.KindList:
		if c.t == items.Type() {
			return items, nil
		}
		return items.Convert(c.t), nil

	case collections.KindArray:
		array := reflect.New(c.t).Elem()
		if items.Len() == 0 {
			return array, nil
		}
		if items.Len() != c.t.Len() {
			return reflect.Value{}, syntaxError(text,
				"array of length %d cannot be built from %d elements: '%s'", c.t.Len(), items.Len(), text)
		}
		reflect.Copy(array, items)
		return array, nil

	default:
		return reflect.ValueOf(collections.New(c.t, items.Interface())), nil
	}
}

func (c *collectionCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

func (c *collectionCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {

	var (
		items reflect.Value
	)

	switch c.kind {
	case collections.KindList:
		if v.IsNil() {
			return false, nil
		}
		items = v
	case collections.KindArray:
		items = v
	default:
		container := v.Interface().(collections.Container)
		if container.IsNil() {
			return false, nil
		}
		items = reflect.ValueOf(container.Items())
	}

	scratch := streams.AcquireTextBuffer()
	defer scratch.Release()

	for i := 0; i < items.Len(); i++ {
		if i > 0 {
			out.WriteRune(c.scheme.Delimiter)
		}
		if err := formatElement(out, scratch, c.scheme, c.element, items.Index(i)); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *collectionCodec) String() string {
	return fmt.Sprintf("Transform %s as %s of %s", typeName(c.t), c.kind, typeName(c.elementType))
}
