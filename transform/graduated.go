package transform

import (
	"fmt"
	"reflect"

	"github.com/mevansam/textparsers/graduated"
	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/tokens"
	"github.com/mevansam/textparsers/utils"
)

// graduatedCodec handles graduated.Value written as 1, 3 or 9 elements
// separated by '#'. Parsed values are compacted, so "1#1#1#4#4#4#7#7#7"
// is formatted back as "1#4#7".
type graduatedCodec struct {
	t           reflect.Type
	elementType reflect.Type
	element     Transformer
	scheme      tokens.Scheme
}

type graduatedCreator struct{}

func (graduatedCreator) Priority() int { return PriorityGraduated }

func (graduatedCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	return graduated.IsGraduated(t) &&
		r.CanResolve(reflect.Zero(t).Interface().(graduated.Shape).ElementType())
}

func (graduatedCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {

	var (
		err error
	)

	c := &graduatedCodec{
		t:           t,
		elementType: reflect.Zero(t).Interface().(graduated.Shape).ElementType(),
	}
	if c.element, err = r.Resolve(c.elementType); err != nil {
		return nil, err
	}
	settings := r.Settings().Graduated
	if c.scheme, err = tokens.NewScheme(settings.Delimiter, settings.Escape, settings.NullMarker, 0, 0); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *graduatedCodec) Type() reflect.Type {
	return c.t
}

func (c *graduatedCodec) Parse(text string) (reflect.Value, error) {

	var (
		err     error
		element reflect.Value
		shape   graduated.Shape
	)

	if len(text) == 0 {
		return reflect.Zero(c.t), nil
	}

	seq := c.scheme.PreParse(text)
	count := seq.Count()
	if count != 1 && count != 3 && count != 9 {
		valid := make([]string, len(graduated.ValidArities))
		for i, n := range graduated.ValidArities {
			valid[i] = fmt.Sprint(n)
		}
		return reflect.Value{}, syntaxError(text, "graduated value has to consist of %s elements separated by '%c' but %d were found in '%s'",
			utils.JoinListAsSentence("%s", valid, "or", false), c.scheme.Delimiter, count, text)
	}

	items := reflect.MakeSlice(reflect.SliceOf(c.elementType), 0, count)
	for p := range seq.All() {
		if element, err = parseElement(c.element, p); err != nil {
			return reflect.Value{}, err
		}
		items = reflect.Append(items, element)
	}
	if shape, err = reflect.Zero(c.t).Interface().(graduated.Shape).Collect(items.Interface()); err != nil {
		return reflect.Value{}, syntaxError(text, "%s", err.Error())
	}
	return reflect.ValueOf(shape), nil
}

func (c *graduatedCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

func (c *graduatedCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {

	scratch := streams.AcquireTextBuffer()
	defer scratch.Release()

	items := reflect.ValueOf(v.Interface().(graduated.Shape).Items())
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

func (c *graduatedCodec) String() string {
	return fmt.Sprintf("Transform %s as graduated values of %s separated by '%c'",
		typeName(c.t), typeName(c.elementType), c.scheme.Delimiter)
}
