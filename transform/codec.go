package transform

import (
	"reflect"

	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/tokens"
)

// formatElement formats v into scratch and appends it to out escaped
// for the given scheme. Absent elements are written as the null marker.
func formatElement(
	out, scratch *streams.TextBuffer,
	scheme tokens.Scheme,
	element Transformer,
	v reflect.Value,
) error {

	scratch.Reset()
	present, err := element.Format(scratch, v)
	if err != nil {
		return err
	}
	scheme.AppendElement(out, scratch.Bytes(), present)
	return nil
}

func parseElement(element Transformer, p tokens.Parseable) (reflect.Value, error) {
	if p.Null {
		return element.ParseNull(), nil
	}
	return element.Parse(p.Text)
}

// isAbsent reports whether v is a nil value of a nilable kind.
func isAbsent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
