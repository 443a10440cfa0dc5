package transform

import (
	"encoding"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mevansam/textparsers/streams"
)

var (
	durationType  = reflect.TypeFor[time.Duration]()
	timeType      = reflect.TypeFor[time.Time]()
	uuidType      = reflect.TypeFor[uuid.UUID]()
	bigIntType    = reflect.TypeFor[*big.Int]()
	marshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	unmarshalType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// leafCodec handles scalars. Apart from strings, leading and trailing
// whitespace is ignored and empty text parses to the zero value.
type leafCodec struct {
	t      reflect.Type
	name   string
	parse  func(text string, v reflect.Value) error
	format func(out *streams.TextBuffer, v reflect.Value)
}

func (c *leafCodec) Type() reflect.Type {
	return c.t
}

func (c *leafCodec) Parse(text string) (reflect.Value, error) {

	v := reflect.New(c.t).Elem()
	if err := c.parse(text, v); err != nil {
		return reflect.Value{}, &SyntaxError{
			Text:    text,
			Message: fmt.Sprintf("'%s' cannot be parsed as %s", text, c.name),
			Err:     err,
		}
	}
	return v, nil
}

func (c *leafCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

func (c *leafCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false, nil
	}
	c.format(out, v)
	return true, nil
}

func (c *leafCodec) String() string {
	return fmt.Sprintf("Transform %s", typeName(c.t))
}

type leafCreator struct{}

func (leafCreator) Priority() int { return PriorityLeaf }

func (leafCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	_, ok := newLeafCodec(t)
	return ok
}

func (leafCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {
	codec, _ := newLeafCodec(t)
	return codec, nil
}

func newLeafCodec(t reflect.Type) (*leafCodec, bool) {

	c := &leafCodec{t: t, name: t.String()}

	switch t {
	case durationType:
		c.name = "duration"
		c.parse = func(text string, v reflect.Value) error {
			if text = strings.TrimSpace(text); len(text) == 0 {
				return nil
			}
			d, err := time.ParseDuration(text)
			v.SetInt(int64(d))
			return err
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			out.WriteString(time.Duration(v.Int()).String())
		}
		return c, true

	case timeType:
		c.name = "RFC 3339 timestamp"
		c.parse = func(text string, v reflect.Value) error {
			if text = strings.TrimSpace(text); len(text) == 0 {
				return nil
			}
			ts, err := time.Parse(time.RFC3339Nano, text)
			v.Set(reflect.ValueOf(ts))
			return err
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			var b [64]byte
			out.Write(v.Interface().(time.Time).AppendFormat(b[:0], time.RFC3339Nano))
		}
		return c, true

	case uuidType:
		c.name = "UUID"
		c.parse = func(text string, v reflect.Value) error {
			if text = strings.TrimSpace(text); len(text) == 0 {
				return nil
			}
			id, err := uuid.Parse(text)
			v.Set(reflect.ValueOf(id))
			return err
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			out.WriteString(v.Interface().(uuid.UUID).String())
		}
		return c, true

	case bigIntType:
		c.name = "big integer"
		c.parse = func(text string, v reflect.Value) error {
			n := new(big.Int)
			if text = strings.TrimSpace(text); len(text) > 0 {
				if _, ok := n.SetString(text, 10); !ok {
					return errors.New("invalid digits")
				}
			}
			v.Set(reflect.ValueOf(n))
			return nil
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			var b [64]byte
			out.Write(v.Interface().(*big.Int).Append(b[:0], 10))
		}
		return c, true
	}

	// named scalars with their own text
	// marshaling are left to the bridge
	if t.PkgPath() != "" && implementsTextMarshaling(t) {
		return nil, false
	}

	switch t.Kind() {
	case reflect.String:
		c.parse = func(text string, v reflect.Value) error {
			v.SetString(text)
			return nil
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			out.WriteString(v.String())
		}

	case reflect.Bool:
		c.parse = func(text string, v reflect.Value) error {
			if text = strings.TrimSpace(text); len(text) == 0 {
				return nil
			}
			b, err := strconv.ParseBool(text)
			v.SetBool(b)
			return err
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			out.WriteString(strconv.FormatBool(v.Bool()))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := t.Bits()
		c.parse = func(text string, v reflect.Value) error {
			if text = strings.TrimSpace(text); len(text) == 0 {
				return nil
			}
			n, err := strconv.ParseInt(text, 10, bits)
			v.SetInt(n)
			return err
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			var b [24]byte
			out.Write(strconv.AppendInt(b[:0], v.Int(), 10))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bits := t.Bits()
		c.parse = func(text string, v reflect.Value) error {
			if text = strings.TrimSpace(text); len(text) == 0 {
				return nil
			}
			n, err := strconv.ParseUint(text, 10, bits)
			v.SetUint(n)
			return err
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			var b [24]byte
			out.Write(strconv.AppendUint(b[:0], v.Uint(), 10))
		}

	case reflect.Float32, reflect.Float64:
		bits := t.Bits()
		c.parse = func(text string, v reflect.Value) error {
			if text = strings.TrimSpace(text); len(text) == 0 {
				return nil
			}
			f, err := strconv.ParseFloat(text, bits)
			v.SetFloat(f)
			return err
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			var b [32]byte
			out.Write(strconv.AppendFloat(b[:0], v.Float(), 'g', -1, bits))
		}

	case reflect.Complex64, reflect.Complex128:
		bits := t.Bits()
		c.parse = func(text string, v reflect.Value) error {
			if text = strings.TrimSpace(text); len(text) == 0 {
				return nil
			}
			n, err := strconv.ParseComplex(text, bits)
			v.SetComplex(n)
			return err
		}
		c.format = func(out *streams.TextBuffer, v reflect.Value) {
			out.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, bits))
		}

	default:
		return nil, false
	}
	return c, true
}

func implementsTextMarshaling(t reflect.Type) bool {
	return (t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType)) &&
		reflect.PointerTo(t).Implements(unmarshalType)
}
