package transform

import (
	"fmt"
	"reflect"

	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/utils"
)

// Transformer parses and formats values of a single type.
// Implementations are immutable and safe for concurrent use.
type Transformer interface {
	Type() reflect.Type
	// Parse parses present text into a value of Type().
	Parse(text string) (reflect.Value, error)
	// ParseNull returns the value that absent text maps to.
	ParseNull() reflect.Value
	// Format appends the text of v to out and returns true. When v is
	// absent nothing is written and false is returned.
	Format(out *streams.TextBuffer, v reflect.Value) (bool, error)
	String() string
}

// Typed wraps a Transformer with a type safe API.
type Typed[T any] struct {
	transformer Transformer
}

// Get resolves the transformer for T from the given store.
func Get[T any](s *Store) (Typed[T], error) {

	transformer, err := s.Resolve(reflect.TypeFor[T]())
	if err != nil {
		return Typed[T]{}, err
	}
	return Typed[T]{transformer: transformer}, nil
}

func MustGet[T any](s *Store) Typed[T] {
	t, err := Get[T](s)
	if err != nil {
		panic(err)
	}
	return t
}

// Of wraps a transformer for T. It fails if the
// transformer handles a different type.
func Of[T any](transformer Transformer) (Typed[T], error) {
	if transformer.Type() != reflect.TypeFor[T]() {
		return Typed[T]{}, fmt.Errorf("transformer for '%s' cannot handle '%s'",
			typeName(transformer.Type()), typeName(reflect.TypeFor[T]()))
	}
	return Typed[T]{transformer: transformer}, nil
}

func (t Typed[T]) Transformer() Transformer {
	return t.transformer
}

func (t Typed[T]) Parse(text string) (T, error) {

	var (
		err    error
		v      reflect.Value
		result T
	)

	if v, err = t.transformer.Parse(text); err != nil {
		return result, err
	}
	return v.Interface().(T), nil
}

// ParseNullable parses optional text. A nil text parses to the
// absent value of T, i.e. a nil slice for collection types.
func (t Typed[T]) ParseNullable(text *string) (T, error) {
	if text == nil {
		return t.transformer.ParseNull().Interface().(T), nil
	}
	return t.Parse(*text)
}

// Format returns the text of value or an
// empty string when the value is absent.
func (t Typed[T]) Format(value T) (string, error) {

	text, err := t.FormatNullable(value)
	if err != nil || text == nil {
		return "", err
	}
	return *text, nil
}

// FormatNullable returns the text of value or nil when it is absent.
func (t Typed[T]) FormatNullable(value T) (*string, error) {

	out := streams.AcquireTextBuffer()
	defer out.Release()

	present, err := t.transformer.Format(out, reflect.ValueOf(&value).Elem())
	if err != nil || !present {
		return nil, err
	}
	return utils.PtrToStr(out.String()), nil
}

func (t Typed[T]) String() string {
	return t.transformer.String()
}

// FormatValue formats a value of the transformer's type. Absent
// values are formatted as an empty string.
func FormatValue(transformer Transformer, v reflect.Value) (string, error) {

	out := streams.AcquireTextBuffer()
	defer out.Release()

	if _, err := transformer.Format(out, v); err != nil {
		return "", err
	}
	return out.String(), nil
}

// FromFuncs builds a transformer for T out of a pair of functions.
// Absent text parses to the zero value of T.
func FromFuncs[T any](parse func(text string) (T, error), format func(value T) (string, error)) Transformer {
	return &funcTransformer[T]{
		parse:  parse,
		format: format,
	}
}

type funcTransformer[T any] struct {
	parse  func(text string) (T, error)
	format func(value T) (string, error)
}

func (f *funcTransformer[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (f *funcTransformer[T]) Parse(text string) (reflect.Value, error) {

	value, err := f.parse(text)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(&value).Elem(), nil
}

func (f *funcTransformer[T]) ParseNull() reflect.Value {
	return reflect.Zero(f.Type())
}

func (f *funcTransformer[T]) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {

	text, err := f.format(v.Interface().(T))
	if err != nil {
		return false, err
	}
	out.WriteString(text)
	return true, nil
}

func (f *funcTransformer[T]) String() string {
	return fmt.Sprintf("Transform %s using functions", typeName(f.Type()))
}
