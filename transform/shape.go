package transform

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/tokens"
	"github.com/mevansam/textparsers/tuples"
	"github.com/mevansam/textparsers/utils"
)

const maxShapeArity = tuples.MaxArity

// Deconstructable is implemented with a value receiver by structs that
// are written as a fixed-arity shape of their exported fields, in
// declaration order. The method may adjust the default settings, e.g.
// to use different borders for the type.
type Deconstructable interface {
	DeconstructableSettings(defaults config.DeconstructableSettings) config.DeconstructableSettings
}

var deconstructableType = reflect.TypeFor[Deconstructable]()

type shapeSource struct {
	elementTypes []reflect.Type
	decompose    func(v reflect.Value) []reflect.Value
	compose      func(elements []reflect.Value) (reflect.Value, error)
	settings     config.DeconstructableSettings
}

// structShape derives a shape from the fields of a struct.
// All fields have to be exported.
func structShape(t reflect.Type) (shapeSource, bool) {

	if t.Kind() != reflect.Struct || t.NumField() < 1 || t.NumField() > maxShapeArity {
		return shapeSource{}, false
	}
	elementTypes := make([]reflect.Type, t.NumField())
	for i := range elementTypes {
		f := t.Field(i)
		if !f.IsExported() {
			return shapeSource{}, false
		}
		elementTypes[i] = f.Type
	}

	return shapeSource{
		elementTypes: elementTypes,
		decompose: func(v reflect.Value) []reflect.Value {
			elements := make([]reflect.Value, v.NumField())
			for i := range elements {
				elements[i] = v.Field(i)
			}
			return elements
		},
		compose: func(elements []reflect.Value) (reflect.Value, error) {
			v := reflect.New(t).Elem()
			for i, e := range elements {
				v.Field(i).Set(e)
			}
			return v, nil
		},
	}, true
}

func decompositionShape(d Decomposition, defaults config.DeconstructableSettings) shapeSource {

	source := shapeSource{
		elementTypes: d.ElementTypes,
		decompose:    d.Decompose,
		compose:      d.Compose,
		settings:     defaults,
	}
	if d.Settings != nil {
		source.settings = *d.Settings
	}
	return source
}

func isStructuralShape(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && (tuples.IsTuple(t) || t.Implements(deconstructableType))
}

// shapeOf finds the fixed-arity shape of t together
// with the settings the type defaults to.
func (r *Resolver) shapeOf(t reflect.Type) (shapeSource, bool) {

	if isStructuralShape(t) {
		source, ok := structShape(t)
		if !ok {
			return shapeSource{}, false
		}
		if tuples.IsTuple(t) {
			source.settings = r.Settings().Tuple
		} else {
			source.settings = reflect.Zero(t).Interface().(Deconstructable).
				DeconstructableSettings(r.Settings().Deconstructable)
		}
		return source, true
	}
	if r.store.decompositions != nil {
		if d, ok := r.store.decompositions.TryGetDecomposition(t); ok {
			return decompositionShape(d, r.Settings().Deconstructable), true
		}
	}
	return shapeSource{}, false
}

type shapeCreator struct{}

func (shapeCreator) Priority() int { return PriorityShape }

func (shapeCreator) CanHandle(t reflect.Type, r *Resolver) bool {

	if !isStructuralShape(t) {
		return false
	}
	source, ok := structShape(t)
	return ok && r.canResolveAll(source.elementTypes...)
}

func (shapeCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {
	source, _ := r.shapeOf(t)
	return newShapeCodec(t, source, source.settings, r)
}

// shapeCodec handles fixed-arity shapes such as "(Mike;36)". Empty
// text parses to the zero value and absent elements are written as
// the null marker.
type shapeCodec struct {
	t         reflect.Type
	elements  []Transformer
	decompose func(v reflect.Value) []reflect.Value
	compose   func(elements []reflect.Value) (reflect.Value, error)
	scheme    tokens.Scheme
	strict    bool
}

func newShapeCodec(t reflect.Type, source shapeSource, settings config.DeconstructableSettings, r *Resolver) (*shapeCodec, error) {

	var (
		err error
	)

	if n := len(source.elementTypes); n < 1 || n > maxShapeArity {
		return nil, unsupportedType(t, fmt.Sprintf("has %d elements but only 1 to %d are supported", n, maxShapeArity))
	}
	if err = settings.Validate(); err != nil {
		return nil, err
	}

	c := &shapeCodec{
		t:         t,
		decompose: source.decompose,
		compose:   source.compose,
		strict:    settings.StrictBorders,
	}
	if c.scheme, err = tokens.NewScheme(settings.Delimiter, settings.Escape, settings.NullMarker,
		settings.Start, settings.End); err != nil {
		return nil, err
	}
	if c.elements, err = r.resolveAll(source.elementTypes); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *shapeCodec) Type() reflect.Type {
	return c.t
}

func (c *shapeCodec) Arity() int {
	return len(c.elements)
}

func (c *shapeCodec) Parse(text string) (reflect.Value, error) {

	var (
		err      error
		interior string
	)

	if len(text) == 0 {
		return reflect.Zero(c.t), nil
	}
	if interior, err = c.unparenthesize(text); err != nil {
		return reflect.Value{}, err
	}

	values := make([]reflect.Value, len(c.elements))
	e := c.scheme.Tokenize(interior).Enumerator()
	e.Next()
	for i, element := range c.elements {
		if i > 0 {
			previous := e.Current()
			if !e.Next() {
				return reflect.Value{}, &SyntaxError{
					Text:    text,
					Ordinal: i + 1,
					Message: fmt.Sprintf("%s element was not found after '%s'", utils.Ordinal(i+1), previous),
				}
			}
		}
		if values[i], err = parseElement(element, c.scheme.Unescape(e.Current())); err != nil {
			return reflect.Value{}, err
		}
	}
	if e.Next() {
		return reflect.Value{}, syntaxError(e.Rest(),
			"Tuple of arity=%d separated by '%c' cannot have more than %d elements: '%s'",
			len(c.elements), c.scheme.Delimiter, len(c.elements), e.Rest())
	}
	return c.compose(values)
}

// unparenthesize strips the borders and, unless strict, any
// whitespace in front of the start or after the end border.
func (c *shapeCodec) unparenthesize(text string) (string, error) {

	if c.scheme.Start == 0 && c.scheme.End == 0 {
		return text, nil
	}

	interior := text
	if c.scheme.Start != 0 {
		if !c.strict {
			interior = strings.TrimLeftFunc(interior, unicode.IsSpace)
		}
		r, size := utf8.DecodeRuneInString(interior)
		if size == 0 || r != c.scheme.Start {
			return "", c.bordersError(text)
		}
		interior = interior[size:]
	}
	if c.scheme.End != 0 {
		if !c.strict {
			interior = strings.TrimRightFunc(interior, unicode.IsSpace)
		}
		r, size := utf8.DecodeLastRuneInString(interior)
		if size == 0 || r != c.scheme.End {
			return "", c.bordersError(text)
		}
		interior = interior[:len(interior)-size]
	}
	return interior, nil
}

func (c *shapeCodec) bordersError(text string) error {
	return syntaxError(text, "Tuple representation has to start with %s and end with %s "+
		"optionally lead in the beginning or trailed in the end by whitespace. "+
		"These requirements were not met in: '%s'",
		utils.QuoteRune(c.scheme.Start), utils.QuoteRune(c.scheme.End), text)
}

func (c *shapeCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

func (c *shapeCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {

	if isAbsent(v) {
		return false, nil
	}

	scratch := streams.AcquireTextBuffer()
	defer scratch.Release()

	elements := c.decompose(v)
	if len(elements) != len(c.elements) {
		return false, fmt.Errorf("decomposing '%s' returned %d elements but %d were expected",
			typeName(c.t), len(elements), len(c.elements))
	}

	if c.scheme.Start != 0 {
		out.WriteRune(c.scheme.Start)
	}
	for i, element := range elements {
		if i > 0 {
			out.WriteRune(c.scheme.Delimiter)
		}
		if err := formatElement(out, scratch, c.scheme, c.elements[i], element); err != nil {
			return false, err
		}
	}
	if c.scheme.End != 0 {
		out.WriteRune(c.scheme.End)
	}
	return true, nil
}

func (c *shapeCodec) String() string {
	return fmt.Sprintf("Transform %s as %s", typeName(c.t), c.scheme)
}
