// Package typeexpr resolves Go-like type expressions such as
// "map[string][]int" or "tuple[int,*string]" to reflect types so
// that values can be transformed without compiling the type in.
package typeexpr

import (
	"fmt"
	"math/big"
	"net/netip"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/graduated"
	"github.com/mevansam/textparsers/transform"
)

var named = map[string]reflect.Type{
	"bool":       reflect.TypeFor[bool](),
	"string":     reflect.TypeFor[string](),
	"int":        reflect.TypeFor[int](),
	"int8":       reflect.TypeFor[int8](),
	"int16":      reflect.TypeFor[int16](),
	"int32":      reflect.TypeFor[int32](),
	"int64":      reflect.TypeFor[int64](),
	"uint":       reflect.TypeFor[uint](),
	"uint8":      reflect.TypeFor[uint8](),
	"uint16":     reflect.TypeFor[uint16](),
	"uint32":     reflect.TypeFor[uint32](),
	"uint64":     reflect.TypeFor[uint64](),
	"byte":       reflect.TypeFor[byte](),
	"rune":       reflect.TypeFor[rune](),
	"float32":    reflect.TypeFor[float32](),
	"float64":    reflect.TypeFor[float64](),
	"complex64":  reflect.TypeFor[complex64](),
	"complex128": reflect.TypeFor[complex128](),
	"duration":   reflect.TypeFor[time.Duration](),
	"time":       reflect.TypeFor[time.Time](),
	"uuid":       reflect.TypeFor[uuid.UUID](),
	"bigint":     reflect.TypeFor[*big.Int](),
	"ip":         reflect.TypeFor[netip.Addr](),
}

// generic types cannot be instantiated at runtime
// so graduated values are limited to these elements
var graduatedOf = []reflect.Type{
	reflect.TypeFor[graduated.Value[bool]](),
	reflect.TypeFor[graduated.Value[string]](),
	reflect.TypeFor[graduated.Value[int]](),
	reflect.TypeFor[graduated.Value[int64]](),
	reflect.TypeFor[graduated.Value[float32]](),
	reflect.TypeFor[graduated.Value[float64]](),
	reflect.TypeFor[graduated.Value[time.Duration]](),
	reflect.TypeFor[graduated.Value[[]int]](),
	reflect.TypeFor[graduated.Value[[]string]](),
}

// Names returns the names of all scalar types in sorted order.
func Names() []string {

	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parser resolves type expressions. Tuples are built as anonymous
// structs whose decompositions are registered with the parser so a
// store created with the parser's decompositions can transform them.
type Parser struct {
	decompositions *transform.Decompositions
	tuple          config.DeconstructableSettings
}

func NewParser(settings *config.Store) *Parser {

	if settings == nil {
		settings = config.DefaultStore()
	}
	return &Parser{
		decompositions: transform.NewDecompositions(),
		tuple:          settings.Tuple,
	}
}

func (p *Parser) Decompositions() *transform.Decompositions {
	return p.decompositions
}

// Parse resolves expressions of the form
//
//	name | *T | []T | [N]T | map[K]V | graduated[E] | tuple[T1,...,Tn]
func (p *Parser) Parse(expr string) (reflect.Type, error) {

	s := &scanner{expr: expr}
	t, err := p.parseType(s)
	if err != nil {
		return nil, err
	}
	if s.skipSpace(); !s.done() {
		return nil, s.errorf("unexpected '%s'", s.expr[s.pos:])
	}
	return t, nil
}

func (p *Parser) parseType(s *scanner) (reflect.Type, error) {

	var (
		err      error
		key, elm reflect.Type
	)

	s.skipSpace()
	switch {
	case s.accept("*"):
		if elm, err = p.parseType(s); err != nil {
			return nil, err
		}
		return reflect.PointerTo(elm), nil

	case s.accept("["):
		if s.accept("]") {
			if elm, err = p.parseType(s); err != nil {
				return nil, err
			}
			return reflect.SliceOf(elm), nil
		}
		n, err := s.number()
		if err != nil {
			return nil, err
		}
		if err = s.expect("]"); err != nil {
			return nil, err
		}
		if elm, err = p.parseType(s); err != nil {
			return nil, err
		}
		return reflect.ArrayOf(n, elm), nil
	}

	name := s.identifier()
	switch name {
	case "":
		if s.done() {
			return nil, s.errorf("type expected")
		}
		return nil, s.errorf("unexpected '%c'", s.expr[s.pos])

	case "map":
		if err = s.expect("["); err != nil {
			return nil, err
		}
		if key, err = p.parseType(s); err != nil {
			return nil, err
		}
		if err = s.expect("]"); err != nil {
			return nil, err
		}
		if elm, err = p.parseType(s); err != nil {
			return nil, err
		}
		if !key.Comparable() {
			return nil, s.errorf("map key '%s' is not comparable", key)
		}
		return reflect.MapOf(key, elm), nil

	case "graduated":
		if err = s.expect("["); err != nil {
			return nil, err
		}
		if elm, err = p.parseType(s); err != nil {
			return nil, err
		}
		if err = s.expect("]"); err != nil {
			return nil, err
		}
		for _, t := range graduatedOf {
			if reflect.Zero(t).Interface().(graduated.Shape).ElementType() == elm {
				return t, nil
			}
		}
		return nil, s.errorf("graduated values of '%s' are not supported", elm)

	case "tuple":
		return p.parseTuple(s)
	}

	if t, ok := named[name]; ok {
		return t, nil
	}
	return nil, s.errorf("unknown type '%s'", name)
}

func (p *Parser) parseTuple(s *scanner) (reflect.Type, error) {

	var (
		err    error
		fields []reflect.StructField
		elm    reflect.Type
	)

	if err = s.expect("["); err != nil {
		return nil, err
	}
	for {
		if elm, err = p.parseType(s); err != nil {
			return nil, err
		}
		fields = append(fields, reflect.StructField{
			Name: "V" + strconv.Itoa(len(fields)+1),
			Type: elm,
		})
		if s.skipSpace(); s.accept("]") {
			break
		}
		if err = s.expect(","); err != nil {
			return nil, err
		}
	}

	t := reflect.StructOf(fields)
	types := make([]reflect.Type, len(fields))
	for i, f := range fields {
		types[i] = f.Type
	}
	settings := p.tuple
	err = p.decompositions.Add(t, transform.Decomposition{
		ElementTypes: types,
		Decompose: func(v reflect.Value) []reflect.Value {
			elements := make([]reflect.Value, v.NumField())
			for i := range elements {
				elements[i] = v.Field(i)
			}
			return elements
		},
		Compose: func(elements []reflect.Value) (reflect.Value, error) {
			v := reflect.New(t).Elem()
			for i, e := range elements {
				v.Field(i).Set(e)
			}
			return v, nil
		},
		Settings: &settings,
	})
	if err != nil {
		return nil, s.errorf("%s", err.Error())
	}
	return t, nil
}

type scanner struct {
	expr string
	pos  int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.expr)
}

func (s *scanner) skipSpace() {
	for !s.done() && unicode.IsSpace(rune(s.expr[s.pos])) {
		s.pos++
	}
}

func (s *scanner) accept(token string) bool {

	s.skipSpace()
	if strings.HasPrefix(s.expr[s.pos:], token) {
		s.pos += len(token)
		return true
	}
	return false
}

func (s *scanner) expect(token string) error {
	if !s.accept(token) {
		if s.done() {
			return s.errorf("'%s' expected", token)
		}
		return s.errorf("'%s' expected but found '%c'", token, s.expr[s.pos])
	}
	return nil
}

func (s *scanner) identifier() string {

	s.skipSpace()
	start := s.pos
	for !s.done() {
		c := rune(s.expr[s.pos])
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			break
		}
		s.pos++
	}
	return s.expr[start:s.pos]
}

func (s *scanner) number() (int, error) {

	s.skipSpace()
	start := s.pos
	for !s.done() && s.expr[s.pos] >= '0' && s.expr[s.pos] <= '9' {
		s.pos++
	}
	if start == s.pos {
		return 0, s.errorf("array length expected")
	}
	return strconv.Atoi(s.expr[start:s.pos])
}

func (s *scanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("invalid type expression '%s' at offset %d: %s", s.expr, s.pos, fmt.Sprintf(format, args...))
}
