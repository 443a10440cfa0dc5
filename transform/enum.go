package transform

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/utils"
)

type EnumMember struct {
	Name  string
	Value int64
}

// Enumeration is implemented with a value receiver by integer types
// whose values have names.
type Enumeration interface {
	EnumMembers() []EnumMember
}

// FlagsEnumeration is implemented by enumerations whose
// members can be combined as bit flags.
type FlagsEnumeration interface {
	Enumeration
	IsFlags() bool
}

var (
	enumerationType      = reflect.TypeFor[Enumeration]()
	flagsEnumerationType = reflect.TypeFor[FlagsEnumeration]()
)

// NumericCodec parses and formats the numbers behind enumerations.
// Unsigned values are carried in the bits of an int64.
type NumericCodec interface {
	ParseInteger(text string) (int64, error)
	FormatInteger(value int64) string
}

// NumericCodecProvider supplies numeric codecs for integer kinds.
type NumericCodecProvider interface {
	TryGetNumericCodec(kind reflect.Kind) (NumericCodec, bool)
}

type defaultNumericCodecs struct{}

// DefaultNumericCodecs returns codecs for every signed and unsigned integer kind.
func DefaultNumericCodecs() NumericCodecProvider {
	return defaultNumericCodecs{}
}

func (defaultNumericCodecs) TryGetNumericCodec(kind reflect.Kind) (NumericCodec, bool) {
	switch kind {
	case reflect.Int8, reflect.Uint8:
		return integerCodec{bits: 8, unsigned: kind == reflect.Uint8}, true
	case reflect.Int16, reflect.Uint16:
		return integerCodec{bits: 16, unsigned: kind == reflect.Uint16}, true
	case reflect.Int32, reflect.Uint32:
		return integerCodec{bits: 32, unsigned: kind == reflect.Uint32}, true
	case reflect.Int, reflect.Int64:
		return integerCodec{bits: 64}, true
	case reflect.Uint, reflect.Uint64:
		return integerCodec{bits: 64, unsigned: true}, true
	}
	return nil, false
}

type integerCodec struct {
	bits     int
	unsigned bool
}

func (c integerCodec) ParseInteger(text string) (int64, error) {
	if c.unsigned {
		n, err := strconv.ParseUint(text, 10, c.bits)
		return int64(n), err
	}
	return strconv.ParseInt(text, 10, c.bits)
}

func (c integerCodec) FormatInteger(value int64) string {
	if c.unsigned {
		return strconv.FormatUint(uint64(value), 10)
	}
	return strconv.FormatInt(value, 10)
}

type enumCodec struct {
	t        reflect.Type
	members  []EnumMember
	byName   map[string]int64
	flags    bool
	numbers  NumericCodec
	settings config.EnumSettings
}

type enumCreator struct{}

func (enumCreator) Priority() int { return PriorityEnum }

func (enumCreator) CanHandle(t reflect.Type, r *Resolver) bool {

	if !isIntegerKind(t.Kind()) || !t.Implements(enumerationType) || r.store.numerics == nil {
		return false
	}
	_, ok := r.store.numerics.TryGetNumericCodec(t.Kind())
	return ok
}

func (enumCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {

	numbers, _ := r.store.numerics.TryGetNumericCodec(t.Kind())
	c := &enumCodec{
		t:        t,
		members:  reflect.Zero(t).Interface().(Enumeration).EnumMembers(),
		numbers:  numbers,
		settings: r.Settings().Enum,
	}
	if t.Implements(flagsEnumerationType) {
		c.flags = reflect.Zero(t).Interface().(FlagsEnumeration).IsFlags()
	}

	c.byName = make(map[string]int64, len(c.members))
	for _, m := range c.members {
		name := c.normalize(m.Name)
		if _, exists := c.byName[name]; exists {
			return nil, fmt.Errorf("enumeration '%s' defines member '%s' more than once", t, m.Name)
		}
		c.byName[name] = m.Value
	}
	return c, nil
}

func (c *enumCodec) normalize(name string) string {
	if c.settings.CaseSensitive {
		return name
	}
	return strings.ToUpper(name)
}

func (c *enumCodec) Type() reflect.Type {
	return c.t
}

func (c *enumCodec) Parse(text string) (reflect.Value, error) {

	var (
		err        error
		n, element int64
	)

	v := reflect.New(c.t).Elem()
	if len(strings.TrimSpace(text)) == 0 {
		return v, nil
	}

	parts := strings.Split(text, string(c.settings.FlagsSeparator))
	if len(parts) > 1 && !c.flags {
		return reflect.Value{}, syntaxError(text,
			"%s enumeration is not a flags enumeration so only one value can be parsed from '%s'", c.t, text)
	}
	for _, part := range parts {
		if element, err = c.parseElement(text, strings.TrimSpace(part)); err != nil {
			return reflect.Value{}, err
		}
		n |= element
	}

	if isUnsignedKind(c.t.Kind()) {
		if v.OverflowUint(uint64(n)) {
			return reflect.Value{}, syntaxError(text, "'%s' overflows %s", text, c.t)
		}
		v.SetUint(uint64(n))
	} else {
		if v.OverflowInt(n) {
			return reflect.Value{}, syntaxError(text, "'%s' overflows %s", text, c.t)
		}
		v.SetInt(n)
	}
	return v, nil
}

func (c *enumCodec) parseElement(text, element string) (int64, error) {

	if len(element) == 0 {
		return 0, nil
	}
	if n, ok := c.byName[c.normalize(element)]; ok {
		return n, nil
	}
	if first := rune(element[0]); c.settings.AllowNumerics && (unicode.IsDigit(first) || first == '-' || first == '+') {
		if n, err := c.numbers.ParseInteger(element); err == nil {
			return n, nil
		}
	}

	names := make([]string, len(c.members))
	for i, m := range c.members {
		names[i] = m.Name
	}
	e := syntaxError(text, "enumeration of type '%s' cannot be parsed from '%s'. ", c.t, element)
	e.Message += utils.JoinListAsSentence("Valid values are: %s", names, "or", false)
	if c.settings.AllowNumerics {
		e.Message += fmt.Sprintf(" or a number within %s range", c.t.Kind())
	}
	return 0, e
}

func (c *enumCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

// Format writes the member name, or for flags the names of all set
// members joined by ", ". Values without names are written as numbers.
func (c *enumCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {

	var (
		n int64
	)

	if isUnsignedKind(v.Kind()) {
		n = int64(v.Uint())
	} else {
		n = v.Int()
	}

	for _, m := range c.members {
		if m.Value == n {
			out.WriteString(m.Name)
			return true, nil
		}
	}

	if c.flags && n != 0 {
		names := []string{}
		remaining := n
		for _, m := range c.members {
			if m.Value != 0 && m.Value&remaining == m.Value {
				names = append(names, m.Name)
				remaining &^= m.Value
			}
		}
		if remaining == 0 {
			out.WriteString(strings.Join(names, string(c.settings.FlagsSeparator)+" "))
			return true, nil
		}
	}

	out.WriteString(c.numbers.FormatInteger(n))
	return true, nil
}

func (c *enumCodec) String() string {
	if c.flags {
		return fmt.Sprintf("Transform %s flags", typeName(c.t))
	}
	return fmt.Sprintf("Transform %s", typeName(c.t))
}

func isIntegerKind(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Int64) || isUnsignedKind(k)
}

func isUnsignedKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}
