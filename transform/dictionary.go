package transform

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/tokens"
	"github.com/mevansam/textparsers/utils"
)

// dictionaryCodec handles maps written as key=value pairs separated
// by ';'. Absent text parses to a nil map and empty text to an empty
// map. Pairs are formatted in the order of their formatted keys.
type dictionaryCodec struct {
	t        reflect.Type
	key      Transformer
	value    Transformer
	settings config.DictionarySettings
}

type mapCreator struct{}

func (mapCreator) Priority() int { return PriorityMap }

func (mapCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	return t.Kind() == reflect.Map && r.canResolveAll(t.Key(), t.Elem())
}

func (mapCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {

	var (
		err error
	)

	c := &dictionaryCodec{
		t:        t,
		settings: r.Settings().Dictionary,
	}
	if c.key, err = r.Resolve(t.Key()); err != nil {
		return nil, err
	}
	if c.value, err = r.Resolve(t.Elem()); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *dictionaryCodec) Type() reflect.Type {
	return c.t
}

func (c *dictionaryCodec) unescape(token string) tokens.Parseable {
	return tokens.Unescape(token, c.settings.Escape, c.settings.NullMarker,
		c.settings.PairsDelimiter, c.settings.KeyValueDelimiter)
}

func (c *dictionaryCodec) Parse(text string) (reflect.Value, error) {

	var (
		err        error
		key, value reflect.Value
	)

	m := reflect.MakeMap(c.t)
	if len(text) == 0 {
		return m, nil
	}

	pairs := tokens.Tokenize(text, c.settings.PairsDelimiter, c.settings.Escape, true)
	for pair := range pairs.All() {
		if len(pair) == 0 {
			return reflect.Value{}, syntaxError(text, "Key=Value part was not found")
		}

		e := tokens.Tokenize(pair, c.settings.KeyValueDelimiter, c.settings.Escape, true).Enumerator()
		e.Next()
		keyToken := c.unescape(e.Current())
		keyText := keyToken.Text
		if keyToken.Null {
			keyText = "<DEFAULT>"
		}
		if !e.Next() {
			return reflect.Value{}, syntaxError(pair, "'%s' has no matching value", keyText)
		}
		valueToken := c.unescape(e.Current())
		if e.Next() {
			return reflect.Value{}, syntaxError(pair, "%s%c%s pair cannot have more than 2 elements: '%s'",
				keyText, c.settings.KeyValueDelimiter, utils.StrOrDefault(nullableText(valueToken), "<DEFAULT>"), e.Rest())
		}
		if keyToken.Null {
			return reflect.Value{}, syntaxError(pair, "Key equal to NULL is not supported")
		}

		if key, err = c.key.Parse(keyToken.Text); err != nil {
			return reflect.Value{}, err
		}
		if value, err = parseElement(c.value, valueToken); err != nil {
			return reflect.Value{}, err
		}
		if c.settings.Behaviour == config.ThrowOnDuplicateKey && m.MapIndex(key).IsValid() {
			return reflect.Value{}, syntaxError(pair, "The key '%s' has already been added", keyToken.Text)
		}
		m.SetMapIndex(key, value)
	}
	return m, nil
}

func nullableText(p tokens.Parseable) *string {
	if p.Null {
		return nil
	}
	return utils.PtrToStr(p.Text)
}

func (c *dictionaryCodec) ParseNull() reflect.Value {
	return reflect.Zero(c.t)
}

type formattedPair struct {
	key   string
	value *string
}

func (c *dictionaryCodec) Format(out *streams.TextBuffer, v reflect.Value) (bool, error) {

	var (
		err     error
		present bool
	)

	if v.IsNil() {
		return false, nil
	}

	scratch := streams.AcquireTextBuffer()
	defer scratch.Release()

	pairs := make([]formattedPair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		scratch.Reset()
		if present, err = c.key.Format(scratch, iter.Key()); err != nil {
			return false, err
		}
		if !present {
			return false, fmt.Errorf("Key equal to NULL is not supported")
		}
		pair := formattedPair{key: scratch.String()}

		scratch.Reset()
		if present, err = c.value.Format(scratch, iter.Value()); err != nil {
			return false, err
		}
		if present {
			pair.value = utils.PtrToStr(scratch.String())
		}
		pairs = append(pairs, pair)
	}
	slices.SortFunc(pairs, func(a, b formattedPair) int {
		return strings.Compare(a.key, b.key)
	})

	for i, pair := range pairs {
		if i > 0 {
			out.WriteRune(c.settings.PairsDelimiter)
		}
		c.appendEscaped(out, pair.key)
		out.WriteRune(c.settings.KeyValueDelimiter)
		if pair.value == nil {
			out.WriteRune(c.settings.NullMarker)
		} else {
			c.appendEscaped(out, *pair.value)
		}
	}
	return true, nil
}

func (c *dictionaryCodec) appendEscaped(out *streams.TextBuffer, text string) {
	tokens.AppendEscaped(out, text, c.settings.Escape, c.settings.NullMarker,
		c.settings.PairsDelimiter, c.settings.KeyValueDelimiter)
}

func (c *dictionaryCodec) String() string {
	return fmt.Sprintf("Transform %s as dictionary of %s to %s (%s on duplicate keys)",
		typeName(c.t), typeName(c.t.Key()), typeName(c.t.Elem()), c.settings.Behaviour)
}
