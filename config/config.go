// Package config holds the escaping schemes and behaviours used by
// every codec level, together with loading them from settings files.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mevansam/textparsers/utils"
)

// ErrConfiguration is returned when a set of special
// characters cannot be used to build a codec.
var ErrConfiguration = errors.New("invalid configuration")

const (
	DefaultEscape         = '\\'
	DefaultNullMarker     = '∅'
	DefaultListDelimiter  = '|'
	DefaultPairsDelimiter = ';'
	DefaultKeyValue       = '='
	DefaultGraduated      = '#'
	DefaultTuple          = ','
	DefaultDeconstructed  = ';'
	DefaultStart          = '('
	DefaultEnd            = ')'
)

// DictionaryBehaviour governs key collisions while parsing dictionaries.
type DictionaryBehaviour int

const (
	OverwriteOnDuplicateKey DictionaryBehaviour = iota
	ThrowOnDuplicateKey
)

func (b DictionaryBehaviour) String() string {
	switch b {
	case ThrowOnDuplicateKey:
		return "throw"
	default:
		return "overwrite"
	}
}

// Settings is implemented by all codec settings.
type Settings interface {
	Validate() error
}

type CollectionSettings struct {
	Delimiter  rune
	Escape     rune
	NullMarker rune
}

type DictionarySettings struct {
	PairsDelimiter    rune
	KeyValueDelimiter rune
	Escape            rune
	NullMarker        rune
	Behaviour         DictionaryBehaviour
}

type KeyValueSettings struct {
	Delimiter  rune
	Escape     rune
	NullMarker rune
}

type GraduatedSettings struct {
	Delimiter  rune
	Escape     rune
	NullMarker rune
}

// DeconstructableSettings configures one fixed-arity shape. Start and End
// are optional borders (0 means none) and may be equal to each other.
// Unless StrictBorders is set, whitespace outside the borders is ignored.
type DeconstructableSettings struct {
	Delimiter     rune
	Escape        rune
	NullMarker    rune
	Start         rune
	End           rune
	StrictBorders bool
}

// EnumSettings configures parsing of named integer constants.
type EnumSettings struct {
	CaseSensitive  bool
	AllowNumerics  bool
	FlagsSeparator rune
}

func DefaultCollectionSettings() CollectionSettings {
	return CollectionSettings{
		Delimiter:  DefaultListDelimiter,
		Escape:     DefaultEscape,
		NullMarker: DefaultNullMarker,
	}
}

func DefaultDictionarySettings() DictionarySettings {
	return DictionarySettings{
		PairsDelimiter:    DefaultPairsDelimiter,
		KeyValueDelimiter: DefaultKeyValue,
		Escape:            DefaultEscape,
		NullMarker:        DefaultNullMarker,
		Behaviour:         OverwriteOnDuplicateKey,
	}
}

func DefaultKeyValueSettings() KeyValueSettings {
	return KeyValueSettings{
		Delimiter:  DefaultKeyValue,
		Escape:     DefaultEscape,
		NullMarker: DefaultNullMarker,
	}
}

func DefaultGraduatedSettings() GraduatedSettings {
	return GraduatedSettings{
		Delimiter:  DefaultGraduated,
		Escape:     DefaultEscape,
		NullMarker: DefaultNullMarker,
	}
}

func DefaultTupleSettings() DeconstructableSettings {
	return DeconstructableSettings{
		Delimiter:  DefaultTuple,
		Escape:     DefaultEscape,
		NullMarker: DefaultNullMarker,
		Start:      DefaultStart,
		End:        DefaultEnd,
	}
}

func DefaultDeconstructableSettings() DeconstructableSettings {
	return DeconstructableSettings{
		Delimiter:  DefaultDeconstructed,
		Escape:     DefaultEscape,
		NullMarker: DefaultNullMarker,
		Start:      DefaultStart,
		End:        DefaultEnd,
	}
}

func DefaultEnumSettings() EnumSettings {
	return EnumSettings{
		CaseSensitive:  false,
		AllowNumerics:  true,
		FlagsSeparator: ',',
	}
}

func (s CollectionSettings) Validate() error {
	return distinct("collection", []namedRune{
		{"delimiter", s.Delimiter},
		{"escape", s.Escape},
		{"null marker", s.NullMarker},
	})
}

func (s DictionarySettings) Validate() error {
	if s.Behaviour != OverwriteOnDuplicateKey && s.Behaviour != ThrowOnDuplicateKey {
		return fmt.Errorf("%w: unknown dictionary behaviour %d", ErrConfiguration, s.Behaviour)
	}
	return distinct("dictionary", []namedRune{
		{"pairs delimiter", s.PairsDelimiter},
		{"key/value delimiter", s.KeyValueDelimiter},
		{"escape", s.Escape},
		{"null marker", s.NullMarker},
	})
}

func (s KeyValueSettings) Validate() error {
	return distinct("key/value", []namedRune{
		{"delimiter", s.Delimiter},
		{"escape", s.Escape},
		{"null marker", s.NullMarker},
	})
}

func (s GraduatedSettings) Validate() error {
	return distinct("graduated", []namedRune{
		{"delimiter", s.Delimiter},
		{"escape", s.Escape},
		{"null marker", s.NullMarker},
	})
}

func (s DeconstructableSettings) Validate() error {

	specials := []namedRune{
		{"delimiter", s.Delimiter},
		{"escape", s.Escape},
		{"null marker", s.NullMarker},
	}
	if s.Start != 0 {
		specials = append(specials, namedRune{"start border", s.Start})
	}
	if s.End != 0 && s.End != s.Start {
		specials = append(specials, namedRune{"end border", s.End})
	}
	return distinct("deconstructable", specials)
}

func (s EnumSettings) Validate() error {
	if s.FlagsSeparator == 0 {
		return fmt.Errorf("%w: enum flags separator is required", ErrConfiguration)
	}
	return nil
}

// WithBorders returns a copy with the given start and end borders.
func (s DeconstructableSettings) WithBorders(start, end rune) DeconstructableSettings {
	s.Start, s.End = start, end
	return s
}

// WithoutBorders returns a copy with neither a start nor an end border.
func (s DeconstructableSettings) WithoutBorders() DeconstructableSettings {
	s.Start, s.End = 0, 0
	return s
}

// WithStrictBorders returns a copy that does not
// accept whitespace outside of the borders.
func (s DeconstructableSettings) WithStrictBorders() DeconstructableSettings {
	s.StrictBorders = true
	return s
}

func (s DeconstructableSettings) WithDelimiter(delimiter rune) DeconstructableSettings {
	s.Delimiter = delimiter
	return s
}

func (s DeconstructableSettings) WithEscape(escape rune) DeconstructableSettings {
	s.Escape = escape
	return s
}

func (s DeconstructableSettings) WithNullMarker(nullMarker rune) DeconstructableSettings {
	s.NullMarker = nullMarker
	return s
}

func (s DeconstructableSettings) String() string {

	var (
		out strings.Builder
	)

	if s.Start != 0 {
		out.WriteRune(s.Start)
	}
	out.WriteString("Item1")
	out.WriteRune(s.Delimiter)
	out.WriteString("…")
	out.WriteRune(s.Delimiter)
	out.WriteString("ItemN")
	if s.End != 0 {
		out.WriteRune(s.End)
	}
	fmt.Fprintf(&out, " escaped by %s, null marked by %s",
		utils.QuoteRune(s.Escape), utils.QuoteRune(s.NullMarker))
	return out.String()
}

type namedRune struct {
	name string
	r    rune
}

func distinct(codec string, specials []namedRune) error {

	for i, a := range specials {
		if a.r == 0 {
			return fmt.Errorf("%w: %s %s character is required", ErrConfiguration, codec, a.name)
		}
		for _, b := range specials[i+1:] {
			if a.r == b.r {
				return fmt.Errorf(
					"%w: %s special characters have to be distinct but %s and %s are both %s",
					ErrConfiguration, codec, a.name, b.name, utils.QuoteRune(a.r))
			}
		}
	}
	return nil
}
