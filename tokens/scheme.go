package tokens

import (
	"fmt"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/utils"
)

// Scheme is the immutable set of special characters used by one codec
// level. Start and End are optional borders where 0 means none.
type Scheme struct {
	Delimiter rune
	Escape    rune
	Null      rune
	Start     rune
	End       rune
}

// NewScheme validates that all given special characters are pairwise
// distinct. The borders may only be equal to each other.
func NewScheme(delimiter, escape, null, start, end rune) (Scheme, error) {

	s := Scheme{
		Delimiter: delimiter,
		Escape:    escape,
		Null:      null,
		Start:     start,
		End:       end,
	}
	specials := []rune{delimiter, escape, null}
	if start != 0 {
		specials = append(specials, start)
	}
	if end != 0 && end != start {
		specials = append(specials, end)
	}
	for i, a := range specials {
		if a == 0 {
			return Scheme{}, fmt.Errorf("%w: delimiter, escape and null marker are required", config.ErrConfiguration)
		}
		for _, b := range specials[i+1:] {
			if a == b {
				return Scheme{}, fmt.Errorf("%w: special character %s is used more than once in %s",
					config.ErrConfiguration, utils.QuoteRune(a), s)
			}
		}
	}
	return s, nil
}

func MustScheme(delimiter, escape, null, start, end rune) Scheme {
	s, err := NewScheme(delimiter, escape, null, start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// Tokenize splits text on this scheme's unescaped delimiter.
func (s Scheme) Tokenize(text string) Sequence {
	return Tokenize(text, s.Delimiter, s.Escape, true)
}

// PreParse tokenizes text and post-processes each token.
func (s Scheme) PreParse(text string) ParsingSequence {
	return s.Tokenize(text).PreParse(s.Escape, s.Null, s.Delimiter)
}

// Unescape removes one level of escaping from a raw token.
func (s Scheme) Unescape(token string) Parseable {
	return Unescape(token, s.Escape, s.Null, s.Delimiter)
}

// AppendElement writes an element's formatted text escaped for this
// scheme, or the null marker when the element has no text.
func (s Scheme) AppendElement(out *streams.TextBuffer, text []byte, present bool) {
	if !present {
		out.WriteRune(s.Null)
		return
	}
	AppendEscaped(out, text, s.Escape, s.Null, s.Delimiter)
}

func (s Scheme) String() string {

	start, end := "", ""
	if s.Start != 0 {
		start = string(s.Start)
	}
	if s.End != 0 {
		end = string(s.End)
	}
	return fmt.Sprintf("%sItem1%cItem2%s escaped by '%c', null marked by '%c'",
		start, s.Delimiter, end, s.Escape, s.Null)
}
