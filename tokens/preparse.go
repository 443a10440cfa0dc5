package tokens

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/mevansam/textparsers/streams"
)

// Parseable is a post-processed token: either the unescaped
// text of an element or a marker that the element is absent.
type Parseable struct {
	Text string
	Null bool
}

// Unescape maps a raw token equal to the lone null marker to an absent
// element. Otherwise it removes one level of escaping in front of the
// escape character, the null marker and the given delimiters. An escape
// character followed by anything else is kept as literal text.
func Unescape(token string, escape, null rune, delimiters ...rune) Parseable {

	var (
		out  strings.Builder
		r, n rune
		size int
	)

	if r, size = utf8.DecodeRuneInString(token); r == null && size == len(token) {
		return Parseable{Null: true}
	}
	if strings.IndexRune(token, escape) < 0 {
		return Parseable{Text: token}
	}

	out.Grow(len(token))
	for i := 0; i < len(token); {
		r, size = utf8.DecodeRuneInString(token[i:])
		i += size

		if r == escape && i < len(token) {
			n, size = utf8.DecodeRuneInString(token[i:])
			if n == escape || n == null || isOneOf(n, delimiters) {
				out.WriteRune(n)
				i += size
				continue
			}
		}
		out.WriteRune(r)
	}
	return Parseable{Text: out.String()}
}

// AppendEscaped writes text prefixing every occurrence of the escape
// character, the null marker and the given delimiters with escape.
func AppendEscaped[S ~string | ~[]byte](out *streams.TextBuffer, text S, escape, null rune, delimiters ...rune) {
	for _, r := range string(text) {
		if r == escape || r == null || isOneOf(r, delimiters) {
			out.WriteRune(escape)
		}
		out.WriteRune(r)
	}
}

func isOneOf(r rune, set []rune) bool {
	for _, c := range set {
		if r == c {
			return true
		}
	}
	return false
}

// ParsingSequence is a Sequence whose tokens are post-processed.
type ParsingSequence struct {
	tokens     Sequence
	escape     rune
	null       rune
	delimiters []rune
}

func (s ParsingSequence) Enumerator() ParsingEnumerator {
	return ParsingEnumerator{
		inner: s.tokens.Enumerator(),
		seq:   &s,
	}
}

func (s ParsingSequence) All() iter.Seq[Parseable] {
	return func(yield func(Parseable) bool) {
		e := s.Enumerator()
		for e.Next() {
			if !yield(e.Current()) {
				return
			}
		}
	}
}

func (s ParsingSequence) Input() string {
	return s.tokens.Input()
}

func (s ParsingSequence) Count() int {
	return s.tokens.Count()
}

type ParsingEnumerator struct {
	inner Enumerator
	seq   *ParsingSequence
}

func (e *ParsingEnumerator) Next() bool {
	return e.inner.Next()
}

func (e *ParsingEnumerator) Current() Parseable {
	return Unescape(e.inner.Current(), e.seq.escape, e.seq.null, e.seq.delimiters...)
}

// Raw returns the current token before post-processing.
func (e *ParsingEnumerator) Raw() string {
	return e.inner.Current()
}

func (e *ParsingEnumerator) Rest() string {
	return e.inner.Rest()
}
