package tokens

import (
	"iter"
	"unicode/utf8"
)

// Sequence is a lazy, forward only sequence of raw tokens. Enumerating
// it again re-scans the input. Tokens keep their escape sequences so
// nested codecs can tokenize them again at their own level.
type Sequence struct {
	input              string
	delimiter          rune
	escape             rune
	allowEscapedEscape bool
}

// Tokenize splits input on every delimiter that is not escaped. A
// delimiter is escaped when directly preceded by an escape character
// that is not itself escaped. With allowEscapedEscape an escape
// character escapes a directly following escape character, so "\\|"
// splits while "\|" does not. Empty tokens are kept, and an empty
// input yields a single empty token.
func Tokenize(input string, delimiter, escape rune, allowEscapedEscape bool) Sequence {
	return Sequence{
		input:              input,
		delimiter:          delimiter,
		escape:             escape,
		allowEscapedEscape: allowEscapedEscape,
	}
}

func (s Sequence) Input() string {
	return s.input
}

func (s Sequence) Enumerator() Enumerator {
	return Enumerator{seq: s}
}

func (s Sequence) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		e := s.Enumerator()
		for e.Next() {
			if !yield(e.Current()) {
				return
			}
		}
	}
}

// Count returns the number of tokens without materializing them.
func (s Sequence) Count() int {

	var (
		count int
	)

	e := s.Enumerator()
	for e.Next() {
		count++
	}
	return count
}

// PreParse composes the tokenizer with the token post-processor.
func (s Sequence) PreParse(escape, null rune, delimiters ...rune) ParsingSequence {
	return ParsingSequence{
		tokens:     s,
		escape:     escape,
		null:       null,
		delimiters: delimiters,
	}
}

type Enumerator struct {
	seq Sequence

	next  int // offset where the next token starts
	start int // offset of the current token
	end   int
	done  bool
}

func (e *Enumerator) Next() bool {

	var (
		escaped bool
		r       rune
		size    int
	)

	if e.done {
		return false
	}

	input := e.seq.input
	for i := e.next; i < len(input); i += size {

		if r, size = rune(input[i]), 1; r >= utf8.RuneSelf {
			r, size = utf8.DecodeRuneInString(input[i:])
		}

		switch {
		case r == e.seq.escape:
			escaped = !escaped || !e.seq.allowEscapedEscape

		case r == e.seq.delimiter && !escaped:
			e.start, e.end = e.next, i
			e.next = i + size
			return true

		default:
			escaped = false
		}
	}

	e.start, e.end = e.next, len(input)
	e.next = len(input)
	e.done = true
	return true
}

// Current returns the raw token last produced by Next.
func (e *Enumerator) Current() string {
	return e.seq.input[e.start:e.end]
}

// Rest returns the input from the start of the current
// token to the end, i.e. the unconsumed remainder.
func (e *Enumerator) Rest() string {
	return e.seq.input[e.start:]
}
