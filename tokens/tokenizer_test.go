package tokens_test

import (
	"errors"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/streams"
	"github.com/mevansam/textparsers/tokens"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func collect(seq tokens.Sequence) []string {
	result := []string{}
	for t := range seq.All() {
		result = append(result, t)
	}
	return result
}

var _ = Describe("tokenizer", func() {

	DescribeTable("splits on unescaped delimiters",
		func(input string, expected []string) {
			seq := tokens.Tokenize(input, '|', '\\', true)
			Expect(collect(seq)).To(Equal(expected))
			Expect(seq.Count()).To(Equal(len(expected)))
		},
		Entry("empty input", "", []string{""}),
		Entry("single token", "abc", []string{"abc"}),
		Entry("keeps empty tokens", "||", []string{"", "", ""}),
		Entry("simple split", "1|2|3", []string{"1", "2", "3"}),
		Entry("escaped delimiter", `1\|2|3`, []string{`1\|2`, "3"}),
		Entry("escaped escape before delimiter", `1\\|2`, []string{`1\\`, "2"}),
		Entry("three escapes before delimiter", `1\\\|2`, []string{`1\\\|2`}),
		Entry("trailing escape", `1|2\`, []string{"1", `2\`}),
		Entry("multi-byte runes", "∅|ä|∅", []string{"∅", "ä", "∅"}),
	)

	It("treats every escape as escaping the next character when escaped escapes are disallowed", func() {
		Expect(collect(tokens.Tokenize(`a\\|b`, '|', '\\', false))).To(Equal([]string{`a\\|b`}))
		Expect(collect(tokens.Tokenize(`a\|b|c`, '|', '\\', false))).To(Equal([]string{`a\|b`, "c"}))
	})

	It("splits on multi-byte delimiters", func() {
		Expect(collect(tokens.Tokenize("a∙b/∙c∙", '∙', '/', true))).To(Equal([]string{"a", "b/∙c", ""}))
	})

	It("can be enumerated again and stops early", func() {

		seq := tokens.Tokenize("a|b|c", '|', '\\', true)
		first := []string{}
		for t := range seq.All() {
			first = append(first, t)
			if t == "b" {
				break
			}
		}
		Expect(first).To(Equal([]string{"a", "b"}))
		Expect(collect(seq)).To(Equal([]string{"a", "b", "c"}))
	})

	It("reports the unconsumed rest of the input", func() {

		e := tokens.Tokenize("a|b|c|d", '|', '\\', true).Enumerator()
		Expect(e.Next()).To(BeTrue())
		Expect(e.Next()).To(BeTrue())
		Expect(e.Current()).To(Equal("b"))
		Expect(e.Rest()).To(Equal("b|c|d"))
		Expect(e.Next()).To(BeTrue())
		Expect(e.Next()).To(BeTrue())
		Expect(e.Rest()).To(Equal("d"))
		Expect(e.Next()).To(BeFalse())
	})
})

var _ = Describe("post-processing", func() {

	DescribeTable("unescapes tokens",
		func(token string, expected tokens.Parseable) {
			Expect(tokens.Unescape(token, '\\', '∅', '|')).To(Equal(expected))
		},
		Entry("lone null marker", "∅", tokens.Parseable{Null: true}),
		Entry("empty text", "", tokens.Parseable{Text: ""}),
		Entry("null marker with text", " ∅", tokens.Parseable{Text: " ∅"}),
		Entry("escaped null marker", `\∅`, tokens.Parseable{Text: "∅"}),
		Entry("escaped delimiter", `a\|b`, tokens.Parseable{Text: "a|b"}),
		Entry("escaped escape", `a\\b`, tokens.Parseable{Text: `a\b`}),
		Entry("unknown escape kept", `\t123`, tokens.Parseable{Text: `\t123`}),
		Entry("trailing escape kept", `abc\`, tokens.Parseable{Text: `abc\`}),
		Entry("single pass", `\\\\|`, tokens.Parseable{Text: `\\|`}),
	)

	It("unescapes all given delimiters", func() {
		Expect(tokens.Unescape(`k\=y\;`, '\\', '∅', ';', '=')).
			To(Equal(tokens.Parseable{Text: "k=y;"}))
		Expect(tokens.Unescape(`k\=y`, '\\', '∅', ';')).
			To(Equal(tokens.Parseable{Text: `k\=y`}))
	})

	It("pre-parses a sequence", func() {

		result := []tokens.Parseable{}
		for p := range tokens.Tokenize(`a|∅|\∅|b\|c|`, '|', '\\', true).PreParse('\\', '∅', '|').All() {
			result = append(result, p)
		}
		Expect(result).To(Equal([]tokens.Parseable{
			{Text: "a"},
			{Null: true},
			{Text: "∅"},
			{Text: "b|c"},
			{Text: ""},
		}))
	})

	It("escapes text so that it unescapes back", func() {

		b := streams.AcquireTextBuffer()
		defer b.Release()

		text := `a|b\c∅`
		tokens.AppendEscaped(b, text, '\\', '∅', '|')
		Expect(b.String()).To(Equal(`a\|b\\c\∅`))
		Expect(collect(tokens.Tokenize(b.String(), '|', '\\', true))).To(HaveLen(1))
		Expect(tokens.Unescape(b.String(), '\\', '∅', '|').Text).To(Equal(text))
	})
})

var _ = Describe("scheme", func() {

	It("rejects duplicate special characters", func() {

		_, err := tokens.NewScheme('|', '\\', '|', 0, 0)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, config.ErrConfiguration)).To(BeTrue())

		_, err = tokens.NewScheme(';', '\\', '∅', '(', ';')
		Expect(err).To(HaveOccurred())

		_, err = tokens.NewScheme(',', '\\', 0, 0, 0)
		Expect(err).To(HaveOccurred())
	})

	It("accepts equal borders", func() {
		s, err := tokens.NewScheme(',', '\\', '∅', '"', '"')
		Expect(err).ToNot(HaveOccurred())
		Expect(s.Start).To(Equal('"'))
	})

	It("formats absent elements as the null marker", func() {

		s := tokens.MustScheme('|', '\\', '∅', 0, 0)
		b := streams.AcquireTextBuffer()
		defer b.Release()

		s.AppendElement(b, nil, false)
		b.WriteRune(s.Delimiter)
		s.AppendElement(b, []byte("∅"), true)
		Expect(b.String()).To(Equal(`∅|\∅`))

		result := []tokens.Parseable{}
		for p := range s.PreParse(b.String()).All() {
			result = append(result, p)
		}
		Expect(result).To(Equal([]tokens.Parseable{{Null: true}, {Text: "∅"}}))
	})
})
