package utils_test

import (
	"github.com/mevansam/textparsers/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("string utils tests", func() {

	Context("joining list of items to a sentence", func() {

		It("creates output of unquoted items", func() {

			s := utils.JoinListAsSentence(
				"John ate %s for breakfast.",
				[]string{"eggs", "bacon", "baked beans"},
				"and", false,
			)
			Expect(s).To(Equal("John ate eggs, bacon and baked beans for breakfast."))
		})

		It("creates output of quoted items with an alternative conjunction", func() {

			s := utils.JoinListAsSentence(
				"valid values are %s",
				[]string{"Red", "Green", "Blue"},
				"or", true,
			)
			Expect(s).To(Equal("valid values are 'Red', 'Green' or 'Blue'"))
		})

		It("handles single and empty lists", func() {
			Expect(utils.JoinListAsSentence("[%s]", []string{"one"}, "or", false)).To(Equal("[one]"))
			Expect(utils.JoinListAsSentence("[%s]", nil, "or", false)).To(Equal("[]"))
		})
	})

	Context("ordinals", func() {

		It("names ordinals in english", func() {
			Expect(utils.Ordinal(1)).To(Equal("1st"))
			Expect(utils.Ordinal(2)).To(Equal("2nd"))
			Expect(utils.Ordinal(3)).To(Equal("3rd"))
			Expect(utils.Ordinal(4)).To(Equal("4th"))
			Expect(utils.Ordinal(11)).To(Equal("11th"))
			Expect(utils.Ordinal(12)).To(Equal("12th"))
			Expect(utils.Ordinal(13)).To(Equal("13th"))
			Expect(utils.Ordinal(21)).To(Equal("21st"))
			Expect(utils.Ordinal(102)).To(Equal("102nd"))
		})
	})

	Context("optional text", func() {

		It("references and dereferences optional strings", func() {
			s := utils.PtrToStr("abc")
			Expect(*s).To(Equal("abc"))
			Expect(utils.PtrToStr("abc")).ToNot(BeIdenticalTo(s))
			Expect(utils.StrOrDefault(nil, "<NULL>")).To(Equal("<NULL>"))
			Expect(utils.StrOrDefault(s, "<NULL>")).To(Equal("abc"))
			Expect(utils.QuoteRune('|')).To(Equal("'|'"))
			Expect(utils.QuoteRune(0)).To(Equal("<nothing>"))
		})
	})
})
