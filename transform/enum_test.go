package transform_test

import (
	"errors"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/transform"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("enumerations", func() {

	var (
		weekdays transform.Typed[Weekday]
		days     transform.Typed[Days]
	)

	BeforeEach(func() {
		weekdays = transform.MustGet[Weekday](transform.Default())
		days = transform.MustGet[Days](transform.Default())
	})

	DescribeTable("parses names ignoring case and numbers",
		func(input string, expected Weekday, output string) {

			parsed, err := weekdays.Parse(input)
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(expected))

			text, err := weekdays.Format(parsed)
			Expect(err).ToNot(HaveOccurred())
			Expect(text).To(Equal(output))
		},
		Entry("name", "Monday", Monday, "Monday"),
		Entry("lower case", "monday", Monday, "Monday"),
		Entry("padded", " TUESDAY ", Tuesday, "Tuesday"),
		Entry("number of member", "3", Wednesday, "Wednesday"),
		Entry("number without name", "7", Weekday(7), "7"),
		Entry("negative number", "-1", Weekday(-1), "-1"),
		Entry("empty", "", Weekday(0), "0"),
	)

	It("lists valid values when a name is unknown", func() {

		_, err := weekdays.Parse("Funday")
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, transform.ErrFormatSyntax)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("cannot be parsed from 'Funday'"))
		Expect(err.Error()).To(ContainSubstring("Valid values are: Monday, Tuesday or Wednesday or a number within int8 range"))

		_, err = weekdays.Parse("300")
		Expect(err).To(HaveOccurred())
	})

	It("parses only one value of enumerations that are not flags", func() {

		_, err := weekdays.Parse("Monday, Tuesday")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("is not a flags enumeration"))
	})

	DescribeTable("combines flags",
		func(input string, expected Days, output string) {

			parsed, err := days.Parse(input)
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(expected))

			text, err := days.Format(parsed)
			Expect(err).ToNot(HaveOccurred())
			Expect(text).To(Equal(output))
		},
		Entry("single", "Tue", Tue, "Tue"),
		Entry("two", "Mon, Tue", MonTue, "Mon, Tue"),
		Entry("without spaces", "wed,mon", Mon|Wed, "Mon, Wed"),
		Entry("zero member", "None", None, "None"),
		Entry("compound member", "Weekend", Weekend, "Weekend"),
		Entry("member and number", "Mon, 2", MonTue, "Mon, Tue"),
		Entry("unnamed bits", "8", Days(8), "8"),
	)

	It("honours case sensitivity and numeric settings", func() {

		settings := config.DefaultStore()
		settings.Enum.CaseSensitive = true
		settings.Enum.AllowNumerics = false
		store, err := transform.NewStore(settings)
		Expect(err).ToNot(HaveOccurred())

		strict := transform.MustGet[Weekday](store)
		parsed, err := strict.Parse("Monday")
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal(Monday))

		_, err = strict.Parse("monday")
		Expect(err).To(HaveOccurred())
		_, err = strict.Parse("1")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).ToNot(ContainSubstring("a number within"))
	})

	It("formats enumerations inside collections", func() {

		lists := transform.MustGet[[]Weekday](transform.Default())
		parsed, err := lists.Parse("monday|3")
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal([]Weekday{Monday, Wednesday}))

		text, err := lists.Format(parsed)
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(Equal("Monday|Wednesday"))
	})
})
