package typeexpr_test

import (
	"net/netip"
	"reflect"
	"time"

	"github.com/mevansam/textparsers/graduated"
	"github.com/mevansam/textparsers/transform"
	"github.com/mevansam/textparsers/typeexpr"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("type expressions", func() {

	var (
		parser *typeexpr.Parser
	)

	BeforeEach(func() {
		parser = typeexpr.NewParser(nil)
	})

	DescribeTable("resolves",
		func(expr string, expected reflect.Type) {
			t, err := parser.Parse(expr)
			Expect(err).ToNot(HaveOccurred())
			Expect(t).To(Equal(expected))
		},
		Entry("scalar", "int", reflect.TypeFor[int]()),
		Entry("padded", "  string ", reflect.TypeFor[string]()),
		Entry("pointer", "*float64", reflect.TypeFor[*float64]()),
		Entry("slice", "[]bool", reflect.TypeFor[[]bool]()),
		Entry("array", "[3]int", reflect.TypeFor[[3]int]()),
		Entry("map", "map[string][]int", reflect.TypeFor[map[string][]int]()),
		Entry("nested", "[] map[ string ] *duration", reflect.TypeFor[[]map[string]*time.Duration]()),
		Entry("graduated", "graduated[int]", reflect.TypeFor[graduated.Value[int]]()),
		Entry("graduated lists", "graduated[[]string]", reflect.TypeFor[graduated.Value[[]string]]()),
		Entry("addresses", "[]ip", reflect.TypeFor[[]netip.Addr]()),
	)

	DescribeTable("rejects",
		func(expr string, message string) {
			_, err := parser.Parse(expr)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(message))
		},
		Entry("empty", "", "type expected"),
		Entry("unknown", "[]widget", "unknown type 'widget'"),
		Entry("unterminated map", "map[string", "']' expected"),
		Entry("trailing text", "int int", "unexpected 'int'"),
		Entry("array length", "[x]int", "array length expected"),
		Entry("unsupported graduated", "graduated[uuid]", "graduated values of 'uuid.UUID' are not supported"),
		Entry("incomparable key", "map[[]int]int", "is not comparable"),
		Entry("too many tuple elements", "tuple[int,int,int,int,int,int,int,int,int]", "only 1 to 8 are supported"),
	)

	It("lists scalar names", func() {
		Expect(typeexpr.Names()).To(ContainElements("int", "duration", "uuid", "ip"))
	})

	It("builds tuples that a store can transform", func() {

		t, err := parser.Parse("tuple[int, []string, *bool]")
		Expect(err).ToNot(HaveOccurred())
		Expect(t.NumField()).To(Equal(3))

		store, err := transform.NewStore(nil, transform.WithDecompositions(parser.Decompositions()))
		Expect(err).ToNot(HaveOccurred())
		transformer, err := store.Resolve(t)
		Expect(err).ToNot(HaveOccurred())

		v, err := transformer.Parse("(1,a|b,∅)")
		Expect(err).ToNot(HaveOccurred())
		Expect(v.Field(0).Int()).To(Equal(int64(1)))
		Expect(v.Field(1).Interface()).To(Equal([]string{"a", "b"}))
		Expect(v.Field(2).IsNil()).To(BeTrue())

		text, err := transform.FormatValue(transformer, v)
		Expect(err).ToNot(HaveOccurred())
		Expect(text).To(Equal("(1,a|b,∅)"))
	})
})
