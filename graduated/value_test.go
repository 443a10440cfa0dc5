package graduated_test

import (
	"errors"
	"reflect"

	"github.com/mevansam/textparsers/graduated"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("graduated values", func() {

	DescribeTable("compact raw values",
		func(input []int, compacted []int, expanded [9]int, text string) {

			v, err := graduated.FromValues(input...)
			Expect(err).ToNot(HaveOccurred())
			Expect(v.Values()).To(Equal(compacted))
			Expect(v.Arity()).To(Equal(len(compacted)))
			Expect(v.Expand()).To(Equal(expanded))
			Expect(v.String()).To(Equal(text))
		},
		Entry("no values", []int{}, []int{0}, [9]int{}, "0"),
		Entry("one value", []int{123}, []int{123}, [9]int{123, 123, 123, 123, 123, 123, 123, 123, 123}, "123"),
		Entry("three distinct values", []int{123, 456, 789}, []int{123, 456, 789},
			[9]int{123, 123, 123, 456, 456, 456, 789, 789, 789}, "123#456#789"),
		Entry("three equal values", []int{123, 123, 123}, []int{123},
			[9]int{123, 123, 123, 123, 123, 123, 123, 123, 123}, "123"),
		Entry("nine equal values", []int{1, 1, 1, 1, 1, 1, 1, 1, 1}, []int{1},
			[9]int{1, 1, 1, 1, 1, 1, 1, 1, 1}, "1"),
		Entry("nine values in equal blocks", []int{1, 1, 1, 4, 4, 4, 7, 7, 7}, []int{1, 4, 7},
			[9]int{1, 1, 1, 4, 4, 4, 7, 7, 7}, "1#4#7"),
		Entry("nine distinct values", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			[9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, "1#2#3#4#5#6#7#8#9"),
	)

	DescribeTable("reject invalid counts",
		func(input []int) {
			_, err := graduated.FromValues(input...)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, graduated.ErrInvalidArity)).To(BeTrue())
		},
		Entry("2", []int{1, 2}),
		Entry("4", []int{1, 2, 3, 4}),
		Entry("8", []int{1, 2, 3, 4, 5, 6, 7, 8}),
		Entry("10", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}),
	)

	It("compares elements structurally", func() {

		v := graduated.Three([]int{1, 2}, []int{1, 2}, []int{1, 2})
		Expect(v.Arity()).To(Equal(1))

		type point struct{ x, y int }
		p := graduated.Three(point{1, 2}, point{1, 2}, point{1, 3})
		Expect(p.Arity()).To(Equal(3))
		Expect(p.Aggressive()).To(Equal(point{1, 3}))
	})

	It("exposes aggression levels", func() {

		v := graduated.Three("low", "mid", "high")
		Expect(v.Passive()).To(Equal("low"))
		Expect(v.Normal()).To(Equal("mid"))
		Expect(v.Aggressive()).To(Equal("high"))

		nine := graduated.Nine([9]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
		Expect(nine.Passive()).To(Equal(1))
		Expect(nine.Normal()).To(Equal(5))
		Expect(nine.Aggressive()).To(Equal(9))
	})

	It("considers expanded views for equality", func() {
		Expect(graduated.One(5).Equal(graduated.Nine([9]int{5, 5, 5, 5, 5, 5, 5, 5, 5}))).To(BeTrue())
		Expect(graduated.One(5).Equal(graduated.Three(5, 5, 6))).To(BeFalse())
		Expect(graduated.Value[int]{}.Equal(graduated.One(0))).To(BeTrue())
	})

	It("is usable through reflection", func() {

		t := reflect.TypeFor[graduated.Value[float64]]()
		Expect(graduated.IsGraduated(t)).To(BeTrue())
		Expect(graduated.IsGraduated(reflect.TypeFor[[]float64]())).To(BeFalse())
		Expect(graduated.IsGraduated(reflect.TypeFor[struct{ graduated.Value[float64] }]())).To(BeFalse())

		shape := reflect.Zero(t).Interface().(graduated.Shape)
		Expect(shape.ElementType()).To(Equal(reflect.TypeFor[float64]()))

		built, err := shape.Collect([]float64{1.5, 1.5, 1.5})
		Expect(err).ToNot(HaveOccurred())
		Expect(built).To(Equal(graduated.One(1.5)))
		Expect(built.Items()).To(Equal([]float64{1.5}))

		_, err = shape.Collect([]float64{1, 2})
		Expect(err).To(HaveOccurred())
	})
})
