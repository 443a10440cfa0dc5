// Package lightlinq aggregates numbers straight from a parsed token
// sequence without building the intermediate collection.
package lightlinq

import (
	"iter"
	"math"

	"github.com/mevansam/textparsers/tokens"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

// Parser parses a single element. Absent elements are
// passed as nil. transform.Typed satisfies it.
type Parser[T any] interface {
	ParseNullable(text *string) (T, error)
}

// parsed yields the parsed elements and stops after the first error.
// Empty text holds no elements.
func parsed[T any](values tokens.ParsingSequence, parser Parser[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {

		if len(values.Input()) == 0 {
			return
		}
		for p := range values.All() {

			var (
				x   T
				err error
			)

			if p.Null {
				x, err = parser.ParseNullable(nil)
			} else {
				x, err = parser.ParseNullable(&p.Text)
			}
			if !yield(x, err) || err != nil {
				return
			}
		}
	}
}

// Sum adds all elements. The returned flag is false
// when the sequence has no elements.
func Sum[T Number](values tokens.ParsingSequence, parser Parser[T]) (T, bool, error) {

	var (
		sum T
		ok  bool
	)

	for x, err := range parsed(values, parser) {
		if err != nil {
			return 0, false, err
		}
		sum += x
		ok = true
	}
	return sum, ok, nil
}

// Average returns the arithmetic mean in the precision of R.
func Average[T Number, R Float](values tokens.ParsingSequence, parser Parser[T]) (R, bool, error) {

	var (
		sum   R
		count int
	)

	for x, err := range parsed(values, parser) {
		if err != nil {
			return 0, false, err
		}
		sum += R(x)
		count++
	}
	if count == 0 {
		return 0, false, nil
	}
	return sum / R(count), true, nil
}

// Variance returns the sample variance computed with Welford's
// online algorithm. A single element is returned as is.
func Variance[T Number, R Float](values tokens.ParsingSequence, parser Parser[T]) (R, bool, error) {

	var (
		mean, sum, current R
		n                  int
	)

	for x, err := range parsed(values, parser) {
		if err != nil {
			return 0, false, err
		}
		current = R(x)
		n++

		delta := current - mean
		mean += delta / R(n)
		sum += delta * (current - mean)
	}

	switch n {
	case 0:
		return 0, false, nil
	case 1:
		return current, true, nil
	default:
		return sum / R(n-1), true, nil
	}
}

// StdDev returns the square root of the sample variance.
func StdDev[T Number, R Float](values tokens.ParsingSequence, parser Parser[T]) (R, bool, error) {

	variance, ok, err := Variance[T, R](values, parser)
	if !ok || err != nil {
		return 0, ok, err
	}
	return R(math.Sqrt(float64(variance))), true, nil
}

// Max returns the largest element. Leading NaN values are skipped
// and NaN is only returned when every element is NaN.
func Max[T Number](values tokens.ParsingSequence, parser Parser[T]) (T, bool, error) {

	var (
		hi T
		ok bool
	)

	for x, err := range parsed(values, parser) {
		if err != nil {
			return 0, false, err
		}
		if !ok || isNaN(hi) || x > hi {
			hi = x
		}
		ok = true
	}
	return hi, ok, nil
}

// Min returns the smallest element or NaN as soon as one is found.
func Min[T Number](values tokens.ParsingSequence, parser Parser[T]) (T, bool, error) {

	var (
		lo T
		ok bool
	)

	for x, err := range parsed(values, parser) {
		if err != nil {
			return 0, false, err
		}
		if isNaN(x) {
			return x, true, nil
		}
		if !ok || x < lo {
			lo = x
		}
		ok = true
	}
	return lo, ok, nil
}

func isNaN[T Number](x T) bool {
	return x != x
}
