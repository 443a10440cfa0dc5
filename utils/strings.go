package utils

import (
	"fmt"
	"strings"
)

func PtrToStr(s string) *string {
	return &s
}

// Dereferences an optional text returning
// the given placeholder when it is absent.
func StrOrDefault(s *string, placeholder string) string {
	if s == nil {
		return placeholder
	}
	return *s
}

// Joins the given list as a sentence using the given
// conjunction before the last item, i.e. "a, b or c".
func JoinListAsSentence(format string, list []string, conjunction string, quoteListItems bool) string {

	var (
		listAsString strings.Builder
	)

	joinItem := func(item string) {

		if quoteListItems {
			listAsString.WriteByte('\'')
		}
		listAsString.WriteString(item)
		if quoteListItems {
			listAsString.WriteByte('\'')
		}
	}

	l := len(list)
	if l > 0 {
		l--

		for i, v := range list {

			if i == 0 {
				joinItem(v)
			} else {
				if i == l {
					listAsString.WriteByte(' ')
					listAsString.WriteString(conjunction)
					listAsString.WriteByte(' ')
				} else {
					listAsString.WriteString(", ")
				}
				joinItem(v)
			}
		}
	}

	return fmt.Sprintf(format, listAsString.String())
}

// Returns the english ordinal of the given number, i.e. 1st, 2nd, 11th.
func Ordinal(number int) string {

	rem := number % 100
	if rem >= 11 && rem <= 13 {
		return fmt.Sprintf("%dth", number)
	}
	switch number % 10 {
	case 1:
		return fmt.Sprintf("%dst", number)
	case 2:
		return fmt.Sprintf("%dnd", number)
	case 3:
		return fmt.Sprintf("%drd", number)
	default:
		return fmt.Sprintf("%dth", number)
	}
}

// Quotes a rune for use in messages, i.e. '|'.
func QuoteRune(r rune) string {
	if r == 0 {
		return "<nothing>"
	}
	return "'" + string(r) + "'"
}
