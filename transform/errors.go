package transform

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mevansam/textparsers/config"
)

var (
	// ErrConfiguration is returned when settings use
	// special characters that are not distinct.
	ErrConfiguration = config.ErrConfiguration
	// ErrUnsupportedType is returned at resolution time when no
	// creator can build a transformer for a requested type.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrFormatSyntax is wrapped by every error caused by malformed text.
	ErrFormatSyntax = errors.New("invalid text format")
)

// SyntaxError describes text that does not match the grammar of a
// transformer. Ordinal is the 1 based position of the element that
// was expected, or 0 when the error is not tied to an element.
type SyntaxError struct {
	Text    string
	Ordinal int
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

func (e *SyntaxError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFormatSyntax, e.Err}
	}
	return []error{ErrFormatSyntax}
}

func syntaxError(text string, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Text:    text,
		Message: fmt.Sprintf(format, args...),
	}
}

func unsupportedType(t reflect.Type, reason string) error {
	if len(reason) > 0 {
		return fmt.Errorf("%w: type '%s' %s", ErrUnsupportedType, typeName(t), reason)
	}
	return fmt.Errorf("%w: type '%s' cannot be transformed", ErrUnsupportedType, typeName(t))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
