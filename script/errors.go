package script

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedDeclaration      = errors.New("malformed declaration")
	ErrInconsistentRedeclaration = errors.New("inconsistent redeclaration")
	ErrUndeclaredInterface       = errors.New("undeclared interface")
	ErrArityMismatch             = errors.New("wrong number of values")
	ErrUnterminatedQuote         = errors.New("unterminated quote")
)

// Error reports the line on which parsing stopped. It unwraps to the
// validation error or to the error returned by a Handler.
type Error struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
