package query

import "fmt"

// Positioned is implemented by errors that carry a byte offset into
// the query line, so the shell can point at the offending spot.
type Positioned interface {
	Offset() int
}

// LexError reports a character that matches no token class.
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Pos)
}

func (e *LexError) Offset() int { return e.Pos }

// ParseError reports a grammar violation with an expected-token hint.
type ParseError struct {
	Pos      int
	Got      string
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s but got %s at offset %d", e.Expected, e.Got, e.Pos)
}

func (e *ParseError) Offset() int { return e.Pos }

// UnknownFieldError reports a field name that is not in the catalog.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}

// TypeMismatchError reports an operator or literal that does not fit
// the field's declared kind.
type TypeMismatchError struct {
	Field    string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q expects %s", e.Field, e.Expected)
}

// TrailingInputError reports leftover tokens after a complete query.
type TrailingInputError struct {
	Pos int
	Got string
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("unexpected %s after end of query at offset %d", e.Got, e.Pos)
}

func (e *TrailingInputError) Offset() int { return e.Pos }
