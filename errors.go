package tagsoup

import (
	"errors"
	"fmt"
)

// ErrBareText is reported when text is rendered with no element open and
// the caller has not opted in with AllowBareText.
var ErrBareText = errors.New("cannot append text with nothing open")

// A ParseError reports the single fatal format violation: the first
// non-blank character of the input does not open a tag. Embedding
// applications typically catch it and fall back to treating the input as
// unformatted text.
type ParseError struct {
	Char   rune
	Offset int
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tagsoup: unexpected character %q at line %d, column %d: expected tag start",
		e.Char, e.Line, e.Column)
}
