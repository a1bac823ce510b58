package tagsoup

import (
	"strings"
	"unicode"
)

// null is the sentinel returned for any cursor read past either boundary.
const null rune = 0

// Cursor is a bounded lookahead buffer over the fully decoded document
// text. It tracks a single position; the parser drives it strictly forward.
type Cursor struct {
	text     []rune
	pos      int
	encoding string
}

// NewCursor returns a cursor over text. The encoding name records how the
// source bytes were decoded and is carried onto the parsed document.
func NewCursor(text, encoding string) *Cursor {
	return &Cursor{text: []rune(text), encoding: encoding}
}

// Encoding returns the name of the encoding the source was decoded from.
func (c *Cursor) Encoding() string { return c.encoding }

// Pos returns the current rune offset.
func (c *Cursor) Pos() int { return c.pos }

// Position returns the 1-based line and column of the current offset.
func (c *Cursor) Position() (line, column int) {
	line, column = 1, 1
	for i := 0; i < c.pos && i < len(c.text); i++ {
		if c.text[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// Advance moves one character forward. It returns false at end of input
// without moving.
func (c *Cursor) Advance() bool {
	if c.pos+1 >= len(c.text) {
		return false
	}
	c.pos++
	return true
}

// Skip advances n characters without re-examining them. Used after
// recognizing multi-character tokens such as a comment terminator.
func (c *Cursor) Skip(n int) {
	c.pos += n
	if c.pos > len(c.text) {
		c.pos = len(c.text)
	}
}

func (c *Cursor) at(i int) rune {
	if i < 0 || i >= len(c.text) {
		return null
	}
	return c.text[i]
}

// Current returns the character at the cursor, or the null sentinel past
// the end of input.
func (c *Cursor) Current() rune { return c.at(c.pos) }

// PeekNext returns the character one ahead of the cursor.
func (c *Cursor) PeekNext() rune { return c.at(c.pos + 1) }

// PeekNextNext returns the character two ahead of the cursor.
func (c *Cursor) PeekNextNext() rune { return c.at(c.pos + 2) }

// PeekPrev returns the character one behind the cursor.
func (c *Cursor) PeekPrev() rune { return c.at(c.pos - 1) }

// Whitespace reports whether the current character is whitespace.
func (c *Cursor) Whitespace() bool { return unicode.IsSpace(c.Current()) }

// TagOpen reports whether the current character opens a tag.
func (c *Cursor) TagOpen() bool { return c.Current() == '<' }

// TagClose reports whether the current character closes a tag.
func (c *Cursor) TagClose() bool { return c.Current() == '>' }

// TextDelimiter reports whether the current character is a quote.
func (c *Cursor) TextDelimiter() bool { return c.Current() == '"' }

// CommentEnd reports whether the current position starts a comment
// terminator, i.e. "-->" at current, current+1 and current+2.
func (c *Cursor) CommentEnd() bool {
	return c.Current() == '-' && c.PeekNext() == '-' && c.PeekNextNext() == '>'
}

// SelfCloseMarker reports whether the current character is a slash acting
// as a self-close marker: immediately before '>' or immediately after '<'.
func (c *Cursor) SelfCloseMarker() bool {
	return c.Current() == '/' && (c.PeekNext() == '>' || c.PeekPrev() == '<')
}

// PeekNonSpace returns the first non-whitespace character strictly after
// the current position, or the null sentinel if none remains.
func (c *Cursor) PeekNonSpace() rune {
	for i := c.pos + 1; i < len(c.text); i++ {
		if !unicode.IsSpace(c.text[i]) {
			return c.text[i]
		}
	}
	return null
}

// HasClosingTag scans forward from the current position and reports
// whether the literal closing tag for name appears anywhere ahead. The
// scan maintains a sliding window sized at twice the literal's length,
// trimming from the front as it grows. Cost is linear in the remaining
// input per call; it runs once per opening tag.
func (c *Cursor) HasClosingTag(name string) bool {
	closing := "</" + name + ">"
	limit := 2 * len([]rune(closing))
	window := make([]rune, 0, limit)
	for i := c.pos; i < len(c.text); i++ {
		window = append(window, c.text[i])
		if len(window) > limit {
			window = window[1:]
		}
		if strings.Contains(string(window), closing) {
			return true
		}
	}
	return false
}
