package tagsoup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorAdvance(t *testing.T) {
	c := NewCursor("ab", "utf-8")
	require.Equal(t, 'a', c.Current())
	require.Equal(t, null, c.PeekPrev())
	require.Equal(t, 'b', c.PeekNext())
	require.Equal(t, null, c.PeekNextNext())

	require.True(t, c.Advance())
	require.Equal(t, 'b', c.Current())
	require.Equal(t, 'a', c.PeekPrev())

	// At end of input, Advance fails without moving.
	require.False(t, c.Advance())
	require.Equal(t, 'b', c.Current())
	require.Equal(t, 1, c.Pos())
}

func TestCursorSkip(t *testing.T) {
	c := NewCursor("abcdef", "utf-8")
	c.Skip(3)
	require.Equal(t, 'd', c.Current())

	// Skipping past the end clamps to end of input.
	c.Skip(100)
	require.Equal(t, null, c.Current())
	require.False(t, c.Advance())
}

func TestCursorPosition(t *testing.T) {
	c := NewCursor("ab\ncd", "utf-8")
	for c.Current() != 'c' {
		require.True(t, c.Advance())
	}
	line, column := c.Position()
	require.Equal(t, 2, line)
	require.Equal(t, 1, column)
}

func TestCursorPredicates(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pos   int
		check func(*Cursor) bool
		want  bool
	}{
		{"whitespace", "a b", 1, (*Cursor).Whitespace, true},
		{"tag open", "<a>", 0, (*Cursor).TagOpen, true},
		{"tag close", "<a>", 2, (*Cursor).TagClose, true},
		{"text delimiter", `a"b`, 1, (*Cursor).TextDelimiter, true},
		{"comment end", "x-->", 1, (*Cursor).CommentEnd, true},
		{"not comment end", "x--x", 1, (*Cursor).CommentEnd, false},
		{"self close before gt", "a/>", 1, (*Cursor).SelfCloseMarker, true},
		{"self close after lt", "</a", 1, (*Cursor).SelfCloseMarker, true},
		{"slash mid-tag", "a/b", 1, (*Cursor).SelfCloseMarker, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.text, "utf-8")
			c.Skip(tt.pos)
			require.Equal(t, tt.want, tt.check(c))
		})
	}
}

func TestCursorPeekNonSpace(t *testing.T) {
	c := NewCursor("a   =b", "utf-8")
	require.Equal(t, '=', c.PeekNonSpace())

	c = NewCursor("a   ", "utf-8")
	require.Equal(t, null, c.PeekNonSpace())
}

func TestCursorHasClosingTag(t *testing.T) {
	tests := []struct {
		name string
		text string
		tag  string
		want bool
	}{
		{"present", "<div>x</div>", "div", true},
		{"absent", "<div>x</div>", "span", false},
		{"at end of input", "abc</p>", "p", true},
		{"prefix only", "<div>x</divx>", "div", false},
		{"deep inside", "<ul><li>A</li><li>B</li></ul>", "li", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.text, "utf-8")
			require.Equal(t, tt.want, c.HasClosingTag(tt.tag))
		})
	}
}

func TestCursorEncoding(t *testing.T) {
	c := NewCursor("<a/>", "utf-16le")
	require.Equal(t, "utf-16le", c.Encoding())
}
