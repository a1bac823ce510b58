package tagsoup

import (
	"io"
	"strings"

	"github.com/nkirkeby/go-tagsoup/internal/chardet"
	"github.com/nkirkeby/go-tagsoup/tree"
)

// Parse decodes data, sniffing the text encoding from a BOM or charset
// declaration (or using the one forced with Charset), and parses it into
// a document tree. The detected encoding name is recorded on the returned
// document.
//
// Parsing is tolerant: missing end tags, unquoted or boolean attributes
// and stray markup are absorbed into a stable tree. The only fatal error
// is input whose first non-blank character does not open a tag; it is
// returned as a *ParseError so callers can fall back to treating the
// input as plain text.
func Parse(data []byte, opts ...Option) (*tree.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	var text, encoding string
	if o.charset != "" {
		text, encoding, err = chardet.DecodeAs(data, o.charset)
	} else {
		text, encoding, err = chardet.Decode(data)
	}
	if err != nil {
		return nil, err
	}

	p := NewParser(NewCursor(text, encoding))
	return p.Parse()
}

// ParseString parses text that is already valid UTF-8. Charset sniffing
// still runs, so an explicit charset declaration in the text is honored.
func ParseString(text string, opts ...Option) (*tree.Document, error) {
	return Parse([]byte(text), opts...)
}

// ParseReader reads r to the end and parses the result. See Parse; the
// entire input is decoded and held in memory before the state machine
// runs.
func ParseReader(r io.Reader, opts ...Option) (*tree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

// Format renders the node and everything below it as consistently
// indented markup.
func Format(n tree.Node, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Fprint(&b, n, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Fprint renders the node and everything below it to w. A fresh formatter
// runs per call, so concurrent renders of separate trees are safe.
func Fprint(w io.Writer, n tree.Node, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	return newFormatter(w, o).render(n)
}
