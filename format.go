package tagsoup

import (
	"fmt"
	"io"
	"strings"

	"github.com/nkirkeby/go-tagsoup/tree"
)

// looseCloseTags are tags conventionally treated as void: a childless
// element with one of these names is closed with a bare '>' instead of the
// explicit self-closing form.
var looseCloseTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
	"!doctype": true,
}

func looselyClosed(tag string) bool {
	return strings.HasPrefix(tag, "!") || looseCloseTags[strings.ToLower(tag)]
}

// formatter renders a document tree as indented markup. One formatter
// value is created per render pass and holds that pass's open-tag stack
// and line state; it is never shared between renders.
type formatter struct {
	w        io.Writer
	indent   string
	bareText bool

	stack       []string
	startOfLine bool
}

func newFormatter(w io.Writer, o *options) *formatter {
	return &formatter{
		w:           w,
		indent:      o.indent,
		bareText:    o.bareText,
		startOfLine: true,
	}
}

// write emits s, first emitting the current indentation if this is the
// first write on a line.
func (f *formatter) write(s string) error {
	if f.startOfLine {
		f.startOfLine = false
		for range f.stack {
			if _, err := io.WriteString(f.w, f.indent); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) newline() error {
	if _, err := io.WriteString(f.w, "\n"); err != nil {
		return err
	}
	f.startOfLine = true
	return nil
}

func (f *formatter) render(node tree.Node) error {
	switch n := node.(type) {
	case *tree.Document:
		for _, child := range n.Children() {
			if err := f.render(child); err != nil {
				return err
			}
		}
		return nil
	case *tree.Element:
		return f.renderElement(n)
	case *tree.Text:
		return f.renderText(n.Value)
	case *tree.Comment:
		return f.renderComment(n.Value)
	default:
		return fmt.Errorf("tagsoup: unsupported node type for formatting: %T", n)
	}
}

func (f *formatter) renderText(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if len(f.stack) == 0 && !f.bareText {
		return fmt.Errorf("tagsoup: %w", ErrBareText)
	}
	return f.writeLines(value)
}

// writeLines emits value one line at a time, re-indenting each line at the
// current depth. Per-line trimming keeps repeated format/parse rounds
// stable.
func (f *formatter) writeLines(value string) error {
	first := true
	for line := range strings.Lines(value) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !first {
			if err := f.newline(); err != nil {
				return err
			}
		}
		first = false
		if err := f.write(line); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) renderComment(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	// A comment always claims its own line, even mid-flow.
	if _, err := io.WriteString(f.w, "\n"); err != nil {
		return err
	}
	f.startOfLine = true
	if err := f.write("<!-- "); err != nil {
		return err
	}
	if err := f.writeLines(value); err != nil {
		return err
	}
	if err := f.write(" -->"); err != nil {
		return err
	}
	return f.newline()
}

func (f *formatter) renderElement(el *tree.Element) error {
	if len(el.Children()) == 0 {
		return f.renderLeaf(el)
	}
	switch {
	case el.Inline || strings.EqualFold(el.Tag, "pre"):
		return f.renderInline(el)
	case f.textOnlyChild(el) != nil:
		return f.renderWithText(el)
	default:
		return f.renderBlock(el)
	}
}

// textOnlyChild returns the element's sole text child, or nil. Text
// spanning multiple lines does not qualify; it takes the block layout so
// each line can be re-indented.
func (f *formatter) textOnlyChild(el *tree.Element) *tree.Text {
	children := el.Children()
	if len(children) != 1 {
		return nil
	}
	text, ok := children[0].(*tree.Text)
	if !ok || strings.Contains(strings.TrimSpace(text.Value), "\n") {
		return nil
	}
	return text
}

// renderLeaf writes a childless element, closed within the tag header.
func (f *formatter) renderLeaf(el *tree.Element) error {
	closer := "/>"
	if looselyClosed(el.Tag) {
		closer = ">"
	}
	if err := f.write("<" + el.Tag + attrString(el.Attrs) + closer); err != nil {
		return err
	}
	if el.Inline {
		return nil
	}
	return f.newline()
}

// renderInline keeps the element and its content on the current line: no
// forced newline before the open tag, none before the close tag. The tag
// is still pushed so nested text is recognized as having an open element;
// with no newlines emitted the entry never reaches the indentation.
func (f *formatter) renderInline(el *tree.Element) error {
	if err := f.write("<" + el.Tag + attrString(el.Attrs) + ">"); err != nil {
		return err
	}
	f.stack = append(f.stack, el.Tag)
	for _, child := range el.Children() {
		if err := f.render(child); err != nil {
			return err
		}
	}
	f.stack = f.stack[:len(f.stack)-1]
	return f.write("</" + el.Tag + ">")
}

// renderWithText writes an element whose only child is text as a single
// line: open tag, text, close tag.
func (f *formatter) renderWithText(el *tree.Element) error {
	if err := f.write("<" + el.Tag + attrString(el.Attrs) + ">"); err != nil {
		return err
	}
	f.stack = append(f.stack, el.Tag)
	if err := f.renderText(f.textOnlyChild(el).Value); err != nil {
		return err
	}
	f.stack = f.stack[:len(f.stack)-1]
	if err := f.write("</" + el.Tag + ">"); err != nil {
		return err
	}
	return f.newline()
}

// renderBlock writes the open tag, children one indent level deeper, and
// the close tag, each starting its own line.
func (f *formatter) renderBlock(el *tree.Element) error {
	if err := f.write("<" + el.Tag + attrString(el.Attrs) + ">"); err != nil {
		return err
	}
	if err := f.newline(); err != nil {
		return err
	}
	f.stack = append(f.stack, el.Tag)
	for _, child := range el.Children() {
		if err := f.render(child); err != nil {
			return err
		}
	}
	// Text and inline children leave the line open; close it before the
	// end tag claims its own line.
	if !f.startOfLine {
		if err := f.newline(); err != nil {
			return err
		}
	}
	f.stack = f.stack[:len(f.stack)-1]
	if err := f.write("</" + el.Tag + ">"); err != nil {
		return err
	}
	return f.newline()
}

// attrString serializes attributes, each preceded by a space. A boolean
// attribute renders as its bare name, quoted only if the name itself
// contains a space; a valued attribute renders as name="value".
func attrString(attrs []tree.Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteByte(' ')
		if a.Bare {
			if strings.Contains(a.Name, " ") {
				b.WriteString(`"` + a.Name + `"`)
			} else {
				b.WriteString(a.Name)
			}
			continue
		}
		b.WriteString(a.Name + `="` + a.Value + `"`)
	}
	return b.String()
}
