package tagsoup

import (
	"strings"

	"github.com/nkirkeby/go-tagsoup/tree"
)

// parseState identifies the active state of the parser's state machine.
type parseState int

const (
	stateInit parseState = iota
	stateReadingTag
	stateReadingAttributeName
	stateReadingAttributeValue
	stateReadingComment
	stateReadingText
)

func (s parseState) String() string {
	switch s {
	case stateInit:
		return "Init"
	case stateReadingTag:
		return "ReadingTag"
	case stateReadingAttributeName:
		return "ReadingAttributeName"
	case stateReadingAttributeValue:
		return "ReadingAttributeValue"
	case stateReadingComment:
		return "ReadingComment"
	case stateReadingText:
		return "ReadingText"
	}
	return "Unknown"
}

// Parser consumes a Cursor character by character and incrementally builds
// a document tree. All working buffers are local to one parse invocation;
// a Parser is used for exactly one Parse call.
type Parser struct {
	cur   *Cursor
	state parseState

	doc  *tree.Document
	open tree.Node // element currently being filled; starts as doc

	tag     strings.Builder
	text    strings.Builder
	comment strings.Builder

	attrName  strings.Builder
	attrValue strings.Builder
	attrs     []tree.Attr

	inQuotes bool
	closing  bool // pending self-close marker seen in the current tag header
}

// NewParser returns a parser reading from c.
func NewParser(c *Cursor) *Parser {
	doc := tree.NewDocument()
	doc.Encoding = c.Encoding()
	return &Parser{cur: c, doc: doc, open: doc}
}

// Parse runs the state machine over the whole input and returns the
// document tree. There is no terminal state: parsing stops when input is
// exhausted, whatever state is active, and the tree built so far
// (including elements still open at end of input) is returned as-is.
//
// The only fatal condition is the first non-blank character not opening a
// tag; it is reported as a *ParseError. Every other malformed shape is
// absorbed by the permissive transition rules.
func (p *Parser) Parse() (*tree.Document, error) {
	// Leading whitespace never reaches the Init state, so the fatal error
	// reports the first meaningful character.
	for p.cur.Whitespace() {
		if !p.cur.Advance() {
			return p.doc, nil
		}
	}
	if p.cur.Current() == null {
		return p.doc, nil
	}

	for {
		if err := p.step(); err != nil {
			return nil, err
		}
		if !p.cur.Advance() {
			break
		}
	}
	return p.doc, nil
}

func (p *Parser) step() error {
	switch p.state {
	case stateInit:
		if !p.cur.TagOpen() {
			line, column := p.cur.Position()
			return &ParseError{
				Char:   p.cur.Current(),
				Offset: p.cur.Pos(),
				Line:   line,
				Column: column,
			}
		}
		p.state = stateReadingTag
	case stateReadingTag:
		p.readTag()
	case stateReadingAttributeName:
		p.readAttributeName()
	case stateReadingAttributeValue:
		p.readAttributeValue()
	case stateReadingComment:
		p.readComment()
	case stateReadingText:
		p.readText()
	}
	return nil
}

func (p *Parser) readTag() {
	switch {
	case p.cur.Whitespace():
		p.state = stateReadingAttributeName
	case p.cur.TagClose():
		p.finalizeTag()
	case p.cur.SelfCloseMarker():
		p.closing = true
	default:
		p.tag.WriteRune(p.cur.Current())
		if p.tag.String() == "!--" {
			p.tag.Reset()
			p.state = stateReadingComment
		}
	}
}

func (p *Parser) readComment() {
	if p.cur.CommentEnd() {
		if body := strings.TrimSpace(p.comment.String()); body != "" {
			p.addChild(tree.NewComment(body))
		}
		p.comment.Reset()
		p.tag.Reset()
		// The terminator was matched by lookahead; consume the rest of it.
		p.cur.Skip(2)
		p.state = stateReadingText
		return
	}
	p.comment.WriteRune(p.cur.Current())
}

func (p *Parser) readAttributeName() {
	if p.cur.TextDelimiter() {
		p.inQuotes = !p.inQuotes
		return
	}
	if p.inQuotes {
		p.attrName.WriteRune(p.cur.Current())
		return
	}
	switch {
	case p.cur.Current() == '=':
		p.state = stateReadingAttributeValue
	case p.cur.Whitespace():
		// Whitespace ahead of '=' merely separates the name from its
		// value; otherwise the accumulated name is a boolean attribute.
		if p.cur.PeekNonSpace() != '=' {
			p.commitBareAttr()
		}
	case p.cur.TagClose():
		p.commitBareAttr()
		p.finalizeTag()
	case p.cur.SelfCloseMarker():
		p.closing = true
	default:
		p.attrName.WriteRune(p.cur.Current())
	}
}

func (p *Parser) readAttributeValue() {
	if p.cur.TextDelimiter() {
		p.inQuotes = !p.inQuotes
		return
	}
	if p.inQuotes {
		// Everything inside quotes is literal, '>' and whitespace included.
		p.attrValue.WriteRune(p.cur.Current())
		return
	}
	switch {
	case p.cur.TagClose():
		p.commitAttr()
		p.finalizeTag()
	case p.cur.Whitespace():
		p.commitAttr()
		p.state = stateReadingAttributeName
	default:
		p.attrValue.WriteRune(p.cur.Current())
	}
}

func (p *Parser) readText() {
	if p.cur.TagOpen() {
		if value := strings.TrimSpace(p.text.String()); value != "" {
			p.addChild(tree.NewText(value))
		}
		p.text.Reset()
		p.state = stateReadingTag
		return
	}
	p.text.WriteRune(p.cur.Current())
}

// commitBareAttr records any accumulated attribute name as a boolean
// attribute with no value.
func (p *Parser) commitBareAttr() {
	if p.attrName.Len() == 0 {
		return
	}
	p.attrs = append(p.attrs, tree.Attr{Name: p.attrName.String(), Bare: true})
	p.attrName.Reset()
}

// commitAttr records the (name, value) pair just built.
func (p *Parser) commitAttr() {
	p.attrs = append(p.attrs, tree.Attr{Name: p.attrName.String(), Value: p.attrValue.String()})
	p.attrName.Reset()
	p.attrValue.Reset()
}

// finalizeTag handles a fully read tag header. Declaration-style tags
// become leaf children. A tag carrying a self-close marker, or one with no
// matching end tag anywhere ahead, either closes the open element (when
// the names match) or becomes a leaf child. A genuine open tag descends.
func (p *Parser) finalizeTag() {
	name := p.tag.String()
	switch {
	case strings.HasPrefix(name, "!"):
		p.addChild(tree.NewElement(name, p.attrs...))
	case p.closing || !p.cur.HasClosingTag(name):
		if el, ok := p.open.(*tree.Element); ok && el.Tag == name {
			p.open = el.Parent()
		} else {
			p.addChild(tree.NewElement(name, p.attrs...))
		}
	default:
		el := tree.NewElement(name, p.attrs...)
		p.addChild(el)
		p.open = el
	}
	p.closing = false
	p.inQuotes = false
	p.tag.Reset()
	p.attrName.Reset()
	p.attrValue.Reset()
	p.attrs = nil
	p.state = stateReadingText
}

func (p *Parser) addChild(n tree.Node) {
	switch parent := p.open.(type) {
	case *tree.Document:
		parent.Add(n)
	case *tree.Element:
		parent.Add(n)
	}
}
