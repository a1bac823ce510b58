// Package tree defines the mutable document tree produced by parsing
// markup: a Document root with Element, Text and Comment nodes linked by
// parent/children references.
package tree

import "strings"

// Node is the base interface for all tree nodes.
type Node interface {
	// Name returns the node's name: the tag for elements, "#document",
	// "#text" or "#comment" otherwise.
	Name() string
	// Parent returns the node's parent, or nil for a detached node or the
	// document root.
	Parent() Node
	// Children returns the node's children in insertion order. The order is
	// semantically significant: it controls render order.
	Children() []Node
	// SetParent re-parents the node. The node is removed from its old
	// parent's children and appended to the new parent's in one operation,
	// so it is never in both lists or neither. A nil parent detaches.
	SetParent(p Node)

	setParentLink(p Node)
	appendChild(c Node)
	removeChild(c Node)
}

// links carries the parent/children references shared by all node kinds.
// Parent references are plain non-owning pointers; the single-parent
// invariant is maintained by funneling every insertion through reparent.
type links struct {
	parent   Node
	children []Node
}

func (l *links) Parent() Node        { return l.parent }
func (l *links) Children() []Node    { return l.children }
func (l *links) setParentLink(p Node) { l.parent = p }

func (l *links) appendChild(c Node) {
	l.children = append(l.children, c)
}

func (l *links) removeChild(c Node) {
	for i, child := range l.children {
		if child == c {
			l.children = append(l.children[:i], l.children[i+1:]...)
			return
		}
	}
}

// reparent atomically moves n under p.
func reparent(n, p Node) {
	if old := n.Parent(); old != nil {
		old.removeChild(n)
	}
	if p != nil {
		p.appendChild(n)
	}
	n.setParentLink(p)
}

// Document is the root node of a parsed tree. It is created once per parse
// (or once by the embedding application for programmatic building) and has
// no parent.
type Document struct {
	links

	// Encoding is the name of the text encoding the source was decoded
	// from, e.g. "utf-8".
	Encoding string
}

// NewDocument returns an empty document root.
func NewDocument() *Document { return &Document{} }

// Name returns "#document".
func (d *Document) Name() string { return "#document" }

// SetParent is a no-op safeguard on the root: documents have a fixed
// identity and never acquire a parent.
func (d *Document) SetParent(Node) {}

// Add appends nodes as children of the document, detaching each from any
// previous parent first.
func (d *Document) Add(nodes ...Node) {
	for _, n := range nodes {
		reparent(n, d)
	}
}

// Attr is a single element attribute. A boolean attribute is present by
// name only: Bare is true and Value is empty.
type Attr struct {
	Name  string
	Value string
	Bare  bool
}

// Element is a named tag with ordered attributes and children.
type Element struct {
	links

	Tag   string
	Attrs []Attr

	// Inline hints the formatter to lay the element out without forced
	// newlines around its tags.
	Inline bool
}

// NewElement returns a detached element with the given tag and attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs}
}

// Name returns the element's tag.
func (e *Element) Name() string { return e.Tag }

// SetParent re-parents the element. See Node.SetParent.
func (e *Element) SetParent(p Node) { reparent(e, p) }

// Add appends nodes as children of the element, detaching each from any
// previous parent first.
func (e *Element) Add(nodes ...Node) {
	for _, n := range nodes {
		reparent(n, e)
	}
}

// Attr looks up an attribute by name. The lookup is case-sensitive first,
// falling back to a case-insensitive match.
func (e *Element) Attr(name string) (Attr, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	for _, a := range e.Attrs {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Attr{}, false
}

// SetAttr sets the value of the named attribute, replacing an existing
// attribute found with the same case-folding rules as Attr, or appending a
// new one.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			e.Attrs[i].Bare = false
			return
		}
	}
	for i, a := range e.Attrs {
		if strings.EqualFold(a.Name, name) {
			e.Attrs[i].Value = value
			e.Attrs[i].Bare = false
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Text is a run of character data. Conventionally childless.
type Text struct {
	links

	Value string
}

// NewText returns a detached text node.
func NewText(value string) *Text { return &Text{Value: value} }

// Name returns "#text".
func (t *Text) Name() string { return "#text" }

// SetParent re-parents the text node. See Node.SetParent.
func (t *Text) SetParent(p Node) { reparent(t, p) }

// Comment is a markup comment. Conventionally childless.
type Comment struct {
	links

	Value string
}

// NewComment returns a detached comment node.
func NewComment(value string) *Comment { return &Comment{Value: value} }

// Name returns "#comment".
func (c *Comment) Name() string { return "#comment" }

// SetParent re-parents the comment node. See Node.SetParent.
func (c *Comment) SetParent(p Node) { reparent(c, p) }
