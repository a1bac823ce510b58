/*
Package tagsoup parses loosely-formed markup into a navigable document
tree and pretty-prints trees back to consistently indented text.

The parser is a hand-written, character-level state machine built for
real-world input: missing end tags, boolean attributes, unquoted values
and ad-hoc comments all produce a stable tree instead of an error. Whether
an opening tag really opens anything is decided by bounded forward
lookahead: a tag with no matching end tag anywhere ahead becomes a
childless leaf, so <br> and <hr> behave the way authors expect.

Parsing and formatting are each a single synchronous pass:

	doc, err := tagsoup.Parse(data)
	if err != nil {
		var perr *tagsoup.ParseError
		if errors.As(err, &perr) {
			// Not markup at all; show the raw text instead.
		}
		return err
	}

	out, err := tagsoup.Format(doc, tagsoup.Indent(2))

The tree package exposes the node model (Document, Element, Text,
Comment) for programmatic building and mutation. Re-parenting is a single
atomic operation, children keep their insertion order, and tree.All walks
a whole tree in pre-order.

The formatter chooses a layout per element: block by default, a single
line for elements whose only child is text, and inline for elements
hinted as such or named "pre". Output normalizes whitespace; byte-exact
round-tripping of the source layout is a non-goal, but formatting is
idempotent: formatting the parse of formatted output reproduces it.
*/
package tagsoup
