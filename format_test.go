package tagsoup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nkirkeby/go-tagsoup/tree"
)

func TestFormatTextOnlyChild(t *testing.T) {
	doc := tree.NewDocument()
	div := tree.NewElement("div")
	div.Add(tree.NewText("text"))
	doc.Add(div)

	out, err := Format(doc)
	require.NoError(t, err)
	require.Equal(t, "<div>text</div>\n", out)
}

func TestFormatBlockLayout(t *testing.T) {
	doc := tree.NewDocument()
	ul := tree.NewElement("ul")
	for _, item := range []string{"A", "B"} {
		li := tree.NewElement("li")
		li.Add(tree.NewText(item))
		ul.Add(li)
	}
	doc.Add(ul)

	out, err := Format(doc)
	require.NoError(t, err)
	require.Equal(t, "<ul>\n\t<li>A</li>\n\t<li>B</li>\n</ul>\n", out)
}

func TestFormatIndentOption(t *testing.T) {
	ul := tree.NewElement("ul")
	li := tree.NewElement("li")
	li.Add(tree.NewText("A"))
	ul.Add(li)

	out, err := Format(ul, Indent(2))
	require.NoError(t, err)
	require.Equal(t, "<ul>\n  <li>A</li>\n</ul>\n", out)

	_, err = Format(ul, Indent(-1))
	require.Error(t, err)
}

func TestFormatLeafElements(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"br", "<br>\n"},
		{"hr", "<hr>\n"},
		{"IMG", "<IMG>\n"}, // void check folds case, tag casing kept
		{"p", "<p/>\n"},
		{"span", "<span/>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			out, err := Format(tree.NewElement(tt.tag))
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestFormatAttributes(t *testing.T) {
	el := tree.NewElement("input",
		tree.Attr{Name: "type", Value: "text"},
		tree.Attr{Name: "disabled", Bare: true},
		tree.Attr{Name: "data x", Bare: true},
	)

	out, err := Format(el)
	require.NoError(t, err)
	require.Equal(t, "<input type=\"text\" disabled \"data x\">\n", out)
}

func TestFormatInlineHint(t *testing.T) {
	span := tree.NewElement("span")
	span.Inline = true
	span.Add(tree.NewText("x"))

	out, err := Format(span)
	require.NoError(t, err)
	require.Equal(t, "<span>x</span>", out)
}

func TestFormatPreIsInline(t *testing.T) {
	pre := tree.NewElement("pre")
	pre.Add(tree.NewText("  keep   inner   runs  "))

	out, err := Format(pre)
	require.NoError(t, err)
	require.Equal(t, "<pre>keep   inner   runs</pre>", out)
}

func TestFormatComment(t *testing.T) {
	out, err := Format(tree.NewComment("hello"))
	require.NoError(t, err)
	require.Equal(t, "\n<!-- hello -->\n", out)
}

func TestFormatCommentInsideBlock(t *testing.T) {
	div := tree.NewElement("div")
	div.Add(tree.NewComment("nav"), tree.NewElement("br"))

	out, err := Format(div)
	require.NoError(t, err)
	require.Equal(t, "<div>\n\n\t<!-- nav -->\n\t<br>\n</div>\n", out)
}

func TestFormatBlankCommentDropped(t *testing.T) {
	out, err := Format(tree.NewComment("   "))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFormatMultilineText(t *testing.T) {
	div := tree.NewElement("div")
	div.Add(tree.NewText("first\n   second\n\nthird"))

	out, err := Format(div)
	require.NoError(t, err)
	require.Equal(t, "<div>\n\tfirst\n\tsecond\n\tthird\n</div>\n", out)
}

func TestFormatBareTextError(t *testing.T) {
	_, err := Format(tree.NewText("loose"))
	require.ErrorIs(t, err, ErrBareText)

	out, err := Format(tree.NewText("loose"), AllowBareText())
	require.NoError(t, err)
	require.Equal(t, "loose", out)
}

func TestFormatBlankTextNoOutput(t *testing.T) {
	// Blank text is dropped before the nothing-open check applies.
	out, err := Format(tree.NewText("   \n "))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFormatMixedContentFlows(t *testing.T) {
	div := tree.NewElement("div")
	div.Add(tree.NewText("x"))
	b := tree.NewElement("b")
	div.Add(b)

	out, err := Format(div)
	require.NoError(t, err)
	require.Equal(t, "<div>\n\tx<b/>\n</div>\n", out)
}

func TestFormatDeclaration(t *testing.T) {
	decl := tree.NewElement("!DOCTYPE", tree.Attr{Name: "html", Bare: true})

	out, err := Format(decl)
	require.NoError(t, err)
	require.Equal(t, "<!DOCTYPE html>\n", out)
}
