package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// Title returns the text of the first top-level heading in a markdown
// document, falling back to the first heading of any level.
func Title(source []byte) string {
	doc := markdown.Parser().Parse(text.NewReader(source))

	var first, top string
	// The walker never returns an error.
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		label := strings.TrimSpace(nodeText(h, source))
		if first == "" {
			first = label
		}
		if h.Level == 1 && label != "" {
			top = label
			return ast.WalkStop, nil
		}
		return ast.WalkSkipChildren, nil
	})

	if top != "" {
		return top
	}
	return first
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, source))
		}
	}
	return b.String()
}
