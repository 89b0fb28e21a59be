package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/booksum/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	b := newSectionBuilder(trimExt(filename))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			b.heading(h.Level, string(h.Text(src)))
			continue
		}
		b.paragraph(markdownText(n, src))
	}

	return b.tree(), nil
}

// markdownText returns the text of n's inline descendants, or the raw lines
// of a leaf block such as a code block.
func markdownText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && !n.HasChildren() {
		lines := n.Lines()
		for i := range lines.Len() {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			if c.Type() == ast.TypeBlock && buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(markdownText(c, src))
			continue
		}
		buf.Write(t.Value(src))
		if t.HardLineBreak() || t.SoftLineBreak() {
			buf.WriteByte('\n')
		}
	}
	return strings.TrimSpace(buf.String())
}
