package parser

import (
	"strings"

	"github.com/dgallion1/booksum/internal/doctree"
)

// sectionBuilder nests headings by level and attaches paragraph text to the
// innermost open heading. Markdown, HTML and DOCX all feed it.
type sectionBuilder struct {
	root  *doctree.DocNode
	stack []openSection
	text  strings.Builder
}

type openSection struct {
	node  *doctree.DocNode
	level int
}

func newSectionBuilder(title string) *sectionBuilder {
	root := &doctree.DocNode{Title: title}
	return &sectionBuilder{
		root:  root,
		stack: []openSection{{node: root, level: 0}},
	}
}

func (b *sectionBuilder) heading(level int, title string) {
	b.flush()
	node := &doctree.DocNode{Title: title, Heading: true}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].node
	parent.Children = append(parent.Children, node)
	b.stack = append(b.stack, openSection{node: node, level: level})
}

func (b *sectionBuilder) paragraph(text string) {
	if text == "" {
		return
	}
	if b.text.Len() > 0 {
		b.text.WriteString("\n\n")
	}
	b.text.WriteString(text)
}

func (b *sectionBuilder) flush() {
	t := strings.TrimSpace(b.text.String())
	b.text.Reset()
	if t == "" {
		return
	}
	top := b.stack[len(b.stack)-1].node
	if top.Text != "" {
		top.Text += "\n\n" + t
	} else {
		top.Text = t
	}
}

// tree closes the builder. Text that appeared before the first heading is
// kept as the first child.
func (b *sectionBuilder) tree() *doctree.DocTree {
	b.flush()
	tree := &doctree.DocTree{Title: b.root.Title}
	if b.root.Text != "" {
		tree.Children = append(tree.Children, &doctree.DocNode{Text: b.root.Text})
	}
	tree.Children = append(tree.Children, b.root.Children...)
	return tree
}
