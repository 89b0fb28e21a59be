package doctree

import "strings"

// DocTree is the root of an extracted document.
type DocTree struct {
	Title    string     // Document title (from metadata or filename)
	Children []*DocNode // Top-level sections or pages
}

// DocNode is a recursive section in the document tree.
type DocNode struct {
	Title    string     // Section heading or "Page N" (empty for leaf text)
	Text     string     // Text content of this node (may be empty for container nodes)
	Page     int        // Source page (0 if N/A)
	Heading  bool       // Title is a heading from the document body
	Children []*DocNode // Subsections
}

// Text concatenates headings and node text in document order, one per line.
// Synthetic titles such as "Page 3" are left out.
func (t *DocTree) Text() string {
	var sb strings.Builder
	line := func(s string) {
		if s == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s)
	}
	var walk func(nodes []*DocNode)
	walk = func(nodes []*DocNode) {
		for _, n := range nodes {
			if n.Heading {
				line(n.Title)
			}
			line(n.Text)
			walk(n.Children)
		}
	}
	walk(t.Children)
	return sb.String()
}

// Pages returns the number of nodes that carry a source page.
func (t *DocTree) Pages() int {
	n := 0
	for _, c := range t.Children {
		if c.Page > 0 {
			n++
		}
	}
	return n
}
