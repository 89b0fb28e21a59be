package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_TitleAndSections(t *testing.T) {
	input := `<html><head><title>Crime and Punishment</title><style>p{}</style></head>
<body>
<nav><p>Skip me</p></nav>
<h1>Part I</h1>
<p>It was a  hot evening
in early July.</p>
<h2>Chapter 1</h2>
<p>He had
 successfully avoided his landlady.</p>
<ul><li>A list item.</li></ul>
<script>var x = 1;</script>
</body></html>`

	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "book.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "Crime and Punishment" {
		t.Errorf("expected <title> as tree title, got %q", tree.Title)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 top-level section, got %d", len(tree.Children))
	}
	part := tree.Children[0]
	if part.Title != "Part I" || part.Text != "It was a hot evening in early July." {
		t.Errorf("unexpected part %q / %q", part.Title, part.Text)
	}
	if len(part.Children) != 1 {
		t.Fatalf("expected chapter nested under part, got %d children", len(part.Children))
	}
	ch := part.Children[0]
	if ch.Text != "He had successfully avoided his landlady.\n\nA list item." {
		t.Errorf("unexpected chapter text %q", ch.Text)
	}
	if strings.Contains(tree.Text(), "Skip me") || strings.Contains(tree.Text(), "var x") {
		t.Error("expected nav and script content to be skipped")
	}
}

func TestHTMLParser_FilenameTitleFallback(t *testing.T) {
	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader("<p>Body only.</p>"), "notes.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", tree.Title)
	}
	if tree.Text() != "Body only." {
		t.Errorf("unexpected text %q", tree.Text())
	}
}
