package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingHierarchy(t *testing.T) {
	input := `Preface text.

# Part One

Intro text.

## Chapter 1

Chapter one content.

### Scene 1

Scene content.

## Chapter 2

Chapter two content.
`
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "book.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "book" {
		t.Errorf("expected title %q, got %q", "book", tree.Title)
	}

	// Preface node, then the h1.
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 top-level children, got %d", len(tree.Children))
	}
	if tree.Children[0].Text != "Preface text." {
		t.Errorf("expected preface node, got %q", tree.Children[0].Text)
	}

	h1 := tree.Children[1]
	if h1.Title != "Part One" || h1.Text != "Intro text." {
		t.Errorf("unexpected h1 %q / %q", h1.Title, h1.Text)
	}
	if len(h1.Children) != 2 {
		t.Fatalf("expected 2 h2 children, got %d", len(h1.Children))
	}
	if h1.Children[0].Title != "Chapter 1" || h1.Children[1].Title != "Chapter 2" {
		t.Errorf("unexpected h2 titles %q, %q", h1.Children[0].Title, h1.Children[1].Title)
	}
	if len(h1.Children[0].Children) != 1 || h1.Children[0].Children[0].Text != "Scene content." {
		t.Errorf("expected h3 nested under chapter 1")
	}

	want := "Preface text.\nPart One\nIntro text.\nChapter 1\nChapter one content.\nScene 1\nScene content.\nChapter 2\nChapter two content."
	if got := tree.Text(); got != want {
		t.Errorf("expected flattened text %q, got %q", want, got)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	input := "Just a paragraph.\n\nAnd another one."
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "plain.markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "plain" {
		t.Errorf("expected title %q, got %q", "plain", tree.Title)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}
	if tree.Children[0].Text != "Just a paragraph.\n\nAnd another one." {
		t.Errorf("unexpected text %q", tree.Children[0].Text)
	}
}
