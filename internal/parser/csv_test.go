package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestCSVParser_RowsGroupedWithHeaders(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("name,role\n")
	for i := range 25 {
		fmt.Fprintf(&sb, "person%d,student\n", i)
	}

	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(sb.String()), "roster.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 row groups, got %d", len(tree.Children))
	}
	if tree.Children[0].Title != "Rows 2-21" || tree.Children[1].Title != "Rows 22-26" {
		t.Errorf("unexpected group titles %q, %q", tree.Children[0].Title, tree.Children[1].Title)
	}
	if !strings.HasPrefix(tree.Children[0].Text, "name: person0, role: student.") {
		t.Errorf("unexpected row rendering %q", tree.Children[0].Text)
	}
}

func TestCSVParser_HeaderOnly(t *testing.T) {
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader("a,b\n"), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected no children, got %d", len(tree.Children))
	}
}
