package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/booksum/internal/doctree"
)

// TextParser handles plain text files, one node per paragraph.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	tree := &doctree.DocTree{Title: trimExt(filename)}
	var para []string
	flush := func() {
		if len(para) > 0 {
			tree.Children = append(tree.Children, &doctree.DocNode{Text: strings.Join(para, "\n")})
			para = para[:0]
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		para = append(para, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return tree, nil
}
