package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/booksum/internal/doctree"
)

// csvRowsPerNode groups data rows so each node reads as one passage.
const csvRowsPerNode = 20

// CSVParser handles CSV files. Each row is rendered as "header: value" pairs.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{Title: trimExt(filename)}
	if len(records) < 2 {
		return tree, nil
	}

	headers, rows := records[0], records[1:]
	for start := 0; start < len(rows); start += csvRowsPerNode {
		end := min(start+csvRowsPerNode, len(rows))

		var sb strings.Builder
		for _, row := range rows[start:end] {
			pairs := make([]string, 0, len(row))
			for j, cell := range row {
				if j < len(headers) {
					pairs = append(pairs, headers[j]+": "+cell)
				} else {
					pairs = append(pairs, cell)
				}
			}
			sb.WriteString(strings.Join(pairs, ", "))
			sb.WriteString(".\n")
		}

		tree.Children = append(tree.Children, &doctree.DocNode{
			Title: fmt.Sprintf("Rows %d-%d", start+2, end+1),
			Text:  strings.TrimRight(sb.String(), "\n"),
		})
	}
	return tree, nil
}
