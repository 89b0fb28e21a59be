// Package report lays out titled sections as a paginated PDF.
package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-pdf/fpdf"
)

// Section is one titled block of the report. An empty Body renders the title alone.
type Section struct {
	Title string
	Body  string
}

// Stats describes a rendered report.
type Stats struct {
	Sections    int
	Pages       int
	Substituted int // Characters replaced with Placeholder across all sections.
}

// Renderer writes sections with the PDF core fonts, which only cover Latin-1.
type Renderer struct {
	log        *slog.Logger
	font       string
	fontSize   float64
	lineHeight float64
	margin     float64
}

func NewRenderer(log *slog.Logger) *Renderer {
	return &Renderer{
		log:        log,
		font:       "Arial",
		fontSize:   12,
		lineHeight: 10,
		margin:     15,
	}
}

// Render writes the report to path.
func (r *Renderer) Render(path string, sections []Section) (Stats, error) {
	doc, stats := r.build(sections)
	if err := doc.OutputFileAndClose(path); err != nil {
		return stats, fmt.Errorf("write report %s: %w", path, err)
	}
	return stats, nil
}

// Write streams the report to w.
func (r *Renderer) Write(w io.Writer, sections []Section) (Stats, error) {
	doc, stats := r.build(sections)
	if err := doc.Output(w); err != nil {
		return stats, fmt.Errorf("write report: %w", err)
	}
	return stats, nil
}

func (r *Renderer) build(sections []Section) (*fpdf.Fpdf, Stats) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, r.margin)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	stats := Stats{Sections: len(sections)}
	for i, s := range sections {
		title, n := Sanitize(s.Title)
		body, m := Sanitize(s.Body)
		if n+m > 0 {
			r.log.Warn("replaced unencodable characters",
				"section", i, "title", title, "replaced", n+m)
			stats.Substituted += n + m
		}

		doc.SetFont(r.font, "B", r.fontSize)
		doc.CellFormat(0, r.lineHeight, tr(title), "", 1, "C", false, 0, "")
		doc.Ln(r.lineHeight)

		if body != "" {
			doc.SetFont(r.font, "", r.fontSize)
			doc.MultiCell(0, r.lineHeight, tr(body), "", "", false)
			doc.Ln(-1)
		}
	}
	stats.Pages = doc.PageCount()
	return doc, stats
}
