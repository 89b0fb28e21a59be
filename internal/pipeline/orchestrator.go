// Package pipeline runs extraction, chunking, summarization and rendering
// for one document, strictly in sequence.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/booksum/internal/chunker"
	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/doctree"
	"github.com/dgallion1/booksum/internal/parser"
	"github.com/dgallion1/booksum/internal/report"
	"github.com/dgallion1/booksum/internal/summarize"
)

// ErrSummarization wraps the first failed summarization call of a run.
var ErrSummarization = errors.New("summarization failed")

// Orchestrator runs the summarization pipeline. A run has no retries and no
// partial output: any failure other than character substitution in the
// report aborts it.
type Orchestrator struct {
	summarizer summarize.Summarizer
	renderer   *report.Renderer
	log        *slog.Logger
	chunkCfg   chunker.Config
	parseOpts  parser.Options
}

func NewOrchestrator(cfg config.Config, s summarize.Summarizer, renderer *report.Renderer, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		summarizer: s,
		renderer:   renderer,
		log:        log,
		chunkCfg: chunker.Config{
			TargetCount: cfg.ChunkCount,
			MinLen:      cfg.MinChunkLen,
		},
		parseOpts: parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
	}
}

// Request names the source document and where the report goes.
type Request struct {
	SourcePath string
	OutputPath string
	Title      string // Defaults to the document title.
}

// Result describes a completed run.
type Result struct {
	RunID     string
	Title     string
	TextLen   int
	Chunks    int
	Summaries []string
	Report    report.Stats
	Duration  time.Duration
}

// Run summarizes the document at req.SourcePath into a PDF at req.OutputPath.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	id := uuid.NewString()
	log := o.log.With("run_id", id, "source", req.SourcePath)

	tree, err := parser.ExtractFile(req.SourcePath, o.parseOpts)
	if err != nil {
		log.Error("extraction failed", "error", err)
		return nil, err
	}

	res, sections, err := o.summarizeTree(ctx, log, id, tree, req.Title)
	if err != nil {
		return nil, err
	}

	res.Report, err = o.renderer.Render(req.OutputPath, sections)
	if err != nil {
		log.Error("render failed", "error", err)
		return nil, err
	}
	res.Duration = time.Since(start)
	log.Info("report written", "output", req.OutputPath, "pages", res.Report.Pages, "duration_ms", res.Duration.Milliseconds())
	return res, nil
}

// Process summarizes an uploaded document and streams the PDF to w.
// Nothing is written to w unless every chunk was summarized.
func (o *Orchestrator) Process(ctx context.Context, r io.Reader, filename, title string, w io.Writer) (*Result, error) {
	start := time.Now()
	id := uuid.NewString()
	log := o.log.With("run_id", id, "source", filename)

	tree, err := parser.Extract(r, filename, o.parseOpts)
	if err != nil {
		log.Error("extraction failed", "error", err)
		return nil, err
	}

	res, sections, err := o.summarizeTree(ctx, log, id, tree, title)
	if err != nil {
		return nil, err
	}

	res.Report, err = o.renderer.Write(w, sections)
	if err != nil {
		log.Error("render failed", "error", err)
		return nil, err
	}
	res.Duration = time.Since(start)
	log.Info("report streamed", "pages", res.Report.Pages, "duration_ms", res.Duration.Milliseconds())
	return res, nil
}

func (o *Orchestrator) summarizeTree(ctx context.Context, log *slog.Logger, id string, tree *doctree.DocTree, title string) (*Result, []report.Section, error) {
	if title == "" {
		title = tree.Title
	}
	text := tree.Text()
	res := &Result{
		RunID:   id,
		Title:   title,
		TextLen: len(text),
	}
	log.Info("extracted document", "title", title, "bytes", len(text), "pages", tree.Pages())

	chunks, err := o.chunkCfg.Split(text)
	if err != nil {
		return nil, nil, err
	}
	if len(chunks) == 0 {
		return nil, nil, fmt.Errorf("%w: %d bytes of text yield no chunk above the minimum length %d",
			parser.ErrExtraction, len(text), o.chunkCfg.MinLen)
	}
	res.Chunks = len(chunks)
	if diff := o.chunkCfg.TargetCount - len(chunks); diff > 1 || diff < -1 {
		log.Warn("chunk count far from target", "chunks", len(chunks), "target", o.chunkCfg.TargetCount)
	}
	log.Info("chunked document", "chunks", len(chunks))

	res.Summaries = make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		log.Debug("summarizing chunk", "chunk", i+1, "bytes", len(chunk), "approx_tokens", chunker.EstimateTokens(chunk))
		summary, err := o.summarizer.Summarize(ctx, chunk)
		if err != nil {
			log.Error("summarization failed", "chunk", i+1, "error", err)
			return nil, nil, fmt.Errorf("%w: chunk %d of %d: %w", ErrSummarization, i+1, len(chunks), err)
		}
		res.Summaries = append(res.Summaries, summary)
	}
	log.Info("summarized document", "summaries", len(res.Summaries))

	return res, Sections(title, res.Summaries), nil
}

// Sections lays out the report: a title section, then "Chapter N" per summary.
func Sections(title string, summaries []string) []report.Section {
	sections := make([]report.Section, 0, len(summaries)+1)
	sections = append(sections, report.Section{Title: "Summary of " + title})
	for i, s := range summaries {
		sections = append(sections, report.Section{
			Title: fmt.Sprintf("Chapter %d", i+1),
			Body:  s,
		})
	}
	return sections
}
