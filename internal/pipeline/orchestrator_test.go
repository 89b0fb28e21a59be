package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/booksum/internal/chunker"
	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/parser"
	"github.com/dgallion1/booksum/internal/report"
)

type fakeSummarizer struct {
	calls  []string
	failAt int // 1-based call that fails; 0 never fails.
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	f.calls = append(f.calls, text)
	if f.failAt == len(f.calls) {
		return "", errors.New("service unavailable")
	}
	return fmt.Sprintf("Summary %d — “%d bytes”.", len(f.calls), len(text)), nil
}

func testConfig() config.Config {
	return config.Config{ChunkCount: 20, MinChunkLen: 100}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeBook writes n paragraphs of one 200-byte sentence each.
func writeBook(t *testing.T, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := range n {
		sentence := fmt.Sprintf("Sentence %02d ", i) + strings.Repeat("z", 200-13) + "."
		sb.WriteString(sentence)
		sb.WriteString("\n\n")
	}
	path := filepath.Join(t.TempDir(), "book.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func TestOrchestrator_RunWritesReport(t *testing.T) {
	src := writeBook(t, 40)
	out := filepath.Join(t.TempDir(), "summary.pdf")
	fake := &fakeSummarizer{}
	o := NewOrchestrator(testConfig(), fake, report.NewRenderer(quietLogger()), quietLogger())

	res, err := o.Run(context.Background(), Request{SourcePath: src, OutputPath: out, Title: "Crime and Punishment"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "Crime and Punishment", res.Title)
	assert.Equal(t, 20, res.Chunks)
	require.Len(t, res.Summaries, 20)
	require.Len(t, fake.calls, 20)
	for i, s := range res.Summaries {
		assert.True(t, strings.HasPrefix(s, fmt.Sprintf("Summary %d ", i+1)), "summary %d out of order", i)
	}

	// Chunks are passed in source order.
	assert.True(t, strings.HasPrefix(fake.calls[0], "Sentence 00"))
	assert.Contains(t, fake.calls[19], "Sentence 39")

	tree, err := parser.ExtractFile(out, parser.Options{})
	require.NoError(t, err)
	text := strings.Join(strings.Fields(tree.Text()), "")
	assert.Contains(t, text, "SummaryofCrimeandPunishment")
	assert.Contains(t, text, "Chapter1")
	assert.Contains(t, text, "Chapter20")
	assert.NotContains(t, text, "Chapter21")
	assert.Zero(t, res.Report.Substituted)
}

func TestOrchestrator_SummarizationFailureAborts(t *testing.T) {
	src := writeBook(t, 40)
	out := filepath.Join(t.TempDir(), "summary.pdf")
	fake := &fakeSummarizer{failAt: 3}
	o := NewOrchestrator(testConfig(), fake, report.NewRenderer(quietLogger()), quietLogger())

	_, err := o.Run(context.Background(), Request{SourcePath: src, OutputPath: out})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSummarization))
	assert.Contains(t, err.Error(), "chunk 3 of 20")
	assert.Contains(t, err.Error(), "service unavailable")
	assert.Len(t, fake.calls, 3, "expected no retry and no further calls")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "expected no report to be written")
}

func TestOrchestrator_ExtractionFailure(t *testing.T) {
	o := NewOrchestrator(testConfig(), &fakeSummarizer{}, report.NewRenderer(quietLogger()), quietLogger())

	_, err := o.Run(context.Background(), Request{
		SourcePath: filepath.Join(t.TempDir(), "missing.pdf"),
		OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
	})
	assert.True(t, errors.Is(err, parser.ErrExtraction), "got %v", err)
}

func TestOrchestrator_TooLittleText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("A short note."), 0o644))
	fake := &fakeSummarizer{}
	o := NewOrchestrator(testConfig(), fake, report.NewRenderer(quietLogger()), quietLogger())

	_, err := o.Run(context.Background(), Request{SourcePath: path, OutputPath: filepath.Join(t.TempDir(), "out.pdf")})
	assert.True(t, errors.Is(err, parser.ErrExtraction), "got %v", err)
	assert.Empty(t, fake.calls)
}

func TestOrchestrator_InvalidChunkCount(t *testing.T) {
	cfg := testConfig()
	cfg.ChunkCount = 0
	o := NewOrchestrator(cfg, &fakeSummarizer{}, report.NewRenderer(quietLogger()), quietLogger())

	_, err := o.Run(context.Background(), Request{SourcePath: writeBook(t, 5), OutputPath: filepath.Join(t.TempDir(), "out.pdf")})
	assert.True(t, errors.Is(err, chunker.ErrInvalidArgument), "got %v", err)
}

func TestOrchestrator_ProcessStreamsPDF(t *testing.T) {
	data, err := os.ReadFile(writeBook(t, 10))
	require.NoError(t, err)

	cfg := testConfig()
	cfg.ChunkCount = 5
	fake := &fakeSummarizer{}
	o := NewOrchestrator(cfg, fake, report.NewRenderer(quietLogger()), quietLogger())

	var out bytes.Buffer
	res, err := o.Process(context.Background(), bytes.NewReader(data), "upload.txt", "", &out)
	require.NoError(t, err)
	assert.Equal(t, "upload", res.Title)
	assert.Equal(t, 5, res.Chunks)
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-")))
}

func TestOrchestrator_ProcessFailureWritesNothing(t *testing.T) {
	data, err := os.ReadFile(writeBook(t, 10))
	require.NoError(t, err)
	o := NewOrchestrator(testConfig(), &fakeSummarizer{failAt: 1}, report.NewRenderer(quietLogger()), quietLogger())

	var out bytes.Buffer
	_, err = o.Process(context.Background(), bytes.NewReader(data), "upload.txt", "", &out)
	assert.True(t, errors.Is(err, ErrSummarization))
	assert.Zero(t, out.Len())
}

func TestSections(t *testing.T) {
	got := Sections("Crime and Punishment", []string{"one", "two"})
	want := []report.Section{
		{Title: "Summary of Crime and Punishment"},
		{Title: "Chapter 1", Body: "one"},
		{Title: "Chapter 2", Body: "two"},
	}
	assert.Equal(t, want, got)
}
