// Package chunker divides extracted document text into roughly equal,
// sentence-bounded pieces sized for one summarization request each.
package chunker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is returned when the target chunk count is not positive.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	DefaultTargetCount = 20
	DefaultMinLen      = 100
)

// Config controls chunking behavior.
type Config struct {
	TargetCount int // Nominal number of chunks.
	MinLen      int // Chunks at or below this many bytes are not emitted on their own.
}

// DefaultConfig returns the defaults used by the summarizer.
func DefaultConfig() Config {
	return Config{
		TargetCount: DefaultTargetCount,
		MinLen:      DefaultMinLen,
	}
}

// Split divides text into about targetCount chunks using DefaultMinLen.
func Split(text string, targetCount int) ([]string, error) {
	return Config{TargetCount: targetCount, MinLen: DefaultMinLen}.Split(text)
}

// Split divides text into about c.TargetCount chunks that end just after a
// period. Boundaries start at multiples of len(text)/TargetCount and move
// forward to the next period, or to the end of the text when none is left.
// Each chunk runs from the previous boundary to the current one; chunks at
// or below MinLen are dropped, so the result may have gaps but never
// overlaps.
func (c Config) Split(text string) ([]string, error) {
	if c.TargetCount <= 0 {
		return nil, fmt.Errorf("%w: target count must be positive, got %d", ErrInvalidArgument, c.TargetCount)
	}
	if c.MinLen < 0 {
		c.MinLen = 0
	}
	if text == "" {
		return nil, nil
	}

	width := len(text) / c.TargetCount
	var chunks []string
	start := 0
	for i := range c.TargetCount {
		cut := max(boundary(text, i*width), start)
		if cut-start > c.MinLen {
			chunks = append(chunks, text[start:cut])
		}
		start = cut
	}

	// Text after the final boundary joins the last chunk when every nominal
	// chunk survived and stands alone when some were dropped. A leftover too
	// short to stand alone joins the last chunk, or is dropped with it.
	rest := text[start:]
	switch {
	case rest == "":
	case len(chunks) == c.TargetCount:
		chunks[len(chunks)-1] += rest
	case len(rest) > c.MinLen:
		chunks = append(chunks, rest)
	case len(chunks) > 0:
		chunks[len(chunks)-1] += rest
	}
	return chunks, nil
}

// boundary returns the cut position for raw offset pos: just past the first
// period at or after pos, or len(text) when there is none.
func boundary(text string, pos int) int {
	if pos >= len(text) {
		return len(text)
	}
	i := strings.IndexByte(text[pos:], '.')
	if i < 0 {
		return len(text)
	}
	return pos + i + 1
}
