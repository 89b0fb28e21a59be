// Package parser extracts the text of a source document into a DocTree.
package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/booksum/internal/doctree"
)

// ErrExtraction is returned when a document cannot be read or yields no text.
var ErrExtraction = errors.New("extraction failed")

// Parser converts raw document bytes into a DocTree.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.DocTree, error)
}

// Options tunes format-specific behavior.
type Options struct {
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions the extractor can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %q", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ExtractFile reads the document at path and returns its tree.
func ExtractFile(path string, opts Options) (*doctree.DocTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	defer f.Close()
	return Extract(f, filepath.Base(path), opts)
}

// Extract parses r according to filename's extension. It fails with
// ErrExtraction when the format is unsupported, parsing fails, or the
// document has no text.
func Extract(r io.Reader, filename string, opts Options) (*doctree.DocTree, error) {
	p, err := ForFile(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	tree, err := p.Parse(r, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExtraction, filename, err)
	}
	if strings.TrimSpace(tree.Text()) == "" {
		return nil, fmt.Errorf("%w: %s: no extractable text", ErrExtraction, filename)
	}
	return tree, nil
}

// trimExt strips the extension from a filename for use as a title.
func trimExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
