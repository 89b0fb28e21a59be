package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/booksum/internal/chunker"
	"github.com/dgallion1/booksum/internal/parser"
	"github.com/dgallion1/booksum/internal/pipeline"
)

// handleSummarize runs the pipeline on an uploaded document and replies with
// the PDF report. The run is synchronous; clients should allow for one model
// call per chunk.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1<<20) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}
	if header.Size > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	var buf bytes.Buffer
	res, err := s.orchestrator.Process(r.Context(), file, filename, r.FormValue("title"), &buf)
	if err != nil {
		jsonError(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", strings.TrimSuffix(filename, filepath.Ext(filename))+"_summary.pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Booksum-Run-Id", res.RunID)
	w.Header().Set("X-Booksum-Chunks", strconv.Itoa(res.Chunks))
	w.Write(buf.Bytes())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, chunker.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, parser.ErrExtraction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, pipeline.ErrSummarization):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." || name == "/" {
		name = "unnamed"
	}
	return name
}
