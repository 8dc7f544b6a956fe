package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mverbeek/depchart/pkg/buildinfo"
	"github.com/mverbeek/depchart/pkg/cache"
	"github.com/mverbeek/depchart/pkg/errors"
	"github.com/mverbeek/depchart/pkg/manifest"
	"github.com/mverbeek/depchart/pkg/pipeline"
)

// analyzeRequest is the body for POST /v1/analyze and POST /v1/diagram.
type analyzeRequest struct {
	Manifest manifest.Document `json:"manifest"`
	Target   string            `json:"target,omitempty"`
}

// analyzeResponse is the body for a successful POST /v1/analyze.
type analyzeResponse struct {
	ID        string           `json:"id"`
	GraphHash string           `json:"graph_hash"`
	Report    *pipeline.Report `json:"report"`
}

// errorResponse is the body for any failed request.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	doc, target, err := decodeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	report, err := s.runner.Analyze(r.Context(), doc, pipeline.Options{Target: target})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		ID:        uuid.NewString(),
		GraphHash: graphHash(doc),
		Report:    report,
	})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	doc, _, err := decodeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Format:   r.URL.Query().Get("format"),
		Detailed: queryBool(r, "detailed"),
		Refresh:  queryBool(r, "refresh"),
	}

	text, hit, err := s.runner.ExportWithCacheInfo(r.Context(), doc, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Graph-Hash", graphHash(doc))
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// decodeRequest decodes and validates the request body.
func decodeRequest(r *http.Request) (*manifest.Document, string, error) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	doc := req.Manifest
	if err := doc.Validate(); err != nil {
		return nil, "", err
	}
	return &doc, req.Target, nil
}

func graphHash(doc *manifest.Document) string {
	data, err := manifest.Marshal(doc)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps structured error codes onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidManifest,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidNode,
		errors.ErrCodeInvalidEdge, errors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeNodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeGraphCyclic:
		status = http.StatusConflict
	}

	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}
