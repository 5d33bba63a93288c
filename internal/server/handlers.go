package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nguyentantai21042004/transcript-digest/internal/pipeline"
)

type summarizeRequest struct {
	URL string `json:"url"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type healthResponse struct {
	OK bool `json:"ok"`
}

func (s *implServer) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, string(pipeline.KindInvalidInput), "request body must be JSON with a url field")
		return
	}

	records, err := s.pipeline.Run(r.Context(), req.URL)
	if err != nil {
		var perr *pipeline.Error
		if errors.As(err, &perr) {
			s.writeError(w, http.StatusBadRequest, string(perr.Kind), perr.Message)
			return
		}
		s.logger.Error(r.Context(), "Pipeline failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "internal", "internal server error")
		return
	}

	s.writeJSON(w, http.StatusOK, records)
}

func (s *implServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{OK: true})
}

func (s *implServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

func (s *implServer) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "Encode response: %v", err)
	}
}

func (s *implServer) writeError(w http.ResponseWriter, status int, kind, message string) {
	s.writeJSON(w, status, errorResponse{Error: errorBody{Kind: kind, Message: message}})
}
