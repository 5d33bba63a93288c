package server

import (
	"context"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/pipeline"
)

type implServer struct {
	httpServer *http.Server
	pipeline   pipeline.Pipeline
	logger     logger.Logger
}

// New creates the HTTP front end serving the JSON API and the form page.
func New(cfg config.ServerConfig, p pipeline.Pipeline, log logger.Logger) Server {
	s := &implServer{
		pipeline: p,
		logger:   log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start blocks serving requests until Stop is called.
func (s *implServer) Start() error {
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *implServer) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
