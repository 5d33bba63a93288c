package summarizer

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

// New creates a Summarizer for the configured provider.
func New(cfg config.LLMConfig, log logger.Logger) (Summarizer, error) {
	switch cfg.Provider {
	case "gemini":
		return &implGemini{
			apiKeys: cfg.APIKeys,
			logger:  log,
			model:   cfg.Model,
		}, nil
	case "groq":
		return &implGroq{
			httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
			apiKeys:    cfg.APIKeys,
			logger:     log,
			model:      cfg.Model,
			baseURL:    cfg.BaseURL,
			maxTokens:  cfg.MaxTokens,
		}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
