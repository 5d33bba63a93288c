package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-digest/internal/youtube"
)

type implPipeline struct {
	youtube        youtube.Client
	summarizer     summarizer.Summarizer
	logger         logger.Logger
	threshold      float64
	maxConcurrent  int
	summaryTimeout time.Duration
}

// New creates a Pipeline wired to the given transcript source and summarizer.
func New(cfg *config.Config, yt youtube.Client, sum summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		youtube:        yt,
		summarizer:     sum,
		logger:         log,
		threshold:      cfg.Chunking.ThresholdSeconds,
		maxConcurrent:  cfg.Performance.MaxConcurrent,
		summaryTimeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
	}
}
