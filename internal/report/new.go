package report

import (
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type implWriter struct {
	outputDir string
	logger    logger.Logger
}

// New creates a Writer that puts one .md and one .docx digest per video
// into outputDir.
func New(outputDir string, log logger.Logger) Writer {
	return &implWriter{
		outputDir: outputDir,
		logger:    log,
	}
}
