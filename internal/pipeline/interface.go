package pipeline

import "context"

// Record is one chunk's summary tagged with its position and time bounds.
// Summary is nil when summarization failed for that chunk.
type Record struct {
	ChunkIndex int     `json:"chunk_index"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Summary    *string `json:"summary"`
}

// Pipeline turns a video URL into ordered per-chunk summary records.
type Pipeline interface {
	Run(ctx context.Context, rawURL string) ([]Record, error)
}
