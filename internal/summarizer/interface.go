package summarizer

import "context"

// Request carries one chunk's text plus the document-level framing the model
// needs despite seeing only chunk-local input.
type Request struct {
	Text        string
	VideoTitle  string
	ChunkIndex  int
	TotalChunks int
}

// Summarizer turns a transcript chunk into bullet-point text.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (string, error)
}
