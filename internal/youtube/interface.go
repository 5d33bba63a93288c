package youtube

import (
	"context"

	"github.com/nguyentantai21042004/transcript-digest/internal/chunker"
)

// Client fetches caption tracks and display metadata for YouTube videos.
type Client interface {
	Transcript(ctx context.Context, videoID string) ([]chunker.CaptionEntry, error)
	Title(ctx context.Context, videoID string) (string, error)
}
