package report

import (
	"context"

	"github.com/nguyentantai21042004/transcript-digest/internal/pipeline"
)

// Writer renders a video's summary records into digest files.
type Writer interface {
	Write(ctx context.Context, videoID, title string, records []pipeline.Record) error
}
