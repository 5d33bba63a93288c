package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/transcript-digest/internal/chunker"
	"github.com/nguyentantai21042004/transcript-digest/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-digest/internal/youtube"
)

// Run fetches the transcript, chunks it, and summarizes all chunks
// concurrently. Only an unparseable URL or a missing transcript fails the
// run; a chunk whose summarization fails gets a nil Summary.
func (p *implPipeline) Run(ctx context.Context, rawURL string) ([]Record, error) {
	videoID, err := youtube.ParseVideoID(rawURL)
	if err != nil {
		return nil, invalidInput(err)
	}

	entries, err := p.youtube.Transcript(ctx, videoID)
	if err != nil {
		return nil, transcriptUnavailable(err)
	}

	title, err := p.youtube.Title(ctx, videoID)
	if err != nil {
		title = youtube.FallbackTitle(videoID)
		p.logger.Warn(ctx, "Title lookup failed for %s, using %q: %v", videoID, title, err)
	}

	chunks, err := chunker.Split(entries, p.threshold)
	if err != nil {
		return nil, fmt.Errorf("split transcript: %w", err)
	}

	p.logger.Info(ctx, "Summarizing %s (%q): %d entries in %d chunks", videoID, title, len(entries), len(chunks))

	// Workers may finish in any order; each writes into its own index so the
	// result is always in chunk order.
	records := make([]Record, len(chunks))
	sem := make(chan struct{}, p.maxConcurrent)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk chunker.Chunk) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			records[i] = p.processChunk(ctx, chunk, i, title, len(chunks))
		}(i, chunk)
	}

	wg.Wait()

	return records, nil
}

// processChunk summarizes one chunk. Summarizer failures and timeouts are
// absorbed here; they never abort sibling chunks.
func (p *implPipeline) processChunk(ctx context.Context, chunk chunker.Chunk, index int, title string, total int) Record {
	record := Record{
		ChunkIndex: index,
		StartTime:  chunker.FormatTimestamp(chunk.Start()),
		EndTime:    chunker.FormatTimestamp(chunk.End()),
	}

	callCtx, cancel := context.WithTimeout(ctx, p.summaryTimeout)
	defer cancel()

	summary, err := p.summarizer.Summarize(callCtx, summarizer.Request{
		Text:        chunk.Text(),
		VideoTitle:  title,
		ChunkIndex:  index,
		TotalChunks: total,
	})
	if err != nil {
		p.logger.Warn(ctx, "Summarization failed for chunk %d/%d: %v", index+1, total, err)
		return record
	}

	record.Summary = &summary
	return record
}
