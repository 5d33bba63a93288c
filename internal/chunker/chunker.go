package chunker

import (
	"fmt"
	"strings"
)

// CaptionEntry is one timed transcript fragment. Start and Duration are in
// seconds, entries are ordered by Start ascending.
type CaptionEntry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Chunk is a contiguous run of caption entries grouped for one summarization call.
type Chunk []CaptionEntry

// Split groups consecutive entries into chunks. A chunk is closed as soon as the
// sum of its entries' durations reaches threshold; the trailing chunk may stay
// below it. Empty input yields no chunks.
func Split(entries []CaptionEntry, threshold float64) ([]Chunk, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("chunk threshold must be positive, got %v", threshold)
	}

	var chunks []Chunk
	var current Chunk
	var currentDuration float64

	for _, entry := range entries {
		current = append(current, entry)
		currentDuration += entry.Duration

		if currentDuration >= threshold {
			chunks = append(chunks, current)
			current = nil
			currentDuration = 0
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}

	return chunks, nil
}

// Text joins all entry texts with single spaces, order preserved.
func (c Chunk) Text() string {
	parts := make([]string, len(c))
	for i, entry := range c {
		parts[i] = entry.Text
	}
	return strings.Join(parts, " ")
}

// Start returns the chunk's start offset in seconds.
func (c Chunk) Start() float64 {
	return c[0].Start
}

// End returns the chunk's end offset in seconds, derived from the last entry.
func (c Chunk) End() float64 {
	last := c[len(c)-1]
	return last.Start + last.Duration
}

// FormatTimestamp renders seconds as HH:MM:SS, flooring to whole seconds.
// The hour field grows beyond two digits for very long videos.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
