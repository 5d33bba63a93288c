package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/transcript-digest/internal/chunker"
)

// json3Track mirrors yt-dlp's json3 caption output: timed events in
// milliseconds, each carrying text segments.
type json3Track struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	StartMs    int64      `json:"tStartMs"`
	DurationMs int64      `json:"dDurationMs"`
	Segs       []json3Seg `json:"segs"`
}

type json3Seg struct {
	UTF8 string `json:"utf8"`
}

// fetchWithYtdlp downloads the caption track via yt-dlp into a temp dir and
// parses it. Used only when the direct timedtext fetch fails.
func (c *implClient) fetchWithYtdlp(ctx context.Context, videoID string) ([]chunker.CaptionEntry, error) {
	tempDir, err := os.MkdirTemp("", "captions-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	outPrefix := filepath.Join(tempDir, "captions")
	args := []string{
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", c.language,
		"--sub-format", "json3",
		"-o", outPrefix,
		"https://www.youtube.com/watch?v=" + videoID,
	}

	if _, err := c.executor.Execute(ctx, c.ytdlpPath, args...); err != nil {
		return nil, fmt.Errorf("yt-dlp fetch captions: %w", err)
	}

	trackPath := outPrefix + "." + c.language + ".json3"
	data, err := os.ReadFile(trackPath)
	if err != nil {
		return nil, fmt.Errorf("read caption track: %w", err)
	}

	return parseJSON3(data)
}

func parseJSON3(data []byte) ([]chunker.CaptionEntry, error) {
	var track json3Track
	if err := json.Unmarshal(data, &track); err != nil {
		return nil, fmt.Errorf("parse json3 track: %w", err)
	}

	var entries []chunker.CaptionEntry
	for _, ev := range track.Events {
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.Join(strings.Fields(sb.String()), " ")
		if text == "" {
			continue
		}
		entries = append(entries, chunker.CaptionEntry{
			Text:     text,
			Start:    float64(ev.StartMs) / 1000,
			Duration: float64(ev.DurationMs) / 1000,
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("caption track is empty")
	}

	return entries, nil
}
