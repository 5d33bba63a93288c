package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/transcript-digest/internal/chunker"
)

// timedText mirrors the classic timedtext XML caption format:
// <transcript><text start="9.54" dur="3.32">...</text></transcript>
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Cues    []timedTextCue `xml:"text"`
}

type timedTextCue struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// Transcript fetches the caption track for a video and returns its entries in
// start order. An empty or missing track is an error; the caller decides how
// to surface it.
func (c *implClient) Transcript(ctx context.Context, videoID string) ([]chunker.CaptionEntry, error) {
	entries, err := c.fetchTimedText(ctx, videoID)
	if err == nil {
		return entries, nil
	}

	if c.fallback && c.executor != nil {
		c.logger.Warn(ctx, "Timedtext fetch failed for %s, falling back to yt-dlp: %v", videoID, err)
		return c.fetchWithYtdlp(ctx, videoID)
	}

	return nil, err
}

func (c *implClient) fetchTimedText(ctx context.Context, videoID string) ([]chunker.CaptionEntry, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.timedtextURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build timedtext request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read timedtext response: %w", err)
	}

	return parseTimedText(body)
}

func parseTimedText(data []byte) ([]chunker.CaptionEntry, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	var entries []chunker.CaptionEntry
	for _, cue := range tt.Cues {
		text := strings.TrimSpace(html.UnescapeString(cue.Text))
		if text == "" {
			continue
		}
		entries = append(entries, chunker.CaptionEntry{
			Text:     strings.Join(strings.Fields(text), " "),
			Start:    cue.Start,
			Duration: cue.Dur,
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("caption track is empty")
	}

	return entries, nil
}
