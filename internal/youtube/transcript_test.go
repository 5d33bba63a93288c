package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="2.5">hello &amp;amp; welcome</text>
  <text start="2.5" dur="3.1">to the
show</text>
  <text start="5.6" dur="1.0"></text>
  <text start="6.6" dur="2.0">goodbye</text>
</transcript>`

func TestParseTimedText(t *testing.T) {
	entries, err := parseTimedText([]byte(sampleTimedText))
	if err != nil {
		t.Fatalf("parseTimedText() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("parseTimedText() = %d entries, want 3 (empty cue skipped)", len(entries))
	}

	if entries[0].Text != "hello & welcome" {
		t.Errorf("entry 0 text = %q, want HTML entities unescaped", entries[0].Text)
	}
	if entries[1].Text != "to the show" {
		t.Errorf("entry 1 text = %q, want newline collapsed", entries[1].Text)
	}
	if entries[0].Start != 0 || entries[0].Duration != 2.5 {
		t.Errorf("entry 0 timing = %v/%v, want 0/2.5", entries[0].Start, entries[0].Duration)
	}
}

func TestParseTimedTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not XML", "{}"},
		{"empty track", "<transcript></transcript>"},
		{"only empty cues", `<transcript><text start="0" dur="1">  </text></transcript>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseTimedText([]byte(tt.data)); err == nil {
				t.Error("parseTimedText() should return error")
			}
		})
	}
}

func TestParseJSON3(t *testing.T) {
	data := `{"events":[
		{"tStartMs":0,"dDurationMs":2000,"segs":[{"utf8":"hello "},{"utf8":"world"}]},
		{"tStartMs":2000,"dDurationMs":1500},
		{"tStartMs":3500,"dDurationMs":500,"segs":[{"utf8":"bye"}]}
	]}`

	entries, err := parseJSON3([]byte(data))
	if err != nil {
		t.Fatalf("parseJSON3() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("parseJSON3() = %d entries, want 2 (segless event skipped)", len(entries))
	}
	if entries[0].Text != "hello world" {
		t.Errorf("entry 0 text = %q, want %q", entries[0].Text, "hello world")
	}
	if entries[0].Start != 0 || entries[0].Duration != 2 {
		t.Errorf("entry 0 timing = %v/%v, want 0/2", entries[0].Start, entries[0].Duration)
	}
	if entries[1].Start != 3.5 {
		t.Errorf("entry 1 start = %v, want 3.5", entries[1].Start)
	}
}

func testClient(timedtextURL, oembedURL string) *implClient {
	return &implClient{
		httpClient:   &http.Client{Timeout: 5 * time.Second},
		logger:       logger.New("error"),
		language:     "en",
		timedtextURL: timedtextURL,
		oembedURL:    oembedURL,
	}
}

func TestTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "dQw4w9WgXcQ" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(sampleTimedText))
	}))
	defer srv.Close()

	c := testClient(srv.URL, "")
	entries, err := c.Transcript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Transcript() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Transcript() = %d entries, want 3", len(entries))
	}
}

func TestTranscriptHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(srv.URL, "")
	if _, err := c.Transcript(context.Background(), "dQw4w9WgXcQ"); err == nil {
		t.Error("Transcript() should return error on HTTP failure")
	}
}

func TestTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title":"Never Gonna Give You Up"}`))
	}))
	defer srv.Close()

	c := testClient("", srv.URL)
	title, err := c.Title(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if title != "Never Gonna Give You Up" {
		t.Errorf("Title() = %q", title)
	}
}

func TestTitleError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := testClient("", srv.URL)
	if _, err := c.Title(context.Background(), "dQw4w9WgXcQ"); err == nil {
		t.Error("Title() should return error on HTTP failure")
	}
}

func TestFallbackTitle(t *testing.T) {
	if got := FallbackTitle("abc123xyz00"); got != "Video abc123xyz00" {
		t.Errorf("FallbackTitle() = %q", got)
	}
}
