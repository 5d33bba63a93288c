package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/pipeline"
)

type fakePipeline struct {
	records []pipeline.Record
	err     error
}

func (f *fakePipeline) Run(ctx context.Context, rawURL string) ([]pipeline.Record, error) {
	return f.records, f.err
}

func testServer(p pipeline.Pipeline) *implServer {
	return &implServer{
		pipeline: p,
		logger:   logger.New("error"),
	}
}

func TestHandleSummarize(t *testing.T) {
	summary := "• a point"
	ok := []pipeline.Record{
		{ChunkIndex: 0, StartTime: "00:00:00", EndTime: "00:10:00", Summary: &summary},
		{ChunkIndex: 1, StartTime: "00:10:00", EndTime: "00:12:30", Summary: nil},
	}

	tests := []struct {
		name       string
		body       string
		pipe       *fakePipeline
		wantStatus int
		wantKind   string
	}{
		{
			name:       "success",
			body:       `{"url":"https://youtu.be/dQw4w9WgXcQ"}`,
			pipe:       &fakePipeline{records: ok},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			pipe:       &fakePipeline{},
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_input",
		},
		{
			name:       "invalid url",
			body:       `{"url":"https://example.com/notyoutube"}`,
			pipe:       &fakePipeline{err: &pipeline.Error{Kind: pipeline.KindInvalidInput, Message: "no video ID"}},
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_input",
		},
		{
			name:       "transcript unavailable",
			body:       `{"url":"https://youtu.be/dQw4w9WgXcQ"}`,
			pipe:       &fakePipeline{err: &pipeline.Error{Kind: pipeline.KindTranscriptUnavailable, Message: "captions disabled"}},
			wantStatus: http.StatusBadRequest,
			wantKind:   "transcript_unavailable",
		},
		{
			name:       "unexpected error",
			body:       `{"url":"https://youtu.be/dQw4w9WgXcQ"}`,
			pipe:       &fakePipeline{err: context.DeadlineExceeded},
			wantStatus: http.StatusInternalServerError,
			wantKind:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testServer(tt.pipe)
			req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			s.handleSummarize(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantKind != "" {
				var resp errorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode error response: %v", err)
				}
				if resp.Error.Kind != tt.wantKind {
					t.Errorf("error kind = %q, want %q", resp.Error.Kind, tt.wantKind)
				}
				return
			}

			var records []pipeline.Record
			if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
				t.Fatalf("decode records: %v", err)
			}
			if len(records) != 2 {
				t.Fatalf("got %d records, want 2", len(records))
			}
			if records[0].Summary == nil || *records[0].Summary != "• a point" {
				t.Errorf("records[0].Summary = %v", records[0].Summary)
			}
			if records[1].Summary != nil {
				t.Errorf("records[1].Summary = %v, want null", *records[1].Summary)
			}
		})
	}
}

func TestHandleSummarizeNullField(t *testing.T) {
	s := testServer(&fakePipeline{records: []pipeline.Record{{ChunkIndex: 0}}})
	req := httptest.NewRequest(http.MethodPost, "/summarize", strings.NewReader(`{"url":"https://youtu.be/dQw4w9WgXcQ"}`))
	w := httptest.NewRecorder()

	s.handleSummarize(w, req)

	if !strings.Contains(w.Body.String(), `"summary":null`) {
		t.Errorf("failed chunk should serialize summary as null, got %s", w.Body.String())
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer(&fakePipeline{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if !resp.OK {
		t.Error("health response not ok")
	}
}

func TestHandleIndex(t *testing.T) {
	s := testServer(&fakePipeline{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.handleIndex(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(w.Body.String(), "/summarize") {
		t.Error("form page should post to /summarize")
	}

	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	w = httptest.NewRecorder()
	s.handleIndex(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", w.Code)
	}
}
