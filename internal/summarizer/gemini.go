package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type implGemini struct {
	apiKeys    []string
	currentKey int
	mu         sync.Mutex
	logger     logger.Logger
	model      string
}

// Summarize sends the chunk prompt to Gemini and returns normalized bullet
// points. Rotates API keys on 429 / quota errors.
func (s *implGemini) Summarize(ctx context.Context, req Request) (string, error) {
	prompt := buildPrompt(req)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.nextKey(false)

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.nextKey(true)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				s.nextKey(true)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if strings.TrimSpace(text) == "" {
				return "", fmt.Errorf("empty response from Gemini")
			}
			return formatBullets(text), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// nextKey returns the current key, optionally advancing first. Workers call
// Summarize concurrently, so rotation is guarded.
func (s *implGemini) nextKey(rotate bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rotate {
		s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	}
	return s.apiKeys[s.currentKey]
}
