package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type implGroq struct {
	httpClient *http.Client
	apiKeys    []string
	currentKey int
	mu         sync.Mutex
	logger     logger.Logger
	model      string
	baseURL    string
	maxTokens  int
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize sends the chunk prompt through the OpenAI-compatible
// chat-completions endpoint and returns normalized bullet points.
func (s *implGroq) Summarize(ctx context.Context, req Request) (string, error) {
	prompt := buildPrompt(req)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.nextKey(false)

		content, err := s.complete(ctx, key, prompt)
		if err != nil {
			if strings.Contains(err.Error(), "HTTP 429") {
				s.logger.Warn(ctx, "Groq key rate limited, rotating...")
				s.nextKey(true)
				lastErr = err
				continue
			}
			return "", err
		}

		return formatBullets(content), nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implGroq) complete(ctx context.Context, apiKey, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:     s.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: s.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call completion API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(apiResp.Choices) == 0 || strings.TrimSpace(apiResp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty response from completion API")
	}

	return apiResp.Choices[0].Message.Content, nil
}

func (s *implGroq) nextKey(rotate bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rotate {
		s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	}
	return s.apiKeys[s.currentKey]
}
