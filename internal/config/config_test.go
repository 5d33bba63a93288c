package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				LLM: LLMConfig{
					Provider: "gemini",
					APIKeys:  []string{"test-key"},
				},
			},
			wantErr: false,
		},
		{
			name: "missing api keys",
			config: Config{
				LLM: LLMConfig{
					Provider: "gemini",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				LLM: LLMConfig{
					Provider: "anthropic",
					APIKeys:  []string{"test-key"},
				},
			},
			wantErr: true,
		},
		{
			name: "negative chunk threshold",
			config: Config{
				LLM: LLMConfig{
					Provider: "gemini",
					APIKeys:  []string{"test-key"},
				},
				Chunking: ChunkingConfig{ThresholdSeconds: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		LLM: LLMConfig{APIKeys: []string{"test-key"}},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Provider != "gemini" {
		t.Errorf("Provider = %v, want gemini", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.LLM.Model)
	}
	if cfg.Chunking.ThresholdSeconds != 4000 {
		t.Errorf("ThresholdSeconds = %v, want 4000", cfg.Chunking.ThresholdSeconds)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %v, want :8080", cfg.Server.Addr)
	}
	if cfg.YouTube.Language != "en" {
		t.Errorf("Language = %v, want en", cfg.YouTube.Language)
	}
	if cfg.LLM.TimeoutSeconds != 60 {
		t.Errorf("TimeoutSeconds = %v, want 60", cfg.LLM.TimeoutSeconds)
	}
	if cfg.Performance.MaxConcurrent <= 0 {
		t.Errorf("MaxConcurrent = %v, want > 0", cfg.Performance.MaxConcurrent)
	}
}

func TestValidateGroqDefaults(t *testing.T) {
	cfg := Config{
		LLM: LLMConfig{Provider: "groq", APIKeys: []string{"test-key"}},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.LLM.Model != "llama3-8b-8192" {
		t.Errorf("Model = %v, want llama3-8b-8192", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("BaseURL = %v, want groq endpoint", cfg.LLM.BaseURL)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  addr: ":9090"

youtube:
  language: "en"

llm:
  provider: "gemini"
  model: "gemini-2.5-flash"
  api_keys:
    - "key-one"
    - "key-two"

chunking:
  threshold_seconds: 300

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %v, want %v", cfg.Server.Addr, ":9090")
	}

	if len(cfg.LLM.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.LLM.APIKeys)
	}

	if cfg.Chunking.ThresholdSeconds != 300 {
		t.Errorf("ThresholdSeconds = %v, want 300", cfg.Chunking.ThresholdSeconds)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
