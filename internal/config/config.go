package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	YouTube     YouTubeConfig     `yaml:"youtube"`
	LLM         LLMConfig         `yaml:"llm"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type YouTubeConfig struct {
	Language      string `yaml:"language"`
	FallbackYtdlp bool   `yaml:"fallback_ytdlp"`
	YtdlpPath     string `yaml:"ytdlp_path"`
}

type LLMConfig struct {
	Provider       string   `yaml:"provider"`
	Model          string   `yaml:"model"`
	APIKeys        []string `yaml:"api_keys"`
	BaseURL        string   `yaml:"base_url"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	MaxTokens      int      `yaml:"max_tokens"`
}

type ChunkingConfig struct {
	ThresholdSeconds float64 `yaml:"threshold_seconds"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = "gemini"
	case "gemini", "groq":
	default:
		return fmt.Errorf("llm.provider must be gemini or groq, got %q", c.LLM.Provider)
	}

	if len(c.LLM.APIKeys) == 0 {
		return fmt.Errorf("llm.api_keys is required")
	}

	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case "gemini":
			c.LLM.Model = "gemini-2.5-flash"
		case "groq":
			c.LLM.Model = "llama3-8b-8192"
		}
	}

	if c.Chunking.ThresholdSeconds < 0 {
		return fmt.Errorf("chunking.threshold_seconds must be positive")
	}
	if c.Chunking.ThresholdSeconds == 0 {
		c.Chunking.ThresholdSeconds = 4000
	}

	if c.YouTube.FallbackYtdlp && c.YouTube.YtdlpPath == "" {
		c.YouTube.YtdlpPath = "yt-dlp"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.YouTube.Language == "" {
		c.YouTube.Language = "en"
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 60
	}
	if c.LLM.BaseURL == "" && c.LLM.Provider == "groq" {
		c.LLM.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = runtime.NumCPU()
	}

	return nil
}
