package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/pipeline"
	"github.com/nguyentantai21042004/transcript-digest/internal/report"
	"github.com/nguyentantai21042004/transcript-digest/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-digest/internal/watcher"
	"github.com/nguyentantai21042004/transcript-digest/internal/youtube"
	"github.com/nguyentantai21042004/transcript-digest/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Digest Batch Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "LLM provider: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)
	log.Info(ctx, "Max concurrent lists: %d", cfg.Performance.MaxConcurrent)

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	sum, err := summarizer.New(cfg.LLM, log)
	if err != nil {
		log.Error(ctx, "Failed to create summarizer: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	yt := youtube.New(cfg.YouTube, exec, log)
	pipe := pipeline.New(cfg, yt, sum, log)
	digests := report.New(cfg.Paths.Output, log)

	proc := &listProcessor{
		pipeline:    pipe,
		youtube:     yt,
		report:      digests,
		logger:      log,
		archivedDir: cfg.Paths.Archived,
	}

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Drop .txt files with one video URL per line")
	log.Info(ctx, "Press Ctrl+C to stop")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Batch pipeline stopped")
}

// listProcessor runs the pipeline for every URL in a dropped list file and
// writes one digest per video. Per-URL failures are logged and skipped.
type listProcessor struct {
	pipeline    pipeline.Pipeline
	youtube     youtube.Client
	report      report.Writer
	logger      logger.Logger
	archivedDir string
}

func (p *listProcessor) Process(ctx context.Context, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open URL list: %w", err)
	}

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	scanErr := scanner.Err()
	file.Close()
	if scanErr != nil {
		return fmt.Errorf("read URL list: %w", scanErr)
	}

	p.logger.Info(ctx, "Processing %d URLs from %s", len(urls), filePath)

	successCount := 0
	failCount := 0

	for i, url := range urls {
		p.logger.Info(ctx, "[%d/%d] Summarizing %s", i+1, len(urls), url)

		records, err := p.pipeline.Run(ctx, url)
		if err != nil {
			p.logger.Error(ctx, "Failed to summarize %s: %v", url, err)
			failCount++
			continue
		}

		videoID, _ := youtube.ParseVideoID(url)
		title, err := p.youtube.Title(ctx, videoID)
		if err != nil {
			title = youtube.FallbackTitle(videoID)
		}
		if err := p.report.Write(ctx, videoID, title, records); err != nil {
			p.logger.Error(ctx, "Failed to write digest for %s: %v", url, err)
			failCount++
			continue
		}

		successCount++
	}

	p.logger.Info(ctx, "List complete: %d success, %d failed", successCount, failCount)

	// Move the consumed list out of the input dir so it won't be re-processed
	dest := filepath.Join(p.archivedDir, filepath.Base(filePath))
	if err := os.Rename(filePath, dest); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", filePath, err)
	}

	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
