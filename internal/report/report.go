package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/pipeline"
)

// Write renders the records as <videoID>.md and <videoID>.docx in the output
// directory. The docx rendering is best-effort; a failure there is logged but
// does not fail the digest.
func (w *implWriter) Write(ctx context.Context, videoID, title string, records []pipeline.Record) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	md := renderMarkdown(title, records)
	mdPath := filepath.Join(w.outputDir, videoID+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write markdown digest: %w", err)
	}
	w.logger.Info(ctx, "Digest written: %s", mdPath)

	docxPath := filepath.Join(w.outputDir, videoID+".docx")
	if err := writeDocx(title, records, docxPath); err != nil {
		w.logger.Warn(ctx, "Failed to write docx digest %s: %v", docxPath, err)
		return nil
	}
	w.logger.Info(ctx, "Digest written: %s", docxPath)

	return nil
}

func renderMarkdown(title string, records []pipeline.Record) string {
	var sb strings.Builder

	sb.WriteString("# " + title + "\n\n")
	sb.WriteString("_" + time.Now().Format("2006-01-02 15:04") + "_\n\n")

	if len(records) == 0 {
		sb.WriteString("No transcript entries found.\n")
		return sb.String()
	}

	for _, rec := range records {
		sb.WriteString(fmt.Sprintf("## [%s – %s]\n\n", rec.StartTime, rec.EndTime))
		if rec.Summary == nil {
			sb.WriteString("_Summary unavailable for this section._\n\n")
			continue
		}
		sb.WriteString(*rec.Summary + "\n\n")
	}

	return sb.String()
}
