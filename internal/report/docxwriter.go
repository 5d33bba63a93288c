package report

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/transcript-digest/internal/pipeline"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// writeDocx renders the summary records into a styled docx file: title,
// then one timestamped section per chunk with its bullet lines.
func writeDocx(title string, records []pipeline.Record, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, rec := range records {
		heading := "[" + rec.StartTime + " – " + rec.EndTime + "]"
		addStyledRun(doc.AddParagraph(""), heading, true, 14)

		if rec.Summary == nil {
			addStyledRun(doc.AddParagraph(""), "Summary unavailable for this section.", false, fontSize)
			doc.AddParagraph("")
			continue
		}

		for _, line := range strings.Split(*rec.Summary, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			addStyledRun(doc.AddParagraph(""), line, false, fontSize)
		}
		doc.AddParagraph("")
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
