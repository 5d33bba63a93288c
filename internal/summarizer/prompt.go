package summarizer

import "fmt"

const chunkPrompt = `Summarize the following chunk of transcript from the video titled '%s'.
This is chunk %d out of %d.
Provide exactly 5-6 bullet points that fit into the context of the entire video. Do not include any introductory text or headers, only the bullet points:

%s

Bullet Points (5-6):`

func buildPrompt(req Request) string {
	return fmt.Sprintf(chunkPrompt, req.VideoTitle, req.ChunkIndex+1, req.TotalChunks, req.Text)
}
