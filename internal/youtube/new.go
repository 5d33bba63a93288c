package youtube

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/pkg/executor"
)

type implClient struct {
	httpClient *http.Client
	executor   executor.Executor
	logger     logger.Logger
	language   string
	ytdlpPath  string
	fallback   bool

	timedtextURL string
	oembedURL    string
}

// New creates a Client that reads caption tracks from the timedtext endpoint
// and titles from oEmbed. When cfg.FallbackYtdlp is set, failed caption
// fetches retry once through yt-dlp.
func New(cfg config.YouTubeConfig, exec executor.Executor, log logger.Logger) Client {
	return &implClient{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		executor:     exec,
		logger:       log,
		language:     cfg.Language,
		ytdlpPath:    cfg.YtdlpPath,
		fallback:     cfg.FallbackYtdlp,
		timedtextURL: "https://www.youtube.com/api/timedtext",
		oembedURL:    "https://www.youtube.com/oembed",
	}
}
