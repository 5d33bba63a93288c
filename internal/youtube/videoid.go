package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var reVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID extracts the video ID from a YouTube URL. Accepted forms:
// youtu.be/<id>, youtube.com/watch?v=<id>, youtube.com/embed/<id>,
// youtube.com/v/<id>, and a bare 11-character ID.
func ParseVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty video URL")
	}

	if reVideoID.MatchString(raw) {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}

	host := strings.ToLower(u.Hostname())

	switch host {
	case "youtu.be":
		id := strings.TrimPrefix(u.Path, "/")
		if id = firstSegment(id); reVideoID.MatchString(id) {
			return id, nil
		}
	case "www.youtube.com", "youtube.com", "m.youtube.com":
		if u.Path == "/watch" {
			if id := u.Query().Get("v"); reVideoID.MatchString(id) {
				return id, nil
			}
		}
		for _, prefix := range []string{"/embed/", "/v/"} {
			if strings.HasPrefix(u.Path, prefix) {
				if id := firstSegment(strings.TrimPrefix(u.Path, prefix)); reVideoID.MatchString(id) {
					return id, nil
				}
			}
		}
	}

	return "", fmt.Errorf("no video ID in URL %q", raw)
}

func firstSegment(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
