package summarizer

import "strings"

// formatBullets normalizes raw model output into a bullet-point list: split on
// blank lines, trim each candidate, prefix missing bullet markers, drop empty
// candidates, rejoin with newlines. Best-effort text cleanup, not a parser.
func formatBullets(raw string) string {
	points := strings.Split(raw, "\n\n")

	var formatted []string
	for _, point := range points {
		point = strings.TrimSpace(point)
		if point == "" {
			continue
		}
		if !hasBulletMarker(point) {
			point = "• " + point
		}
		formatted = append(formatted, point)
	}

	return strings.Join(formatted, "\n")
}

func hasBulletMarker(s string) bool {
	for _, marker := range []string{"•", "-", "*"} {
		if strings.HasPrefix(s, marker) {
			return true
		}
	}
	return false
}
