package stats

import (
	"strings"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/detect"
)

type Totals struct {
	Messages int
	Words    int
	Media    int
	Links    int
}

// Totals counts messages, whitespace-separated words, media placeholders and
// URLs for participant. A placeholder body counts as media, not as words.
func (a *Analyzer) Totals(participant string) Totals {
	var t Totals
	for _, m := range Filter(participant, a.msgs) {
		t.Messages++
		if a.isMedia(m) {
			t.Media++
			continue
		}
		t.Words += len(strings.Fields(m.Body))
		t.Links += len(detect.FindURLs(m.Body))
	}
	return t
}

// isMedia compares body with the placeholder, ignoring the line break the
// export leaves at the end of every message.
func isMedia(body, placeholder string) bool {
	return strings.TrimRight(body, "\r\n") == placeholder
}
