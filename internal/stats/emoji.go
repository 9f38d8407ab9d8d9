package stats

import "github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/detect"

type EmojiCount struct {
	Emoji   string
	Count   int
	Percent float64 // share of all emoji occurrences, 2 decimals
}

// EmojiFrequency counts every distinct emoji in participant's messages,
// most used first. Nothing is truncated.
func (a *Analyzer) EmojiFrequency(participant string) []EmojiCount {
	c := newCounter()
	for _, m := range Filter(participant, a.msgs) {
		for _, e := range detect.Emojis(m.Body) {
			c.add(e)
		}
	}

	out := make([]EmojiCount, 0, len(c.order))
	for _, kv := range c.sorted() {
		out = append(out, EmojiCount{
			Emoji:   kv.Label,
			Count:   kv.Count,
			Percent: roundTo(float64(kv.Count)/float64(c.total)*100, 2),
		})
	}
	return out
}
