// Package detect holds the text classifiers the aggregation engine depends on:
// URL extraction and emoji recognition.
package detect

import (
	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
	"mvdan.cc/xurls/v2"
)

// urlRe also accepts scheme-less hosts such as "example.com/page",
// which exported chats contain as often as full links.
var urlRe = xurls.Relaxed()

// FindURLs returns every URL-like substring of text, in order of appearance.
func FindURLs(text string) []string {
	return urlRe.FindAllString(text, -1)
}

// IsEmoji reports whether a single grapheme cluster is listed in the
// Unicode emoji table.
func IsEmoji(cluster string) bool {
	if cluster == "" {
		return false
	}
	_, err := gomoji.GetInfo(cluster)
	return err == nil
}

// Emojis returns the emoji grapheme clusters of text in order of appearance.
// Multi-codepoint sequences (skin tones, ZWJ families, flags) count as one.
func Emojis(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if c := gr.Str(); IsEmoji(c) {
			out = append(out, c)
		}
	}
	return out
}
