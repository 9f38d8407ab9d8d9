package stats

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// vocabulary returns the lower-cased, stop-word-free tokens of participant's
// own messages; system notifications and media placeholders are skipped.
func (a *Analyzer) vocabulary(participant string) []string {
	lower := cases.Lower(language.Und)
	var words []string
	for _, m := range Filter(participant, a.msgs) {
		if m.IsSystem() || a.isMedia(m) {
			continue
		}
		for _, w := range strings.Fields(lower.String(m.Body)) {
			if a.stopWords.Contains(w) {
				continue
			}
			words = append(words, w)
		}
	}
	return words
}

// VocabularyForCloud joins the cleaned vocabulary with single spaces, ready
// for a word-cloud renderer.
func (a *Analyzer) VocabularyForCloud(participant string) string {
	return strings.Join(a.vocabulary(participant), " ")
}

// TopWords returns the most frequent vocabulary words, at most TopWords
// entries, by descending count with ties in first-seen order.
func (a *Analyzer) TopWords(participant string) []Count {
	c := newCounter()
	for _, w := range a.vocabulary(participant) {
		c.add(w)
	}
	top := c.sorted()
	if len(top) > a.opts.TopWords {
		top = top[:a.opts.TopWords]
	}
	return top
}
