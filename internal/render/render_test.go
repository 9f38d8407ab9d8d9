package render

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		maxWidth int
		want     []string
	}{
		{name: "no wrap", line: "hello", maxWidth: 0, want: []string{"hello"}},
		{name: "fits", line: "hello", maxWidth: 10, want: []string{"hello"}},
		{name: "split", line: "abcdef", maxWidth: 4, want: []string{"abcd", "ef"}},
		{name: "empty", line: "", maxWidth: 4, want: []string{""}},
		{name: "ansi not counted", line: colorBar + "abcd" + colorReset, maxWidth: 4, want: []string{colorBar + "abcd" + colorReset}},
		{name: "wide runes", line: "😂😂😂", maxWidth: 4, want: []string{"😂😂", "😂"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapLine(tt.line, tt.maxWidth))
		})
	}
}

func TestWrapWords(t *testing.T) {
	assert.Equal(t, []string{"one two", "three", "four"}, wrapWords("one two three four", 7))
	assert.Equal(t, []string{"supercalifragilistic", "x"}, wrapWords("supercalifragilistic x", 5))
	assert.Nil(t, wrapWords("   ", 10))
}

func TestTotals(t *testing.T) {
	out := Totals(stats.Totals{Messages: 12345, Words: 2, Media: 1, Links: 0}, Options{})
	assert.Contains(t, out, "TOP STATISTICS")
	assert.Contains(t, out, "Total Messages  12,345")
	assert.Contains(t, out, "Media Shared    1")
	assert.NotContains(t, out, "\033[")
}

func TestColor(t *testing.T) {
	out := Totals(stats.Totals{}, Options{Color: true})
	assert.Contains(t, out, colorTitle)
	assert.Contains(t, out, colorReset)
}

func TestCounts_Bars(t *testing.T) {
	out := Counts("MOST BUSY DAY", []stats.Count{
		{Label: "Monday", Count: 10},
		{Label: "Sunday", Count: 5},
		{Label: "Friday", Count: 0},
	}, Options{Width: 40})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "== MOST BUSY DAY ==", lines[0])

	mon := strings.Count(lines[1], "█")
	sun := strings.Count(lines[2], "█")
	assert.Greater(t, mon, sun)
	assert.Greater(t, sun, 0)
	assert.Zero(t, strings.Count(lines[3], "█"))

	for _, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(l), 40)
	}
}

func TestCounts_Empty(t *testing.T) {
	out := Counts("MOST COMMON WORDS", nil, Options{})
	assert.Contains(t, out, "(no data)")
}

func TestEmojis(t *testing.T) {
	out := Emojis([]stats.EmojiCount{{Emoji: "😂", Count: 3, Percent: 75}, {Emoji: "🎉", Count: 1, Percent: 25}}, Options{})
	assert.Contains(t, out, "😂")
	assert.Contains(t, out, "75.00%")
	assert.Contains(t, out, "25.00%")
}

func TestHeatmap(t *testing.T) {
	h := stats.Heatmap{Buckets: parse.HourBuckets()}
	for _, d := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		h.Days = append(h.Days, d)
	}
	h.Cells[0][9] = 12

	out := Heatmap(h, Options{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9) // title, header, 7 days

	assert.Contains(t, lines[1], "00")
	assert.Contains(t, lines[1], "23")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[2]), "Mon"))
	assert.Contains(t, lines[2], "12")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[8]), "Sun"))
}

func TestShade(t *testing.T) {
	assert.Equal(t, heat[0], shade(0, 10))
	assert.Equal(t, heat[len(heat)-1], shade(10, 10))
	assert.Equal(t, heat[1], shade(1, 10))
}

func TestLeaderboard(t *testing.T) {
	lb := stats.Leaderboard{
		Top:    []stats.Share{{Name: "Alice", Count: 2, Percent: 66.67}},
		Shares: []stats.Share{{Name: "Alice", Count: 2, Percent: 66.67}, {Name: "Bob", Count: 1, Percent: 33.33}},
	}
	out := Leaderboard(lb, Options{})
	assert.Contains(t, out, "MOST BUSY USERS")
	assert.Contains(t, out, "Alice  66.67%")
	assert.Contains(t, out, "Bob    33.33%")
}

func TestReport(t *testing.T) {
	rep := stats.Report{
		Participant: "Alice",
		Totals:      stats.Totals{Messages: 1, Words: 2},
		Monthly:     []stats.MonthPoint{{Year: 2023, Month: 1, Label: "January-2023", Count: 1}},
		Daily:       []stats.DayPoint{{Date: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), Count: 1}},
		Weekly:      []stats.Count{{Label: "Monday", Count: 1}},
		Cloud:       "hello world",
		Warnings:    []string{"stop-word list unreadable"},
	}

	out := Report(rep, Options{Width: 60})
	for _, want := range []string{
		"Analysis for Alice",
		"warning: stop-word list unreadable",
		"TOP STATISTICS",
		"January-2023",
		"2023-01-02",
		"MOST BUSY DAY",
		"WEEKLY ACTIVITY MAP",
		"hello world",
		"EMOJI ANALYSIS",
		"MOST COMMON WORDS",
		"MOST BUSY USERS",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "TOP STATISTICS"), strings.Index(out, "MOST BUSY USERS"))
}
