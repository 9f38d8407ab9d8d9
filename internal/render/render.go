package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

const (
	colorReset  = "\033[0m"
	colorTitle  = "\033[1;34m" // bold blue
	colorBar    = "\033[32m"   // green
	colorAccent = "\033[33m"   // yellow for monthly bars
	colorDim    = "\033[2m"
	colorWarn   = "\033[1;31m" // bold red
)

// heat shades heatmap cells from empty to busiest.
var heat = []string{"\033[2m", "\033[34m", "\033[36m", "\033[33m", "\033[1;31m"}

const defaultWidth = 80

type Options struct {
	Width int  // wrap width and chart width (0 = no wrap, charts use 80 columns)
	Color bool // emit ANSI colors
}

type renderer struct {
	b    strings.Builder
	opts Options
}

func newRenderer(opts Options) *renderer {
	return &renderer{opts: opts}
}

func (r *renderer) paint(color, s string) string {
	if !r.opts.Color || s == "" {
		return s
	}
	return color + s + colorReset
}

func (r *renderer) line(s string) {
	for _, wl := range wrapLine(s, r.opts.Width) {
		r.b.WriteString(wl)
		r.b.WriteString("\n")
	}
}

func (r *renderer) title(s string) {
	r.line(r.paint(colorTitle, "== "+s+" =="))
}

func (r *renderer) chartWidth() int {
	if r.opts.Width > 0 {
		return r.opts.Width
	}
	return defaultWidth
}

func (r *renderer) String() string { return r.b.String() }

type barRow struct {
	label string
	value int
	note  string // printed after the count, e.g. a percentage
}

// bars draws one horizontal bar per row, scaled to the largest value.
func (r *renderer) bars(rows []barRow, color string) {
	if len(rows) == 0 {
		r.line(r.paint(colorDim, "  (no data)"))
		return
	}

	labelW, countW, noteW, peak := 0, 0, 0, 0
	for _, row := range rows {
		labelW = max(labelW, runewidth.StringWidth(row.label))
		countW = max(countW, len(humanize.Comma(int64(row.value))))
		noteW = max(noteW, len(row.note))
		peak = max(peak, row.value)
	}

	barW := r.chartWidth() - labelW - countW - noteW - 6
	if barW < 10 {
		barW = 10
	}

	for _, row := range rows {
		n := 0
		if peak > 0 {
			n = row.value * barW / peak
		}
		if n == 0 && row.value > 0 {
			n = 1
		}
		count := humanize.Comma(int64(row.value))
		s := fmt.Sprintf("  %s %s%s %s",
			runewidth.FillRight(row.label, labelW),
			strings.Repeat(" ", countW-len(count)),
			count,
			r.paint(color, strings.Repeat("█", n)))
		if row.note != "" {
			s += " " + r.paint(colorDim, row.note)
		}
		r.line(s)
	}
}

// Totals renders the four headline counters.
func Totals(t stats.Totals, opts Options) string {
	r := newRenderer(opts)
	r.totals(t)
	return r.String()
}

func (r *renderer) totals(t stats.Totals) {
	r.title("TOP STATISTICS")
	r.line(fmt.Sprintf("  Total Messages  %s", humanize.Comma(int64(t.Messages))))
	r.line(fmt.Sprintf("  Total Words     %s", humanize.Comma(int64(t.Words))))
	r.line(fmt.Sprintf("  Media Shared    %s", humanize.Comma(int64(t.Media))))
	r.line(fmt.Sprintf("  Links Shared    %s", humanize.Comma(int64(t.Links))))
}

// MonthlyTimeline renders one bar per (year, month).
func MonthlyTimeline(points []stats.MonthPoint, opts Options) string {
	r := newRenderer(opts)
	r.monthly(points)
	return r.String()
}

func (r *renderer) monthly(points []stats.MonthPoint) {
	r.title("MONTHLY TIMELINE")
	rows := make([]barRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, barRow{label: p.Label, value: p.Count})
	}
	r.bars(rows, colorBar)
}

// DailyTimeline renders one bar per date that has messages.
func DailyTimeline(points []stats.DayPoint, opts Options) string {
	r := newRenderer(opts)
	r.daily(points)
	return r.String()
}

func (r *renderer) daily(points []stats.DayPoint) {
	r.title("DAILY TIMELINE")
	rows := make([]barRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, barRow{label: p.Date.Format("2006-01-02"), value: p.Count})
	}
	r.bars(rows, colorBar)
}

// Counts renders labelled counts, e.g. the weekday or month activity maps.
func Counts(title string, counts []stats.Count, opts Options) string {
	r := newRenderer(opts)
	r.counts(title, counts, colorAccent)
	return r.String()
}

func (r *renderer) counts(title string, counts []stats.Count, color string) {
	r.title(title)
	rows := make([]barRow, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, barRow{label: c.Label, value: c.Count})
	}
	r.bars(rows, color)
}

// Heatmap renders the weekday x hour table. Columns are labelled with the
// bucket start hour.
func Heatmap(h stats.Heatmap, opts Options) string {
	r := newRenderer(opts)
	r.heatmap(h)
	return r.String()
}

func (r *renderer) heatmap(h stats.Heatmap) {
	r.title("WEEKLY ACTIVITY MAP")

	peak := h.Max()
	cellW := max(3, len(fmt.Sprint(peak))+1)

	var head strings.Builder
	head.WriteString("       ")
	for _, b := range h.Buckets {
		head.WriteString(fmt.Sprintf("%*s", cellW, b[:2]))
	}
	r.line(r.paint(colorDim, head.String()))

	for row, day := range h.Days {
		var s strings.Builder
		s.WriteString(fmt.Sprintf("  %-5s", abbrev(day)))
		for col := range h.Buckets {
			v := h.Cells[row][col]
			cell := fmt.Sprintf("%*d", cellW, v)
			if v == 0 {
				cell = fmt.Sprintf("%*s", cellW, ".")
			}
			s.WriteString(r.paint(shade(v, peak), cell))
		}
		r.line(s.String())
	}
}

func shade(v, peak int) string {
	if v == 0 || peak == 0 {
		return heat[0]
	}
	i := 1 + (v*(len(heat)-2))/peak
	if i >= len(heat) {
		i = len(heat) - 1
	}
	return heat[i]
}

func abbrev(day string) string {
	if utf8.RuneCountInString(day) <= 3 {
		return day
	}
	return string([]rune(day)[:3])
}

// Cloud renders the word-cloud vocabulary as word-wrapped text.
func Cloud(text string, opts Options) string {
	r := newRenderer(opts)
	r.cloud(text)
	return r.String()
}

func (r *renderer) cloud(text string) {
	r.title("WORD CLOUD")
	if text == "" {
		r.line(r.paint(colorDim, "  (no data)"))
		return
	}
	for _, l := range wrapWords(text, r.chartWidth()-2) {
		r.line("  " + l)
	}
}

// TopWords renders the most common words chart.
func TopWords(words []stats.Count, opts Options) string {
	r := newRenderer(opts)
	r.counts("MOST COMMON WORDS", words, colorBar)
	return r.String()
}

// Emojis renders every emoji with its count and share.
func Emojis(emojis []stats.EmojiCount, opts Options) string {
	r := newRenderer(opts)
	r.emojis(emojis)
	return r.String()
}

func (r *renderer) emojis(emojis []stats.EmojiCount) {
	r.title("EMOJI ANALYSIS")
	rows := make([]barRow, 0, len(emojis))
	for _, e := range emojis {
		rows = append(rows, barRow{label: e.Emoji, value: e.Count, note: fmt.Sprintf("%.2f%%", e.Percent)})
	}
	r.bars(rows, colorAccent)
}

// Leaderboard renders the busiest participants and every sender's share.
func Leaderboard(lb stats.Leaderboard, opts Options) string {
	r := newRenderer(opts)
	r.leaderboard(lb)
	return r.String()
}

func (r *renderer) leaderboard(lb stats.Leaderboard) {
	r.title("MOST BUSY USERS")
	top := make([]barRow, 0, len(lb.Top))
	for _, s := range lb.Top {
		top = append(top, barRow{label: s.Name, value: s.Count})
	}
	r.bars(top, colorWarn)

	r.line("")
	r.line(r.paint(colorDim, "  share of all messages"))
	if len(lb.Shares) == 0 {
		r.line(r.paint(colorDim, "  (no data)"))
		return
	}
	nameW := 0
	for _, s := range lb.Shares {
		nameW = max(nameW, runewidth.StringWidth(s.Name))
	}
	for _, s := range lb.Shares {
		r.line(fmt.Sprintf("  %s %6.2f%%", runewidth.FillRight(s.Name, nameW), s.Percent))
	}
}

// Report renders every section of a report: totals first, the busiest
// participants last.
func Report(rep stats.Report, opts Options) string {
	r := newRenderer(opts)

	r.line(r.paint(colorDim, fmt.Sprintf("--- Analysis for %s ---", rep.Participant)))
	for _, w := range rep.Warnings {
		r.line(r.paint(colorWarn, "warning: "+w))
	}
	r.line("")

	r.totals(rep.Totals)
	r.line("")
	r.monthly(rep.Monthly)
	r.line("")
	r.daily(rep.Daily)
	r.line("")
	r.counts("MOST BUSY DAY", rep.Weekly, colorAccent)
	r.line("")
	r.counts("MOST BUSY MONTH", rep.MonthlyActivity, colorAccent)
	r.line("")
	r.heatmap(rep.Heatmap)
	r.line("")
	r.cloud(rep.Cloud)
	r.line("")
	r.emojis(rep.Emojis)
	r.line("")
	r.counts("MOST COMMON WORDS", rep.TopWords, colorBar)
	r.line("")
	r.leaderboard(rep.Leaderboard)

	return r.String()
}

// wrapWords splits text on spaces into lines no wider than maxWidth columns.
// A single word wider than maxWidth gets a line of its own.
func wrapWords(text string, maxWidth int) []string {
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, w := range strings.Fields(text) {
		ww := runewidth.StringWidth(w)
		if curW > 0 && curW+1+ww > maxWidth {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		if curW > 0 {
			cur.WriteByte(' ')
			curW++
		}
		cur.WriteString(w)
		curW += ww
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, correctly skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		// check for ANSI escape sequence: ESC[ ... m
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}
