package stats

import (
	"time"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
)

// WeeklyActivity counts messages per weekday name. Weekdays without messages
// are absent.
func (a *Analyzer) WeeklyActivity(participant string) []Count {
	c := newCounter()
	for _, m := range Filter(participant, a.msgs) {
		c.add(m.DayName)
	}
	return c.sorted()
}

// MonthlyActivity counts messages per month name across all years. Months
// without messages are absent.
func (a *Analyzer) MonthlyActivity(participant string) []Count {
	c := newCounter()
	for _, m := range Filter(participant, a.msgs) {
		c.add(m.MonthName)
	}
	return c.sorted()
}

// heatmapDays is the row order of Heatmap.
var heatmapDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Heatmap is a dense weekday x hour-bucket table of message counts.
type Heatmap struct {
	Days    []string // row labels, Monday first
	Buckets []string // column labels, "00-01" first
	Cells   [7][24]int
}

// Cell returns the count for a weekday name and bucket label, 0 when either
// label is unknown.
func (h Heatmap) Cell(day, bucket string) int {
	for r, d := range h.Days {
		if d != day {
			continue
		}
		for c, b := range h.Buckets {
			if b == bucket {
				return h.Cells[r][c]
			}
		}
	}
	return 0
}

// Max returns the largest cell value.
func (h Heatmap) Max() int {
	peak := 0
	for _, row := range h.Cells {
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
	}
	return peak
}

// ActivityHeatmap tallies messages by weekday and hour bucket. Every cell is
// present, empty ones hold 0. System messages are counted like any other;
// select a participant to leave them out.
func (a *Analyzer) ActivityHeatmap(participant string) Heatmap {
	h := Heatmap{Buckets: parse.HourBuckets()}
	for _, d := range heatmapDays {
		h.Days = append(h.Days, d.String())
	}
	for _, m := range Filter(participant, a.msgs) {
		row := (int(m.Timestamp.Weekday()) + 6) % 7
		h.Cells[row][m.Hour]++
	}
	return h
}
