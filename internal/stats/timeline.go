package stats

import (
	"fmt"
	"sort"
	"time"
)

type MonthPoint struct {
	Year  int
	Month int
	Label string // "January-2023"
	Count int
}

type DayPoint struct {
	Date  time.Time
	Count int
}

// MonthlyTimeline counts messages per calendar month, ordered by
// (year, month) rather than by label.
func (a *Analyzer) MonthlyTimeline(participant string) []MonthPoint {
	type key struct{ year, month int }
	idx := make(map[key]int)
	var points []MonthPoint

	for _, m := range Filter(participant, a.msgs) {
		k := key{m.Year, m.MonthNum}
		i, ok := idx[k]
		if !ok {
			i = len(points)
			idx[k] = i
			points = append(points, MonthPoint{
				Year:  m.Year,
				Month: m.MonthNum,
				Label: fmt.Sprintf("%s-%d", m.MonthName, m.Year),
			})
		}
		points[i].Count++
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Month < points[j].Month
	})
	return points
}

// DailyTimeline counts messages per calendar date, chronologically. Dates
// without messages are not filled in.
func (a *Analyzer) DailyTimeline(participant string) []DayPoint {
	idx := make(map[time.Time]int)
	var points []DayPoint

	for _, m := range Filter(participant, a.msgs) {
		i, ok := idx[m.Date]
		if !ok {
			i = len(points)
			idx[m.Date] = i
			points = append(points, DayPoint{Date: m.Date})
		}
		points[i].Count++
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
