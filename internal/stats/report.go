package stats

import "go.uber.org/zap"

// Report bundles every query for one participant selection.
type Report struct {
	Participant     string
	Totals          Totals
	Monthly         []MonthPoint
	Daily           []DayPoint
	Weekly          []Count
	MonthlyActivity []Count
	Heatmap         Heatmap
	Cloud           string
	TopWords        []Count
	Emojis          []EmojiCount
	Leaderboard     Leaderboard
	Warnings        []string
}

// Report runs all queries for participant in one synchronous pass each.
func (a *Analyzer) Report(participant string) Report {
	r := Report{
		Participant:     participant,
		Totals:          a.Totals(participant),
		Monthly:         a.MonthlyTimeline(participant),
		Daily:           a.DailyTimeline(participant),
		Weekly:          a.WeeklyActivity(participant),
		MonthlyActivity: a.MonthlyActivity(participant),
		Heatmap:         a.ActivityHeatmap(participant),
		Cloud:           a.VocabularyForCloud(participant),
		TopWords:        a.TopWords(participant),
		Emojis:          a.EmojiFrequency(participant),
		Leaderboard:     a.MostActiveParticipants(),
	}
	for _, w := range a.warnings {
		r.Warnings = append(r.Warnings, w.Error())
	}

	a.log.Debug("report built",
		zap.String("participant", participant),
		zap.Int("messages", r.Totals.Messages))
	return r
}
