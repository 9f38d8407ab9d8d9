package main

import (
	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

func timelineCmd(flags *rootFlags) *cobra.Command {
	var daily bool

	cmd := analysisCmd(flags, "timeline", "Messages per month, or per day with --daily",
		func(a *stats.Analyzer, participant string, opts render.Options) string {
			if daily {
				return render.DailyTimeline(a.DailyTimeline(participant), opts)
			}
			return render.MonthlyTimeline(a.MonthlyTimeline(participant), opts)
		})
	cmd.Flags().BoolVar(&daily, "daily", false, "Count per calendar date instead of per month")
	return cmd
}
