package main

import (
	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

func activityCmd(flags *rootFlags) *cobra.Command {
	return analysisCmd(flags, "activity", "Busiest weekdays and months",
		func(a *stats.Analyzer, participant string, opts render.Options) string {
			return render.Counts("MOST BUSY DAY", a.WeeklyActivity(participant), opts) +
				"\n" +
				render.Counts("MOST BUSY MONTH", a.MonthlyActivity(participant), opts)
		})
}
