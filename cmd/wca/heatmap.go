package main

import (
	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

func heatmapCmd(flags *rootFlags) *cobra.Command {
	return analysisCmd(flags, "heatmap", "Weekday by hour activity table",
		func(a *stats.Analyzer, participant string, opts render.Options) string {
			return render.Heatmap(a.ActivityHeatmap(participant), opts)
		})
}
