package main

import (
	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

func statsCmd(flags *rootFlags) *cobra.Command {
	return analysisCmd(flags, "stats", "Message, word, media and link totals",
		func(a *stats.Analyzer, participant string, opts render.Options) string {
			return render.Totals(a.Totals(participant), opts)
		})
}
