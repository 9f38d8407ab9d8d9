package main

import (
	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

func busyCmd(flags *rootFlags) *cobra.Command {
	cmd := analysisCmd(flags, "busy", "Most active participants across the whole chat",
		func(a *stats.Analyzer, _ string, opts render.Options) string {
			return render.Leaderboard(a.MostActiveParticipants(), opts)
		})
	// the leaderboard always covers every sender
	cmd.Flags().MarkHidden("user") //nolint:errcheck
	return cmd
}
