package main

import (
	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

func emojiCmd(flags *rootFlags) *cobra.Command {
	return analysisCmd(flags, "emoji", "Emoji usage with each emoji's share",
		func(a *stats.Analyzer, participant string, opts render.Options) string {
			return render.Emojis(a.EmojiFrequency(participant), opts)
		})
}
