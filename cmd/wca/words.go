package main

import (
	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

func wordsCmd(flags *rootFlags) *cobra.Command {
	var cloud bool

	cmd := analysisCmd(flags, "words", "Most common words, stop words removed",
		func(a *stats.Analyzer, participant string, opts render.Options) string {
			if cloud {
				return render.Cloud(a.VocabularyForCloud(participant), opts)
			}
			return render.TopWords(a.TopWords(participant), opts)
		})
	cmd.Flags().BoolVar(&cloud, "cloud", false, "Print the whole word-cloud vocabulary instead")
	return cmd
}
