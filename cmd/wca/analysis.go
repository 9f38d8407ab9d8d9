package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

// sectionFunc renders one part of the analysis for the selected participant.
type sectionFunc func(a *stats.Analyzer, participant string, opts render.Options) string

// analysisCmd builds a "<use> <transcript>" command that parses the file,
// runs one query and prints its rendering.
func analysisCmd(flags *rootFlags, use, short string, section sectionFunc) *cobra.Command {
	var participant string

	cmd := &cobra.Command{
		Use:   use + " <transcript>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, flags)
			if err != nil {
				return err
			}
			defer e.log.Sync() //nolint:errcheck

			a, err := e.analyze(args[0])
			if err != nil {
				return err
			}
			e.checkParticipant(a, participant)

			_, err = io.WriteString(e.out, section(a, participant, e.renderOptions(flags)))
			return err
		},
	}

	userFlag(cmd, &participant)
	return cmd
}
