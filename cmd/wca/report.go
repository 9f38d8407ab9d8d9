package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/tui"
)

func reportCmd(flags *rootFlags) *cobra.Command {
	var participant string
	var plain bool

	cmd := &cobra.Command{
		Use:   "report <transcript>",
		Short: "Full analysis; interactive participant picker on a terminal",
		Long: `Runs every analysis for one participant.

On a terminal this opens a participant list next to the rendered report.
Moving the cursor re-runs the analysis for that participant, typing filters
the list, Enter copies the plain report to the clipboard and Esc quits.
When stdout is not a terminal (or with --plain) the report is printed.`,
		Args: cobra.ExactArgs(1),
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

			// Interactive TUI when stdout is a terminal; plain output for pipes
			if !plain && e.out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(a, participant, e.out)
			}

			_, err = io.WriteString(e.out, render.Report(a.Report(participant), e.renderOptions(flags)))
			return err
		},
	}

	userFlag(cmd, &participant)
	cmd.Flags().BoolVar(&plain, "plain", false, "Print the report instead of opening the picker")
	return cmd
}
