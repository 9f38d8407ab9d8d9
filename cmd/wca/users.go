package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
)

func usersCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "users <transcript>",
		Short: "List the participants that can be passed to --user",
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

			counts := map[string]int{}
			for _, s := range a.MostActiveParticipants().Shares {
				counts[s.Name] = s.Count
			}
			counts[parse.Overall] = len(a.Messages())

			for _, name := range a.Participants() {
				fmt.Fprintf(e.out, "%s\t%s\n", name, humanize.Comma(int64(counts[name])))
			}
			return nil
		},
	}
}
