package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/scan"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stopwords"
)

func doctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: config, stop-word list and exports directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, flags)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			defer e.log.Sync() //nolint:errcheck
			out := e.out

			fmt.Fprintln(out, "=== Config ===")
			if e.cfg.Path == "" {
				fmt.Fprintln(out, "  File: none (using defaults)")
			} else {
				fmt.Fprintf(out, "  File: %s\n", e.cfg.Path)
			}
			fmt.Fprintf(out, "  Media placeholder: %q\n", e.cfg.MediaPlaceholder)
			fmt.Fprintf(out, "  Top words: %d, top participants: %d, workers: %d\n",
				e.cfg.TopWords, e.cfg.TopParticipants, e.cfg.Workers)

			fmt.Fprintln(out, "\n=== Stop Words ===")
			fmt.Fprintf(out, "  Path: %s\n", e.cfg.StopWordsPath)
			set, err := stopwords.Load(e.cfg.StopWordsPath)
			switch {
			case errors.Is(err, stopwords.ErrUnreadable):
				fmt.Fprintf(out, "  Status: UNREADABLE (%v), vocabulary will be unfiltered\n", errors.Unwrap(err))
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "  Status: OK (%d words)\n", len(set))
			}

			fmt.Fprintln(out, "\n=== Exports ===")
			checkDir(out, "Root", e.cfg.ExportsRoot)
			files, err := scan.ScanRoot(e.cfg.ExportsRoot)
			if err != nil {
				fmt.Fprintf(out, "  scan error: %v\n", err)
			} else {
				fmt.Fprintf(out, "  Transcripts: %d\n", len(files))
			}

			return nil
		},
	}
}

func checkDir(out io.Writer, name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Fprintf(out, "  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Fprintf(out, "  %s: %s (OK)\n", name, path)
	}
}
