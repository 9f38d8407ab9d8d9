package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "wca",
		Short:         "WhatsApp Chat Analyzer - statistics over exported WhatsApp transcripts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/wca/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.stopWords, "stopwords", "", "Stop-word list, overrides stopwords_path")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable ANSI colors")

	rootCmd.AddCommand(statsCmd(flags))
	rootCmd.AddCommand(timelineCmd(flags))
	rootCmd.AddCommand(activityCmd(flags))
	rootCmd.AddCommand(heatmapCmd(flags))
	rootCmd.AddCommand(wordsCmd(flags))
	rootCmd.AddCommand(emojiCmd(flags))
	rootCmd.AddCommand(busyCmd(flags))
	rootCmd.AddCommand(usersCmd(flags))
	rootCmd.AddCommand(reportCmd(flags))
	rootCmd.AddCommand(scanCmd(flags))
	rootCmd.AddCommand(doctorCmd(flags))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
