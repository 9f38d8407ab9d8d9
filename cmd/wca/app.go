package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/config"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/logging"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/render"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stats"
)

type rootFlags struct {
	configPath string
	stopWords  string
	noColor    bool
}

// env is what every subcommand needs: the resolved config and a logger.
type env struct {
	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

func newEnv(cmd *cobra.Command, flags *rootFlags) (*env, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.stopWords != "" {
		cfg.StopWordsPath = flags.stopWords
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded",
		zap.String("path", cfg.Path),
		zap.String("stopwords", cfg.StopWordsPath))

	return &env{cfg: cfg, log: log, out: cmd.OutOrStdout()}, nil
}

// analyze parses the transcript at path and prepares an analyzer over it.
// A transcript without any message is reported but still analyzed: every
// query then returns empty results.
func (e *env) analyze(path string) (*stats.Analyzer, error) {
	result, err := parse.ParseFile(path)
	if err != nil {
		e.log.Error("parse failed", zap.String("file", path), zap.Error(err))
		return nil, err
	}
	if len(result.Messages) == 0 {
		e.log.Warn("nothing to analyze",
			zap.String("file", path),
			zap.Error(parse.ErrEmptyTranscript))
	}
	e.log.Info("transcript parsed",
		zap.String("file", path),
		zap.Int("messages", len(result.Messages)),
		zap.Int("participants", result.Meta.Participants))

	return stats.NewAnalyzer(result.Messages, stats.Options{
		MediaPlaceholder: e.cfg.MediaPlaceholder,
		StopWordsPath:    e.cfg.StopWordsPath,
		TopWords:         e.cfg.TopWords,
		TopParticipants:  e.cfg.TopParticipants,
	}, e.log), nil
}

// checkParticipant warns about a filter that matches nobody. The queries
// still run and come back empty.
func (e *env) checkParticipant(a *stats.Analyzer, participant string) {
	if !slices.Contains(a.Participants(), participant) {
		e.log.Warn("unknown participant, results will be empty",
			zap.String("participant", participant),
			zap.Strings("known", a.Participants()))
	}
}

// renderOptions colors and wraps output only when stdout is a terminal.
func (e *env) renderOptions(flags *rootFlags) render.Options {
	fd := int(os.Stdout.Fd())
	if e.out != os.Stdout || !term.IsTerminal(fd) {
		return render.Options{}
	}
	opts := render.Options{Color: !flags.noColor}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		opts.Width = w
	}
	return opts
}

// userFlag registers the participant filter shared by the analysis commands.
func userFlag(cmd *cobra.Command, participant *string) {
	cmd.Flags().StringVarP(participant, "user", "u", parse.Overall, `Participant to analyze ("Overall" for everyone)`)
}
