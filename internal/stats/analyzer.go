// Package stats derives aggregate statistics from a parsed transcript.
//
// Every query takes a participant filter and reads the same immutable message
// slice; nothing is cached between queries and no query fails. An unknown
// participant simply selects no messages.
package stats

import (
	"go.uber.org/zap"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/stopwords"
)

const (
	DefaultMediaPlaceholder = "<Media omitted>"
	DefaultTopWords         = 20
	DefaultTopParticipants  = 5
)

type Options struct {
	MediaPlaceholder string
	StopWordsPath    string
	TopWords         int
	TopParticipants  int
}

type Analyzer struct {
	msgs      []parse.Message
	opts      Options
	stopWords stopwords.Set
	warnings  []error
	log       *zap.Logger
}

// NewAnalyzer loads the stop-word list and prepares queries over msgs.
// A stop-word list that cannot be read is logged and recorded as a warning;
// vocabulary queries then run unfiltered.
func NewAnalyzer(msgs []parse.Message, opts Options, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MediaPlaceholder == "" {
		opts.MediaPlaceholder = DefaultMediaPlaceholder
	}
	if opts.TopWords <= 0 {
		opts.TopWords = DefaultTopWords
	}
	if opts.TopParticipants <= 0 {
		opts.TopParticipants = DefaultTopParticipants
	}

	a := &Analyzer{msgs: msgs, opts: opts, log: log}

	set, err := stopwords.Load(opts.StopWordsPath)
	if err != nil {
		log.Warn("stop-word list unavailable, vocabulary is unfiltered",
			zap.String("path", opts.StopWordsPath),
			zap.Error(err))
		a.warnings = append(a.warnings, err)
	} else {
		a.stopWords = set
		log.Debug("stop-word list loaded",
			zap.String("path", opts.StopWordsPath),
			zap.Int("words", len(set)))
	}

	return a
}

// Messages returns the full, unfiltered message slice.
func (a *Analyzer) Messages() []parse.Message { return a.msgs }

// Participants returns the selectable participants, Overall first.
func (a *Analyzer) Participants() []string { return parse.Participants(a.msgs) }

// Warnings returns the non-fatal problems met while preparing the analyzer.
func (a *Analyzer) Warnings() []error { return a.warnings }

// Filter returns the messages sent by participant. Overall selects all of
// them. The result may share its backing array with msgs and must not be
// modified.
func Filter(participant string, msgs []parse.Message) []parse.Message {
	if participant == parse.Overall {
		return msgs
	}
	var out []parse.Message
	for _, m := range msgs {
		if m.Sender == participant {
			out = append(out, m)
		}
	}
	return out
}

func (a *Analyzer) isMedia(m parse.Message) bool {
	return isMedia(m.Body, a.opts.MediaPlaceholder)
}
