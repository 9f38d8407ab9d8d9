package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/parse"
	"github.com/mysteriouscoder610/whatsapp-chat-analyzer/internal/scan"
)

// scanResult is the outcome for one discovered file.
type scanResult struct {
	file scan.FileInfo
	meta parse.TranscriptMeta
	msgs int
	err  error
}

func scanCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Parse every exported transcript under a directory (default exports_root)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, flags)
			if err != nil {
				return err
			}
			defer e.log.Sync() //nolint:errcheck

			root := e.cfg.ExportsRoot
			if len(args) == 1 {
				root = args[0]
			}

			files, err := scan.ScanRoot(root)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}
			if len(files) == 0 {
				fmt.Fprintf(e.out, "No transcripts found under %s\n", root)
				return nil
			}

			results, err := parseAll(cmd.Context(), files, e.cfg.Workers, e.log)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(e.out, "%s\terror: %v\n", r.file.Path, r.err)
					continue
				}
				fmt.Fprintf(e.out, "%s\t%s\t%s messages\t%d participants\t%s\n",
					r.file.Path,
					humanize.Bytes(uint64(r.file.Size)),
					humanize.Comma(int64(r.msgs)),
					r.meta.Participants,
					span(r.meta))
			}
			fmt.Fprintf(e.out, "\n%d files, %d failed\n", len(results), failed)
			return nil
		},
	}
}

// parseAll parses files with at most workers running at once. A file that
// fails to parse is recorded in its result; only cancellation stops the batch.
func parseAll(ctx context.Context, files []scan.FileInfo, workers int, log *zap.Logger) ([]scanResult, error) {
	results := make([]scanResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i].file = f
			res, err := parse.ParseFile(f.Path)
			if err != nil {
				log.Warn("skipping transcript", zap.String("file", f.Path), zap.Error(err))
				results[i].err = err
				return nil
			}
			results[i].meta = res.Meta
			results[i].msgs = len(res.Messages)
			log.Debug("transcript parsed", zap.String("file", f.Path), zap.Int("messages", len(res.Messages)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func span(meta parse.TranscriptMeta) string {
	if meta.FirstAt.IsZero() {
		return "-"
	}
	const layout = "2006-01-02 15:04"
	return fmt.Sprintf("%s .. %s", meta.FirstAt.Format(layout), meta.LastAt.Format(layout))
}
