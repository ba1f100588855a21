package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikigeo/geohist/internal/pipeline"
	"github.com/wikigeo/geohist/internal/render"
	"github.com/wikigeo/geohist/internal/taxonomy"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <dump-file>",
	Short: "Build the spatio-temporal index from a compressed Wikidata JSON dump",
	Long: `Read a gzip- or zstd-compressed Wikidata JSON dump, extract dated and
located items, classify them, and persist the result into the SQLite
database.

Ingest streams the dump through a fixed pipeline of reader, decompressor,
parser pool and persister stages; it never loads the whole dump into
memory. Press Ctrl-C to cancel a running ingest — the database retains
whatever was committed before cancellation.`,
	Example: `  geohist ingest wikidata-latest-all.json.gz
  geohist ingest --workers 16 dump.json.zst
  geohist ingest --db ./out.db dump.json.gz`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		st, err := deps.RequireStore()
		if err != nil {
			return err
		}
		defer deps.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening dump file: %w", err)
		}
		defer f.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logLevel := slog.LevelWarn
		if deps.Config.Debug {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))
		ignored, remapped := taxonomy.Len()
		logger.Debug("taxonomy tables loaded", "ignored", ignored, "remapped", remapped)

		pcfg := pipeline.Config{
			Workers:    deps.Config.Workers,
			Logger:     logger,
			ProgressHz: deps.Config.ProgressHz,
		}
		if !deps.Config.Quiet {
			pcfg.ProgressWriter = cmd.OutOrStdout()
		}

		start := time.Now()
		stats, err := pipeline.Run(ctx, f, st, pcfg)
		elapsed := time.Since(start)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("ingest cancelled: %w", context.Cause(ctx))
			}
			return fmt.Errorf("ingest failed: %w", err)
		}

		w, closeFn, err := outputWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeFn()

		result := &render.Result{
			Kind:        render.KindIngestStats,
			GeneratedAt: time.Now(),
			Command:     "ingest",
			Data: render.IngestStats{
				ItemsParsed:    stats.ItemsParsed,
				ItemsPersisted: stats.ItemsPersisted,
				ClassCount:     stats.ClassCount,
				Elapsed:        elapsed,
			},
		}
		if err := render.Render(w, result, resolveFormat(deps.Config.Format)); err != nil {
			return err
		}
		render.PrintFooter(w, result, deps.Config.Verbose)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
