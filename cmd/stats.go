package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wikigeo/geohist/internal/render"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "List indexed item counts by Wikidata class, most frequent first",
	Example: `  geohist stats
  geohist stats --format csv > classes.csv`,
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

		counts, err := st.ClassCounts()
		if err != nil {
			return err
		}

		w, closeFn, err := outputWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeFn()

		result := &render.Result{
			Kind:        render.KindClassCounts,
			GeneratedAt: time.Now(),
			Command:     "stats",
			Data:        counts,
		}
		if len(counts) == 0 {
			result.Warnings = append(result.Warnings, "no classes recorded yet — run 'geohist ingest' first")
		}
		if err := render.Render(w, result, resolveFormat(deps.Config.Format)); err != nil {
			return err
		}
		render.PrintFooter(w, result, deps.Config.Verbose)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
