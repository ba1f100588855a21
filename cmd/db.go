package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikigeo/geohist/internal/render"
	"github.com/wikigeo/geohist/internal/store"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and manage the output SQLite database",
	Long: `Commands for inspecting and clearing the ingest output database.

The database is an intentional, append-only data store built by 'geohist
ingest', not a transparent cache — rows persist until you explicitly clear
the file.`,
}

// ─── db info ──────────────────────────────────────────────────────────────────

var dbInfoCmd = &cobra.Command{
	Use:     "info",
	Short:   "Show file size and row counts for the database",
	Example: `  geohist db info`,
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

		info, err := st.Stats()
		if err != nil {
			return fmt.Errorf("reading database stats: %w", err)
		}

		w, closeFn, err := outputWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeFn()

		result := &render.Result{
			Kind:        render.KindDBInfo,
			GeneratedAt: time.Now(),
			Command:     "db info",
			Data:        info,
		}
		return render.Render(w, result, resolveFormat(deps.Config.Format))
	},
}

// ─── db clear ─────────────────────────────────────────────────────────────────

var dbClearConfirmed bool

var dbClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the database file so a fresh ingest can start from empty",
	Example: `  geohist db clear --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !dbClearConfirmed {
			return fmt.Errorf("this deletes the database file; pass --yes to confirm")
		}

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		if err := store.Clear(cfg.DBPath); err != nil {
			return fmt.Errorf("clearing database: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared %s\n", cfg.DBPath)
		return nil
	},
}

// ─── Registration ─────────────────────────────────────────────────────────────

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbInfoCmd)
	dbCmd.AddCommand(dbClearCmd)

	dbClearCmd.Flags().BoolVar(&dbClearConfirmed, "yes", false, "confirm deletion of the database file")
}
