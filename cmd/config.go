package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wikigeo/geohist/internal/config"
	"github.com/wikigeo/geohist/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage geohist configuration",
	Long:  `Read and write geohist configuration stored in config.json.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a template config.json in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigFile
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config.json already exists at %s (delete it first to re-initialise)", path)
		}
		tmpl := config.Template()
		if err := config.WriteFile(path, tmpl); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "  Edit it and set db_path to where the ingest output should live.")
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		src := "(not found)"
		if cfg.ConfigPath != "" {
			src = cfg.ConfigPath
		}

		format := resolveFormat(cfg.Format)

		w, closeFn, err := outputWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeFn()

		if format == render.FormatJSON {
			type configOut struct {
				DBPath     string  `json:"db_path"`
				Format     string  `json:"default_format"`
				Workers    int     `json:"workers"`
				ProgressHz float64 `json:"progress_hz"`
				ConfigFile string  `json:"config_file"`
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(configOut{
				DBPath:     cfg.DBPath,
				Format:     cfg.Format,
				Workers:    cfg.Workers,
				ProgressHz: cfg.ProgressHz,
				ConfigFile: src,
			})
		}

		printKVTable(w, [][2]string{
			{"db_path", cfg.DBPath},
			{"default_format", cfg.Format},
			{"workers", fmt.Sprintf("%d", cfg.Workers)},
			{"progress_hz", fmt.Sprintf("%.1f", cfg.ProgressHz)},
			{"config_file", src},
		})
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in config.json",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(args[0])
		val := args[1]

		var f config.File
		existing, path, err := loadConfigFile()
		if err != nil {
			path = config.DefaultConfigFile
			f = config.Template()
		} else {
			f = *existing
		}

		switch key {
		case "db_path":
			f.DBPath = val
		case "default_format", "format":
			f.DefaultFormat = val
		case "workers":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("workers must be an integer")
			}
			f.Workers = n
		case "progress_hz":
			r, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("progress_hz must be a number")
			}
			f.ProgressHz = r
		default:
			return fmt.Errorf("unknown config key: %q\n\nValid keys: db_path, default_format, workers, progress_hz", key)
		}

		if err := config.WriteFile(path, f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s in %s\n", key, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

// loadConfigFile reads config.json from cwd; used by configSetCmd.
func loadConfigFile() (*config.File, string, error) {
	path := config.DefaultConfigFile
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	var f config.File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, "", err
	}
	return &f, path, nil
}
