package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/wikigeo/geohist/internal/render"
)

// resolveFormat returns the effective format string, falling back to "table".
func resolveFormat(cfgFormat string) string {
	if globalFlags.Format != "" {
		return globalFlags.Format
	}
	if cfgFormat != "" {
		return cfgFormat
	}
	return render.FormatTable
}

// outputWriter returns the writer a command should render to: fallback (the
// command's own default, typically os.Stdout) unless --out names a file, in
// which case it opens that file. The returned closer is always safe to call.
func outputWriter(fallback io.Writer) (io.Writer, func() error, error) {
	if globalFlags.Out == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(globalFlags.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("opening --out file: %w", err)
	}
	return f, f.Close, nil
}

// printKVTable renders a two-column FIELD/VALUE table from ordered pairs.
func printKVTable(w io.Writer, rows [][2]string) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"FIELD", "VALUE"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range rows {
		tw.Append([]string{r[0], r[1]})
	}
	tw.Render()
}
