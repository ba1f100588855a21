// Package render converts Result values into human-readable or
// machine-parseable output. Each format is a separate function; the
// top-level Render dispatcher selects based on the format string.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/wikigeo/geohist/internal/store"
)

// Format constants matching --format flag values.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatMD    = "md"
)

// Result kinds, naming the shape of Result.Data.
const (
	KindClassCounts = "class_counts"
	KindDBInfo      = "db_info"
	KindIngestStats = "ingest_stats"
)

// IngestStats is the Data shape for KindIngestStats, the summary `geohist
// ingest` prints after a run completes.
type IngestStats struct {
	ItemsParsed    uint64
	ItemsPersisted uint64
	ClassCount     int
	Elapsed        time.Duration
}

// Result is the common envelope every render-able command output wraps
// itself in before calling Render.
type Result struct {
	Kind        string
	GeneratedAt time.Time
	Command     string
	Data        any
	Warnings    []string
}

// Render writes result to w in the specified format.
func Render(w io.Writer, result *Result, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, result)
	case FormatJSONL:
		return renderJSONL(w, result)
	case FormatCSV:
		return renderDelimited(w, result, ',')
	case FormatTSV:
		return renderDelimited(w, result, '\t')
	case FormatMD:
		return renderMarkdown(w, result)
	default:
		return renderTable(w, result)
	}
}

// ─── JSON ─────────────────────────────────────────────────────────────────────

func renderJSON(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderJSONL(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	switch result.Kind {
	case KindClassCounts:
		counts, ok := result.Data.([]store.ClassCount)
		if !ok {
			return renderJSON(w, result)
		}
		for _, c := range counts {
			if err := enc.Encode(c); err != nil {
				return err
			}
		}
		return nil
	default:
		return enc.Encode(result.Data)
	}
}

// ─── Table ────────────────────────────────────────────────────────────────────

func renderTable(w io.Writer, result *Result) error {
	switch result.Kind {
	case KindClassCounts:
		counts, ok := result.Data.([]store.ClassCount)
		if !ok {
			return fmt.Errorf("unexpected data type for %s", KindClassCounts)
		}
		return renderClassCountsTable(w, counts)
	case KindDBInfo:
		info, ok := result.Data.(store.Info)
		if !ok {
			return fmt.Errorf("unexpected data type for %s", KindDBInfo)
		}
		return renderDBInfoTable(w, info)
	case KindIngestStats:
		stats, ok := result.Data.(IngestStats)
		if !ok {
			return fmt.Errorf("unexpected data type for %s", KindIngestStats)
		}
		return renderIngestStatsTable(w, stats)
	default:
		return renderJSON(w, result)
	}
}

func renderIngestStatsTable(w io.Writer, stats IngestStats) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"FIELD", "VALUE"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	rows := [][]string{
		{"Items parsed", fmt.Sprintf("%d", stats.ItemsParsed)},
		{"Items persisted", fmt.Sprintf("%d", stats.ItemsPersisted)},
		{"Classes seen", fmt.Sprintf("%d", stats.ClassCount)},
		{"Elapsed", stats.Elapsed.Round(time.Second).String()},
	}
	for _, r := range rows {
		tw.Append(r)
	}
	tw.Render()
	return nil
}

func renderClassCountsTable(w io.Writer, counts []store.ClassCount) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"CLASS QID", "COUNT"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	tw.SetAutoWrapText(false)

	for _, c := range counts {
		tw.Append([]string{fmt.Sprintf("Q%d", c.ID), fmt.Sprintf("%d", c.Cnt)})
	}
	tw.Render()
	return nil
}

func renderDBInfoTable(w io.Writer, info store.Info) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"FIELD", "VALUE"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	rows := [][]string{
		{"Path", info.Path},
		{"Size", humanBytes(info.SizeBytes)},
		{"Item rows", fmt.Sprintf("%d", info.ItemRows)},
		{"Broken rows", fmt.Sprintf("%d", info.BrokenRows)},
		{"Class rows", fmt.Sprintf("%d", info.ClassRows)},
	}
	for _, r := range rows {
		tw.Append(r)
	}
	tw.Render()
	return nil
}

// ─── CSV / TSV ────────────────────────────────────────────────────────────────

func renderDelimited(w io.Writer, result *Result, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep

	switch result.Kind {
	case KindClassCounts:
		counts, ok := result.Data.([]store.ClassCount)
		if !ok {
			return fmt.Errorf("unexpected data type for %s", KindClassCounts)
		}
		_ = cw.Write([]string{"class_qid", "count"})
		for _, c := range counts {
			_ = cw.Write([]string{fmt.Sprintf("Q%d", c.ID), fmt.Sprintf("%d", c.Cnt)})
		}
	case KindDBInfo:
		info, ok := result.Data.(store.Info)
		if !ok {
			return fmt.Errorf("unexpected data type for %s", KindDBInfo)
		}
		_ = cw.Write([]string{"path", "size_bytes", "item_rows", "broken_rows", "class_rows"})
		_ = cw.Write([]string{
			info.Path,
			fmt.Sprintf("%d", info.SizeBytes),
			fmt.Sprintf("%d", info.ItemRows),
			fmt.Sprintf("%d", info.BrokenRows),
			fmt.Sprintf("%d", info.ClassRows),
		})
	case KindIngestStats:
		stats, ok := result.Data.(IngestStats)
		if !ok {
			return fmt.Errorf("unexpected data type for %s", KindIngestStats)
		}
		_ = cw.Write([]string{"items_parsed", "items_persisted", "classes_seen", "elapsed_seconds"})
		_ = cw.Write([]string{
			fmt.Sprintf("%d", stats.ItemsParsed),
			fmt.Sprintf("%d", stats.ItemsPersisted),
			fmt.Sprintf("%d", stats.ClassCount),
			fmt.Sprintf("%.0f", stats.Elapsed.Seconds()),
		})
	default:
		b, _ := json.Marshal(result.Data)
		_ = cw.Write([]string{string(b)})
	}

	cw.Flush()
	return cw.Error()
}

// ─── Markdown ─────────────────────────────────────────────────────────────────

func renderMarkdown(w io.Writer, result *Result) error {
	switch result.Kind {
	case KindClassCounts:
		counts, ok := result.Data.([]store.ClassCount)
		if !ok {
			return renderJSON(w, result)
		}
		fmt.Fprintf(w, "| CLASS QID | COUNT |\n|-----------|-------|\n")
		for _, c := range counts {
			fmt.Fprintf(w, "| Q%d | %d |\n", c.ID, c.Cnt)
		}
		return nil
	case KindDBInfo:
		info, ok := result.Data.(store.Info)
		if !ok {
			return renderJSON(w, result)
		}
		fmt.Fprintf(w, "| FIELD | VALUE |\n|-------|-------|\n")
		fmt.Fprintf(w, "| Path | %s |\n", mdEscape(info.Path))
		fmt.Fprintf(w, "| Size | %s |\n", humanBytes(info.SizeBytes))
		fmt.Fprintf(w, "| Item rows | %d |\n", info.ItemRows)
		fmt.Fprintf(w, "| Broken rows | %d |\n", info.BrokenRows)
		fmt.Fprintf(w, "| Class rows | %d |\n", info.ClassRows)
		return nil
	case KindIngestStats:
		stats, ok := result.Data.(IngestStats)
		if !ok {
			return renderJSON(w, result)
		}
		fmt.Fprintf(w, "| FIELD | VALUE |\n|-------|-------|\n")
		fmt.Fprintf(w, "| Items parsed | %d |\n", stats.ItemsParsed)
		fmt.Fprintf(w, "| Items persisted | %d |\n", stats.ItemsPersisted)
		fmt.Fprintf(w, "| Classes seen | %d |\n", stats.ClassCount)
		fmt.Fprintf(w, "| Elapsed | %s |\n", stats.Elapsed.Round(time.Second))
		return nil
	default:
		return renderJSON(w, result)
	}
}

// ─── Warnings footer ─────────────────────────────────────────────────────────

// PrintFooter writes any warnings to w, followed by the result's generation
// timestamp when verbose mode is on.
func PrintFooter(w io.Writer, result *Result, verbose bool) {
	for _, warn := range result.Warnings {
		fmt.Fprintf(w, "⚠  %s\n", warn)
	}
	if verbose {
		fmt.Fprintf(w, "\n[%s]\n", result.GeneratedAt.Format(time.RFC3339))
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// humanBytes formats a byte count using binary (KiB/MiB/GiB) units.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
