package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/wikigeo/geohist/internal/store"
)

func sampleClassCounts() []store.ClassCount {
	return []store.ClassCount{
		{ID: 515, Cnt: 42},
		{ID: 486972, Cnt: 7},
	}
}

func sampleDBInfo() store.Info {
	return store.Info{
		Path:       "/tmp/geohist.db",
		SizeBytes:  2_097_152,
		ItemRows:   1000,
		BrokenRows: 3,
		ClassRows:  2,
	}
}

func sampleIngestStats() IngestStats {
	return IngestStats{
		ItemsParsed:    1200,
		ItemsPersisted: 1000,
		ClassCount:     2,
		Elapsed:        90 * time.Second,
	}
}

func TestRenderClassCountsAllFormats(t *testing.T) {
	result := &Result{Kind: KindClassCounts, GeneratedAt: time.Now(), Data: sampleClassCounts()}
	for _, format := range []string{FormatTable, FormatJSON, FormatJSONL, FormatCSV, FormatTSV, FormatMD} {
		var buf bytes.Buffer
		if err := Render(&buf, result, format); err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("format %s: expected non-empty output", format)
		}
	}
}

func TestRenderClassCountsTableShowsQIDs(t *testing.T) {
	result := &Result{Kind: KindClassCounts, Data: sampleClassCounts()}
	var buf bytes.Buffer
	if err := Render(&buf, result, FormatTable); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Q515") {
		t.Errorf("expected Q-prefixed class id in table output, got:\n%s", buf.String())
	}
}

func TestRenderDBInfoJSONRoundTrips(t *testing.T) {
	result := &Result{Kind: KindDBInfo, Data: sampleDBInfo()}
	var buf bytes.Buffer
	if err := Render(&buf, result, FormatJSON); err != nil {
		t.Fatal(err)
	}
	var decoded Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding rendered JSON: %v", err)
	}
	if decoded.Kind != KindDBInfo {
		t.Errorf("kind mismatch after round-trip: %q", decoded.Kind)
	}
}

func TestRenderDBInfoCSVHasHeader(t *testing.T) {
	result := &Result{Kind: KindDBInfo, Data: sampleDBInfo()}
	var buf bytes.Buffer
	if err := Render(&buf, result, FormatCSV); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + one data row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "path,size_bytes") {
		t.Errorf("unexpected CSV header: %q", lines[0])
	}
}

func TestRenderIngestStatsAllFormats(t *testing.T) {
	result := &Result{Kind: KindIngestStats, Data: sampleIngestStats()}
	for _, format := range []string{FormatTable, FormatJSON, FormatJSONL, FormatCSV, FormatTSV, FormatMD} {
		var buf bytes.Buffer
		if err := Render(&buf, result, format); err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("format %s: expected non-empty output", format)
		}
	}
}

func TestRenderIngestStatsTableShowsCounts(t *testing.T) {
	result := &Result{Kind: KindIngestStats, Data: sampleIngestStats()}
	var buf bytes.Buffer
	if err := Render(&buf, result, FormatTable); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "1200") || !strings.Contains(out, "1000") {
		t.Errorf("expected parsed/persisted counts in table output, got:\n%s", out)
	}
}

func TestRenderUnknownKindFallsBackToJSON(t *testing.T) {
	result := &Result{Kind: "something_new", Data: map[string]int{"x": 1}}
	var buf bytes.Buffer
	if err := Render(&buf, result, FormatTable); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"x"`) {
		t.Errorf("expected JSON fallback for unknown kind, got:\n%s", buf.String())
	}
}

func TestPrintFooterVerboseIncludesTimestamp(t *testing.T) {
	result := &Result{GeneratedAt: time.Date(2026, 7, 31, 12, 0, 0, 0, time.UTC)}
	var buf bytes.Buffer
	PrintFooter(&buf, result, true)
	if !strings.Contains(buf.String(), "2026-07-31") {
		t.Errorf("expected timestamp in verbose footer, got:\n%s", buf.String())
	}
}

func TestPrintFooterQuietOmitsTimestamp(t *testing.T) {
	result := &Result{GeneratedAt: time.Now()}
	var buf bytes.Buffer
	PrintFooter(&buf, result, false)
	if buf.Len() != 0 {
		t.Errorf("expected no footer output when not verbose and no warnings, got:\n%s", buf.String())
	}
}

func TestPrintFooterWarnings(t *testing.T) {
	result := &Result{Warnings: []string{"no classes recorded yet"}}
	var buf bytes.Buffer
	PrintFooter(&buf, result, false)
	if !strings.Contains(buf.String(), "no classes recorded yet") {
		t.Errorf("expected warning text, got:\n%s", buf.String())
	}
}
