package lineextract

import (
	"bytes"
	"strings"
	"testing"
)

func padLine(jsonBody string) string {
	// Pad with leading filler so the closing '}' lands past the 662-byte
	// guard, mirroring a realistic Wikidata item line. Extract skips to the
	// first '{' after each newline, so the filler starts with '{' to keep it
	// part of the record.
	pad := "{" + strings.Repeat(" ", 700-len(jsonBody)-1)
	return pad + jsonBody
}

func TestExtractKeepsLongLine(t *testing.T) {
	line := padLine(`{"id":"Q1"}`)
	buf := []byte("[\n" + line + "\n")

	lines, _ := Extract(buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !bytes.HasSuffix(lines[0], []byte(`{"id":"Q1"}`)) {
		t.Errorf("line = %q", lines[0])
	}
}

func TestExtractDropsShortLine(t *testing.T) {
	buf := []byte(`{"id":"Q1"}` + "\n")
	lines, _ := Extract(buf)
	if len(lines) != 0 {
		t.Errorf("expected short line dropped, got %d lines", len(lines))
	}
}

func TestExtractResidual(t *testing.T) {
	line := padLine(`{"id":"Q1"}`)
	buf := []byte(line + "\n" + `{"id":"Q2"` /* incomplete, no closing brace/newline */)

	lines, residual := Extract(buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !bytes.Contains(residual, []byte(`"id":"Q2"`)) {
		t.Errorf("residual = %q, expected to contain the incomplete record", residual)
	}
}

func TestExtractMultipleLines(t *testing.T) {
	l1 := padLine(`{"id":"Q1"}`)
	l2 := padLine(`{"id":"Q2"}`)
	buf := []byte(l1 + "\n," + l2 + "\n")

	lines, _ := Extract(buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}

func TestFinalizeAppendsNewline(t *testing.T) {
	line := padLine(`{"id":"Q9"}`)
	lines, _ := Finalize([]byte(line))
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
}

func TestFinalizeEmpty(t *testing.T) {
	lines, residual := Finalize(nil)
	if lines != nil || residual != nil {
		t.Errorf("expected nil/nil for empty input, got %v/%v", lines, residual)
	}
}
