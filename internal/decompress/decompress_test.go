package decompress

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestOpenGzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, _ = gw.Write([]byte("hello, wikidata"))
	_ = gw.Close()

	r, err := Open(&buf)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello, wikidata" {
		t.Errorf("got %q", got)
	}
}

func TestOpenZstd(t *testing.T) {
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	_, _ = zw.Write([]byte("hello, wikidata"))
	_ = zw.Close()

	r, err := Open(&buf)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello, wikidata" {
		t.Errorf("got %q", got)
	}
}

func TestOpenUnrecognized(t *testing.T) {
	_, err := Open(bytes.NewReader([]byte("not compressed")))
	if err == nil {
		t.Error("expected error for unrecognized magic")
	}
}
