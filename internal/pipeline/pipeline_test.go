package pipeline

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wikigeo/geohist/internal/store"
)

// pad widens a synthetic JSON line past lineextract's minimum-offset
// threshold, the way a real Wikidata dump line always naturally is.
func pad() string {
	return strings.Repeat("x", 800)
}

func gzipLines(t *testing.T, lines ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	for _, l := range lines {
		if _, err := w.Write([]byte(l + "\n")); err != nil {
			t.Fatalf("writing gzip stream: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing gzip writer: %v", err)
	}
	return buf.Bytes()
}

func TestRunDirectCoordItem(t *testing.T) {
	line := fmt.Sprintf(`{"type":"item","id":"Q1","labels":{"en":{"value":"Direct"}},"claims":{"P31":[{"mainsnak":{"datavalue":{"value":{"id":"Q12518"}}}}],"P625":[{"mainsnak":{"datavalue":{"value":{"latitude":1.0,"longitude":2.0}}}}],"P585":[{"mainsnak":{"datavalue":{"value":{"time":"+2020-01-02T00:00:00Z"}}}}]},"_pad":"%s"}`, pad())

	src := bytes.NewReader(gzipLines(t, line))

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := Run(ctx, src, st, Config{Workers: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.ItemsPersisted != 1 {
		t.Errorf("ItemsPersisted = %d, want 1", stats.ItemsPersisted)
	}

	info, err := st.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if info.ItemRows != 1 {
		t.Errorf("ItemRows = %d, want 1", info.ItemRows)
	}
}

func TestRunSecondPassLocationResolution(t *testing.T) {
	// Q2 has no coord of its own but points at Q3 (location) for it. Q3
	// carries the coord. Q2 must surface only after the first pass
	// completes and the resolver runs its second pass.
	itemWithLoc := fmt.Sprintf(`{"type":"item","id":"Q2","labels":{"en":{"value":"Indirect"}},"claims":{"P31":[{"mainsnak":{"datavalue":{"value":{"id":"Q1656682"}}}}],"P276":[{"mainsnak":{"datavalue":{"value":{"id":"Q3"}}}}],"P585":[{"mainsnak":{"datavalue":{"value":{"time":"+2021-03-04T00:00:00Z"}}}}]},"_pad":"%s"}`, pad())
	itemWithCoord := fmt.Sprintf(`{"type":"item","id":"Q3","labels":{"en":{"value":"Place"}},"claims":{"P31":[{"mainsnak":{"datavalue":{"value":{"id":"Q12518"}}}}],"P625":[{"mainsnak":{"datavalue":{"value":{"latitude":5.0,"longitude":6.0}}}}]},"_pad":"%s"}`, pad())

	src := bytes.NewReader(gzipLines(t, itemWithLoc, itemWithCoord))

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := Run(ctx, src, st, Config{Workers: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.ItemsPersisted == 0 {
		t.Fatal("expected at least the location-bearing item to persist")
	}

	info, err := st.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if info.ItemRows == 0 {
		t.Error("expected at least one row in items")
	}
}

func TestRunEmptyInputProducesNoRows(t *testing.T) {
	src := bytes.NewReader(gzipLines(t))

	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := Run(ctx, src, st, Config{Workers: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.ItemsPersisted != 0 {
		t.Errorf("ItemsPersisted = %d, want 0", stats.ItemsPersisted)
	}
}
