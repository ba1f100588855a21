package store

import (
	"context"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenBootstrapsSchema(t *testing.T) {
	s := openTest(t)
	info, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if info.ItemRows != 0 || info.BrokenRows != 0 || info.ClassRows != 0 {
		t.Errorf("expected empty tables on fresh open, got %+v", info)
	}
}

func TestInsertWellFormedRow(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	err = tx.Insert(ctx, Row{ID: 1, LonE7: 20000000, LatE7: 10000000, MinT: 20200102, MaxT: 20200102, Title: "P", Class: 12518})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	info, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if info.ItemRows != 1 {
		t.Errorf("ItemRows = %d, want 1", info.ItemRows)
	}
	if info.BrokenRows != 0 {
		t.Errorf("BrokenRows = %d, want 0", info.BrokenRows)
	}
}

func TestInsertBrokenRow(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	err = tx.Insert(ctx, Row{ID: 2, MinT: 20210102, MaxT: 20200101, Title: "Q", Class: 1, Broken: true})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	info, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if info.BrokenRows != 1 {
		t.Errorf("BrokenRows = %d, want 1", info.BrokenRows)
	}
	if info.ItemRows != 0 {
		t.Errorf("ItemRows = %d, want 0", info.ItemRows)
	}
}

func TestWriteClassStats(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	if err := s.WriteClassStats(ctx, ClassStats{12518: 3, 198: 7}); err != nil {
		t.Fatalf("WriteClassStats: %v", err)
	}

	counts, err := s.ClassCounts()
	if err != nil {
		t.Fatalf("ClassCounts: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("got %d class rows, want 2", len(counts))
	}
	if counts[0].ID != 198 || counts[0].Cnt != 7 {
		t.Errorf("expected highest count first, got %+v", counts[0])
	}
}

func TestCommitAndBegin(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	tx, err := s.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := tx.Insert(ctx, Row{ID: uint32(i), MinT: 1, MaxT: 1, Class: 1}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	tx, err = tx.CommitAndBegin(ctx, s)
	if err != nil {
		t.Fatalf("CommitAndBegin: %v", err)
	}
	if err := tx.Insert(ctx, Row{ID: 99, MinT: 1, MaxT: 1, Class: 1}); err != nil {
		t.Fatalf("Insert after rebegin: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("final Commit: %v", err)
	}

	info, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if info.ItemRows != 4 {
		t.Errorf("ItemRows = %d, want 4", info.ItemRows)
	}
}
