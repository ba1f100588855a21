package locate

import (
	"testing"

	"github.com/wikigeo/geohist/internal/geo"
	"github.com/wikigeo/geohist/internal/item"
	"github.com/wikigeo/geohist/internal/wikidate"
)

func qid(q uint32) *uint32 { return &q }

func coord(lon, lat float64) *geo.Coord {
	c := geo.FromDegrees(lon, lat)
	return &c
}

func TestObserveCoordAndTimeResolvesImmediately(t *testing.T) {
	r := New()
	it := &item.Item{ID: 1, Coord: coord(1, 1), Date: &wikidate.Date{Year: 2020, Month: 1, Day: 1}}
	resolved, ok := r.Observe(it)
	if !ok || resolved != it {
		t.Fatal("expected immediate resolution")
	}
}

func TestObserveCoordOnlyBecomesSource(t *testing.T) {
	r := New()
	it := &item.Item{ID: 100, Coord: coord(5, 6)}
	resolved, ok := r.Observe(it)
	if ok || resolved != nil {
		t.Fatal("expected coord-only item to be dropped from this pass")
	}
	if r.locs[100].Coord == nil {
		t.Fatal("expected entry 100 to learn the coordinate")
	}
}

func TestScenario3SecondPassResolution(t *testing.T) {
	r := New()

	loc := qid(100)
	b := &item.Item{ID: 2, Location: loc, Date: &wikidate.Date{Year: 2020, Month: 1, Day: 1}}
	resolved, ok := r.Observe(b)
	if ok {
		t.Fatal("B should be pending, coord for 100 not yet known when observed in this order")
	}
	_ = resolved

	a := &item.Item{ID: 100, Coord: coord(10, 20)}
	if _, ok := r.Observe(a); ok {
		t.Fatal("A should not resolve immediately")
	}

	var persisted []*item.Item
	r.Resolve(func(it *item.Item) { persisted = append(persisted, it) })

	if len(persisted) != 1 || persisted[0].ID != 2 {
		t.Fatalf("expected B to be resolved in second pass, got %v", persisted)
	}
	if persisted[0].Coord == nil {
		t.Fatal("expected B to inherit A's coordinate")
	}
	lon, lat := persisted[0].Coord.Degrees()
	if lon != 10 || lat != 20 {
		t.Errorf("coord = (%v,%v), want (10,20)", lon, lat)
	}
}

func TestObserveResolvesImmediatelyWhenCoordAlreadyKnown(t *testing.T) {
	r := New()
	a := &item.Item{ID: 100, Coord: coord(10, 20)}
	r.Observe(a)

	loc := qid(100)
	b := &item.Item{ID: 2, Location: loc, Date: &wikidate.Date{Year: 2020, Month: 1, Day: 1}}
	resolved, ok := r.Observe(b)
	if !ok || resolved != b {
		t.Fatal("expected B to resolve immediately since A's coord was already known")
	}
}

func TestResolveDiscardsEntriesWithoutCoord(t *testing.T) {
	r := New()
	loc := qid(999)
	b := &item.Item{ID: 2, Location: loc, Date: &wikidate.Date{Year: 2020, Month: 1, Day: 1}}
	r.Observe(b)

	var persisted []*item.Item
	r.Resolve(func(it *item.Item) { persisted = append(persisted, it) })
	if len(persisted) != 0 {
		t.Errorf("expected no items resolved when coord never arrives, got %v", persisted)
	}
}

func TestFirstLocationQIDPriorityOrder(t *testing.T) {
	loc, street := qid(1), qid(2)
	it := &item.Item{Location: loc, Street: street}
	got, ok := firstLocationQID(it)
	if !ok || got != 1 {
		t.Errorf("expected location to take priority over street, got %d", got)
	}
}
