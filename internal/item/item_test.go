package item

import (
	"testing"

	"github.com/wikigeo/geohist/internal/geo"
	"github.com/wikigeo/geohist/internal/wikidate"
)

func nonNilCoord() *geo.Coord {
	c := geo.FromDegrees(1, 1)
	return &c
}

func nonNilDate() *wikidate.Date {
	d := wikidate.Date{Year: 2020, Month: 1, Day: 1}
	return &d
}

func TestParseScenario1(t *testing.T) {
	line := []byte(`{"type":"item","id":"Q1","labels":{"en":{"value":"P"}},"claims":{"P31":[{"mainsnak":{"datavalue":{"value":{"id":"Q12518"}}}}],"P625":[{"mainsnak":{"datavalue":{"value":{"latitude":1.0,"longitude":2.0}}}}],"P585":[{"mainsnak":{"datavalue":{"value":{"time":"+2020-01-02T00:00:00Z"}}}}]}}`)

	it, ok, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ok {
		t.Fatal("expected item to be valid")
	}
	if it.ID != 1 {
		t.Errorf("ID = %d, want 1", it.ID)
	}
	if it.Title != "P" {
		t.Errorf("Title = %q, want %q", it.Title, "P")
	}
	if len(it.Classes) != 1 || it.Classes[0] != 12518 {
		t.Errorf("Classes = %v, want [12518]", it.Classes)
	}
	if it.Coord == nil {
		t.Fatal("expected coord")
	}
	lon, lat := it.Coord.Degrees()
	if lon != 2.0 || lat != 1.0 {
		t.Errorf("coord = (%v,%v), want (2,1)", lon, lat)
	}
	if it.Date == nil || it.Date.Year != 2020 || it.Date.Month != 1 || it.Date.Day != 2 {
		t.Errorf("Date = %+v, want 2020-01-02", it.Date)
	}
}

func TestParseRejectsNonItem(t *testing.T) {
	line := []byte(`{"type":"property","id":"P31"}`)
	_, ok, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ok {
		t.Error("expected property record to be rejected")
	}
}

func TestParseRejectsInvalidItem(t *testing.T) {
	// Has a class but no coord and no time/location: fails the Valid predicate.
	line := []byte(`{"type":"item","id":"Q2","labels":{"en":{"value":"x"}},"claims":{"P31":[{"mainsnak":{"datavalue":{"value":{"id":"Q5"}}}}]}}`)
	_, ok, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ok {
		t.Error("expected invalid item to be rejected")
	}
}

func TestParseBoolPresenceFields(t *testing.T) {
	line := []byte(`{"type":"item","id":"Q3","claims":{"P31":[{"mainsnak":{"datavalue":{"value":{"id":"Q5"}}}}],"P625":[{"mainsnak":{"datavalue":{"value":{"latitude":1,"longitude":1}}}}],"P641":[{}],"P159":[{}]}}`)
	it, ok, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ok {
		t.Fatal("expected item to be valid (has coord)")
	}
	if !it.Sport {
		t.Error("expected Sport=true from P641 presence")
	}
	if !it.HqLoc {
		t.Error("expected HqLoc=true from P159 presence")
	}
}

func TestParseFirstPresentQIDOnly(t *testing.T) {
	line := []byte(`{"type":"item","id":"Q4","claims":{"P31":[{"mainsnak":{"datavalue":{"value":{"id":"Q5"}}}}],"P625":[{"mainsnak":{"datavalue":{"value":{"latitude":1,"longitude":1}}}}],"P276":[{"mainsnak":{"datavalue":{"value":{"id":"Q100"}}}},{"mainsnak":{"datavalue":{"value":{"id":"Q200"}}}}]}}`)
	it, ok, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !ok {
		t.Fatal("expected item valid")
	}
	if it.Location == nil || *it.Location != 100 {
		t.Errorf("Location = %v, want 100 (first present)", it.Location)
	}
}

func TestValidPredicate(t *testing.T) {
	loc := uint32(1)
	cases := []struct {
		name string
		it   Item
		want bool
	}{
		{"coord only", Item{Coord: nonNilCoord()}, true},
		{"time+location", Item{Date: nonNilDate(), Location: &loc}, true},
		{"time only, no location", Item{Date: nonNilDate()}, false},
		{"neither", Item{}, false},
	}
	for _, c := range cases {
		if got := c.it.Valid(); got != c.want {
			t.Errorf("%s: Valid() = %v, want %v", c.name, got, c.want)
		}
	}
}
