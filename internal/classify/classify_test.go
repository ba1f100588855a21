package classify

import (
	"testing"

	"github.com/wikigeo/geohist/internal/item"
	"github.com/wikigeo/geohist/internal/wikidate"
)

func qid(q uint32) *uint32 { return &q }

func date(y int16, m, d uint8) *wikidate.Date {
	dt := wikidate.Date{Year: y, Month: m, Day: d}
	return &dt
}

func TestClassifyKeepsSimpleItem(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{12518},
		Date:    date(2020, 1, 2),
	}
	v := Classify(it)
	if !v.Keep {
		t.Fatal("expected keep")
	}
	if v.Class != 12518 {
		t.Errorf("class = %d, want 12518", v.Class)
	}
	if v.MinT != 20200102 || v.MaxT != 20200102 {
		t.Errorf("minT/maxT = %d/%d, want 20200102/20200102", v.MinT, v.MaxT)
	}
	if v.Broken {
		t.Error("should not be broken")
	}
}

func TestClassifyDropsIgnoredClass(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{3887}, // solar eclipse, in ignore set
		Date:    date(2020, 1, 2),
	}
	if Classify(it).Keep {
		t.Error("expected drop for ignored class")
	}
}

func TestClassifyBrokenRange(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{12518},
		Start:   date(2021, 1, 2),
		End:     date(2020, 1, 1),
	}
	v := Classify(it)
	if !v.Keep {
		t.Fatal("expected keep (broken rows are still kept, just flagged)")
	}
	if !v.Broken {
		t.Error("expected broken=true for inverted range")
	}
}

func TestClassifyPromotionRule(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{classEvent, 12518}, // event, then bridge
		Date:    date(2020, 1, 1),
	}
	v := Classify(it)
	if !v.Keep {
		t.Fatal("expected keep")
	}
	if v.Class != 12518 {
		t.Errorf("class = %d, want 12518 (promoted)", v.Class)
	}
}

func TestClassifyRemap(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{104212151}, // series of wars -> war (198)
		Date:    date(2020, 1, 1),
	}
	v := Classify(it)
	if !v.Keep {
		t.Fatal("expected keep")
	}
	if v.Class != 198 {
		t.Errorf("class = %d, want 198 (remapped)", v.Class)
	}
}

func TestClassifyDropsBoolFlags(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{12518},
		Date:    date(2020, 1, 1),
		Sport:   true,
	}
	if Classify(it).Keep {
		t.Error("expected drop when Sport is set")
	}
}

func TestClassifyDropsCyclingRaceSubClass(t *testing.T) {
	it := &item.Item{
		Classes:    []uint32{12518},
		SubClassOf: qid(classCyclingRaceA),
		Date:       date(2020, 1, 1),
	}
	if Classify(it).Keep {
		t.Error("expected drop for cycling race sub_class_of")
	}
}

func TestClassifyOfficeRequiresCountryEqualsJuri(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{12518},
		Office:  qid(1),
		Country: qid(10),
		Juri:    qid(20),
		Date:    date(2020, 1, 1),
	}
	if Classify(it).Keep {
		t.Error("expected drop when country != juri")
	}

	it2 := &item.Item{
		Classes: []uint32{12518},
		Office:  qid(1),
		Country: qid(10),
		Juri:    qid(10),
		Date:    date(2020, 1, 1),
	}
	v := Classify(it2)
	if !v.Keep {
		t.Fatal("expected keep when country == juri")
	}
	if v.Class != classPublicElection {
		t.Errorf("class = %d, want public election %d", v.Class, classPublicElection)
	}
}

func TestClassifyOfficeBothAbsentCountsAsEqual(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{12518},
		Office:  qid(1),
		Date:    date(2020, 1, 1),
	}
	v := Classify(it)
	if !v.Keep {
		t.Fatal("expected keep when both country and juri are absent (optional equality)")
	}
}

func TestClassifyDateGuards(t *testing.T) {
	it := &item.Item{
		Classes: []uint32{classConcert},
		Date:    date(2020, 1, 1), // after 1926-01-01 cutoff
	}
	if Classify(it).Keep {
		t.Error("expected drop for concert after cutoff")
	}

	it2 := &item.Item{
		Classes: []uint32{classConcert},
		Date:    date(1900, 1, 1),
	}
	if !Classify(it2).Keep {
		t.Error("expected keep for concert before cutoff")
	}
}

func TestTimeRangeDateOnly(t *testing.T) {
	it := &item.Item{Date: date(2020, 1, 2)}
	minT, maxT := TimeRange(it)
	want := int32(20200102)
	if minT != want || maxT != want {
		t.Errorf("minT/maxT = %d/%d, want %d/%d", minT, maxT, want, want)
	}
}

func TestTimeRangeStartOnly(t *testing.T) {
	it := &item.Item{Start: date(2020, 1, 2)}
	minT, maxT := TimeRange(it)
	if minT != maxT {
		t.Errorf("expected maxT == minT when only start is present, got %d/%d", minT, maxT)
	}
}
