// Package item defines the in-memory Item record produced by the streaming
// JSON extractor and the recursive-descent extraction itself.
package item

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/wikigeo/geohist/internal/geo"
	"github.com/wikigeo/geohist/internal/wikidate"
)

// Item is the transient record a parser worker extracts from one JSON line
// and hands to the classifier/location-resolver.
type Item struct {
	ID    uint32
	Title string

	Classes []uint32

	SubClassOf *uint32
	PartOf     *uint32
	HasPart    *uint32
	Organizer  *uint32
	Office     *uint32
	Location   *uint32
	Street     *uint32
	Admin      *uint32
	Juri       *uint32
	Country    *uint32

	Sport       bool
	CompClass   bool
	Season      bool
	FacetOf     bool
	Series      bool
	Winner      bool
	Dist        bool
	ListOf      bool
	HqLoc       bool
	Maintainer  bool
	Population  bool
	Genre       bool
	Format      bool
	Website     bool
	DescribeURL bool

	Coord *geo.Coord

	Date  *wikidate.Date
	Start *wikidate.Date
	End   *wikidate.Date
}

// HasTime reports whether the item carries any of date/start/end.
func (it *Item) HasTime() bool {
	return it.Date != nil || it.Start != nil || it.End != nil
}

// Valid reports whether the item carries either a coordinate, or a time
// plus some location reference.
func (it *Item) Valid() bool {
	if it.Coord != nil {
		return true
	}
	if !it.HasTime() {
		return false
	}
	return it.Location != nil || it.Street != nil || it.Admin != nil || it.Country != nil
}

// String renders a diagnostic one-line dump of the item, used only by the
// persister's non-fatal error log line when a bind/exec fails on this row.
func (it *Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Q%d %q classes=%v", it.ID, it.Title, it.Classes)
	if it.Coord != nil {
		lon, lat := it.Coord.Degrees()
		fmt.Fprintf(&b, " coord=(%.7f,%.7f)", lon, lat)
	}
	if it.Date != nil {
		fmt.Fprintf(&b, " date=%s", it.Date.String())
	}
	if it.Start != nil {
		fmt.Fprintf(&b, " start=%s", it.Start.String())
	}
	if it.End != nil {
		fmt.Fprintf(&b, " end=%s", it.End.String())
	}
	return b.String()
}

// qidPattern-free parse: "Q12345" -> 12345.
func parseQID(s string) (uint32, bool) {
	if len(s) < 2 || (s[0] != 'Q' && s[0] != 'q') {
		return 0, false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s[1:], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// qidFieldSetters maps a claim property to the function that stores the
// first-present QID value of that claim on the item being built.
var qidFieldSetters = map[string]func(*Item, uint32){
	"P279":  func(it *Item, q uint32) { it.SubClassOf = &q },
	"P361":  func(it *Item, q uint32) { it.PartOf = &q },
	"P2670": func(it *Item, q uint32) { it.HasPart = &q },
	"P664":  func(it *Item, q uint32) { it.Organizer = &q },
	"P541":  func(it *Item, q uint32) { it.Office = &q },
	"P276":  func(it *Item, q uint32) { it.Location = &q },
	"P669":  func(it *Item, q uint32) { it.Street = &q },
	"P131":  func(it *Item, q uint32) { it.Admin = &q },
	"P1001": func(it *Item, q uint32) { it.Juri = &q },
	"P17":   func(it *Item, q uint32) { it.Country = &q },
}

// boolFieldSetters maps a presence-only claim property to the function that
// flips the matching bool on the item.
var boolFieldSetters = map[string]func(*Item){
	"P641":  func(it *Item) { it.Sport = true },
	"P2094": func(it *Item) { it.CompClass = true },
	"P3450": func(it *Item) { it.Season = true },
	"P1269": func(it *Item) { it.FacetOf = true },
	"P179":  func(it *Item) { it.Series = true },
	"P1346": func(it *Item) { it.Winner = true },
	"P3157": func(it *Item) { it.Dist = true },
	"P360":  func(it *Item) { it.ListOf = true },
	"P159":  func(it *Item) { it.HqLoc = true },
	"P126":  func(it *Item) { it.Maintainer = true },
	"P1082": func(it *Item) { it.Population = true },
	"P136":  func(it *Item) { it.Genre = true },
	"P437":  func(it *Item) { it.Format = true },
	"P856":  func(it *Item) { it.Website = true },
	"P973":  func(it *Item) { it.DescribeURL = true },
}

var api = jsoniter.ConfigFastest

// Parse extracts an Item from one JSON record line. It returns ok=false
// (with a nil error) when the record is well-formed JSON but fails the type
// check or the Item.Valid predicate — this is the expected "reject cheaply"
// path, not an error. A non-nil error indicates malformed JSON, which the
// caller treats as a dropped line.
func Parse(line []byte) (*Item, bool, error) {
	it := &Item{}
	var typeOK bool
	var badID bool
	var coordSet bool
	var lon, lat float64

	iter := api.BorrowIterator(line)
	defer api.ReturnIterator(iter)

	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		switch field {
		case "type":
			typeOK = iter.ReadString() == "item"
		case "id":
			s := iter.ReadString()
			q, ok := parseQID(s)
			if !ok {
				badID = true
				return false
			}
			it.ID = q
		case "labels":
			iter.ReadObjectCB(func(iter *jsoniter.Iterator, lang string) bool {
				if lang != "en" {
					iter.Skip()
					return true
				}
				iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
					if key == "value" {
						it.Title = iter.ReadString()
					} else {
						iter.Skip()
					}
					return true
				})
				return true
			})
		case "claims":
			iter.ReadObjectCB(func(iter *jsoniter.Iterator, prop string) bool {
				readClaim(iter, it, prop, &coordSet, &lon, &lat)
				return true
			})
		default:
			iter.Skip()
		}
		return true
	})

	if err := iter.Error; err != nil && err.Error() != "EOF" {
		return nil, false, fmt.Errorf("item: parsing line: %w", err)
	}
	if !typeOK || badID {
		return nil, false, nil
	}
	if coordSet {
		c := geo.FromDegrees(lon, lat)
		it.Coord = &c
	}
	if !it.Valid() {
		return nil, false, nil
	}
	return it, true, nil
}

// readClaim consumes one claims.<prop> array. prop drives which of the item-extraction
// field rules applies: class accumulation (P31), first-present QID capture,
// presence-only bool, coordinate extraction, or date parsing. Any property
// not named by the schema is skipped whole.
func readClaim(iter *jsoniter.Iterator, it *Item, prop string, coordSet *bool, lon, lat *float64) {
	if boolSet, ok := boolFieldSetters[prop]; ok {
		boolSet(it)
		iter.Skip()
		return
	}

	switch prop {
	case "P31":
		for iter.ReadArray() {
			q, ok := readClaimQID(iter)
			if ok {
				it.Classes = append(it.Classes, q)
			}
		}
		return
	case "P625":
		seen := false
		for iter.ReadArray() {
			if seen {
				iter.Skip()
				continue
			}
			la, lo, ok := readClaimCoord(iter)
			if ok {
				*lat, *lon = la, lo
				*coordSet = true
				seen = true
			}
		}
		return
	case "P585", "P580", "P582":
		seen := false
		for iter.ReadArray() {
			if seen {
				iter.Skip()
				continue
			}
			d, ok := readClaimDate(iter)
			if ok {
				switch prop {
				case "P585":
					it.Date = &d
				case "P580":
					it.Start = &d
				case "P582":
					it.End = &d
				}
				seen = true
			}
		}
		return
	}

	if setter, ok := qidFieldSetters[prop]; ok {
		seen := false
		for iter.ReadArray() {
			if seen {
				iter.Skip()
				continue
			}
			q, ok := readClaimQID(iter)
			if ok {
				setter(it, q)
				seen = true
			}
		}
		return
	}

	iter.Skip()
}

// readClaimQID reads one claim element's mainsnak.datavalue.value.id.
func readClaimQID(iter *jsoniter.Iterator) (uint32, bool) {
	var q uint32
	var ok bool
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		if key != "mainsnak" {
			iter.Skip()
			return true
		}
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			if key != "datavalue" {
				iter.Skip()
				return true
			}
			iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
				if key != "value" {
					iter.Skip()
					return true
				}
				iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
					if key == "id" {
						q, ok = parseQID(iter.ReadString())
					} else {
						iter.Skip()
					}
					return true
				})
				return true
			})
			return true
		})
		return true
	})
	return q, ok
}

// readClaimCoord reads one claim element's mainsnak.datavalue.value
// latitude/longitude pair.
func readClaimCoord(iter *jsoniter.Iterator) (lat, lon float64, ok bool) {
	var gotLat, gotLon bool
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		if key != "mainsnak" {
			iter.Skip()
			return true
		}
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			if key != "datavalue" {
				iter.Skip()
				return true
			}
			iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
				if key != "value" {
					iter.Skip()
					return true
				}
				iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
					switch key {
					case "latitude":
						lat = iter.ReadFloat64()
						gotLat = true
					case "longitude":
						lon = iter.ReadFloat64()
						gotLon = true
					default:
						iter.Skip()
					}
					return true
				})
				return true
			})
			return true
		})
		return true
	})
	return lat, lon, gotLat && gotLon
}

// readClaimDate reads one claim element's mainsnak.datavalue.value.time.
func readClaimDate(iter *jsoniter.Iterator) (wikidate.Date, bool) {
	var d wikidate.Date
	var ok bool
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		if key != "mainsnak" {
			iter.Skip()
			return true
		}
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			if key != "datavalue" {
				iter.Skip()
				return true
			}
			iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
				if key != "value" {
					iter.Skip()
					return true
				}
				iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
					if key == "time" {
						parsed, err := wikidate.Parse(iter.ReadString())
						if err == nil {
							d = parsed
							ok = true
						}
					} else {
						iter.Skip()
					}
					return true
				})
				return true
			})
			return true
		})
		return true
	})
	return d, ok
}
