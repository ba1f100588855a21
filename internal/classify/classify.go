// Package classify implements the keep/drop decision and final class choice
// for one Item, branch for branch against the full taxonomy decision table.
package classify

import (
	"github.com/wikigeo/geohist/internal/item"
	"github.com/wikigeo/geohist/internal/taxonomy"
)

// Class QIDs named directly by the decision table.
const (
	classCyclingRaceA    = 22231119
	classCyclingRaceB    = 60181400
	classConvention      = 625994
	classMeeting         = 2761147
	classLocalElection   = 15966540
	classLeadersDebate   = 6508605
	classGroupOfElection = 76853179
	classEvent           = 1656682
	classPublicElection  = 40231
	classConcert         = 182832
	classSquare          = 174782
	classMonument        = 4989906
	classOccurrence      = 1190554
	classIncident        = 12890393
	classLegalCase       = 2334719
)

// Date thresholds (packed, comparable the same way Pack sorts) beyond
// which the matching class guard drops the item.
const (
	concertCutoff  = 19260101
	squareCutoff   = 16260101
	monumentCutoff = 19160101
)

// Verdict is the outcome of classifying one Item.
type Verdict struct {
	Keep   bool
	Class  uint32
	MinT   int32
	MaxT   int32
	Broken bool
}

// TimeRange computes (minT, maxT) for an item.
func TimeRange(it *item.Item) (minT, maxT int32) {
	var s, e int32
	if it.Start != nil {
		s = it.Start.Pack()
	}
	if it.End != nil {
		e = it.End.Pack()
	}
	if s == 0 {
		s = e
	}
	if e == 0 {
		e = s
	}
	if (s == 0 || s > e) && it.Date != nil {
		d := it.Date.Pack()
		s, e = d, d
	}
	return s, e
}

// optQIDEqual compares two optional QIDs: equal if both absent, or both
// present with the same value.
func optQIDEqual(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func isOneOf(c uint32, options ...uint32) bool {
	for _, o := range options {
		if c == o {
			return true
		}
	}
	return false
}

// Classify runs the full keep/drop and class-choice decision table against
// it, assuming it has already passed the Item.Valid predicate and so has a
// non-empty Classes slice.
func Classify(it *item.Item) Verdict {
	if it.Sport || it.CompClass || it.Season || it.Winner || it.Dist ||
		it.ListOf || it.HqLoc || it.Maintainer || it.Population || it.Genre || it.Format {
		return Verdict{}
	}

	if it.SubClassOf != nil && isOneOf(*it.SubClassOf, classCyclingRaceA, classCyclingRaceB) {
		return Verdict{}
	}

	if taxonomy.AnyIgnored(it.Classes) {
		return Verdict{}
	}

	c := it.Classes[0]

	if (it.FacetOf || it.Series) && isOneOf(c, classConvention, classMeeting) {
		return Verdict{}
	}

	if it.HasPart != nil && isOneOf(*it.HasPart, classLocalElection, classLeadersDebate) {
		return Verdict{}
	}

	if it.PartOf != nil {
		if it.Office != nil || it.Juri != nil || c == classGroupOfElection {
			return Verdict{}
		}
		if c == classEvent && taxonomy.IsIgnored(*it.PartOf) {
			return Verdict{}
		}
	}

	if it.Office != nil {
		if !optQIDEqual(it.Country, it.Juri) {
			return Verdict{}
		}
		c = classPublicElection
	}

	if isOneOf(c, classConvention, classEvent) {
		if it.PartOf != nil || it.Website || it.DescribeURL {
			return Verdict{}
		}
		if it.Organizer != nil && taxonomy.IsIgnored(*it.Organizer) {
			return Verdict{}
		}
	}

	minT, maxT := TimeRange(it)

	switch {
	case c == classConcert && minT > concertCutoff:
		return Verdict{}
	case c == classSquare && minT > squareCutoff:
		return Verdict{}
	case c == classMonument && minT > monumentCutoff:
		return Verdict{}
	}

	// Promotion rule: elevate once to classes[1] if present; do not
	// recurse if the promoted class is itself generic or ignored.
	if isOneOf(c, classOccurrence, classIncident, classLegalCase, classEvent) {
		if len(it.Classes) > 1 {
			c = it.Classes[1]
		} else if c == classLegalCase {
			return Verdict{}
		}
	}

	c = taxonomy.Remap(c)

	return Verdict{
		Keep:   true,
		Class:  c,
		MinT:   minT,
		MaxT:   maxT,
		Broken: minT > maxT,
	}
}
