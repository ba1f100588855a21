// Package locate implements the two-pass location resolver:
// items that carry a time but no coordinate are matched, by QID, against
// coordinates learned from other items during the same intake pass.
package locate

import (
	"github.com/wikigeo/geohist/internal/geo"
	"github.com/wikigeo/geohist/internal/item"
)

// Entry is the per-QID location-resolution record: a coordinate (once
// learned) and the items still waiting for it.
type Entry struct {
	Coord   *geo.Coord
	Pending []*item.Item
}

// Resolver accumulates LocationEntry records across the whole intake pass
// and resolves pending items once all input has been seen. It is not
// goroutine-safe; the persister owns it exclusively.
type Resolver struct {
	locs map[uint32]*Entry
}

// New creates an empty Resolver.
func New() *Resolver {
	return &Resolver{locs: make(map[uint32]*Entry)}
}

func (r *Resolver) entry(id uint32) *Entry {
	e, ok := r.locs[id]
	if !ok {
		e = &Entry{}
		r.locs[id] = e
	}
	return e
}

// Observe runs the first-pass resolution rule for it. It returns (resolved
// item, true) when it can be persisted now — either because it already
// carried a coordinate and a time, or because its location QID's coordinate
// was already known. It returns (nil, false) when it was either consumed as
// a pure coordinate source or queued as pending for a second pass.
func (r *Resolver) Observe(it *item.Item) (*item.Item, bool) {
	if it.Coord != nil && it.HasTime() {
		return it, true
	}

	if it.Coord != nil {
		r.entry(it.ID).Coord = it.Coord
		return nil, false
	}

	locID, ok := firstLocationQID(it)
	if !ok {
		// The Item.Valid predicate guarantees this cannot happen for a
		// valid item lacking a coordinate.
		return nil, false
	}

	e := r.entry(locID)
	if e.Coord != nil {
		it.Coord = e.Coord
		return it, true
	}

	e.Pending = append(e.Pending, it)
	return nil, false
}

// firstLocationQID returns the first-present QID among
// (location, street, admin, juri, country).
func firstLocationQID(it *item.Item) (uint32, bool) {
	switch {
	case it.Location != nil:
		return *it.Location, true
	case it.Street != nil:
		return *it.Street, true
	case it.Admin != nil:
		return *it.Admin, true
	case it.Juri != nil:
		return *it.Juri, true
	case it.Country != nil:
		return *it.Country, true
	default:
		return 0, false
	}
}

// Resolve runs the second pass: for every Entry with a known coordinate,
// yields its pending items (with Coord assigned) to fn. Entries without a
// coordinate are discarded along with their pending items, which are
// unresolvable.
func (r *Resolver) Resolve(fn func(*item.Item)) {
	for _, e := range r.locs {
		if e.Coord == nil {
			continue
		}
		for _, it := range e.Pending {
			it.Coord = e.Coord
			fn(it)
		}
	}
}
