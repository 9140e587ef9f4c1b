// Proximity query: bounded nearest-neighbor scan keeping the three
// closest candidates.
package memory

import "github.com/mesh-intelligence/gazetteer/pkg/types"

// slot is one of the three currently-closest candidates.
type slot struct {
	dist float64
	p    *types.Place
}

// beats reports whether a candidate at the given distance displaces the
// slot's occupant: strictly closer, or equally distant with a strictly
// smaller Y coordinate.
func (s slot) beats(dist float64, p *types.Place) bool {
	return dist < s.dist || (dist == s.dist && p.At.Y < s.p.At.Y)
}

// PlacesClosestTo returns up to the three places nearest to the
// coordinate, closest first, restricted to one type unless the filter is
// PlaceTypeNone. Candidates are admitted one by one against the first,
// second, then third slot, each with the distance-then-lower-Y rule; the
// resulting ranking is deterministic per admission order but not a
// globally stable top-3 sort.
func (c *Catalog) PlacesClosestTo(at types.Coord, t types.PlaceType) []types.PlaceID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var first, second, third slot

	admit := func(p *types.Place) {
		dist := at.DistanceTo(p.At)
		switch {
		case first.p == nil:
			first = slot{dist, p}
		case first.beats(dist, p):
			third = second
			second = first
			first = slot{dist, p}
		case second.p == nil:
			second = slot{dist, p}
		case second.beats(dist, p):
			third = second
			second = slot{dist, p}
		case third.p == nil:
			third = slot{dist, p}
		case third.beats(dist, p):
			third = slot{dist, p}
		}
	}

	if t == types.PlaceTypeNone {
		for _, p := range c.places {
			admit(p)
		}
	} else {
		for _, p := range c.placesByType[t] {
			admit(p)
		}
	}

	var ids []types.PlaceID
	for _, s := range []slot{first, second, third} {
		if s.p == nil {
			break
		}
		ids = append(ids, s.p.ID)
	}
	return ids
}
