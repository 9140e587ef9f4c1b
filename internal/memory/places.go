// Place store operations: the three access indices and the two cached
// sort orders.
package memory

import (
	"sort"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

// AddPlace inserts a new place. Returns ErrInvalidPlaceType for an
// unrecognized type and ErrDuplicateID if the id is already in use.
func (c *Catalog) AddPlace(id types.PlaceID, name string, t types.PlaceType, at types.Coord) error {
	if !types.ValidPlaceType(t) {
		return types.ErrInvalidPlaceType
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.places[id]; ok {
		return types.ErrDuplicateID
	}

	p := &types.Place{ID: id, Name: name, Type: t, At: at}
	c.places[id] = p
	c.placesByName[name] = append(c.placesByName[name], p)
	c.placesByType[t] = append(c.placesByType[t], p)

	// Inserting changes the population of both sorted views.
	c.alphaSorted = false
	c.distSorted = false
	return nil
}

// Place returns a copy of the place with the given id.
func (c *Catalog) Place(id types.PlaceID) (types.Place, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.places[id]
	if !ok {
		return types.Place{}, types.ErrNotFound
	}
	return *p, nil
}

// AllPlaces returns every place id. Order is not specified.
func (c *Catalog) AllPlaces() []types.PlaceID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]types.PlaceID, 0, len(c.places))
	for id := range c.places {
		ids = append(ids, id)
	}
	return ids
}

// RenamePlace changes a place's name, re-keying the by-name index. Only
// the alphabetical view is invalidated.
func (c *Catalog) RenamePlace(id types.PlaceID, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.places[id]
	if !ok {
		return types.ErrNotFound
	}

	c.placesByName[p.Name] = dropPlace(c.placesByName[p.Name], id)
	if len(c.placesByName[p.Name]) == 0 {
		delete(c.placesByName, p.Name)
	}
	p.Name = name
	c.placesByName[name] = append(c.placesByName[name], p)

	c.alphaSorted = false
	return nil
}

// MovePlace changes a place's coordinate. Only the distance-ordered view
// is invalidated.
func (c *Catalog) MovePlace(id types.PlaceID, to types.Coord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.places[id]
	if !ok {
		return types.ErrNotFound
	}
	p.At = to

	c.distSorted = false
	return nil
}

// RemovePlace deletes a place from all three indices.
func (c *Catalog) RemovePlace(id types.PlaceID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.places[id]
	if !ok {
		return types.ErrNotFound
	}

	c.placesByName[p.Name] = dropPlace(c.placesByName[p.Name], id)
	if len(c.placesByName[p.Name]) == 0 {
		delete(c.placesByName, p.Name)
	}
	c.placesByType[p.Type] = dropPlace(c.placesByType[p.Type], id)
	if len(c.placesByType[p.Type]) == 0 {
		delete(c.placesByType, p.Type)
	}
	delete(c.places, id)

	c.alphaSorted = false
	c.distSorted = false
	return nil
}

// FindPlacesByName returns the ids of every place with exactly the given
// name, in index order.
func (c *Catalog) FindPlacesByName(name string) []types.PlaceID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return placeIDs(c.placesByName[name])
}

// FindPlacesByType returns the ids of every place with the given type, in
// index order.
func (c *Catalog) FindPlacesByType(t types.PlaceType) []types.PlaceID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return placeIDs(c.placesByType[t])
}

// PlacesAlphabetically returns all place ids ordered by name. Ties keep
// their collection order. The result is cached until the next mutation
// that can change a name or the place set.
func (c *Catalog) PlacesAlphabetically() []types.PlaceID {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.alphaSorted {
		c.alphaCache = c.sortedPlaceIDs(func(a, b *types.Place) bool {
			return a.Name < b.Name
		})
		c.alphaSorted = true
	}
	return append([]types.PlaceID(nil), c.alphaCache...)
}

// PlacesByDistance returns all place ids under the coordinate ordering
// relation: origin distance first, then ascending Y. The result is cached
// until the next mutation that can change a coordinate or the place set.
func (c *Catalog) PlacesByDistance() []types.PlaceID {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.distSorted {
		c.distCache = c.sortedPlaceIDs(func(a, b *types.Place) bool {
			return a.At.Less(b.At)
		})
		c.distSorted = true
	}
	return append([]types.PlaceID(nil), c.distCache...)
}

// sortedPlaceIDs rebuilds a sorted view from scratch. Callers hold the
// write lock.
func (c *Catalog) sortedPlaceIDs(less func(a, b *types.Place) bool) []types.PlaceID {
	all := make([]*types.Place, 0, len(c.places))
	for _, p := range c.places {
		all = append(all, p)
	}
	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
	return placeIDs(all)
}

// dropPlace removes the entry with the given id from an index bucket.
// IDs are unique, so at most one entry matches.
func dropPlace(bucket []*types.Place, id types.PlaceID) []*types.Place {
	for i, p := range bucket {
		if p.ID == id {
			return append(bucket[:i], bucket[i+1:]...)
		}
	}
	return bucket
}

func placeIDs(bucket []*types.Place) []types.PlaceID {
	ids := make([]types.PlaceID, 0, len(bucket))
	for _, p := range bucket {
		ids = append(ids, p.ID)
	}
	return ids
}
