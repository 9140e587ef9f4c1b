// Package memory implements the in-memory Catalog backend: the place
// store with its three indices and lazily-rebuilt sort caches, the area
// containment forest, the road network with its crossroad records, and
// the route and proximity queries over them.
// Implements: docs/ARCHITECTURE § In-Memory Backend.
package memory

import (
	"sync"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

// area is the arena record for one area. Parent and child links are
// AreaID handles into the catalog's area map, never pointers.
type area struct {
	data      types.Area
	parent    types.AreaID
	hasParent bool
	children  []types.AreaID
}

// crossroad holds the transient search bookkeeping for one way endpoint.
// Both fields are reset before every route search and mutated only while
// that search runs.
type crossroad struct {
	visited bool
	dist    types.Distance
}

// Catalog is the in-memory implementation of types.Catalog. The mutex
// serializes all access; route searches take the write lock for the whole
// call because they mutate the shared crossroad state, so at most one
// search runs at a time.
type Catalog struct {
	mu sync.RWMutex

	// Place storage. The three indices always agree on membership: a
	// place ID present in one is present in all of them.
	places       map[types.PlaceID]*types.Place
	placesByName map[string][]*types.Place
	placesByType map[types.PlaceType][]*types.Place

	// Sorted views, rebuilt on demand when the matching flag is down.
	alphaSorted bool
	distSorted  bool
	alphaCache  []types.PlaceID
	distCache   []types.PlaceID

	// Area forest.
	areas map[types.AreaID]*area

	// Road network. waysByEnd holds one entry per way endpoint, so a
	// loop way appears twice under the same coordinate. crossroads has
	// exactly one record per coordinate with at least one incident way.
	ways       map[types.WayID]*types.Way
	waysByEnd  map[types.Coord][]*types.Way
	crossroads map[types.Coord]*crossroad
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		places:       make(map[types.PlaceID]*types.Place),
		placesByName: make(map[string][]*types.Place),
		placesByType: make(map[types.PlaceType][]*types.Place),
		areas:        make(map[types.AreaID]*area),
		ways:         make(map[types.WayID]*types.Way),
		waysByEnd:    make(map[types.Coord][]*types.Way),
		crossroads:   make(map[types.Coord]*crossroad),
	}
}

// PlaceCount returns the number of stored places.
func (c *Catalog) PlaceCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.places)
}

// ClearAll removes every place and every area. The road network is left
// untouched; ClearWays resets it independently.
func (c *Catalog) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.places = make(map[types.PlaceID]*types.Place)
	c.placesByName = make(map[string][]*types.Place)
	c.placesByType = make(map[types.PlaceType][]*types.Place)
	c.areas = make(map[types.AreaID]*area)
	c.alphaSorted = false
	c.distSorted = false
	c.alphaCache = nil
	c.distCache = nil
}

// ClearWays removes every way, the endpoint index, and all crossroad
// records. Places and areas are left untouched.
func (c *Catalog) ClearWays() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ways = make(map[types.WayID]*types.Way)
	c.waysByEnd = make(map[types.Coord][]*types.Way)
	c.crossroads = make(map[types.Coord]*crossroad)
}
