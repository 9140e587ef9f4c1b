// Package catalog provides the public API for the in-memory Gazetteer
// catalog. It exposes the factory function while keeping implementation
// details internal.
// Implements: docs/ARCHITECTURE § Public API.
package catalog

import (
	"github.com/mesh-intelligence/gazetteer/internal/memory"
	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// New creates an empty catalog.
//
// Example:
//
//	c := catalog.New()
//	_ = c.AddPlace(1, "old mill", types.PlaceTypeOther, types.Coord{X: 2, Y: 3})
//	ids := c.PlacesAlphabetically()
func New() types.Catalog {
	return memory.New()
}
