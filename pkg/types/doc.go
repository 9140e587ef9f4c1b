// Package types defines the Catalog interface, entity types, and standard
// error values for the Gazetteer geospatial catalog.
// Implements: docs/ARCHITECTURE § Main Interface, § System Components.
package types
