// Shared helpers for gazetteer CLI commands: coordinate flag parsing and
// output formatting.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

// parseCoord parses an "x,y" flag value into a coordinate.
func parseCoord(s string) (types.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return types.Coord{}, fmt.Errorf("invalid coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return types.Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return types.Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	return types.Coord{X: x, Y: y}, nil
}

// parseCoords parses a semicolon-separated polyline flag value, e.g.
// "0,0;1,0;1,2".
func parseCoords(s string) ([]types.Coord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ";")
	coords := make([]types.Coord, 0, len(parts))
	for _, part := range parts {
		c, err := parseCoord(part)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// formatCoord renders a coordinate as (x,y).
func formatCoord(c types.Coord) string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printIDs prints a result id list, one per line, or as a JSON array in
// JSON mode.
func printIDs[T types.PlaceID | types.AreaID](ids []T) error {
	if flagJSON {
		if ids == nil {
			ids = []T{}
		}
		return printJSON(ids)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

// printWayIDs is printIDs for way ids.
func printWayIDs(ids []types.WayID) error {
	if flagJSON {
		if ids == nil {
			ids = []types.WayID{}
		}
		return printJSON(ids)
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
