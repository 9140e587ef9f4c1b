// Package dataset loads JSONL catalog datasets for the CLI: one JSON
// record per line, tagged with a kind (place, area, or way). Datasets are
// read-only input; the catalog itself is never persisted.
// Implements: docs/ARCHITECTURE § Dataset Loading.
package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

type placeRecord struct {
	ID   types.PlaceID   `json:"id"`
	Name string          `json:"name"`
	Type types.PlaceType `json:"type"`
	At   types.Coord     `json:"at"`
}

type areaRecord struct {
	ID       types.AreaID  `json:"id"`
	Name     string        `json:"name"`
	Boundary []types.Coord `json:"boundary"`
	Parent   *types.AreaID `json:"parent"`
}

type wayRecord struct {
	ID     types.WayID   `json:"id"`
	Coords []types.Coord `json:"coords"`
}

// attachment is a deferred parent link, applied once every area exists so
// records may reference parents defined later in the file.
type attachment struct {
	line   int
	child  types.AreaID
	parent types.AreaID
}

// Load reads a JSONL dataset file and inserts its records into the
// catalog. Lines that are empty or not valid JSON are skipped; records
// the catalog rejects (duplicate ids, bad attachments, short polylines)
// fail the load with the offending line number.
func Load(path string, c types.Catalog) error {
	records, err := readRecords(path)
	if err != nil {
		return err
	}

	var attachments []attachment
	for _, rec := range records {
		var tag struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(rec.raw, &tag); err != nil {
			continue
		}

		switch tag.Kind {
		case "place":
			var r placeRecord
			if err := json.Unmarshal(rec.raw, &r); err != nil {
				return fmt.Errorf("line %d: parsing place: %w", rec.line, err)
			}
			if r.Type == "" {
				r.Type = types.PlaceTypeNone
			}
			if err := c.AddPlace(r.ID, r.Name, r.Type, r.At); err != nil {
				return fmt.Errorf("line %d: place %d: %w", rec.line, r.ID, err)
			}
		case "area":
			var r areaRecord
			if err := json.Unmarshal(rec.raw, &r); err != nil {
				return fmt.Errorf("line %d: parsing area: %w", rec.line, err)
			}
			if err := c.AddArea(r.ID, r.Name, r.Boundary); err != nil {
				return fmt.Errorf("line %d: area %d: %w", rec.line, r.ID, err)
			}
			if r.Parent != nil {
				attachments = append(attachments, attachment{line: rec.line, child: r.ID, parent: *r.Parent})
			}
		case "way":
			var r wayRecord
			if err := json.Unmarshal(rec.raw, &r); err != nil {
				return fmt.Errorf("line %d: parsing way: %w", rec.line, err)
			}
			if err := c.AddWay(r.ID, r.Coords); err != nil {
				return fmt.Errorf("line %d: way %s: %w", rec.line, r.ID, err)
			}
		default:
			return fmt.Errorf("line %d: unknown record kind %q", rec.line, tag.Kind)
		}
	}

	for _, att := range attachments {
		if err := c.Attach(att.child, att.parent); err != nil {
			return fmt.Errorf("line %d: attaching area %d under %d: %w", att.line, att.child, att.parent, err)
		}
	}
	return nil
}

// rawRecord is one parseable dataset line with its 1-based line number.
type rawRecord struct {
	line int
	raw  json.RawMessage
}

// readRecords reads a JSONL file, returning each non-empty line that
// holds valid JSON. Malformed lines are skipped.
func readRecords(path string) ([]rawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []rawRecord
	line := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(b) == 0 || !json.Valid(b) {
			continue
		}
		cp := make([]byte, len(b))
		copy(cp, b)
		records = append(records, rawRecord{line: line, raw: cp})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}
