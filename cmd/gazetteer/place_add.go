// Place add command inserts a new place into the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	placeAddID   int64
	placeAddName string
	placeAddType string
	placeAddAt   string
)

var placeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Insert a new place",
	Long: `Add inserts a place with a caller-assigned id, a name, a type,
and a coordinate.

Example:
  gazetteer place add --id 1 --name "old mill" --type other --at 2,3`,
	RunE: runPlaceAdd,
}

func init() {
	placeAddCmd.Flags().Int64Var(&placeAddID, "id", 0, "place id (required)")
	placeAddCmd.Flags().StringVar(&placeAddName, "name", "", "place name (required)")
	placeAddCmd.Flags().StringVar(&placeAddType, "type", string(types.PlaceTypeNone), "place type")
	placeAddCmd.Flags().StringVar(&placeAddAt, "at", "0,0", "coordinate as x,y")
	_ = placeAddCmd.MarkFlagRequired("id")
	_ = placeAddCmd.MarkFlagRequired("name")
}

func runPlaceAdd(cmd *cobra.Command, args []string) error {
	at, err := parseCoord(placeAddAt)
	if err != nil {
		return err
	}

	id := types.PlaceID(placeAddID)
	if err := cat.AddPlace(id, placeAddName, types.PlaceType(placeAddType), at); err != nil {
		return fmt.Errorf("add place %d: %w", id, err)
	}

	p, err := cat.Place(id)
	if err != nil {
		return fmt.Errorf("read back place %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(p)
	}
	fmt.Printf("Added place %d: %s (%s) at %s\n", p.ID, p.Name, p.Type, formatCoord(p.At))
	return nil
}
