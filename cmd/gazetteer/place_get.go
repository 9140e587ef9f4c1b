// Place get command looks up one place by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var placeGetID int64

var placeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Look up a place by id",
	RunE:  runPlaceGet,
}

func init() {
	placeGetCmd.Flags().Int64Var(&placeGetID, "id", 0, "place id (required)")
	_ = placeGetCmd.MarkFlagRequired("id")
}

func runPlaceGet(cmd *cobra.Command, args []string) error {
	p, err := cat.Place(types.PlaceID(placeGetID))
	if err != nil {
		return fmt.Errorf("place %d: %w", placeGetID, err)
	}

	if flagJSON {
		return printJSON(p)
	}
	fmt.Printf("%d: %s (%s) at %s\n", p.ID, p.Name, p.Type, formatCoord(p.At))
	return nil
}
