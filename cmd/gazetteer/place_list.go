// Place list command enumerates place ids through the store's indices
// and sorted views.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	placeListName       string
	placeListType       string
	placeListAlpha      bool
	placeListByDistance bool
)

var placeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List place ids",
	Long: `List prints place ids: all of them, the matches for an exact
name or type, or one of the two sorted views.

Example:
  gazetteer place list
  gazetteer place list --name "old mill"
  gazetteer place list --type shelter
  gazetteer place list --alphabetical
  gazetteer place list --by-distance`,
	RunE: runPlaceList,
}

func init() {
	placeListCmd.Flags().StringVar(&placeListName, "name", "", "list places with exactly this name")
	placeListCmd.Flags().StringVar(&placeListType, "type", "", "list places with this type")
	placeListCmd.Flags().BoolVar(&placeListAlpha, "alphabetical", false, "list all places ordered by name")
	placeListCmd.Flags().BoolVar(&placeListByDistance, "by-distance", false, "list all places ordered by origin distance, then y")
	placeListCmd.MarkFlagsMutuallyExclusive("name", "type", "alphabetical", "by-distance")
}

func runPlaceList(cmd *cobra.Command, args []string) error {
	var ids []types.PlaceID
	switch {
	case placeListName != "":
		ids = cat.FindPlacesByName(placeListName)
	case placeListType != "":
		t := types.PlaceType(placeListType)
		if !types.ValidPlaceType(t) {
			return fmt.Errorf("list places: %w: %q", types.ErrInvalidPlaceType, placeListType)
		}
		ids = cat.FindPlacesByType(t)
	case placeListAlpha:
		ids = cat.PlacesAlphabetically()
	case placeListByDistance:
		ids = cat.PlacesByDistance()
	default:
		ids = cat.AllPlaces()
	}
	return printIDs(ids)
}
