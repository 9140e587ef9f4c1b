// Closest command finds the places nearest to a coordinate.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	closestAt   string
	closestType string
)

var closestCmd = &cobra.Command{
	Use:   "closest",
	Short: "List up to three places nearest to a coordinate",
	Long: `Closest prints the ids of up to three places nearest to the
given coordinate, nearest first. With --type only places of that type
are considered.

Example:
  gazetteer closest --at 10,10 --type shelter`,
	RunE: runClosest,
}

func init() {
	closestCmd.Flags().StringVar(&closestAt, "at", "", "reference coordinate as x,y (required)")
	closestCmd.Flags().StringVar(&closestType, "type", string(types.PlaceTypeNone), "restrict to one place type")
	_ = closestCmd.MarkFlagRequired("at")
}

func runClosest(cmd *cobra.Command, args []string) error {
	at, err := parseCoord(closestAt)
	if err != nil {
		return err
	}
	pt := types.PlaceType(closestType)
	if pt != types.PlaceTypeNone && !types.ValidPlaceType(pt) {
		return fmt.Errorf("closest: %q: %w", closestType, types.ErrInvalidPlaceType)
	}

	ids := cat.PlacesClosestTo(at, pt)
	return printIDs(ids)
}
