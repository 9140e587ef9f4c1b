// Way add command inserts a new way into the road network.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	wayAddID     string
	wayAddCoords string
)

var wayAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Insert a new way",
	Long: `Add inserts a way with a caller-assigned id and a polyline of
at least two coordinates. Endpoints and length are derived from the
polyline.

Example:
  gazetteer way add --id w1 --coords "0,0;1,0;1,2"`,
	RunE: runWayAdd,
}

func init() {
	wayAddCmd.Flags().StringVar(&wayAddID, "id", "", "way id (required)")
	wayAddCmd.Flags().StringVar(&wayAddCoords, "coords", "", "polyline as x,y;x,y;… (required)")
	_ = wayAddCmd.MarkFlagRequired("id")
	_ = wayAddCmd.MarkFlagRequired("coords")
}

func runWayAdd(cmd *cobra.Command, args []string) error {
	coords, err := parseCoords(wayAddCoords)
	if err != nil {
		return err
	}

	id := types.WayID(wayAddID)
	if err := cat.AddWay(id, coords); err != nil {
		return fmt.Errorf("add way %s: %w", id, err)
	}
	fmt.Printf("Added way %s with %d points\n", id, len(coords))
	return nil
}
