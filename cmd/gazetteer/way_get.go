// Way get command prints a way's polyline.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var wayGetID string

var wayGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Look up a way's polyline by id",
	RunE:  runWayGet,
}

func init() {
	wayGetCmd.Flags().StringVar(&wayGetID, "id", "", "way id (required)")
	_ = wayGetCmd.MarkFlagRequired("id")
}

func runWayGet(cmd *cobra.Command, args []string) error {
	coords, err := cat.WayCoords(types.WayID(wayGetID))
	if err != nil {
		return fmt.Errorf("way %s: %w", wayGetID, err)
	}

	if flagJSON {
		return printJSON(coords)
	}
	for _, c := range coords {
		fmt.Println(formatCoord(c))
	}
	return nil
}
