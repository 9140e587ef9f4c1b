// Place delete command removes a place from every index.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var placeDeleteID int64

var placeDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a place",
	RunE:  runPlaceDelete,
}

func init() {
	placeDeleteCmd.Flags().Int64Var(&placeDeleteID, "id", 0, "place id (required)")
	_ = placeDeleteCmd.MarkFlagRequired("id")
}

func runPlaceDelete(cmd *cobra.Command, args []string) error {
	id := types.PlaceID(placeDeleteID)
	if err := cat.RemovePlace(id); err != nil {
		return fmt.Errorf("delete place %d: %w", id, err)
	}
	fmt.Printf("Deleted place %d\n", id)
	return nil
}
