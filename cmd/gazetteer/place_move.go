// Place move command changes a place's coordinate.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	placeMoveID int64
	placeMoveTo string
)

var placeMoveCmd = &cobra.Command{
	Use:   "move",
	Short: "Change a place's coordinate",
	RunE:  runPlaceMove,
}

func init() {
	placeMoveCmd.Flags().Int64Var(&placeMoveID, "id", 0, "place id (required)")
	placeMoveCmd.Flags().StringVar(&placeMoveTo, "to", "", "new coordinate as x,y (required)")
	_ = placeMoveCmd.MarkFlagRequired("id")
	_ = placeMoveCmd.MarkFlagRequired("to")
}

func runPlaceMove(cmd *cobra.Command, args []string) error {
	to, err := parseCoord(placeMoveTo)
	if err != nil {
		return err
	}

	id := types.PlaceID(placeMoveID)
	if err := cat.MovePlace(id, to); err != nil {
		return fmt.Errorf("move place %d: %w", id, err)
	}

	if flagJSON {
		p, err := cat.Place(id)
		if err != nil {
			return fmt.Errorf("read back place %d: %w", id, err)
		}
		return printJSON(p)
	}
	fmt.Printf("Moved place %d to %s\n", id, formatCoord(to))
	return nil
}
