// Place rename command changes a place's name.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	placeRenameID   int64
	placeRenameName string
)

var placeRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Change a place's name",
	RunE:  runPlaceRename,
}

func init() {
	placeRenameCmd.Flags().Int64Var(&placeRenameID, "id", 0, "place id (required)")
	placeRenameCmd.Flags().StringVar(&placeRenameName, "name", "", "new name (required)")
	_ = placeRenameCmd.MarkFlagRequired("id")
	_ = placeRenameCmd.MarkFlagRequired("name")
}

func runPlaceRename(cmd *cobra.Command, args []string) error {
	id := types.PlaceID(placeRenameID)
	if err := cat.RenamePlace(id, placeRenameName); err != nil {
		return fmt.Errorf("rename place %d: %w", id, err)
	}

	if flagJSON {
		p, err := cat.Place(id)
		if err != nil {
			return fmt.Errorf("read back place %d: %w", id, err)
		}
		return printJSON(p)
	}
	fmt.Printf("Renamed place %d to %s\n", id, placeRenameName)
	return nil
}
