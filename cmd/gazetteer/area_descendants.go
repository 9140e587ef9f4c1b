// Area descendants command lists an area's subtree in pre-order.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var areaDescendantsID int64

var areaDescendantsCmd = &cobra.Command{
	Use:   "descendants",
	Short: "List an area's descendants in pre-order",
	RunE:  runAreaDescendants,
}

func init() {
	areaDescendantsCmd.Flags().Int64Var(&areaDescendantsID, "id", 0, "area id (required)")
	_ = areaDescendantsCmd.MarkFlagRequired("id")
}

func runAreaDescendants(cmd *cobra.Command, args []string) error {
	ids, err := cat.Descendants(types.AreaID(areaDescendantsID))
	if err != nil {
		return fmt.Errorf("descendants of area %d: %w", areaDescendantsID, err)
	}
	return printIDs(ids)
}
