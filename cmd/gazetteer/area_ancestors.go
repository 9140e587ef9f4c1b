// Area ancestors command walks an area's parent chain upward.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var areaAncestorsID int64

var areaAncestorsCmd = &cobra.Command{
	Use:   "ancestors",
	Short: "List an area's ancestors, immediate parent first",
	RunE:  runAreaAncestors,
}

func init() {
	areaAncestorsCmd.Flags().Int64Var(&areaAncestorsID, "id", 0, "area id (required)")
	_ = areaAncestorsCmd.MarkFlagRequired("id")
}

func runAreaAncestors(cmd *cobra.Command, args []string) error {
	ids, err := cat.Ancestors(types.AreaID(areaAncestorsID))
	if err != nil {
		return fmt.Errorf("ancestors of area %d: %w", areaAncestorsID, err)
	}
	return printIDs(ids)
}
