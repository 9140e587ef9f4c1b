// Way delete command removes a way and retires orphaned crossroads.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var wayDeleteID string

var wayDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a way",
	RunE:  runWayDelete,
}

func init() {
	wayDeleteCmd.Flags().StringVar(&wayDeleteID, "id", "", "way id (required)")
	_ = wayDeleteCmd.MarkFlagRequired("id")
}

func runWayDelete(cmd *cobra.Command, args []string) error {
	id := types.WayID(wayDeleteID)
	if err := cat.RemoveWay(id); err != nil {
		return fmt.Errorf("delete way %s: %w", id, err)
	}
	fmt.Printf("Deleted way %s\n", id)
	return nil
}
