// Area common command finds the lowest common ancestor of two areas.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	areaCommonA int64
	areaCommonB int64
)

var areaCommonCmd = &cobra.Command{
	Use:   "common",
	Short: "Find the lowest common ancestor of two areas",
	RunE:  runAreaCommon,
}

func init() {
	areaCommonCmd.Flags().Int64Var(&areaCommonA, "a", 0, "first area id (required)")
	areaCommonCmd.Flags().Int64Var(&areaCommonB, "b", 0, "second area id (required)")
	_ = areaCommonCmd.MarkFlagRequired("a")
	_ = areaCommonCmd.MarkFlagRequired("b")
}

func runAreaCommon(cmd *cobra.Command, args []string) error {
	id, err := cat.CommonAncestor(types.AreaID(areaCommonA), types.AreaID(areaCommonB))
	if err != nil {
		return fmt.Errorf("common ancestor of areas %d and %d: %w", areaCommonA, areaCommonB, err)
	}

	if flagJSON {
		return printJSON(id)
	}
	fmt.Println(id)
	return nil
}
