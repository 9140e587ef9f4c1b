// Area attach command links a child area under a parent, once.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	areaAttachChild  int64
	areaAttachParent int64
)

var areaAttachCmd = &cobra.Command{
	Use:   "attach",
	Short: "Attach a child area under a parent",
	Long: `Attach links the child under the parent. A child can be
attached at most once, and attachments that would close a cycle are
rejected.

Example:
  gazetteer area attach --child 20 --parent 10`,
	RunE: runAreaAttach,
}

func init() {
	areaAttachCmd.Flags().Int64Var(&areaAttachChild, "child", 0, "child area id (required)")
	areaAttachCmd.Flags().Int64Var(&areaAttachParent, "parent", 0, "parent area id (required)")
	_ = areaAttachCmd.MarkFlagRequired("child")
	_ = areaAttachCmd.MarkFlagRequired("parent")
}

func runAreaAttach(cmd *cobra.Command, args []string) error {
	child := types.AreaID(areaAttachChild)
	parent := types.AreaID(areaAttachParent)
	if err := cat.Attach(child, parent); err != nil {
		return fmt.Errorf("attach area %d under %d: %w", child, parent, err)
	}
	fmt.Printf("Attached area %d under %d\n", child, parent)
	return nil
}
