// Area get command looks up one area by id.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var areaGetID int64

var areaGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Look up an area by id",
	RunE:  runAreaGet,
}

func init() {
	areaGetCmd.Flags().Int64Var(&areaGetID, "id", 0, "area id (required)")
	_ = areaGetCmd.MarkFlagRequired("id")
}

func runAreaGet(cmd *cobra.Command, args []string) error {
	a, err := cat.Area(types.AreaID(areaGetID))
	if err != nil {
		return fmt.Errorf("area %d: %w", areaGetID, err)
	}

	if flagJSON {
		return printJSON(a)
	}

	var b strings.Builder
	for i, c := range a.Boundary {
		if i > 0 {
			b.WriteString(";")
		}
		b.WriteString(formatCoord(c))
	}
	fmt.Printf("%d: %s %s\n", a.ID, a.Name, b.String())
	return nil
}
