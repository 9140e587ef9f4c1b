// Route cycle command searches for a loop in the way network.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var routeCycleFrom string

var routeCycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Find a cycle reachable from a coordinate",
	Long: `Cycle prints a walk that starts at the given coordinate and
ends by re-entering an already visited coordinate. Each line holds the
coordinate and the way taken onward; the last line has no way.

Example:
  gazetteer route cycle --from 0,0`,
	RunE: runRouteCycle,
}

func init() {
	routeCycleCmd.Flags().StringVar(&routeCycleFrom, "from", "", "start coordinate as x,y (required)")
	_ = routeCycleCmd.MarkFlagRequired("from")
}

func runRouteCycle(cmd *cobra.Command, args []string) error {
	from, err := parseCoord(routeCycleFrom)
	if err != nil {
		return err
	}

	walk, err := cat.RouteWithCycle(from)
	if err != nil {
		return fmt.Errorf("cycle from %s: %w", formatCoord(from), err)
	}

	if flagJSON {
		return printJSON(walk)
	}
	for _, step := range walk {
		if step.Way == types.NoWay {
			fmt.Printf("%s .\n", formatCoord(step.At))
			continue
		}
		fmt.Printf("%s %s\n", formatCoord(step.At), step.Way)
	}
	return nil
}
