// Route any command searches for some path between two coordinates.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

var (
	routeAnyFrom string
	routeAnyTo   string
)

var routeAnyCmd = &cobra.Command{
	Use:   "any",
	Short: "Find some route between two coordinates",
	Long: `Any prints a path between the two coordinates, one step per
line: the coordinate, the way taken onward, and the cumulative distance.
The path is not guaranteed to be shortest.

Example:
  gazetteer route any --from 0,0 --to 1,1`,
	RunE: runRouteAny,
}

func init() {
	routeAnyCmd.Flags().StringVar(&routeAnyFrom, "from", "", "start coordinate as x,y (required)")
	routeAnyCmd.Flags().StringVar(&routeAnyTo, "to", "", "goal coordinate as x,y (required)")
	_ = routeAnyCmd.MarkFlagRequired("from")
	_ = routeAnyCmd.MarkFlagRequired("to")
}

func runRouteAny(cmd *cobra.Command, args []string) error {
	from, err := parseCoord(routeAnyFrom)
	if err != nil {
		return err
	}
	to, err := parseCoord(routeAnyTo)
	if err != nil {
		return err
	}

	route, err := cat.RouteAny(from, to)
	if err != nil {
		return fmt.Errorf("route from %s to %s: %w", formatCoord(from), formatCoord(to), err)
	}

	if flagJSON {
		return printJSON(route)
	}
	for _, step := range route {
		if step.Way == types.NoWay {
			fmt.Printf("%s . %d\n", formatCoord(step.At), step.Dist)
			continue
		}
		fmt.Printf("%s %s %d\n", formatCoord(step.At), step.Way, step.Dist)
	}
	return nil
}
