// Clear command empties parts of the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear {places|ways}",
	Short: "Remove all places and areas, or all ways",
	Long: `Clear empties one side of the catalog. "clear places" removes
every place and every area; "clear ways" removes the whole road
network. The other side is left untouched.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"places", "ways"},
	RunE:      runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "places":
		cat.ClearAll()
	case "ways":
		cat.ClearWays()
	default:
		return fmt.Errorf("clear: unknown target %q: want places or ways", args[0])
	}
	if flagJSON {
		return printJSON(map[string]string{"cleared": args[0]})
	}
	fmt.Printf("cleared %s\n", args[0])
	return nil
}
