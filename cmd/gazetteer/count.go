// Count command reports the number of stored places.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of places in the catalog",
	RunE:  runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	n := cat.PlaceCount()
	if flagJSON {
		return printJSON(map[string]int{"places": n})
	}
	fmt.Println(n)
	return nil
}
