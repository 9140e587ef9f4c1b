// Way list command enumerates every way id.
package main

import "github.com/spf13/cobra"

var wayListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all way ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printWayIDs(cat.AllWays())
	},
}
