// Area list command enumerates every area id.
package main

import "github.com/spf13/cobra"

var areaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all area ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printIDs(cat.AllAreas())
	},
}
