// Version command for the gazetteer CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/pkg/catalog"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gazetteer version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gazetteer", catalog.Version)
	},
}
