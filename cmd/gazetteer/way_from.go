// Way from command runs the network's adjacency query.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wayFromAt string

var wayFromCmd = &cobra.Command{
	Use:   "from",
	Short: "List ways incident to a coordinate",
	Long: `From prints every way touching the coordinate together with
the coordinate at the way's other end.

Example:
  gazetteer way from --at 1,0`,
	RunE: runWayFrom,
}

func init() {
	wayFromCmd.Flags().StringVar(&wayFromAt, "at", "", "coordinate as x,y (required)")
	_ = wayFromCmd.MarkFlagRequired("at")
}

func runWayFrom(cmd *cobra.Command, args []string) error {
	at, err := parseCoord(wayFromAt)
	if err != nil {
		return err
	}

	conns := cat.WaysFrom(at)
	if flagJSON {
		return printJSON(conns)
	}
	for _, conn := range conns {
		fmt.Printf("%s -> %s\n", conn.Way, formatCoord(conn.Other))
	}
	return nil
}
