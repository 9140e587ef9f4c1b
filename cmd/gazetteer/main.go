// Package main provides the gazetteer CLI, a thin translator between
// command-line input and the catalog interface.
// Implements: docs/ARCHITECTURE § CLI.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
