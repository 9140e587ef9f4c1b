// Root command for the gazetteer CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/gazetteer/internal/dataset"
	"github.com/mesh-intelligence/gazetteer/pkg/catalog"
	"github.com/mesh-intelligence/gazetteer/pkg/types"
)

// Global flag values.
var (
	flagConfig  string
	flagDataset string
	flagJSON    bool
)

// cat is the catalog every subcommand operates on, built fresh for each
// invocation from the resolved dataset file.
var cat types.Catalog

var rootCmd = &cobra.Command{
	Use:   "gazetteer",
	Short: "Gazetteer is an in-memory geospatial catalog",
	Long: `Gazetteer answers structural and spatial queries over places,
containment areas, and a road network of ways. Each invocation loads a
JSONL dataset into memory, runs one query against it, and prints the
result; nothing is written back.`,
	SilenceUsage:      true,
	PersistentPreRunE: initCatalog,
}

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Manage and query places",
}

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Manage and query the area hierarchy",
}

var wayCmd = &cobra.Command{
	Use:   "way",
	Short: "Manage and query the road network",
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Search routes over the road network",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: gazetteer.yaml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "JSONL dataset file to load (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	placeCmd.AddCommand(placeAddCmd)
	placeCmd.AddCommand(placeGetCmd)
	placeCmd.AddCommand(placeListCmd)
	placeCmd.AddCommand(placeRenameCmd)
	placeCmd.AddCommand(placeMoveCmd)
	placeCmd.AddCommand(placeDeleteCmd)

	areaCmd.AddCommand(areaAddCmd)
	areaCmd.AddCommand(areaGetCmd)
	areaCmd.AddCommand(areaListCmd)
	areaCmd.AddCommand(areaAttachCmd)
	areaCmd.AddCommand(areaAncestorsCmd)
	areaCmd.AddCommand(areaDescendantsCmd)
	areaCmd.AddCommand(areaCommonCmd)

	wayCmd.AddCommand(wayAddCmd)
	wayCmd.AddCommand(wayGetCmd)
	wayCmd.AddCommand(wayListCmd)
	wayCmd.AddCommand(wayDeleteCmd)
	wayCmd.AddCommand(wayFromCmd)

	routeCmd.AddCommand(routeAnyCmd)
	routeCmd.AddCommand(routeCycleCmd)

	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(wayCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(closestCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(versionCmd)
}

// initCatalog builds an empty catalog and loads the resolved dataset,
// if any, before the subcommand runs.
func initCatalog(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cat = catalog.New()

	path := flagDataset
	if path == "" {
		path = cfg.GetString(cfgKeyDataset)
	}
	if path == "" {
		return nil
	}
	if err := dataset.Load(path, cat); err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	return nil
}
