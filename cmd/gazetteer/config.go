// Config loading for the gazetteer CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "gazetteer"
	configFileType = "yaml"

	// Config keys.
	cfgKeyDataset = "dataset"
)

// loadConfig reads the config file using Viper. With no explicit path it
// looks for gazetteer.yaml in the working directory; a missing config
// file is not an error.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
