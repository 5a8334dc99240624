package config

import (
	"fmt"
	"slices"
)

var (
	validOutputs    = []string{"auto", "text", "markdown", "json", "yaml"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	required := map[string]string{
		"people_file":     c.PeopleFile,
		"drinks_file":     c.DrinksFile,
		"favourites_file": c.FavouritesFile,
		"history_path":    c.HistoryPath,
	}
	for _, key := range pathKeys {
		if required[key] == "" {
			return fmt.Errorf("%s is required", key)
		}
	}

	if !slices.Contains(validOutputs, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of %v)", c.OutputFormat, validOutputs)
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log format %q (expected one of %v)", c.LogFormat, validLogFormats)
	}
	return nil
}
