// Package config provides configuration management for the brewround CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	PeopleFile     string `koanf:"people_file"`
	DrinksFile     string `koanf:"drinks_file"`
	FavouritesFile string `koanf:"favourites_file"`
	HistoryPath    string `koanf:"history_path"`
	RecordHistory  bool   `koanf:"record_history"`
	Verbose        bool   `koanf:"verbose"`
	OutputFormat   string `koanf:"output"`
	LogFormat      string `koanf:"log_format"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultPeopleFile     = "data/people.csv"
	DefaultDrinksFile     = "data/drinks.txt"
	DefaultFavouritesFile = "data/favourites.txt"
	DefaultHistoryPath    = ".brewround/history.db"
	DefaultOutput         = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogFormat      = "text"

	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "BREWROUND_"
)

// DefaultConfigFile is the config file name written by init.
const DefaultConfigFile = "brewround.yaml"

// configFileNames are looked up in the working directory when --config is not given.
var configFileNames = []string{DefaultConfigFile, "brewround.yml"}

// pathKeys are resolved relative to the config file that sets them.
var pathKeys = []string{"people_file", "drinks_file", "favourites_file", "history_path"}

// Defaults returns the built-in configuration.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"people_file":     DefaultPeopleFile,
		"drinks_file":     DefaultDrinksFile,
		"favourites_file": DefaultFavouritesFile,
		"history_path":    DefaultHistoryPath,
		"record_history":  true,
		"verbose":         false,
		"output":          DefaultOutput,
		"log_format":      DefaultLogFormat,
	}
}
