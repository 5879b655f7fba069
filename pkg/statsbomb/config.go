package statsbomb

import (
	"fmt"
	"os"
	"path/filepath"
)

// StatsBombConfig contains the locations and endpoints for StatsBomb
// open data. This centralizes the URLs and filesystem paths so they can
// be adjusted in one place.
type StatsBombConfig struct {
	// Filesystem locations
	AssetsPath string // The base directory for downloaded data and the database
	CachePath  string // The location in which downloaded jsons are cached
	DbPath     string // The location of the sqlite database

	// Open data endpoints
	EventURL       string // Base URL for event jsons, one file per match
	MatchURL       string // Base URL for match jsons, one file per competition/season
	LineupURL      string // Base URL for lineup jsons, one file per match
	CompetitionURL string // URL of the competitions json
	RepositoryURL  string // The open-data repository, used for listing the available files

	// The user agent sent with every request
	UserAgent string

	// Warn reminds callers of the open data user agreement on every load
	Warn bool
}

// LicenceWarning is logged when open data is loaded, per the terms of use
const LicenceWarning = "Please be responsible with StatsBomb data. " +
	"Register your details on https://www.statsbomb.com/resource-centre " +
	"and read the User Agreement carefully (on the same page)."

// DefaultStatsBombConfig returns the default configuration pointing at
// the StatsBomb open-data repository
func DefaultStatsBombConfig() *StatsBombConfig {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	assetsPath := filepath.Join(home, ".pitchplot")
	raw := "https://raw.githubusercontent.com/statsbomb/open-data/master/data"
	return &StatsBombConfig{
		AssetsPath:     assetsPath,
		CachePath:      filepath.Join(assetsPath, "cache"),
		DbPath:         filepath.Join(assetsPath, "statsbomb.db"),
		EventURL:       raw + "/events",
		MatchURL:       raw + "/matches",
		LineupURL:      raw + "/lineups",
		CompetitionURL: raw + "/competitions.json",
		RepositoryURL:  "https://github.com/statsbomb/open-data/tree/master/data",
		UserAgent:      "pitchplot/1.0",
		Warn:           true,
	}
}

// Global configuration instance
var Config *StatsBombConfig

// init initializes the global configuration with default values
func init() {
	Config = DefaultStatsBombConfig()
}

// UpdateConfig allows updating the global configuration
func UpdateConfig(newConfig *StatsBombConfig) error {
	if err := ValidateConfig(newConfig); err != nil {
		return err
	}
	Config = newConfig
	return nil
}

// ValidateConfig ensures all configuration values are usable
func ValidateConfig(config *StatsBombConfig) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}
	if config.AssetsPath == "" {
		return fmt.Errorf("AssetsPath cannot be empty")
	}
	if config.CachePath == "" {
		return fmt.Errorf("CachePath cannot be empty")
	}
	if config.DbPath == "" {
		return fmt.Errorf("DbPath cannot be empty")
	}
	for _, u := range []string{config.EventURL, config.MatchURL, config.LineupURL, config.CompetitionURL} {
		if u == "" {
			return fmt.Errorf("open data URLs cannot be empty")
		}
	}
	return nil
}
