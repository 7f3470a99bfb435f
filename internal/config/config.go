package config

import "fmt"

// Config represents the main marketlens configuration
type Config struct {
	// Data directory holding the seed datasets and persisted state
	DataDir string `json:"data_dir" mapstructure:"data_dir"`

	// Storage backend for persisted state
	Storage StorageConfig `json:"storage" mapstructure:"storage"`

	// Listing page sizes
	Listing ListingConfig `json:"listing" mapstructure:"listing"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Reload the catalog when seed dataset files change on disk
	WatchDatasets bool `json:"watch_datasets" mapstructure:"watch_datasets"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	// Backend is "file" (one JSON file per slot) or "sqlite"
	Backend string `json:"backend" mapstructure:"backend"`
	// Dir is the slot directory for the file backend
	Dir string `json:"dir" mapstructure:"dir"`
	// DBPath is the database file for the sqlite backend
	DBPath string `json:"db_path" mapstructure:"db_path"`
}

// ListingConfig holds listing page sizes.
type ListingConfig struct {
	SessionsPerPage int `json:"sessions_per_page" mapstructure:"sessions_per_page"`
	ProductsPerPage int `json:"products_per_page" mapstructure:"products_per_page"`
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"`
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"`
	Pretty  bool   `json:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
		},
		Listing: ListingConfig{
			SessionsPerPage: 10,
			ProductsPerPage: 12,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			Pretty:  true,
		},
		WatchDatasets: false,
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q (expected file or sqlite)", c.Storage.Backend)
	}
	if c.Listing.SessionsPerPage <= 0 {
		return fmt.Errorf("sessions_per_page must be positive, got %d", c.Listing.SessionsPerPage)
	}
	if c.Listing.ProductsPerPage <= 0 {
		return fmt.Errorf("products_per_page must be positive, got %d", c.Listing.ProductsPerPage)
	}
	return nil
}
