// ABOUTME: Nutrient configuration management with backend selection.
// ABOUTME: Handles storage backend factory, membership tier, and catalog override.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/nutrient/internal/catalog"
	"github.com/harperreed/nutrient/internal/charm"
	"github.com/harperreed/nutrient/internal/models"
	"github.com/harperreed/nutrient/internal/storage"
)

// Config stores nutrient tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts
	// nutrient.db here. Supports ~ expansion for home directory.
	// Defaults to ~/.local/share/nutrient.
	DataDir string `json:"data_dir,omitempty"`

	// CatalogPath points at a JSON recipe catalog that replaces the
	// built-in one. Supports ~ expansion.
	CatalogPath string `json:"catalog_path,omitempty"`

	// Tier is the membership tier: "free" (default) or "plus". Free
	// accounts get one meal plan generation per day.
	Tier string `json:"tier,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetTier returns the configured membership tier, defaulting to free.
func (c *Config) GetTier() models.MembershipTier {
	switch strings.ToLower(c.Tier) {
	case "plus":
		return models.TierPlus
	default:
		return models.TierFree
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch backend := c.GetBackend(); backend {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "nutrient.db")
		return storage.Open(dbPath)
	case "charm":
		return charm.GetClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// OpenCatalog returns the configured recipe catalog, falling back to
// the built-in one when no override is set.
func (c *Config) OpenCatalog() ([]models.Recipe, error) {
	if c.CatalogPath == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(ExpandPath(c.CatalogPath))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "nutrient", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
