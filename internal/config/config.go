// Package config handles library and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents library configuration stored in .refdex/config.json.
type Config struct {
	PDFRoot string `json:"pdf_root,omitempty"` // Absolute path to PDF folder
}

const (
	RefdexDir   = ".refdex"
	ConfigFile  = "config.json"
	EntriesFile = "entries.jsonl"
	CacheDir    = "cache"
	DBFile      = "entries.db"
)

// RefdexPath returns the path to the .refdex directory from a root path.
func RefdexPath(root string) string {
	return filepath.Join(root, RefdexDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, RefdexDir, ConfigFile)
}

// EntriesPath returns the path to entries.jsonl from a root path.
func EntriesPath(root string) string {
	return filepath.Join(root, RefdexDir, EntriesFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, RefdexDir, CacheDir)
}

// DBPath returns the path to entries.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, RefdexDir, CacheDir, DBFile)
}

// IsLibrary checks if the given path contains a refdex library.
func IsLibrary(root string) bool {
	info, err := os.Stat(RefdexPath(root))
	return err == nil && info.IsDir()
}

// FindLibrary walks up from the given path to find a refdex library.
// Returns the library root path or an error if not found.
func FindLibrary(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsLibrary(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a refdex library (no .refdex directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the library at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to the library at the given root.
func (c *Config) Save(root string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Init creates the .refdex directory structure and a default config at
// the given root. It is an error if the library already exists.
func Init(root string) error {
	if IsLibrary(root) {
		return fmt.Errorf("library already initialized at %s", RefdexPath(root))
	}

	if err := os.MkdirAll(CachePath(root), 0755); err != nil {
		return fmt.Errorf("creating library directory: %w", err)
	}

	cfg := &Config{}
	return cfg.Save(root)
}

// ExpandTilde expands a leading ~ in a path to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
