package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/refdex/config.yml.
type GlobalConfig struct {
	LibraryPath string `yaml:"library_path,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "refdex"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/refdex/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.LibraryPath != "" {
		cfg.LibraryPath = ExpandTilde(cfg.LibraryPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetLibraryPath returns the configured default library path.
func GetLibraryPath() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.LibraryPath
}

// ErrLibraryPathNotConfigured is returned when library_path is not set.
var ErrLibraryPathNotConfigured = errors.New("library_path not configured")

// ErrLibraryPathNotExist is returned when the configured library_path
// doesn't exist.
var ErrLibraryPathNotExist = errors.New("library_path does not exist")

// ValidateLibraryPath returns the library path from global config after
// validation. Returns an error if not configured or if the path doesn't
// exist.
func ValidateLibraryPath() (string, error) {
	path := GetLibraryPath()
	if path == "" {
		return "", ErrLibraryPathNotConfigured
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrLibraryPathNotExist, path)
	}
	return path, nil
}

// HelpfulConfigMessage returns a helpful message when no library is found.
func HelpfulConfigMessage() string {
	configPath := GlobalConfigPath()
	return fmt.Sprintf(`No refdex library found.

Tip: Run 'refdex init' in your library directory, or create %s to set a default:
  mkdir -p %s
  echo 'library_path: /path/to/your/library' > %s`,
		configPath,
		filepath.Dir(configPath),
		configPath)
}
