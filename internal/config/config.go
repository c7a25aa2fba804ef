package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config holds everything the bloom CLI needs to wire the engine
type Config struct {
	DataDir  string `yaml:"dataDir" env:"BLOOM_DATA_DIR"`
	DBPath   string `yaml:"dbPath" env:"BLOOM_DB_PATH"`
	LogFile  string `yaml:"logFile" env:"BLOOM_LOG_FILE"`
	LogLevel string `yaml:"logLevel" env:"BLOOM_LOG_LEVEL"`
	UserID   string `yaml:"userId" env:"BLOOM_USER_ID"`
}

// Default returns the built-in configuration rooted under the user's home
// directory.
func Default() (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	dataDir := filepath.Join(homeDir, ".local", "share", "bloom")
	return Config{
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, "bloom.db"),
		LogFile:  filepath.Join(dataDir, "bloom.log"),
		LogLevel: "info",
	}, nil
}

// DefaultPath returns where the config file lives unless overridden
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "bloom", "config.yaml"), nil
}

// Load reads the YAML config at path on top of the defaults, then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Save writes the config as YAML to path, creating parent directories
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureUserID mints a per-install user id when none is set yet. Reports
// whether the config changed.
func (c *Config) EnsureUserID() bool {
	if c.UserID != "" {
		return false
	}
	c.UserID = uuid.NewString()
	return true
}
