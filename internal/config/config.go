package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CacheConfig configures the on-disk stat cache (internal/statcache).
type CacheConfig struct {
	// Enabled turns on the persistent stat cache for `seqscan stat`.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file backing the cache.
	Path string `yaml:"path"`
}

// Config represents seqscan's persisted configuration, supplying default
// detection/display options so repeated invocations in a shoot directory
// don't need to repeat CLI flags.
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written, if file logging
	// is enabled.
	LogDir string `yaml:"log_dir"`

	// Negative enables signed-number detection (leading -/+ as part of
	// the frame number rather than a literal string character).
	Negative bool `yaml:"negative"`

	// IgnoreDotFile skips dotfiles during directory enumeration.
	IgnoreDotFile bool `yaml:"ignore_dot_file"`

	// SequenceNeedsAtLeastTwoFiles demotes single-frame sequences to
	// plain files in listing output.
	SequenceNeedsAtLeastTwoFiles bool `yaml:"sequence_needs_at_least_two_files"`

	// Color is the colorized-listing setting, merged from the config
	// file and the --color/--no-color flags. The ls and stat commands
	// honor it only when one of those flags is given; otherwise they use
	// TTY autodetection, and a config-file value alone has no effect.
	Color bool `yaml:"color"`

	// Filters is the default list of glob filter patterns applied to
	// `seqscan ls` when none are given on the command line.
	Filters []string `yaml:"filters"`

	// Cache configures the persistent stat cache.
	Cache CacheConfig `yaml:"cache"`
}

// DefaultConfig returns a Config with sensible default values. The cache
// path respects $SEQSCAN_HOME (see GetCacheDBPath); if that resolution
// fails, it falls back to ~/.cache/seqscan/stat.db.
func DefaultConfig() *Config {
	cachePath, err := resolveCacheDBPath()
	if err != nil {
		home, _ := os.UserHomeDir()
		cachePath = filepath.Join(home, ".cache", "seqscan", "stat.db")
		if home == "" {
			cachePath = filepath.Join(".seqscan", "cache", "stat.db")
		}
	}

	return &Config{
		LogLevel:                     "info",
		LogDir:                       ".seqscan/logs",
		Negative:                     false,
		IgnoreDotFile:                true,
		SequenceNeedsAtLeastTwoFiles: false,
		Color:                        false,
		Filters:                      nil,
		Cache: CacheConfig{
			Enabled: true,
			Path:    cachePath,
		},
	}
}

// LoadConfig loads configuration from the specified file path. If the file
// doesn't exist, returns default configuration without error. If the file
// exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	type yamlConfig struct {
		LogLevel                     string      `yaml:"log_level"`
		LogDir                       string      `yaml:"log_dir"`
		Negative                     bool        `yaml:"negative"`
		IgnoreDotFile                *bool       `yaml:"ignore_dot_file"`
		SequenceNeedsAtLeastTwoFiles bool        `yaml:"sequence_needs_at_least_two_files"`
		Color                        bool        `yaml:"color"`
		Filters                      []string    `yaml:"filters"`
		Cache                        CacheConfig `yaml:"cache"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.Negative {
		cfg.Negative = yamlCfg.Negative
	}
	if yamlCfg.IgnoreDotFile != nil {
		cfg.IgnoreDotFile = *yamlCfg.IgnoreDotFile
	}
	if yamlCfg.SequenceNeedsAtLeastTwoFiles {
		cfg.SequenceNeedsAtLeastTwoFiles = yamlCfg.SequenceNeedsAtLeastTwoFiles
	}
	if yamlCfg.Color {
		cfg.Color = yamlCfg.Color
	}
	if len(yamlCfg.Filters) > 0 {
		cfg.Filters = yamlCfg.Filters
	}

	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if cacheSection, exists := rawMap["cache"]; exists && cacheSection != nil {
			cacheMap, _ := cacheSection.(map[string]interface{})
			if _, exists := cacheMap["enabled"]; exists {
				cfg.Cache.Enabled = yamlCfg.Cache.Enabled
			}
			if _, exists := cacheMap["path"]; exists {
				cfg.Cache.Path = yamlCfg.Cache.Path
			}
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads .seqscan.yaml from the specified directory. If
// the directory or file doesn't exist, returns default configuration
// without error.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".seqscan.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration. Non-nil flag
// values override configuration values, so CLI flags take precedence over
// config file settings.
func (c *Config) MergeWithFlags(logDir *string, negative *bool, ignoreDotFile *bool, needTwo *bool, color *bool) {
	if logDir != nil {
		c.LogDir = *logDir
	}
	if negative != nil {
		c.Negative = *negative
	}
	if ignoreDotFile != nil {
		c.IgnoreDotFile = *ignoreDotFile
	}
	if needTwo != nil {
		c.SequenceNeedsAtLeastTwoFiles = *needTwo
	}
	if color != nil {
		c.Color = *color
	}
}

// Validate validates the configuration values, returning an error if any
// values are invalid.
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("cache.path cannot be empty when cache is enabled")
	}

	return nil
}
