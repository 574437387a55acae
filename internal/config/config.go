package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/ppcheck/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked up in the working directory
const DefaultConfigFile = ".ppcheck.yaml"

// Config represents ppcheck configuration options
type Config struct {
	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ExcludeDirs lists directory base names to skip while walking (e.g., "CVS")
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// ShowLines prints the first offending line beneath each reported path
	ShowLines bool `yaml:"show_lines"`

	// ReportFile, when set, receives a YAML copy of the scan report
	ReportFile string `yaml:"report_file"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		ExcludeDirs: []string{},
		ShowLines:   false,
		ReportFile:  "",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A key present in the file overrides the default even when its value is zero,
	// so detect presence from a raw map
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if _, exists := rawMap["exclude_dirs"]; exists {
		cfg.ExcludeDirs = fileCfg.ExcludeDirs
		if cfg.ExcludeDirs == nil {
			cfg.ExcludeDirs = []string{}
		}
	}
	if _, exists := rawMap["show_lines"]; exists {
		cfg.ShowLines = fileCfg.ShowLines
	}
	if _, exists := rawMap["report_file"]; exists {
		cfg.ReportFile = fileCfg.ReportFile
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .ppcheck.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigFile))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel *string, excludeDirs []string, showLines *bool, reportFile *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if excludeDirs != nil {
		c.ExcludeDirs = excludeDirs
	}
	if showLines != nil {
		c.ShowLines = *showLines
	}
	if reportFile != nil {
		c.ReportFile = *reportFile
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	if !logger.IsValidLevel(strings.ToLower(strings.TrimSpace(c.LogLevel))) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}

	for _, dir := range c.ExcludeDirs {
		if dir == "" || dir == "." || dir == ".." {
			return fmt.Errorf("invalid exclude_dirs entry %q", dir)
		}
		if strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("exclude_dirs entry %q must be a directory name, not a path", dir)
		}
	}

	return nil
}
