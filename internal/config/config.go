package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/ukaji3/sheetdump-go/internal/logger"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/models"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/parser"
)

// Config is the sheetdump configuration file.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Reader ReaderConfig `toml:"reader"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// InputConfig selects the workbook to dump.
type InputConfig struct {
	Path string `toml:"path"`
}

// ReaderConfig selects and disables workbook readers.
type ReaderConfig struct {
	Name     string   `toml:"name"`
	Disabled []string `toml:"disabled"`
}

// OutputConfig controls how cell values are rendered.
type OutputConfig struct {
	DateLayout string `toml:"date_layout"`
}

// LogConfig controls stderr diagnostics.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Reader: ReaderConfig{Name: sheetdump.ReaderAuto},
		Output: OutputConfig{DateLayout: models.DefaultDateLayout},
		Log:    LogConfig{Level: "warn"},
	}
}

// LoadConfig loads configuration from the specified config file path.
// An empty path returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	var config Config
	meta, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logger.Warn("Ignoring unknown config keys", "path", configPath, "keys", undecoded)
	}

	// Set defaults if missing
	if config.Reader.Name == "" {
		config.Reader.Name = sheetdump.ReaderAuto
	}
	if config.Output.DateLayout == "" {
		config.Output.DateLayout = models.DefaultDateLayout
	}
	if config.Log.Level == "" {
		config.Log.Level = "warn"
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

// Validate checks reader names.
func (c *Config) Validate() error {
	names := parser.Names()
	if c.Reader.Name != sheetdump.ReaderAuto && !slices.Contains(names, c.Reader.Name) {
		return fmt.Errorf("unknown reader %q (must be %s or one of %v)", c.Reader.Name, sheetdump.ReaderAuto, names)
	}
	for _, name := range c.Reader.Disabled {
		if !slices.Contains(names, name) {
			return fmt.Errorf("unknown disabled reader %q (must be one of %v)", name, names)
		}
	}
	return nil
}

// Options converts the configuration into dump options.
func (c *Config) Options() sheetdump.Options {
	return sheetdump.Options{
		Reader:     c.Reader.Name,
		Disabled:   slices.Clone(c.Reader.Disabled),
		DateLayout: c.Output.DateLayout,
	}
}
