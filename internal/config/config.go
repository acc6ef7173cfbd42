// Package config handles mapinfo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Output formats understood by the mapinfo tool.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all tool settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds benchmark data locations.
type DataConfig struct {
	MapDirs []string `yaml:"map_dirs"` // Searched in order when resolving a scenario's map file
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json or yaml
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			MapDirs: []string{"."},
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}

// Validate reports settings the tool cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if len(c.Data.MapDirs) == 0 {
		return errors.New("data.map_dirs must list at least one directory")
	}
	return nil
}
