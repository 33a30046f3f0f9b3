// Package config holds the settings that control parsing and output.
// Built-in defaults are embedded; a user file may override them.
package config

import (
	"embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed configs/*.yaml
var configFS embed.FS

const defaultFile = "configs/default.yaml"

// maxPrecision bounds the decimals printed per ratio
const maxPrecision = 10

// Config represents the settings of a run
type Config struct {
	// Separator splits a mapping line into concept and construct
	Separator string `yaml:"separator"`

	// Delimiter joins the values of the table output
	Delimiter string `yaml:"delimiter"`

	// Precision is the number of decimals printed per ratio
	Precision int `yaml:"precision"`
}

// Default returns the embedded default configuration
func Default() (*Config, error) {
	data, err := configFS.ReadFile(defaultFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read default config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return &cfg, nil
}

// Load returns the defaults overridden by the YAML file at path.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Keys absent from the file keep their default values.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that separator and delimiter are single characters and
// the precision is in range
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("invalid separator %q: must be a single character", c.Separator)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("invalid delimiter %q: must be a single character", c.Delimiter)
	}
	switch c.DelimiterRune() {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return fmt.Errorf("invalid precision %d: must be between 0 and %d", c.Precision, maxPrecision)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
