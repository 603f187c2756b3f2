// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no
// configuration path is given explicitly.
const EnvConfigFile = "X509_PATH_VALIDATOR_CONFIG"

// Output formats accepted by [Config.Output].
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
	FormatTree  = "tree"
)

// Log formats accepted by [Config.Log].
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var (
	// ErrInvalidFormat is returned when an output or log format is unknown.
	ErrInvalidFormat = errors.New("config: invalid format")
	// ErrInvalidTime is returned when validation.at is not an RFC 3339 timestamp.
	ErrInvalidTime = errors.New("config: invalid validation time")
)

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds the settings shared by the CLI and the MCP server.
//
// The configuration can be loaded from a JSON or YAML file named by the
// X509_PATH_VALIDATOR_CONFIG environment variable, with defaults applied for
// any missing values. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Validation: Settings for path and period validation
	Validation struct {
		// At: RFC 3339 timestamp used instead of the wall clock
		At string `json:"at,omitempty" yaml:"at,omitempty"`
		// LeafFirst: Chain bundles list the leaf first instead of last
		LeafFirst bool `json:"leafFirst" yaml:"leafFirst"`
	} `json:"validation" yaml:"validation"`

	// Output: Report rendering
	Output struct {
		// Format: One of text, json, table or tree
		Format string `json:"format" yaml:"format"`
	} `json:"output" yaml:"output"`

	// Log: Validation trace settings
	Log struct {
		// Verbose: Trace every validation step
		Verbose bool `json:"verbose" yaml:"verbose"`
		// Format: One of text or json
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.Output.Format = FormatText
	c.Log.Format = LogFormatText
	return c
}

// detectFormat determines the configuration file format from the file
// extension, case-insensitively. Anything but .yaml and .yml is read as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data into c according to f.
func unmarshal(data []byte, c *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - path: Path to the configuration file (optional, can be empty)
//
// Returns:
//   - *Config: The loaded configuration with defaults applied
//   - error: Any error reading, parsing or validating the file
//
// Configuration Priority:
//  1. Default values are set
//  2. X509_PATH_VALIDATOR_CONFIG is checked if path is empty
//  3. Config file values override defaults
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := unmarshal(data, c, detectFormat(path)); err != nil {
		return nil, err
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Log.Format == "" {
		c.Log.Format = LogFormatText
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports whether every field holds an accepted value.
func (c *Config) Validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON, FormatTable, FormatTree}, c.Output.Format) {
		return fmt.Errorf("%w: output format %q", ErrInvalidFormat, c.Output.Format)
	}
	if !slices.Contains([]string{LogFormatText, LogFormatJSON}, c.Log.Format) {
		return fmt.Errorf("%w: log format %q", ErrInvalidFormat, c.Log.Format)
	}
	if _, err := c.ValidationTime(); err != nil {
		return err
	}
	return nil
}

// ValidationTime returns the parsed validation.at timestamp, or the zero
// time when it is unset.
func (c *Config) ValidationTime() (time.Time, error) {
	if c.Validation.At == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.Validation.At)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidTime, err)
	}
	return t, nil
}

// Clock returns the time source for validation: a fixed instant when
// validation.at is set, otherwise time.Now.
func (c *Config) Clock() (func() time.Time, error) {
	at, err := c.ValidationTime()
	if err != nil {
		return nil, err
	}
	if at.IsZero() {
		return time.Now, nil
	}
	return func() time.Time { return at }, nil
}
