// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format    string  `yaml:"format"`
		Threshold float64 `yaml:"threshold"`
		Entities  string  `yaml:"entities"`
		Verbose   bool    `yaml:"verbose"`
		Debug     bool    `yaml:"debug"`
		NoColor   bool    `yaml:"no_color"`
	} `yaml:"defaults"`

	// Detection strategy configuration
	Detection struct {
		Entropy struct {
			Enabled bool `yaml:"enabled"`
		} `yaml:"entropy"`
		KeywordBoost struct {
			Enabled bool `yaml:"enabled"`
			Window  int  `yaml:"window"`
		} `yaml:"keyword_boost"`
		CJKNames struct {
			Enabled bool `yaml:"enabled"`
		} `yaml:"cjk_names"`
	} `yaml:"detection"`

	// External NER service configuration
	External struct {
		Enabled        bool   `yaml:"enabled"`
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"external"`

	// Additional signature patterns appended to the built-in catalog
	Patterns []CustomPattern `yaml:"patterns"`
}

// CustomPattern is a user-supplied signature catalog entry.
type CustomPattern struct {
	Name            string  `yaml:"name"`
	EntityType      string  `yaml:"entity_type"`
	Regex           string  `yaml:"regex"`
	Confidence      float64 `yaml:"confidence"`
	CaseInsensitive bool    `yaml:"case_insensitive"`
	NeedsContext    bool    `yaml:"needs_context"`
	Description     string  `yaml:"description"`
}

// EntityList parses the defaults.entities setting into an allow-list.
// "all" or empty means no restriction.
func (c *Config) EntityList() []string {
	raw := strings.TrimSpace(c.Defaults.Entities)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil
	}
	var out []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// DefaultConfig returns the built-in configuration used when no file is
// present.
func DefaultConfig() *Config {
	config := &Config{}

	config.Defaults.Format = "text"
	config.Defaults.Threshold = 0.5
	config.Defaults.Entities = "all"

	config.Detection.Entropy.Enabled = true
	config.Detection.KeywordBoost.Enabled = true
	config.Detection.KeywordBoost.Window = 50
	config.Detection.CJKNames.Enabled = true

	config.External.Enabled = false
	config.External.URL = "http://localhost:8001"
	config.External.TimeoutSeconds = 10

	return config
}

// LoadConfig loads configuration from the specified file path. Values not
// present in the file keep their defaults. An empty path returns the default
// configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// YAML unmarshaling zeroes booleans that are absent from the file, so the
	// enabled-by-default toggles are restored unless the file names them.
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	restoreAbsentDefaults(config, data)

	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func restoreAbsentDefaults(config *Config, data []byte) {
	var raw struct {
		Defaults map[string]interface{} `yaml:"defaults"`
		Detection struct {
			Entropy      map[string]interface{} `yaml:"entropy"`
			KeywordBoost map[string]interface{} `yaml:"keyword_boost"`
			CJKNames     map[string]interface{} `yaml:"cjk_names"`
		} `yaml:"detection"`
	}
	if yaml.Unmarshal(data, &raw) != nil {
		return
	}

	if _, ok := raw.Defaults["threshold"]; !ok {
		config.Defaults.Threshold = 0.5
	}
	if _, ok := raw.Detection.Entropy["enabled"]; !ok {
		config.Detection.Entropy.Enabled = true
	}
	if _, ok := raw.Detection.KeywordBoost["enabled"]; !ok {
		config.Detection.KeywordBoost.Enabled = true
	}
	if _, ok := raw.Detection.KeywordBoost["window"]; !ok {
		config.Detection.KeywordBoost.Window = 50
	}
	if _, ok := raw.Detection.CJKNames["enabled"]; !ok {
		config.Detection.CJKNames.Enabled = true
	}
}

func validate(config *Config) error {
	if config.Defaults.Threshold < 0 || config.Defaults.Threshold > 1 {
		return fmt.Errorf("invalid threshold %v: must be in [0, 1]", config.Defaults.Threshold)
	}
	if config.Detection.KeywordBoost.Window < 0 {
		return fmt.Errorf("invalid keyword window %d: must be non-negative", config.Detection.KeywordBoost.Window)
	}
	if config.External.TimeoutSeconds <= 0 {
		config.External.TimeoutSeconds = 10
	}
	for _, p := range config.Patterns {
		if p.Name == "" || p.Regex == "" {
			return fmt.Errorf("custom pattern entries require name and regex")
		}
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("custom pattern %q: confidence must be in [0, 1]", p.Name)
		}
	}
	return nil
}

// FindConfigFile looks for a config file in standard locations
func FindConfigFile() string {
	candidates := []string{
		"piiscan.yaml",
		"piiscan.yml",
		".piiscan.yaml",
	}

	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".piiscan.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfigOrDefault loads config from path, falling back to discovery and
// then to built-in defaults. It never fails on a missing file, only on an
// unreadable or invalid one.
func LoadConfigOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = FindConfigFile()
	}
	return LoadConfig(configPath)
}
