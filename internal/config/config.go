// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"pdf-excerpt/internal/locator"
	"pdf-excerpt/internal/printer"
)

// DefaultFile is the document pdf-read opens when no file is named
const DefaultFile = "[时代复兴] - 详版 - AI全资产配置基金_241115 DZX.pdf"

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Directory     string `yaml:"directory"`
		DefaultFile   string `yaml:"default_file"`
		Policy        string `yaml:"policy"`
		ExcerptPages  int    `yaml:"excerpt_pages"`
		ExcerptChars  int    `yaml:"excerpt_chars"`
		DocumentChars int    `yaml:"document_chars"`
		Normalize     bool   `yaml:"normalize"`
		Validate      bool   `yaml:"validate"`
		ShowInfo      bool   `yaml:"show_info"`
		Debug         bool   `yaml:"debug"`
		NoColor       bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Profiles for different reading scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents a named set of overrides applied on top of Defaults
type Profile struct {
	Description   string `yaml:"description"`
	Policy        string `yaml:"policy"`
	ExcerptPages  int    `yaml:"excerpt_pages"`
	ExcerptChars  int    `yaml:"excerpt_chars"`
	DocumentChars int    `yaml:"document_chars"`
	Normalize     bool   `yaml:"normalize"`
	Validate      bool   `yaml:"validate"`
	ShowInfo      bool   `yaml:"show_info"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the defaults without touching the file system.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Directory = "."
	config.Defaults.DefaultFile = DefaultFile
	config.Defaults.Policy = string(locator.PolicyFirst)
	config.Defaults.ExcerptPages = printer.DefaultPageLimit
	config.Defaults.ExcerptChars = printer.DefaultExcerptChars
	config.Defaults.DocumentChars = printer.DefaultDocumentChars

	config.Profiles["strict"] = Profile{
		Description:   "Require exactly one PDF and validate it before extraction",
		Policy:        string(locator.PolicyStrict),
		ExcerptPages:  printer.DefaultPageLimit,
		ExcerptChars:  printer.DefaultExcerptChars,
		DocumentChars: printer.DefaultDocumentChars,
		Validate:      true,
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads configFile, falling back to the defaults when
// it cannot be read. The load error is returned alongside so callers can
// warn about it.
func LoadConfigOrDefault(configFile string) (*Config, error) {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		cfg, _ = LoadConfig("")
		return cfg, err
	}
	return cfg, nil
}

// ValidateConfig checks limits and enumerated values. Default limits
// must be positive; a profile limit of 0 inherits the default.
func ValidateConfig(config *Config) error {
	d := config.Defaults
	if d.Directory == "" {
		return fmt.Errorf("defaults: directory must not be empty")
	}
	if d.DefaultFile == "" {
		return fmt.Errorf("defaults: default_file must not be empty")
	}
	if _, err := locator.ParsePolicy(d.Policy); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for _, l := range limits(d.ExcerptPages, d.ExcerptChars, d.DocumentChars) {
		if l.value <= 0 {
			return fmt.Errorf("defaults: %s must be positive, got %d", l.name, l.value)
		}
	}

	for _, name := range config.ListProfiles() {
		p := config.Profiles[name]
		if _, err := locator.ParsePolicy(p.Policy); err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
		for _, l := range limits(p.ExcerptPages, p.ExcerptChars, p.DocumentChars) {
			if l.value < 0 {
				return fmt.Errorf("profile %s: %s must not be negative, got %d", name, l.name, l.value)
			}
		}
	}
	return nil
}

type limit struct {
	name  string
	value int
}

func limits(excerptPages, excerptChars, documentChars int) []limit {
	return []limit{
		{"excerpt_pages", excerptPages},
		{"excerpt_chars", excerptChars},
		{"document_chars", documentChars},
	}
}

// ListProfiles returns the available profile names in sorted order
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}
