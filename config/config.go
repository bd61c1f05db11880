// Package config loads host-side project configuration. The engine
// itself takes all of its inputs as arguments; this file only covers
// what the host harness needs to decide how to invoke it.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/draftworks/draft/document"
)

// FileName is the name of the project config file.
const FileName = "draft.yaml"

// FileNameAlt is the alternate name of the project config file.
const FileNameAlt = "draft.yml"

// Config is the project configuration.
type Config struct {
	// Dimensioning enables gridline dimension generation in sections.
	Dimensioning bool `koanf:"dimensioning"`
	// Number configures dimension value formatting.
	Number NumberConfig `koanf:"number"`
}

// NumberConfig mirrors document.NumberFormat in config form.
type NumberConfig struct {
	Locale   string `koanf:"locale"`
	Decimals int    `koanf:"decimals"`
}

// ApplyDefaults fills unset fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Number.Locale == "" {
		c.Number.Locale = "en"
	}
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	c := &Config{Dimensioning: true}
	c.ApplyDefaults()
	return c
}

// NumberFormat converts the number settings for the document model.
func (c *Config) NumberFormat() document.NumberFormat {
	return document.NumberFormat{Locale: c.Number.Locale, Decimals: c.Number.Decimals}
}

// LoadFromDir loads a Config from the given directory. It looks for
// draft.yaml or draft.yml. Returns nil, nil if no config file is found
// (not an error condition).
func LoadFromDir(dir string) (*Config, error) {
	configPath := findConfigFile(dir)
	if configPath == "" {
		return nil, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// findConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func findConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, FileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}
