// Package config handles loading and saving user configuration for murcielago.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	NormalizeNFC    bool     `yaml:"normalize_nfc"`
	Extensions      []string `yaml:"extensions"`        // File picker filter, e.g. ".txt"
	StartDir        string   `yaml:"start_dir"`         // File picker start directory
	ReportFormat    string   `yaml:"report_format"`     // Default for `analyze`; empty = auto
	ShowLineNumbers bool     `yaml:"show_line_numbers"` // Editor gutter
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Extensions:      []string{".txt"},
		ShowLineNumbers: true,
	}
}

// Load reads config.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to config.yaml in dir.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteTemplate writes the commented default config to dir.
func WriteTemplate(dir string) error {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(Template), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "murcielago"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}

// Template is written by `murcielago init`.
const Template = `# murcielago configuration

# Compose decomposed accents (e + U+0301 -> é) before analysis.
normalize_nfc: false

# Extensions shown by the file picker. Empty list shows every file.
extensions:
  - ".txt"

# Directory the file picker opens in. Empty means the working directory.
start_dir: ""

# Default output of 'murcielago analyze': text, markdown, table, yaml, json.
# Empty picks table on a terminal and text otherwise.
report_format: ""

# Show line numbers in the editor.
show_line_numbers: true
`
