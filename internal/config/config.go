package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level beanport.yaml configuration.
type Config struct {
	// PayeeMapping is the path to the payee-to-account YAML table.
	PayeeMapping string `yaml:"payee_mapping"`
	// Importers lists the bank importer instances to register.
	Importers []ImporterSpec `yaml:"importers"`
}

// ImporterSpec configures one bank importer instance.
type ImporterSpec struct {
	Format   string `yaml:"format"`
	Account  string `yaml:"account"`
	Currency string `yaml:"currency,omitempty"`
	// Pattern overrides file identification for pattern-matched formats
	// (swisscard).
	Pattern string `yaml:"pattern,omitempty"`
}

// Load reads a beanport.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config covering all built-in formats.
func Default() *Config {
	return &Config{
		PayeeMapping: "payees.yaml",
		Importers: []ImporterSpec{
			{Format: "revolut", Account: "Assets:Revolut:Cash", Currency: "GBP"},
			{Format: "neon", Account: "Assets:Neon:Cash", Currency: "CHF"},
			{Format: "swisscard", Account: "Assets:CashBackCard:Cash"},
		},
	}
}
