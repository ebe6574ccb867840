// internal/config/config.go
// Reaction configuration files. A config is one YAML document mapping onto
// deck.Config; omitted fields keep the built-in 36S(d,p)@8MeV defaults, so a
// file only has to spell out what differs from the reference setup.
package config

import (
	"fmt"
	"os"

	"dwdeck-core/deck"

	"gopkg.in/yaml.v3"
)

// Load reads a reaction config. An empty path returns the defaults.
func Load(path string) (deck.Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return deck.Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return deck.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return deck.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Dump renders a config back to YAML, useful for seeding a new reaction
// file from the defaults.
func Dump(cfg deck.Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return out, nil
}
