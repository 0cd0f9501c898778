package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a lint configuration from the given YAML file path.
// After parsing, it applies defaults to linters that don't specify their own
// values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault searches for a lint config in standard locations and loads the
// first one found. Search order: ./lint.yaml, ~/.lint-action/config.yaml.
// With no config file anywhere, a default configuration running every
// registered linter is returned.
func LoadDefault() (*Config, error) {
	candidates := []string{"lint.yaml"}

	home, err := os.UserHomeDir()
	if err == nil {
		candidates = append(candidates, filepath.Join(home, ".lint-action", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	cfg := &Config{}
	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults merges run-level defaults into linters that don't set their
// own values and fills in the baseline run shape.
func applyDefaults(cfg *Config) {
	l := &cfg.Lint

	if l.ProjectDir == "" {
		l.ProjectDir = "."
	}

	// No linters configured means run the full registry with defaults.
	if len(l.Linters) == 0 {
		l.Linters = map[string]LinterConfig{"tsc": {}}
	}

	for name, lc := range l.Linters {
		if lc.Timeout == "" && l.Defaults.Timeout != "" {
			lc.Timeout = l.Defaults.Timeout
		}
		if lc.Args == "" && l.Defaults.Args != "" {
			lc.Args = l.Defaults.Args
		}
		l.Linters[name] = lc
	}
}
