// Package config loads the YAML configuration that tunes the REPL and
// CLI surface: prompt text, the evaluator's call-depth ceiling, and
// where REPL history is persisted.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrompt       = ">> "
	defaultMaxCallDepth = 10000
	defaultHistoryFile  = ""
)

// Config is the on-disk shape of a lumen config file.
type Config struct {
	Prompt       string `yaml:"prompt"`
	MaxCallDepth int    `yaml:"max_call_depth"`
	HistoryFile  string `yaml:"history_file"`
}

// Default returns a Config populated with the built-in defaults, used
// whenever no config file is given or found.
func Default() *Config {
	return &Config{
		Prompt:       defaultPrompt,
		MaxCallDepth: defaultMaxCallDepth,
		HistoryFile:  defaultHistoryFile,
	}
}

// Load reads and parses the YAML config file at path, filling any
// field the file omits with the built-in default. A missing path is
// not an error; a malformed file is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.MaxCallDepth == 0 {
		cfg.MaxCallDepth = defaultMaxCallDepth
	}

	return cfg, nil
}
