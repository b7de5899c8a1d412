package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/genep/tree"
	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a configuration value outside its domain.
var ErrBadConfig = errors.New("genep: invalid configuration")

// Config is the playground configuration, read from YAML and overridden by flags.
type Config struct {
	Seed          int64  `yaml:"seed"`
	MaxDepth      int    `yaml:"max_depth"`
	InputSize     int    `yaml:"input_size"`
	OutputSize    int    `yaml:"output_size"`
	MutationDepth int    `yaml:"mutation_depth"`
	Indent        int    `yaml:"indent"`
	Selection     string `yaml:"selection"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Seed:          tree.DefaultSeed,
		MaxDepth:      5,
		InputSize:     2,
		OutputSize:    1,
		MutationDepth: tree.DefaultMutationDepth,
		Indent:        tree.DefaultIndent,
		Selection:     tree.SelectWalk.String(),
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults;
// a path that does not exist is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field's domain.
func (c Config) Validate() error {
	switch {
	case c.MaxDepth < 0:
		return fmt.Errorf("max_depth %d: %w", c.MaxDepth, ErrBadConfig)
	case c.InputSize < 0:
		return fmt.Errorf("input_size %d: %w", c.InputSize, ErrBadConfig)
	case c.OutputSize < 1:
		return fmt.Errorf("output_size %d: %w", c.OutputSize, ErrBadConfig)
	case c.MutationDepth < 0:
		return fmt.Errorf("mutation_depth %d: %w", c.MutationDepth, ErrBadConfig)
	case c.Indent < 0:
		return fmt.Errorf("indent %d: %w", c.Indent, ErrBadConfig)
	}
	if _, err := c.selection(); err != nil {
		return err
	}

	return nil
}

func (c Config) selection() (tree.Selection, error) {
	switch c.Selection {
	case "", tree.SelectWalk.String():
		return tree.SelectWalk, nil
	case tree.SelectUniform.String():
		return tree.SelectUniform, nil
	}

	return 0, fmt.Errorf("selection %q: %w", c.Selection, ErrBadConfig)
}
