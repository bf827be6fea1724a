// Package config loads the YAML configuration of a generation run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/llehouerou/go-graphql-typegen/internal/tagparser"
)

// Config is the on-disk run configuration.
//
//	schema:
//	  - schema.graphql
//	queries:
//	  - queries/*.graphql
//	namespace: github
//	rootContainer: Types
//	scalars:
//	  - "DateTime: time.Time"
type Config struct {
	Schema        []string `yaml:"schema"`
	Queries       []string `yaml:"queries"`
	Namespace     string   `yaml:"namespace"`
	RootContainer string   `yaml:"rootContainer"`
	Scalars       []string `yaml:"scalars"`
}

// Load reads the configuration at path. Relative schema and query paths
// are resolved against the directory of path, and globs are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(path)
	if cfg.Schema, err = expand(base, cfg.Schema); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	if cfg.Queries, err = expand(base, cfg.Queries); err != nil {
		return nil, fmt.Errorf("queries: %w", err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required settings and scalar bindings.
func (c *Config) Validate() error {
	if len(c.Schema) == 0 {
		return errors.New("config: at least one schema file is required")
	}
	if len(c.Queries) == 0 {
		return errors.New("config: at least one query file is required")
	}
	if _, err := c.ScalarBindings(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ScalarBindings returns the scalar to converter marker mapping.
func (c *Config) ScalarBindings() (map[string]string, error) {
	return tagparser.ParseScalarBindings(c.Scalars)
}

func expand(base string, patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(base, pattern)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no file matches %s", pattern)
		}
		out = append(out, matches...)
	}
	return out, nil
}
