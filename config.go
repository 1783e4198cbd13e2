package object

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadManagerConfig decodes manager configuration from YAML.
//
// Example:
//
//	name: users
//	time_limit: 10m
//
// Logger, Stats and Now are not decoded and should be set by caller.
// Empty document results in zero configuration.
func LoadManagerConfig(r io.Reader) (ManagerConfig, error) {
	cfg := ManagerConfig{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode manager config: %w", err)
	}

	if cfg.TimeLimit < 0 && cfg.TimeLimit != ZeroTimeLimit {
		return cfg, fmt.Errorf("decode manager config: negative time_limit %s", cfg.TimeLimit)
	}

	return cfg, nil
}
