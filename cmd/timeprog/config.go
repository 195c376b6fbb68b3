package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/yaml"
)

func loadConfig(name string) (cfg Config, rerr error) {
	defer func() {
		// Environment variable has higher precedence.
		if loc := os.Getenv("TIMEPROG_LOCATION"); loc != "" {
			cfg.Location = loc
		}
		if rerr == nil {
			cfg.setDefaults()
		}
	}()

	if name == "" {
		name = "timeprog.yml"
		if _, err := os.Stat(name); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(filepath.Clean(name))
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %q", name)
	}

	return cfg, nil
}

// Config is the timeprog config.
type Config struct {
	// Step is the default step, empty value selects step automatically.
	Step string `json:"step" yaml:"step"`
	// Since is used to calculate range start relative to end.
	Since string `json:"since" yaml:"since"`
	// Layout is Go time layout for text output.
	Layout string `json:"layout" yaml:"layout"`
	// Location is IANA time zone name used to render instants.
	Location string `json:"location" yaml:"location"`
	// Output is output format, "text" or "json".
	Output string `json:"output" yaml:"output"`
	// Type is instant implementation, "time" or "otlp".
	Type string `json:"type" yaml:"type"`
}

func (cfg *Config) setDefaults() {
	if cfg.Since == "" {
		cfg.Since = "6h"
	}
	if cfg.Layout == "" {
		cfg.Layout = time.RFC3339Nano
	}
	if cfg.Location == "" {
		cfg.Location = "UTC"
	}
	if cfg.Output == "" {
		cfg.Output = outputText
	}
	if cfg.Type == "" {
		cfg.Type = typeTime
	}
}
