package app

import (
	"errors"
	"fmt"
)

// StdoutPath is the output path that writes tables to the run's writer.
const StdoutPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // .hcl file or directory
	OutPath    string

	LogFormat string
	LogLevel  string

	// RequiredBlocks must all be declared in the configuration.
	RequiredBlocks []string
	SkipValidate   bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.OutPath == "" {
		cfg.OutPath = StdoutPath
	}
	for _, name := range cfg.RequiredBlocks {
		if name == "" {
			return nil, fmt.Errorf("required block names cannot be empty: %q", cfg.RequiredBlocks)
		}
	}

	return &cfg, nil
}
