package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ServicePath string // serverless.yml (or compatible) service file
	LayerID     string // resolve only this layer; empty means all declared layers
	OutputDir   string // where per-layer manifests are written

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and fills derivable defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ServicePath == "" {
		return nil, errors.New("ServicePath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "layers"
	}
	return &cfg, nil
}
