package service

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/config"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/ctxlog"
)

// customBlockKey is the key of this tool's block under `custom`.
const customBlockKey = "esbuild-layers"

// rawService mirrors the subset of the service file schema the pipeline
// reads. Unknown keys are ignored.
type rawService struct {
	Service   string               `yaml:"service"`
	Functions map[string]*Function `yaml:"functions"`
	Layers    map[string]Layer     `yaml:"layers"`
	Custom    map[string]yaml.Node `yaml:"custom"`
}

// Load parses the service file at path into a Model.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service file %s: %w", path, err)
	}

	var raw rawService
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse service file %s: %w", path, err)
	}

	model := &Model{
		Service:   raw.Service,
		Functions: raw.Functions,
		Layers:    raw.Layers,
	}
	if model.Functions == nil {
		model.Functions = map[string]*Function{}
	}
	if model.Layers == nil {
		model.Layers = map[string]Layer{}
	}

	if node, ok := raw.Custom[customBlockKey]; ok {
		var custom config.Config
		if err := node.Decode(&custom); err != nil {
			return nil, fmt.Errorf("invalid custom.%s block in %s: %w", customBlockKey, path, err)
		}
		model.Custom = &custom
	}

	logger.Debug("Service file loaded.",
		"service", model.Service,
		"functions", len(model.Functions),
		"layers", len(model.Layers),
	)
	return model, nil
}
