package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/bundler"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/ctxlog"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/filter"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/manifest"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/resolve"
)

// Result maps a layer id to its final external dependency list.
type Result map[string][]string

// Run resolves every requested layer and writes the result map as JSON.
//
// Handler paths in the service file are relative to the service root, so the
// pipeline runs with the service root as working directory; the original
// directory is restored before returning.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	restore, err := chdir(a.root)
	if err != nil {
		return err
	}
	defer restore()

	layerIDs := a.model.LayerIDs()
	if a.appCfg.LayerID != "" {
		if _, ok := a.model.Layers[a.appCfg.LayerID]; !ok {
			return fmt.Errorf("layer %q is not declared in %s", a.appCfg.LayerID, a.appCfg.ServicePath)
		}
		layerIDs = []string{a.appCfg.LayerID}
	}
	if len(layerIDs) == 0 {
		a.logger.Warn("No layers declared, nothing to resolve.")
	}

	versions, err := manifest.ProjectVersions(".")
	if err != nil {
		return err
	}

	results := make(Result, len(layerIDs))
	for _, layerID := range layerIDs {
		modules, err := a.resolveLayer(ctx, layerID, versions)
		if err != nil {
			return fmt.Errorf("failed to resolve layer %s: %w", layerID, err)
		}
		results[layerID] = modules
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveLayer runs the full pipeline for one layer: entries, extraction,
// filtering, manifest.
func (a *App) resolveLayer(ctx context.Context, layerID string, versions map[string]string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	entries, err := resolve.LayerEntries(ctx, a.model, layerID, a.cfg.BackupFileType)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		logger.Warn("No entry files resolved for layer, skipping extraction.", "layer", layerID)
		return []string{}, nil
	}
	logger.Info("Entry files resolved.", "layer", layerID, "entries", len(entries))

	raw, err := bundler.ExternalModules(ctx, entries, a.cfg, a.registry)
	if err != nil {
		return nil, err
	}

	modules := filter.Modules(raw, a.cfg)
	logger.Info("External dependencies determined.", "layer", layerID, "modules", modules)

	if err := manifest.Write(a.appCfg.OutputDir, layerID, modules, versions); err != nil {
		return nil, err
	}
	return modules, nil
}

// chdir switches the working directory and returns a restore func. A "."
// root is a no-op.
func chdir(dir string) (func(), error) {
	if dir == "" || dir == "." {
		return func() {}, nil
	}
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("failed to enter service root %s: %w", dir, err)
	}
	return func() { _ = os.Chdir(prev) }, nil
}
