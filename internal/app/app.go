package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/config"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/ctxlog"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/plugin"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/service"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	appCfg   *Config
	model    *service.Model
	cfg      *config.Config
	registry *plugin.Registry
	root     string
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Results go to outW,
// logs to logW.
//
// Configuration is resolved in three passes: fixed defaults, the service
// file's custom block, then the HCL override file next to the service file.
// A service file or override file that fails to load is a fatal startup
// error and panics; main recovers it into a clean exit.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	root := filepath.Dir(appConfig.ServicePath)

	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil {
		logger.Debug("No .env file loaded.", "error", err)
	}

	model, err := service.Load(ctx, appConfig.ServicePath)
	if err != nil {
		panic(fmt.Errorf("failed to load service file: %w", err))
	}

	overrides, err := config.LoadOverrides(ctx, filepath.Join(root, config.OverrideFile))
	if err != nil {
		panic(fmt.Errorf("failed to load overrides: %w", err))
	}

	cfg := config.Merge(model.Custom, overrides)
	logger.Debug("Configuration merged.", "backup_file_type", cfg.BackupFileType, "target", cfg.Target)

	reg := plugin.New()
	plugin.Load(ctx, reg, cfg.PluginPath)

	return &App{
		outW:     outW,
		logger:   logger,
		appCfg:   appConfig,
		model:    model,
		cfg:      cfg,
		registry: reg,
		root:     root,
	}
}

// Root returns the service root directory. This is primarily for testing.
func (a *App) Root() string {
	return a.root
}

// Model returns the loaded service model. This is primarily for testing.
func (a *App) Model() *service.Model {
	return a.model
}

// PluginConfig returns the merged plugin configuration. This is primarily
// for testing.
func (a *App) PluginConfig() *config.Config {
	return a.cfg
}
