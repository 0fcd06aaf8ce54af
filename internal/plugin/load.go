package plugin

import (
	"context"
	"plugin"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/ctxlog"
)

// pluginsSymbol is the exported symbol a plugin file must provide. Its value
// must be a function returning named factories.
const pluginsSymbol = "Plugins"

// Load opens a Go plugin file and registers the factories it exposes into
// reg. Every failure mode — unreadable file, missing symbol, wrong symbol
// type, duplicate names — is logged and swallowed: a bad override file must
// never fail the extraction it was meant to tweak.
func Load(ctx context.Context, reg *Registry, path string) {
	logger := ctxlog.FromContext(ctx)
	if path == "" {
		return
	}

	p, err := plugin.Open(path)
	if err != nil {
		logger.Warn("Failed to open plugin file; continuing without overrides.", "path", path, "error", err)
		return
	}

	sym, err := p.Lookup(pluginsSymbol)
	if err != nil {
		logger.Warn("Plugin file does not export the expected symbol; continuing without overrides.", "path", path, "symbol", pluginsSymbol, "error", err)
		return
	}

	provide, ok := sym.(func() map[string]Factory)
	if !ok {
		logger.Warn("Plugin symbol has the wrong type; continuing without overrides.", "path", path, "symbol", pluginsSymbol)
		return
	}

	for name, factory := range provide() {
		if err := reg.Register(name, factory); err != nil {
			logger.Warn("Skipping plugin from override file.", "path", path, "plugin", name, "error", err)
		}
	}
	logger.Debug("Plugin overrides loaded.", "path", path, "plugins", reg.Names())
}
