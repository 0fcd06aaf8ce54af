package bundler

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/config"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/ctxlog"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/plugin"
)

// loaderNames maps configuration loader names to esbuild loaders.
var loaderNames = map[string]api.Loader{
	"base64":  api.LoaderBase64,
	"binary":  api.LoaderBinary,
	"copy":    api.LoaderCopy,
	"css":     api.LoaderCSS,
	"dataurl": api.LoaderDataURL,
	"empty":   api.LoaderEmpty,
	"file":    api.LoaderFile,
	"js":      api.LoaderJS,
	"json":    api.LoaderJSON,
	"jsx":     api.LoaderJSX,
	"text":    api.LoaderText,
	"ts":      api.LoaderTS,
	"tsx":     api.LoaderTSX,
}

// ExternalModules bundles the resolved entries once and extracts the raw
// external module specifiers from the resulting build graph.
//
// An empty entry set short-circuits to an empty result without invoking the
// bundler. Plugin overrides come from the registry; the externals-marking
// plugin is always injected and a registered override with its reserved name
// is discarded by the registry. A bundler failure is fatal for the whole
// extraction: a partial graph could silently omit required packages.
func ExternalModules(ctx context.Context, entries []string, cfg *config.Config, reg *plugin.Registry) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	if len(entries) == 0 {
		return []string{}, nil
	}

	plugins := []api.Plugin{externalsPlugin()}
	if reg != nil {
		plugins = append(plugins, reg.Plugins(cfg)...)
	}

	opts := api.BuildOptions{
		EntryPoints: entries,
		Bundle:      true,
		Platform:    api.PlatformNode,
		Outdir:      cfg.OutDir,
		Metafile:    true,
		Write:       true,
		LogLevel:    api.LogLevelSilent,
		Plugins:     plugins,
		Loader:      buildLoaders(cfg.Loader),
		Engines:     buildEngines(cfg.Target),
	}

	logger.Debug("Invoking bundler.", "entries", len(entries), "outdir", cfg.OutDir, "plugins", len(plugins))
	result := api.Build(opts)
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("bundler failed: %s", formatMessages(result.Errors))
	}

	graph, err := parseGraph(result.Metafile)
	if err != nil {
		return nil, err
	}

	raw := externalSpecifiers(graph)
	logger.Debug("Build graph reduced.", "inputs", len(graph.Inputs), "outputs", len(graph.Outputs), "raw_specifiers", len(raw))
	return raw, nil
}

// externalsPlugin marks every bare (package) import as external so it shows
// up in the build graph instead of being bundled from node_modules.
func externalsPlugin() api.Plugin {
	return api.Plugin{
		Name: plugin.ReservedExternalsName,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `^[^./]`},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					return api.OnResolveResult{Path: args.Path, External: true}, nil
				})
		},
	}
}

func buildLoaders(loader map[string]string) map[string]api.Loader {
	if len(loader) == 0 {
		return nil
	}
	loaders := make(map[string]api.Loader, len(loader))
	for ext, name := range loader {
		l, ok := loaderNames[name]
		if !ok {
			continue
		}
		loaders[ext] = l
	}
	return loaders
}

// buildEngines translates a target like "node18" into an engine constraint.
// Unrecognized targets fall through to esbuild's default.
func buildEngines(target string) []api.Engine {
	version, ok := strings.CutPrefix(target, "node")
	if !ok || version == "" {
		return nil
	}
	return []api.Engine{{Name: api.EngineNode, Version: version}}
}

func formatMessages(msgs []api.Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			parts = append(parts, fmt.Sprintf("%s:%d: %s", m.Location.File, m.Location.Line, m.Text))
			continue
		}
		parts = append(parts, m.Text)
	}
	return strings.Join(parts, "; ")
}
