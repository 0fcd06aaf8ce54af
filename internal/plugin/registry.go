package plugin

import (
	"fmt"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/config"
)

// ReservedExternalsName is the plugin name the extractor always provides
// itself. Overrides carrying this name are discarded to prevent externals
// from being detected twice.
const ReservedExternalsName = "node-externals"

// Factory builds one esbuild plugin for a given configuration.
type Factory func(cfg *config.Config) api.Plugin

// Registry holds named bundler plugin factories for a single application
// instance.
type Registry struct {
	factories map[string]Factory
	order     []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a named factory. Registering the same name twice is a
// programmer error and is rejected.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return fmt.Errorf("plugin name must not be empty")
	}
	if f == nil {
		return fmt.Errorf("plugin %q has a nil factory", name)
	}
	if _, dup := r.factories[name]; dup {
		return fmt.Errorf("plugin %q is already registered", name)
	}
	r.factories[name] = f
	r.order = append(r.order, name)
	return nil
}

// Names returns the registered plugin names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Plugins materializes every registered factory, in registration order,
// skipping any that carries the reserved externals name.
func (r *Registry) Plugins(cfg *config.Config) []api.Plugin {
	plugins := make([]api.Plugin, 0, len(r.order))
	for _, name := range r.order {
		if name == ReservedExternalsName {
			continue
		}
		plugins = append(plugins, r.factories[name](cfg))
	}
	return plugins
}
