// Package filter applies the dependency inclusion policy to raw specifiers
// coming out of the build graph.
package filter

import (
	"sort"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/builtins"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/config"
	"github.com/drmikecrowe/serverless-esbuild-layers/internal/modname"
)

// alwaysAvailable lists packages the execution environment provides on its
// own; they never need to ship in a layer.
var alwaysAvailable = map[string]struct{}{
	"aws-sdk": {},
}

// Modules reduces raw import specifiers to the final installable package
// list: deduplicate, drop runtime built-ins, normalize to package names,
// drop environment-provided packages and the configured excludes, then
// append the configured includes verbatim.
//
// Exclusion runs before inclusion, so a name listed in both ForceExclude and
// ForceInclude ends up in the output: explicit inclusion always wins. The
// filtered portion is sorted lexicographically; ForceInclude keeps its
// declared order and may introduce duplicates.
func Modules(raw []string, cfg *config.Config) []string {
	excluded := make(map[string]struct{}, len(cfg.ForceExclude))
	for _, name := range cfg.ForceExclude {
		excluded[name] = struct{}{}
	}

	set := map[string]struct{}{}
	for _, spec := range raw {
		if builtins.IsBuiltin(spec) {
			continue
		}
		name := modname.Normalize(spec)
		if name == "" {
			continue
		}
		if _, ok := alwaysAvailable[name]; ok {
			continue
		}
		if _, ok := excluded[name]; ok {
			continue
		}
		set[name] = struct{}{}
	}

	modules := make([]string, 0, len(set)+len(cfg.ForceInclude))
	for name := range set {
		modules = append(modules, name)
	}
	sort.Strings(modules)

	return append(modules, cfg.ForceInclude...)
}
