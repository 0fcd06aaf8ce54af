// Package manifest emits the per-layer package.json consumed by the
// packaging step. Zipping, installing and uploading stay out of scope.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// packageJSON is the subset of a package.json this tool reads and writes.
type packageJSON struct {
	Name            string            `json:"name,omitempty"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// ProjectVersions reads the project root package.json and returns the
// version constraint declared for each package, dependencies taking
// precedence over devDependencies. A missing file yields an empty map:
// every layer dependency then falls back to the wildcard constraint.
func ProjectVersions(root string) (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read project package.json: %w", err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("failed to parse project package.json: %w", err)
	}

	versions := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name, version := range pkg.DevDependencies {
		versions[name] = version
	}
	for name, version := range pkg.Dependencies {
		versions[name] = version
	}
	return versions, nil
}

// Write emits <dir>/<layer>/nodejs/package.json declaring the given modules
// as dependencies. Versions come from the versions map, "*" when unknown.
func Write(dir, layer string, modules []string, versions map[string]string) error {
	deps := make(map[string]string, len(modules))
	for _, name := range modules {
		version, ok := versions[name]
		if !ok {
			version = "*"
		}
		deps[name] = version
	}

	pkg := packageJSON{
		Name:         layer + "-layer",
		Dependencies: deps,
	}
	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode layer manifest: %w", err)
	}
	data = append(data, '\n')

	target := filepath.Join(dir, layer, "nodejs")
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("failed to create layer directory %s: %w", target, err)
	}
	path := filepath.Join(target, "package.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layer manifest %s: %w", path, err)
	}
	return nil
}
