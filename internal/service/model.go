package service

import (
	"sort"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/config"
)

// LayerRef references a declared layer from a function, CloudFormation style.
type LayerRef struct {
	Ref string `yaml:"Ref"`
}

// Image marks a container-image function definition. Image functions carry
// no handler source and cannot participate in layering.
type Image struct {
	Name string `yaml:"name"`
	URI  string `yaml:"uri"`
}

// Function is one deployable function declaration.
type Function struct {
	Handler string     `yaml:"handler"`
	Layers  []LayerRef `yaml:"layers"`
	// ShouldLayer opts a function out of layering when explicitly false.
	ShouldLayer *bool  `yaml:"shouldLayer"`
	Image       *Image `yaml:"image"`
}

// Layered reports whether the function participates in layering. Absent
// means yes.
func (f *Function) Layered() bool {
	return f.ShouldLayer == nil || *f.ShouldLayer
}

// ReferencesLayer reports whether the function references the given layer id
// by exact string equality.
func (f *Function) ReferencesLayer(layerID string) bool {
	for _, ref := range f.Layers {
		if ref.Ref == layerID {
			return true
		}
	}
	return false
}

// Layer is a declared layer. The pipeline only needs its identity; the rest
// of the declaration belongs to the deployment step.
type Layer struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Model is the loaded service file.
type Model struct {
	Service   string
	Functions map[string]*Function
	Layers    map[string]Layer
	// Custom is the decoded custom.esbuild-layers block, nil when absent.
	Custom *config.Config
}

// FunctionNames returns the declared function names in a stable order so
// every pipeline run visits functions deterministically.
func (m *Model) FunctionNames() []string {
	names := make([]string, 0, len(m.Functions))
	for name := range m.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LayerIDs returns the declared layer reference ids in a stable order.
func (m *Model) LayerIDs() []string {
	ids := make([]string, 0, len(m.Layers))
	for id := range m.Layers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
