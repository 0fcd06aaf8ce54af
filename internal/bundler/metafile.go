package bundler

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BuildGraph is the decoded esbuild metafile: the structured description of
// inputs, outputs, and the import edges between them for one build. It is
// read-only output of a single bundler invocation.
type BuildGraph struct {
	Inputs  map[string]GraphInput  `json:"inputs"`
	Outputs map[string]GraphOutput `json:"outputs"`
}

// GraphInput is one input file and its outgoing import edges.
type GraphInput struct {
	Bytes   int          `json:"bytes"`
	Imports []ImportEdge `json:"imports"`
	Format  string       `json:"format,omitempty"`
}

// GraphOutput is one produced artifact and its cross-artifact imports.
type GraphOutput struct {
	Bytes      int          `json:"bytes"`
	Imports    []ImportEdge `json:"imports"`
	EntryPoint string       `json:"entryPoint,omitempty"`
}

// ImportEdge is one import statement in the graph. Path is the resolved
// target, Original the specifier exactly as written in source, and External
// marks targets left outside the bundle (package imports).
type ImportEdge struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	External bool   `json:"external,omitempty"`
	Original string `json:"original,omitempty"`
}

// parseGraph decodes the metafile JSON emitted by the bundler.
func parseGraph(metafile string) (*BuildGraph, error) {
	var graph BuildGraph
	if err := json.Unmarshal([]byte(metafile), &graph); err != nil {
		return nil, fmt.Errorf("failed to decode build graph: %w", err)
	}
	return &graph, nil
}

// vendored reports whether a path points into an installed dependency tree.
func vendored(path string) bool {
	return strings.Contains(path, "node_modules/") || strings.Contains(path, `node_modules\`)
}

// externalSpecifiers reduces the graph to a flat list of raw external module
// specifiers: every cross-artifact import recorded against an output, plus
// every package-targeting edge of every first-party input. The original
// specifier string is preferred over the resolved path so sub-path imports
// like "uuid/v4" survive for later normalization. No deduplication or
// filtering happens here.
func externalSpecifiers(graph *BuildGraph) []string {
	var raw []string

	for _, out := range graph.Outputs {
		for _, edge := range out.Imports {
			raw = append(raw, specifier(edge))
		}
	}

	for inputPath, input := range graph.Inputs {
		if vendored(inputPath) {
			continue
		}
		for _, edge := range input.Imports {
			if edge.External || vendored(edge.Path) {
				raw = append(raw, specifier(edge))
			}
		}
	}

	return raw
}

func specifier(edge ImportEdge) string {
	if edge.Original != "" {
		return edge.Original
	}
	return edge.Path
}
