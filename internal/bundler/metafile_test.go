package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGraph(t *testing.T) {
	metafile := `{
		"inputs": {
			"src/index.js": {
				"bytes": 120,
				"imports": [
					{"path": "uuid", "kind": "import-statement", "external": true},
					{"path": "src/util.js", "kind": "import-statement"}
				]
			}
		},
		"outputs": {
			"out/index.js": {
				"bytes": 300,
				"entryPoint": "src/index.js",
				"imports": [
					{"path": "uuid", "kind": "require-call", "external": true}
				]
			}
		}
	}`

	graph, err := parseGraph(metafile)
	require.NoError(t, err)
	require.Len(t, graph.Inputs, 1)
	require.Len(t, graph.Outputs, 1)
	assert.True(t, graph.Inputs["src/index.js"].Imports[0].External)
	assert.Equal(t, "src/index.js", graph.Outputs["out/index.js"].EntryPoint)
}

func TestParseGraphMalformed(t *testing.T) {
	_, err := parseGraph("{")
	assert.Error(t, err)
}

func TestExternalSpecifiers(t *testing.T) {
	graph := &BuildGraph{
		Inputs: map[string]GraphInput{
			"src/index.js": {Imports: []ImportEdge{
				{Path: "uuid/v4", External: true},
				{Path: "src/util.js"},
				{Path: "node_modules/lodash/fp.js", Original: "lodash/fp"},
			}},
			"node_modules/uuid/index.js": {Imports: []ImportEdge{
				{Path: "crypto", External: true},
			}},
		},
		Outputs: map[string]GraphOutput{
			"out/index.js": {Imports: []ImportEdge{
				{Path: "@scope/pkg/deep", External: true},
			}},
		},
	}

	raw := externalSpecifiers(graph)

	assert.ElementsMatch(t, []string{"uuid/v4", "lodash/fp", "@scope/pkg/deep"}, raw)
	// Edges out of vendored inputs and project-local edges never surface.
	assert.NotContains(t, raw, "crypto")
	assert.NotContains(t, raw, "src/util.js")
}

func TestExternalSpecifiersPrefersOriginal(t *testing.T) {
	graph := &BuildGraph{
		Inputs: map[string]GraphInput{
			"src/a.js": {Imports: []ImportEdge{
				{Path: "node_modules/uuid/dist/v4.js", Original: "uuid/v4"},
			}},
		},
	}

	assert.Equal(t, []string{"uuid/v4"}, externalSpecifiers(graph))
}

func TestVendored(t *testing.T) {
	assert.True(t, vendored("node_modules/uuid/index.js"))
	assert.True(t, vendored("packages/app/node_modules/x/i.js"))
	assert.False(t, vendored("src/index.js"))
}
