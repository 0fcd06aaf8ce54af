package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse(nil, &out)
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "serverless.yml", cfg.ServicePath)
	assert.Empty(t, cfg.LayerID)
	assert.Equal(t, "layers", cfg.OutputDir)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParsePositionalServicePath(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"deploy/serverless.yml"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "deploy/serverless.yml", cfg.ServicePath)
}

func TestParseFlagBeatsPositional(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-service", "a.yml", "b.yml"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "a.yml", cfg.ServicePath)
}

func TestParseLayerAndOutput(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := Parse([]string{"-layer", "LayerA", "-output", "build/layers"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "LayerA", cfg.LayerID)
	assert.Equal(t, "build/layers", cfg.OutputDir)
}

func TestParseInvalidLogFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-log-format", "xml"}, &out)
	require.Error(t, err)

	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParseInvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, err := Parse([]string{"-log-level", "loud"}, &out)
	require.Error(t, err)
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, shouldExit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}
