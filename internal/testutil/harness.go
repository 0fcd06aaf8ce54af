// Package testutil provides shared helpers for pipeline tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteTree materializes the given relative path to content mapping under a
// fresh temp directory and returns its root.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// HarnessResult holds the outcomes of a pipeline test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunPipeline provides a standardized harness: it writes the given file tree
// (which must include a serverless.yml), builds an App over it, and runs the
// full resolution pipeline.
func RunPipeline(t *testing.T, files map[string]string, layerID string) *HarnessResult {
	t.Helper()

	root := WriteTree(t, files)

	appConfig, err := app.NewConfig(app.Config{
		ServicePath: filepath.Join(root, "serverless.yml"),
		LayerID:     layerID,
		OutputDir:   "layers",
		LogFormat:   "text",
		LogLevel:    "debug",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	logs := &SafeBuffer{}
	layersApp := app.NewApp(&out, logs, appConfig)
	runErr := layersApp.Run(context.Background())

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       layersApp,
	}
}
