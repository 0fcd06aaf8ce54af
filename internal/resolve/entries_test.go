package resolve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the given relative files under a temp dir and chdirs
// into it for the duration of the test.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("module.exports = {};\n"), 0644))
	}
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestEntriesEmptyInput(t *testing.T) {
	got, err := Entries(context.Background(), []string{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntriesWrongType(t *testing.T) {
	for _, input := range []any{123, nil, 1.5, map[string]string{}, []int{1}} {
		got, err := Entries(context.Background(), input)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestEntriesStringEqualsSingletonList(t *testing.T) {
	writeTree(t, "dir/file.js")

	fromString, err := Entries(context.Background(), "dir/file.default")
	require.NoError(t, err)
	fromList, err := Entries(context.Background(), []string{"dir/file.default"})
	require.NoError(t, err)

	assert.Equal(t, fromList, fromString)
	assert.Equal(t, []string{filepath.Join("dir", "file.js")}, fromString)
}

func TestEntriesExtensionRewrite(t *testing.T) {
	writeTree(t, "src/a.js", "src/b.ts", "src/b.spec.ts")

	got, err := Entries(context.Background(), []string{"src/a.handler", "src/b.handler"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("src", "a.js"),
		filepath.Join("src", "b.ts"),
	}, got)
}

func TestEntriesMatchesQualifierVariant(t *testing.T) {
	writeTree(t, "src/task.default.js")

	got, err := Entries(context.Background(), "src/task.default")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "task.default.js")}, got)
}

func TestEntriesSourceExtensionKeptLiteral(t *testing.T) {
	writeTree(t, "src/exact.js")

	got, err := Entries(context.Background(), "src/exact.js")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "exact.js")}, got)
}

func TestEntriesNoDirectoryComponent(t *testing.T) {
	writeTree(t, "root.js")

	got, err := Entries(context.Background(), "root.default")
	require.NoError(t, err)
	assert.Equal(t, []string{"root.js"}, got)
}

func TestEntriesMissingDirectory(t *testing.T) {
	writeTree(t)

	got, err := Entries(context.Background(), "no/such/dir/file.default")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEntriesPreservesInputOrder(t *testing.T) {
	writeTree(t, "a/x.js", "b/y.js")

	got, err := Entries(context.Background(), []string{"b/y.default", "a/x.default", "b/y.default"})
	require.NoError(t, err)
	// No dedup at this layer; order follows input order.
	assert.Equal(t, []string{
		filepath.Join("b", "y.js"),
		filepath.Join("a", "x.js"),
		filepath.Join("b", "y.js"),
	}, got)
}
