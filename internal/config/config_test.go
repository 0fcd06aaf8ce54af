package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNilYieldsDefaults(t *testing.T) {
	assert.Equal(t, Defaults(), Merge(nil))
	assert.Equal(t, Defaults(), Merge())
}

func TestMergeLaterPartialsWin(t *testing.T) {
	first := &Config{BackupFileType: "handler", Target: "node16"}
	second := &Config{Target: "node20"}

	cfg := Merge(first, second)

	assert.Equal(t, "handler", cfg.BackupFileType)
	assert.Equal(t, "node20", cfg.Target)
}

func TestMergeUserFieldsWin(t *testing.T) {
	user := &Config{
		ForceInclude:   []string{"uuid"},
		BackupFileType: "handler",
		Target:         "node20",
	}

	cfg := Merge(user)

	assert.Equal(t, []string{"uuid"}, cfg.ForceInclude)
	assert.Equal(t, "handler", cfg.BackupFileType)
	assert.Equal(t, "node20", cfg.Target)
	// Untouched fields keep their defaults.
	assert.Equal(t, Defaults().OutDir, cfg.OutDir)
	assert.Empty(t, cfg.ForceExclude)
}

func TestMergeDoesNotAliasUserSlices(t *testing.T) {
	user := &Config{ForceExclude: []string{"lodash"}}
	cfg := Merge(user)

	user.ForceExclude[0] = "changed"
	assert.Equal(t, []string{"lodash"}, cfg.ForceExclude)
}

func TestLoadOverridesMissingFile(t *testing.T) {
	cfg, err := LoadOverrides(context.Background(), filepath.Join(t.TempDir(), OverrideFile))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, OverrideFile)
	content := `
force_include    = ["uuid"]
force_exclude    = ["aws-sdk"]
backup_file_type = "handler"
target           = "node20"

loader = {
  ".graphql" = "text"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadOverrides(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"uuid"}, cfg.ForceInclude)
	assert.Equal(t, []string{"aws-sdk"}, cfg.ForceExclude)
	assert.Equal(t, "handler", cfg.BackupFileType)
	assert.Equal(t, "node20", cfg.Target)
	assert.Equal(t, map[string]string{".graphql": "text"}, cfg.Loader)
}

func TestLoadOverridesMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, OverrideFile)
	require.NoError(t, os.WriteFile(path, []byte("force_include = [\n"), 0644))

	_, err := LoadOverrides(context.Background(), path)
	assert.Error(t, err)
}
