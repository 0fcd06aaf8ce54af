package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drmikecrowe/serverless-esbuild-layers/internal/config"
)

func TestModulesDedupAndNormalize(t *testing.T) {
	raw := []string{"uuid/v4", "@scope/pkg/deep", "uuid/v4"}

	got := Modules(raw, config.Defaults())

	assert.Equal(t, []string{"@scope/pkg", "uuid"}, got)
	// Identical input order yields identical output across runs.
	assert.Equal(t, got, Modules(raw, config.Defaults()))
}

func TestModulesDropsBuiltins(t *testing.T) {
	raw := []string{"fs", "node:path", "stream/web", "uuid"}
	assert.Equal(t, []string{"uuid"}, Modules(raw, config.Defaults()))
}

func TestModulesDropsEnvironmentProvided(t *testing.T) {
	raw := []string{"aws-sdk", "aws-sdk/clients/s3", "uuid"}
	assert.Equal(t, []string{"uuid"}, Modules(raw, config.Defaults()))
}

func TestModulesForceExclude(t *testing.T) {
	cfg := config.Merge(&config.Config{ForceExclude: []string{"lodash"}})
	raw := []string{"lodash/fp", "uuid"}
	assert.Equal(t, []string{"uuid"}, Modules(raw, cfg))
}

func TestModulesInclusionBeatsExclusion(t *testing.T) {
	cfg := config.Merge(&config.Config{
		ForceInclude: []string{"lodash"},
		ForceExclude: []string{"lodash"},
	})

	got := Modules([]string{"lodash", "uuid"}, cfg)

	assert.Equal(t, []string{"uuid", "lodash"}, got)
}

func TestModulesForceIncludeMayDuplicate(t *testing.T) {
	cfg := config.Merge(&config.Config{ForceInclude: []string{"uuid"}})
	got := Modules([]string{"uuid/v4"}, cfg)
	assert.Equal(t, []string{"uuid", "uuid"}, got)
}

func TestModulesEmptyInput(t *testing.T) {
	assert.Empty(t, Modules(nil, config.Defaults()))
}
