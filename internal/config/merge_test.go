package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pokecatch/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SectionOverride(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
catalog:
  page_size: 3
  base_url: http://localhost:8080
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, 3, target.Catalog.PageSize)
	assert.Equal(t, "http://localhost:8080", target.Catalog.BaseURL)
	assert.Equal(t, config.DefaultPageStep, target.Catalog.PageStep)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.Default()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "json", target.Output.DefaultFormat)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Default()
	before := *target
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, before.Catalog, target.Catalog)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "x"))
	require.Error(t, config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "missing.yaml")))

	bad := writeOverlay(t, "catalog: [")
	require.Error(t, config.ShallowMergeYAML(config.Default(), bad))

	wrongType := writeOverlay(t, "catalog:\n  page_size: lots\n")
	err := config.ShallowMergeYAML(config.Default(), wrongType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog")
}
