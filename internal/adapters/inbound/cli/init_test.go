package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created .langgate.yaml from preset strict")

	data, err := os.ReadFile(filepath.Join(dir, ".langgate.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# langgate configuration")
	assert.Contains(t, string(data), "preset: strict")
	assert.Contains(t, string(data), "asconfig.json")
}

func TestInit_Preset(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "init", dir, "--preset", "permissive")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, ".langgate.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "preset: permissive")
	assert.NotContains(t, string(data), "asconfig.json")
}

func TestInit_GeneratedConfigLoads(t *testing.T) {
	dir := writeTree(t, "src/main.wat")

	_, _, err := run(t, "init", dir)
	require.NoError(t, err)

	_, _, err = run(t, "--path", dir)
	require.NoError(t, err)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, ".langgate.yaml")
	require.NoError(t, os.WriteFile(dest, []byte("style: log\n"), 0644))

	_, _, err := run(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "style: log\n", string(data))

	_, _, err = run(t, "init", dir, "--force")
	require.NoError(t, err)
	data, err = os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "preset: strict")
}

func TestInit_UnknownPreset(t *testing.T) {
	_, _, err := run(t, "init", t.TempDir(), "--preset", "lenient")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}
