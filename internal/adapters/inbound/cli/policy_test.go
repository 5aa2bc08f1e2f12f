package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_PrintsPreset(t *testing.T) {
	out, _, err := run(t, "policy", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "preset: strict")
	assert.Contains(t, out, "name: wagasm-ssg")
	assert.Contains(t, out, "- .wat")
}

func TestPolicy_ShowsMergedConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".langgate.yaml"), []byte("policy:\n  name: custom\n"), 0644))

	out, _, err := run(t, "policy", "--path", dir, "--preset", "permissive")
	require.NoError(t, err)
	assert.Contains(t, out, "preset: permissive")
	assert.Contains(t, out, "name: custom")
}
