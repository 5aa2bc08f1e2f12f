package domain_test

import (
	"testing"

	"github.com/langgate/langgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetConfig_Strict(t *testing.T) {
	cfg, err := domain.PresetConfig(domain.PresetStrict)
	require.NoError(t, err)

	assert.Equal(t, domain.PresetStrict, cfg.Preset)
	assert.Equal(t, domain.StyleBanner, cfg.Style)
	assert.Equal(t, "WebAssembly Text (WAT)", cfg.Policy.Core.Name)
	assert.Equal(t, []string{".wat"}, cfg.Policy.Core.Extensions)
	assert.Equal(t, []string{"src/"}, cfg.Policy.Core.Directories)
	assert.Contains(t, cfg.Policy.BannedFiles.Names, "asconfig.json")
	assert.Len(t, cfg.Policy.Scoped, 2)
	assert.NoError(t, cfg.Validate())
}

func TestPresetConfig_Permissive(t *testing.T) {
	cfg, err := domain.PresetConfig(domain.PresetPermissive)
	require.NoError(t, err)

	assert.Equal(t, domain.StyleLog, cfg.Style)
	assert.NotContains(t, cfg.Policy.BannedFiles.Names, "asconfig.json")
	assert.Contains(t, cfg.Policy.BannedFiles.Names, "package-lock.json")
	require.Len(t, cfg.Policy.Scoped, 1)
	assert.Equal(t, "Python", cfg.Policy.Scoped[0].Language)
	assert.NoError(t, cfg.Validate())
}

func TestPresetConfig_Unknown(t *testing.T) {
	_, err := domain.PresetConfig("lenient")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestPresetConfig_ReturnsIndependentCopies(t *testing.T) {
	a, _ := domain.PresetConfig(domain.PresetStrict)
	a.Policy.BannedFiles.Names[0] = "changed"
	a.IgnoreDirs[0] = "changed"

	b, _ := domain.PresetConfig(domain.PresetStrict)
	assert.Equal(t, "package-lock.json", b.Policy.BannedFiles.Names[0])
	assert.Equal(t, "node_modules", b.IgnoreDirs[0])
}

func TestProjectConfig_WalkOptionsDefaultHiddenPrefix(t *testing.T) {
	cfg, _ := domain.PresetConfig(domain.PresetStrict)
	opts := cfg.WalkOptions()
	assert.Equal(t, ".", opts.HiddenPrefix)
	assert.Equal(t, []string{"node_modules", "_site", "target", "_build"}, opts.IgnoreDirs)
}

func TestProjectConfig_WalkOptionsExplicitEmptyPrefix(t *testing.T) {
	empty := ""
	cfg := domain.ProjectConfig{HiddenPrefix: &empty}
	assert.Equal(t, "", cfg.WalkOptions().HiddenPrefix)
}

func TestValidate_UnknownStyle(t *testing.T) {
	cfg, _ := domain.PresetConfig(domain.PresetStrict)
	cfg.Style = "fancy"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown style")
}

func TestValidate_UnknownPreset(t *testing.T) {
	cfg, _ := domain.PresetConfig(domain.PresetStrict)
	cfg.Preset = "nope"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestValidate_EmptyIgnoreDir(t *testing.T) {
	cfg, _ := domain.PresetConfig(domain.PresetStrict)
	cfg.IgnoreDirs = []string{"target", ""}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignore_dirs[1]")
}

func TestIsValidStyle(t *testing.T) {
	assert.True(t, domain.IsValidStyle(domain.StyleLog))
	assert.True(t, domain.IsValidStyle(domain.StyleBanner))
	assert.False(t, domain.IsValidStyle("json"))
}
