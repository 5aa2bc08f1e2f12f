package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/langgate/langgate/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project config file looked up in the scan root.
const FileName = ".langgate.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .langgate.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the config file and merges it over the selected preset.
// A missing default file yields the preset unchanged; a missing explicit
// file is an error.
func (l *YAMLLoader) Load(projectPath string, opts domain.LoadOptions) (domain.ProjectConfig, error) {
	path := opts.File
	explicit := path != ""
	if !explicit {
		path = filepath.Join(projectPath, FileName)
	}

	var cfg domain.ProjectConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = Parse(data)
		if err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// no config file: preset defaults only
	default:
		return domain.ProjectConfig{}, fmt.Errorf("reading config: %w", err)
	}

	preset := opts.Preset
	if preset == "" {
		preset = cfg.Preset
	}
	if preset == "" {
		preset = domain.DefaultPreset
	}
	base, err := domain.PresetConfig(preset)
	if err != nil {
		return domain.ProjectConfig{}, err
	}

	merged := Merge(base, cfg)
	merged.Preset = preset
	if err := merged.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return merged, nil
}

// Parse decodes a config document. Unknown keys are rejected so typos fail
// loudly instead of silently weakening the policy.
func Parse(data []byte) (domain.ProjectConfig, error) {
	var cfg domain.ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.ProjectConfig{}, err
	}
	return cfg, nil
}

// Merge overlays explicit overrides on top of preset defaults.
// Each set section replaces the preset's section wholesale.
func Merge(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base

	if override.Preset != "" {
		result.Preset = override.Preset
	}
	if override.Style != "" {
		result.Style = override.Style
	}
	if override.HiddenPrefix != nil {
		result.HiddenPrefix = override.HiddenPrefix
	}
	if override.IgnoreDirs != nil {
		result.IgnoreDirs = override.IgnoreDirs
	}

	p, o := &result.Policy, override.Policy
	if o.Name != "" {
		p.Name = o.Name
	}
	// Any field set in a section replaces the whole section, so a partial
	// section fails validation instead of being silently dropped. A
	// present-but-empty list clears the preset's rules.
	if isSet(o.Core) {
		p.Core = o.Core
	}
	if isSet(o.BannedExtensions) {
		p.BannedExtensions = o.BannedExtensions
	}
	if isSet(o.BannedFiles) {
		p.BannedFiles = o.BannedFiles
	}
	if o.Scoped != nil {
		p.Scoped = o.Scoped
	}
	if o.Companions != nil {
		p.Companions = o.Companions
	}

	return result
}

// isSet reports whether a decoded section carries any value. Empty but
// non-nil lists count as set.
func isSet(section any) bool {
	return !reflect.ValueOf(section).IsZero()
}

// Marshal renders a config as YAML, used by `init` and `policy`.
func Marshal(cfg domain.ProjectConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
