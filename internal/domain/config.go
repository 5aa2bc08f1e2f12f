package domain

import "fmt"

// ReportStyle selects how the reporter formats a ScanResult.
type ReportStyle string

const (
	StyleLog    ReportStyle = "log"
	StyleBanner ReportStyle = "banner"
)

// ValidStyles enumerates all recognized report styles.
var ValidStyles = []ReportStyle{StyleLog, StyleBanner}

// DefaultHiddenPrefix marks entries the walker never descends into.
const DefaultHiddenPrefix = "."

// ProjectConfig holds project-level configuration loaded from .langgate.yaml.
type ProjectConfig struct {
	Preset       string      `yaml:"preset,omitempty"        json:"preset,omitempty"`
	Style        ReportStyle `yaml:"style,omitempty"         json:"style,omitempty"`
	HiddenPrefix *string     `yaml:"hidden_prefix,omitempty" json:"hidden_prefix,omitempty"`
	IgnoreDirs   []string    `yaml:"ignore_dirs,omitempty"   json:"ignore_dirs,omitempty"`
	Policy       RuleSet     `yaml:"policy"                  json:"policy"`
}

// WalkOptions derives walker options from the config.
func (c ProjectConfig) WalkOptions() WalkOptions {
	prefix := DefaultHiddenPrefix
	if c.HiddenPrefix != nil {
		prefix = *c.HiddenPrefix
	}
	return WalkOptions{HiddenPrefix: prefix, IgnoreDirs: c.IgnoreDirs}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. preset must be known or empty
	if c.Preset != "" && !IsKnownPreset(c.Preset) {
		return fmt.Errorf("unknown preset %q (valid: %s)", c.Preset, presetList())
	}

	// 2. style must be known or empty
	if c.Style != "" && !IsValidStyle(c.Style) {
		return fmt.Errorf("unknown style %q (valid: log, banner)", c.Style)
	}

	// 3. ignore_dirs must be bare names
	for i, d := range c.IgnoreDirs {
		if d == "" {
			return fmt.Errorf("ignore_dirs[%d] must not be empty", i)
		}
	}

	// 4. the rule set itself
	return c.Policy.Validate()
}

// IsValidStyle reports whether s is a recognized report style.
func IsValidStyle(s ReportStyle) bool {
	for _, v := range ValidStyles {
		if s == v {
			return true
		}
	}
	return false
}
