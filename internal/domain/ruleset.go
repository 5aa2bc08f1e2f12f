package domain

import (
	"fmt"
	"strings"
)

// RuleSet is the declarative language policy for a project.
type RuleSet struct {
	Name             string          `yaml:"name"              json:"name"`
	Core             CoreLanguage    `yaml:"core"              json:"core"`
	BannedExtensions ExtensionBan    `yaml:"banned_extensions" json:"banned_extensions"`
	BannedFiles      FileBan         `yaml:"banned_files"      json:"banned_files"`
	Scoped           []ScopedRule    `yaml:"scoped"            json:"scoped,omitempty"`
	Companions       []CompanionRule `yaml:"companions"        json:"companions,omitempty"`
}

// CoreLanguage is the single approved language for the primary logic
// directories. Finding none of its files is itself a violation.
type CoreLanguage struct {
	Name          string   `yaml:"name"           json:"name"`
	Extensions    []string `yaml:"extensions"     json:"extensions"`
	Directories   []string `yaml:"directories"    json:"directories"`
	MissingReason string   `yaml:"missing_reason" json:"missing_reason,omitempty"`
	MissingFix    string   `yaml:"missing_fix"    json:"missing_fix,omitempty"`
}

// ExtensionBan lists extensions that may not appear anywhere in the tree.
type ExtensionBan struct {
	Extensions []BannedExtension `yaml:"extensions"  json:"extensions"`
	// Exempt suffixes are never flagged, even when a banned extension matches.
	Exempt     []string `yaml:"exempt"      json:"exempt,omitempty"`
	Reason     string   `yaml:"reason"      json:"reason,omitempty"`
	DefaultFix string   `yaml:"default_fix" json:"default_fix,omitempty"`
}

// BannedExtension is one banned extension with its own remediation text.
type BannedExtension struct {
	Ext string `yaml:"ext"           json:"ext"`
	Fix string `yaml:"fix,omitempty" json:"fix,omitempty"`
}

// FileBan lists exact filenames that may not appear anywhere in the tree.
type FileBan struct {
	Names  []string `yaml:"names"  json:"names"`
	Reason string   `yaml:"reason" json:"reason,omitempty"`
	Fix    string   `yaml:"fix"    json:"fix,omitempty"`
}

// ScopedRule permits a secondary language only beneath the listed prefixes.
type ScopedRule struct {
	Language        string   `yaml:"language"         json:"language"`
	Extensions      []string `yaml:"extensions"       json:"extensions"`
	AllowedPrefixes []string `yaml:"allowed_prefixes" json:"allowed_prefixes"`
	Reason          string   `yaml:"reason"           json:"reason,omitempty"`
	Fix             string   `yaml:"fix"              json:"fix,omitempty"`
}

// CompanionRule requires every Artifact file to have a Source file at the
// same path stem.
type CompanionRule struct {
	Artifact string `yaml:"artifact" json:"artifact"`
	Source   string `yaml:"source"   json:"source"`
	Reason   string `yaml:"reason"   json:"reason,omitempty"`
	Fix      string `yaml:"fix"      json:"fix,omitempty"`
}

// Fallback messages used when a rule leaves its reason or fix empty.
const (
	defaultBannedExtReason  = "Banned extension {ext}"
	defaultBannedExtFix     = "Remove {file}"
	defaultBannedFileReason = "Banned file {file}"
	defaultBannedFileFix    = "Remove {file}"
	defaultScopedReason     = "{language} outside {prefixes}"
	defaultScopedFix        = "Move {file} under one of {prefixes}"
	defaultCompanionReason  = "{artifact} without {source} source"
	defaultCompanionFix     = "Add the {source} source next to {file}"
	defaultMissingReason    = "CRITICAL: No {core} files found in {core_dirs}"
	defaultMissingFix       = "Add {core_exts} files to {core_dirs}"
)

// Validate checks that the rule set is complete enough to classify files.
func (r RuleSet) Validate() error {
	// 1. core language must be fully described
	if strings.TrimSpace(r.Core.Name) == "" {
		return fmt.Errorf("policy.core.name must not be empty")
	}
	if len(r.Core.Extensions) == 0 {
		return fmt.Errorf("policy.core.extensions must list at least one extension")
	}
	if len(r.Core.Directories) == 0 {
		return fmt.Errorf("policy.core.directories must list at least one directory")
	}
	if err := validateExtensions("policy.core.extensions", r.Core.Extensions); err != nil {
		return err
	}

	// 2. banned extensions
	seen := make(map[string]bool, len(r.BannedExtensions.Extensions))
	for i, b := range r.BannedExtensions.Extensions {
		field := fmt.Sprintf("policy.banned_extensions.extensions[%d]", i)
		if err := validateExtension(field, b.Ext); err != nil {
			return err
		}
		if seen[b.Ext] {
			return fmt.Errorf("%s: duplicate extension %q", field, b.Ext)
		}
		seen[b.Ext] = true
	}
	if err := validateExtensions("policy.banned_extensions.exempt", r.BannedExtensions.Exempt); err != nil {
		return err
	}

	// 3. banned filenames must be bare names
	for i, name := range r.BannedFiles.Names {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("policy.banned_files.names[%d] = %q (must be a bare filename)", i, name)
		}
	}

	// 4. scoped rules
	for i, s := range r.Scoped {
		if s.Language == "" {
			return fmt.Errorf("policy.scoped[%d].language must not be empty", i)
		}
		if len(s.Extensions) == 0 {
			return fmt.Errorf("policy.scoped[%d] (%s) must list at least one extension", i, s.Language)
		}
		if err := validateExtensions(fmt.Sprintf("policy.scoped[%d].extensions", i), s.Extensions); err != nil {
			return err
		}
		if len(s.AllowedPrefixes) == 0 {
			return fmt.Errorf("policy.scoped[%d] (%s) must list at least one allowed prefix", i, s.Language)
		}
	}

	// 5. companion rules
	for i, c := range r.Companions {
		field := fmt.Sprintf("policy.companions[%d]", i)
		if err := validateExtension(field+".artifact", c.Artifact); err != nil {
			return err
		}
		if err := validateExtension(field+".source", c.Source); err != nil {
			return err
		}
		if c.Artifact == c.Source {
			return fmt.Errorf("%s: artifact and source must differ (both %q)", field, c.Artifact)
		}
	}

	return nil
}

func validateExtensions(field string, exts []string) error {
	for i, ext := range exts {
		if err := validateExtension(fmt.Sprintf("%s[%d]", field, i), ext); err != nil {
			return err
		}
	}
	return nil
}

func validateExtension(field, ext string) error {
	if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("%s = %q (must start with '.')", field, ext)
	}
	if strings.ContainsAny(ext, `/\`) {
		return fmt.Errorf("%s = %q (must not contain path separators)", field, ext)
	}
	return nil
}

// Expand replaces {placeholder} tokens in tmpl with values from vars.
// Unknown placeholders are left as-is.
func Expand(tmpl string, vars map[string]string) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// orDefault returns s, or fallback when s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Message accessors apply the built-in fallbacks.

func (b ExtensionBan) ReasonTemplate() string { return orDefault(b.Reason, defaultBannedExtReason) }

// FixFor returns the remediation template for ext.
func (b ExtensionBan) FixFor(ext string) string {
	for _, e := range b.Extensions {
		if e.Ext == ext && e.Fix != "" {
			return e.Fix
		}
	}
	return orDefault(b.DefaultFix, defaultBannedExtFix)
}

func (b FileBan) ReasonTemplate() string { return orDefault(b.Reason, defaultBannedFileReason) }
func (b FileBan) FixTemplate() string    { return orDefault(b.Fix, defaultBannedFileFix) }

func (s ScopedRule) ReasonTemplate() string { return orDefault(s.Reason, defaultScopedReason) }
func (s ScopedRule) FixTemplate() string    { return orDefault(s.Fix, defaultScopedFix) }

func (c CompanionRule) ReasonTemplate() string { return orDefault(c.Reason, defaultCompanionReason) }
func (c CompanionRule) FixTemplate() string    { return orDefault(c.Fix, defaultCompanionFix) }

func (c CoreLanguage) MissingReasonTemplate() string {
	return orDefault(c.MissingReason, defaultMissingReason)
}

func (c CoreLanguage) MissingFixTemplate() string {
	return orDefault(c.MissingFix, defaultMissingFix)
}

// Vars returns the placeholders shared by every message of the rule set.
func (r RuleSet) Vars() map[string]string {
	return map[string]string{
		"name":      r.Name,
		"core":      r.Core.Name,
		"core_dirs": strings.Join(r.Core.Directories, ", "),
		"core_exts": strings.Join(r.Core.Extensions, ", "),
	}
}
