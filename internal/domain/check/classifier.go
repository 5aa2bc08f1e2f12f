package check

import (
	"fmt"
	"strings"

	"github.com/langgate/langgate/internal/domain"
)

// Classifier evaluates every rule of a RuleSet against individual files.
// It is built once per run and never mutates the RuleSet it was given.
type Classifier struct {
	rules  domain.RuleSet
	prober domain.FileProber
	vars   map[string]string

	coreDirs  []string
	bannedExt []string
	exempt    []string
	bannedFn  map[string]bool
	scoped    []scopedRule
}

type scopedRule struct {
	rule     domain.ScopedRule
	exts     []string
	prefixes []string
}

// NewClassifier compiles rules into lookup tables. prober may be nil, in
// which case companion-file rules treat every sibling as missing.
func NewClassifier(rules domain.RuleSet, prober domain.FileProber) *Classifier {
	c := &Classifier{
		rules:    rules,
		prober:   prober,
		vars:     rules.Vars(),
		coreDirs: normalizePrefixes(rules.Core.Directories),
		exempt:   append([]string(nil), rules.BannedExtensions.Exempt...),
		bannedFn: make(map[string]bool, len(rules.BannedFiles.Names)),
	}
	for _, b := range rules.BannedExtensions.Extensions {
		c.bannedExt = append(c.bannedExt, b.Ext)
	}
	for _, name := range rules.BannedFiles.Names {
		c.bannedFn[name] = true
	}
	for _, s := range rules.Scoped {
		c.scoped = append(c.scoped, scopedRule{
			rule:     s,
			exts:     s.Extensions,
			prefixes: normalizePrefixes(s.AllowedPrefixes),
		})
	}
	return c
}

// Classify evaluates one file and appends any violations to result.
func (c *Classifier) Classify(entry domain.FileEntry, result *domain.ScanResult) {
	result.FilesScanned++

	if c.isCoreFile(entry) {
		result.MarkCoreFound()
	}

	for _, v := range c.pathViolations(entry) {
		result.Add(v)
	}

	for _, v := range c.companionViolations(entry) {
		result.Add(v)
	}
}

// ClassifyPath evaluates the path-only rules for a relative path without
// touching the filesystem. Companion rules are not evaluated.
func (c *Classifier) ClassifyPath(relPath string) []domain.Violation {
	relPath = strings.TrimPrefix(relPath, "./")
	name := relPath
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		name = relPath[i+1:]
	}
	return c.pathViolations(domain.FileEntry{Path: relPath, RelPath: relPath, Name: name})
}

// IsCoreFile reports whether relPath would count as a core-language file.
func (c *Classifier) IsCoreFile(relPath string) bool {
	return c.isCoreFile(domain.FileEntry{RelPath: relPath, Name: relPath})
}

// Finalize runs the whole-run checks once the walk has completed.
func (c *Classifier) Finalize(result *domain.ScanResult) {
	result.Policy = c.rules.Name
	result.CoreLanguage = c.rules.Core.Name
	result.CoreDirectories = append([]string(nil), c.rules.Core.Directories...)

	if result.CoreLanguageFilesFound {
		return
	}
	dir := ""
	if len(c.rules.Core.Directories) > 0 {
		dir = c.rules.Core.Directories[0]
	}
	vars := c.with(map[string]string{"file": dir})
	result.Add(domain.Violation{
		File:     dir,
		Reason:   domain.Expand(c.rules.Core.MissingReasonTemplate(), vars),
		Fix:      domain.Expand(c.rules.Core.MissingFixTemplate(), vars),
		Kind:     domain.KindMissingCoreLanguage,
		Severity: domain.SeverityCritical,
	})
}

func (c *Classifier) isCoreFile(entry domain.FileEntry) bool {
	return hasAnySuffix(entry.Name, c.rules.Core.Extensions) &&
		hasAnyPrefix(entry.RelPath, c.coreDirs)
}

// pathViolations covers the banned-extension, banned-filename and scoped
// checks, in that order.
func (c *Classifier) pathViolations(entry domain.FileEntry) []domain.Violation {
	var out []domain.Violation

	if !hasAnySuffix(entry.Name, c.exempt) {
		ban := c.rules.BannedExtensions
		for _, ext := range c.bannedExt {
			if !strings.HasSuffix(entry.Name, ext) {
				continue
			}
			vars := c.with(map[string]string{"file": entry.RelPath, "ext": ext})
			out = append(out, domain.Violation{
				File:     entry.RelPath,
				Reason:   domain.Expand(ban.ReasonTemplate(), vars),
				Fix:      domain.Expand(ban.FixFor(ext), vars),
				Kind:     domain.KindBannedExtension,
				Severity: domain.SeverityError,
			})
		}
	}

	if c.bannedFn[entry.Name] {
		vars := c.with(map[string]string{"file": entry.RelPath})
		out = append(out, domain.Violation{
			File:     entry.RelPath,
			Reason:   domain.Expand(c.rules.BannedFiles.ReasonTemplate(), vars),
			Fix:      domain.Expand(c.rules.BannedFiles.FixTemplate(), vars),
			Kind:     domain.KindBannedFile,
			Severity: domain.SeverityError,
		})
	}

	for _, s := range c.scoped {
		ext, ok := matchSuffix(entry.Name, s.exts)
		if !ok || hasAnyPrefix(entry.RelPath, s.prefixes) {
			continue
		}
		vars := c.with(map[string]string{
			"file":     entry.RelPath,
			"ext":      ext,
			"language": s.rule.Language,
			"prefixes": strings.Join(s.rule.AllowedPrefixes, ", "),
		})
		out = append(out, domain.Violation{
			File:     entry.RelPath,
			Reason:   domain.Expand(s.rule.ReasonTemplate(), vars),
			Fix:      domain.Expand(s.rule.FixTemplate(), vars),
			Kind:     domain.KindScopedLanguage,
			Severity: domain.SeverityError,
		})
	}

	return out
}

func (c *Classifier) companionViolations(entry domain.FileEntry) []domain.Violation {
	var out []domain.Violation
	for _, rule := range c.rules.Companions {
		if !strings.HasSuffix(entry.Name, rule.Artifact) {
			continue
		}
		sibling := strings.TrimSuffix(entry.Path, rule.Artifact) + rule.Source

		found, err := c.probe(sibling)
		if found {
			continue
		}

		vars := c.with(map[string]string{
			"file":     entry.RelPath,
			"artifact": rule.Artifact,
			"source":   rule.Source,
		})
		reason := domain.Expand(rule.ReasonTemplate(), vars)
		if err != nil {
			reason = fmt.Sprintf("%s (could not check %s: %v)", reason, rule.Source, err)
		}
		out = append(out, domain.Violation{
			File:     entry.RelPath,
			Reason:   reason,
			Fix:      domain.Expand(rule.FixTemplate(), vars),
			Kind:     domain.KindMissingCompanion,
			Severity: domain.SeverityError,
		})
	}
	return out
}

func (c *Classifier) probe(path string) (bool, error) {
	if c.prober == nil {
		return false, nil
	}
	return c.prober.Exists(path)
}

// with layers per-violation placeholders over the rule-set ones.
func (c *Classifier) with(extra map[string]string) map[string]string {
	vars := make(map[string]string, len(c.vars)+len(extra))
	for k, v := range c.vars {
		vars[k] = v
	}
	for k, v := range extra {
		vars[k] = v
	}
	return vars
}

func normalizePrefixes(prefixes []string) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimPrefix(p, "./")
		if p != "" && !strings.HasSuffix(p, "/") {
			p += "/"
		}
		out = append(out, p)
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	_, ok := matchSuffix(s, suffixes)
	return ok
}

func matchSuffix(s string, suffixes []string) (string, bool) {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return suf, true
		}
	}
	return "", false
}
