package application

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/langgate/langgate/internal/domain"
	"github.com/langgate/langgate/internal/domain/check"
)

// ValidateService checks an explicit list of files against the per-file
// rules, without walking the tree. It backs pre-commit style usage where
// only staged paths are known.
type ValidateService struct {
	prober domain.FileProber
}

func NewValidateService(prober domain.FileProber) *ValidateService {
	return &ValidateService{prober: prober}
}

// Validate classifies each distinct file once. Paths may be absolute or relative to
// projectPath; paths outside projectPath are rejected. The core-language
// check needs the whole tree and is not applied.
func (s *ValidateService) Validate(projectPath string, files []string, cfg domain.ProjectConfig) (*domain.ValidationResult, error) {
	absRoot, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	classifier := check.NewClassifier(cfg.Policy, s.prober)
	opts := cfg.WalkOptions()
	scratch := &domain.ScanResult{Violations: []domain.Violation{}}
	result := &domain.ValidationResult{}
	seen := make(map[string]bool, len(files))

	for _, f := range files {
		entry, err := entryFor(absRoot, f)
		if err != nil {
			return nil, err
		}
		if seen[entry.RelPath] {
			continue
		}
		seen[entry.RelPath] = true
		if opts.SkipsPath(entry.RelPath) {
			result.Skipped = append(result.Skipped, entry.RelPath)
			continue
		}
		classifier.Classify(entry, scratch)
	}

	result.FilesChecked = scratch.FilesScanned
	result.Violations = scratch.Violations
	result.Status = domain.StatusPass
	if len(result.Violations) > 0 {
		result.Status = domain.StatusFail
	}
	return result, nil
}

func entryFor(absRoot, file string) (domain.FileEntry, error) {
	abs := file
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(absRoot, file)
	}
	rel, err := filepath.Rel(absRoot, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return domain.FileEntry{}, fmt.Errorf("%s is not inside %s", file, absRoot)
	}
	rel = filepath.ToSlash(rel)
	return domain.FileEntry{Path: abs, RelPath: rel, Name: path.Base(rel)}, nil
}
