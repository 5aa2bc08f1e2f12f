package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/langgate/langgate/internal/domain"
	"github.com/langgate/langgate/internal/domain/check"
)

// CheckService orchestrates a policy run:
// walk -> classify each file -> whole-run checks -> result.
type CheckService struct {
	walker  domain.TreeWalker
	prober  domain.FileProber
	commits domain.CommitReader
}

// NewCheckService wires the ports used by a run. commits may be nil.
func NewCheckService(
	walker domain.TreeWalker,
	prober domain.FileProber,
	commits domain.CommitReader,
) *CheckService {
	return &CheckService{
		walker:  walker,
		prober:  prober,
		commits: commits,
	}
}

// Check scans projectPath against cfg. The returned error is reserved for
// fatal conditions (unreadable root, cancelled context); policy violations
// are reported in the result.
func (s *CheckService) Check(ctx context.Context, projectPath string, cfg domain.ProjectConfig) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	classifier := check.NewClassifier(cfg.Policy, s.prober)
	result := &domain.ScanResult{
		Root:       absPath,
		Preset:     cfg.Preset,
		Violations: []domain.Violation{},
	}

	for entry, err := range s.walker.Walk(absPath, cfg.WalkOptions()) {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan cancelled: %w", err)
		}
		classifier.Classify(entry, result)
	}

	classifier.Finalize(result)

	if s.commits != nil {
		if hash, err := s.commits.CommitHash(absPath); err == nil {
			result.CommitHash = hash
		}
	}

	return result, nil
}

// ClassifyPath evaluates the path-only rules for a single relative path.
func (s *CheckService) ClassifyPath(cfg domain.ProjectConfig, relPath string) []domain.Violation {
	return check.NewClassifier(cfg.Policy, nil).ClassifyPath(filepath.ToSlash(relPath))
}

// IsCoreFile reports whether relPath would count towards the core-language check.
func IsCoreFile(cfg domain.ProjectConfig, relPath string) bool {
	return check.NewClassifier(cfg.Policy, nil).IsCoreFile(filepath.ToSlash(relPath))
}
