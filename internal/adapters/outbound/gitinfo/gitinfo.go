package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Reader implements domain.CommitReader using go-git. The scan root may be
// any directory inside a work tree.
type Reader struct{}

func New() *Reader {
	return &Reader{}
}

func (r *Reader) CommitHash(projectPath string) (string, error) {
	repo, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
