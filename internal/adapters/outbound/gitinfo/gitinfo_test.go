package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/langgate/langgate/internal/adapters/outbound/gitinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_CommitHash_ReturnsHash(t *testing.T) {
	dir := t.TempDir()
	want := commitFile(t, dir)

	hash, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
	assert.Equal(t, want, hash)
}

func TestReader_CommitHash_FromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	want := commitFile(t, dir)
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(sub, 0755))

	hash, err := gitinfo.New().CommitHash(sub)
	require.NoError(t, err)
	assert.Equal(t, want, hash)
}

func TestReader_CommitHash_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := gitinfo.New().CommitHash(dir)
	assert.Error(t, err)
}

func TestReader_CommitHash_EmptyRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = gitinfo.New().CommitHash(dir)
	assert.Error(t, err, "a repo without commits has no HEAD")
}

func commitFile(t *testing.T, dir string) string {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello"), 0644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("file.txt")
	require.NoError(t, err)

	hash, err := wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)
	return hash.String()
}
