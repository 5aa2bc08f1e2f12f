package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/langgate/langgate/internal/domain"
)

// FileScanner implements domain.TreeWalker and domain.FileProber on the
// local filesystem.
type FileScanner struct {
	// root and fsys are set only for scanners built with NewFS.
	root string
	fsys fs.FS
}

func New() *FileScanner {
	return &FileScanner{}
}

// NewFS returns a scanner backed by fsys, which stands in for the directory
// root. Yielded paths and probed paths are still absolute paths under root.
func NewFS(root string, fsys fs.FS) *FileScanner {
	return &FileScanner{root: filepath.Clean(root), fsys: fsys}
}

// Walk yields every non-directory entry beneath root in lexical order.
// Entries matching opts.HiddenPrefix or opts.IgnoreDirs are skipped, and
// skipped directories are not descended. Symbolic links are never followed.
func (s *FileScanner) Walk(root string, opts domain.WalkOptions) iter.Seq2[domain.FileEntry, error] {
	return func(yield func(domain.FileEntry, error) bool) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			yield(domain.FileEntry{}, fmt.Errorf("resolving scan root: %w", err))
			return
		}

		var info fs.FileInfo
		if s.fsys != nil {
			info, err = fs.Stat(s.fsys, ".")
		} else {
			info, err = os.Stat(absRoot)
		}
		if err != nil {
			yield(domain.FileEntry{}, fmt.Errorf("scan root %s: %w", absRoot, err))
			return
		}
		if !info.IsDir() {
			yield(domain.FileEntry{}, fmt.Errorf("scan root %s: not a directory", absRoot))
			return
		}

		stopped := false
		visit := func(rel string, d fs.DirEntry) error {
			if rel == "." {
				return nil
			}
			if opts.Skips(d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}

			entry := domain.FileEntry{
				Path:    filepath.Join(absRoot, filepath.FromSlash(rel)),
				RelPath: rel,
				Name:    path.Base(rel),
			}
			if !yield(entry, nil) {
				stopped = true
				return fs.SkipAll
			}
			return nil
		}

		if s.fsys != nil {
			err = fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				return visit(p, d)
			})
		} else {
			// OS paths, not os.DirFS: names need not be valid UTF-8.
			walkRoot, evalErr := filepath.EvalSymlinks(absRoot)
			if evalErr != nil {
				walkRoot = absRoot
			}
			err = filepath.WalkDir(walkRoot, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				rel, err := filepath.Rel(walkRoot, p)
				if err != nil {
					return err
				}
				return visit(filepath.ToSlash(rel), d)
			})
		}
		if err != nil && !stopped {
			yield(domain.FileEntry{}, fmt.Errorf("walking %s: %w", absRoot, err))
		}
	}
}

// Exists reports whether path exists. Only fs.ErrNotExist counts as a clean
// "no"; any other stat failure is returned so callers can tell them apart.
func (s *FileScanner) Exists(path string) (bool, error) {
	var err error
	if s.fsys == nil {
		_, err = os.Stat(path)
	} else {
		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return false, nil
		}
		_, err = fs.Stat(s.fsys, filepath.ToSlash(rel))
	}
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
