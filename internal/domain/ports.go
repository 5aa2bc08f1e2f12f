package domain

import (
	"iter"
	"strings"
)

// WalkOptions controls which entries a TreeWalker skips.
type WalkOptions struct {
	// HiddenPrefix skips any entry whose name starts with it. Empty disables the check.
	HiddenPrefix string
	// IgnoreDirs skips entries with these exact names.
	IgnoreDirs []string
}

// Skips reports whether an entry with this base name is excluded.
func (o WalkOptions) Skips(name string) bool {
	if o.HiddenPrefix != "" && strings.HasPrefix(name, o.HiddenPrefix) {
		return true
	}
	for _, d := range o.IgnoreDirs {
		if name == strings.TrimSuffix(d, "/") {
			return true
		}
	}
	return false
}

// SkipsPath reports whether a slash-separated relative path lies in, or is,
// an excluded entry.
func (o WalkOptions) SkipsPath(relPath string) bool {
	for _, seg := range strings.Split(relPath, "/") {
		if seg != "" && seg != "." && o.Skips(seg) {
			return true
		}
	}
	return false
}

// TreeWalker enumerates files beneath a scan root. The returned sequence is
// lazy and finite; a non-nil error ends it.
type TreeWalker interface {
	Walk(root string, opts WalkOptions) iter.Seq2[FileEntry, error]
}

// FileProber checks whether a path exists on disk. A non-nil error means the
// probe itself failed (for example permission denied).
type FileProber interface {
	Exists(path string) (bool, error)
}

// ConfigLoader resolves the effective project configuration.
type ConfigLoader interface {
	Load(projectPath string, opts LoadOptions) (ProjectConfig, error)
}

// LoadOptions carries command-line overrides into a ConfigLoader.
type LoadOptions struct {
	File   string
	Preset string
}

// CommitReader reports the commit checked out at a path.
type CommitReader interface {
	CommitHash(projectPath string) (string, error)
}
