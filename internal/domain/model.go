package domain

import "errors"

// ErrPolicyViolations is returned by the CLI when a scan completes with at
// least one violation.
var ErrPolicyViolations = errors.New("policy violations found")

// FileEntry is one file discovered beneath the scan root.
type FileEntry struct {
	Path    string `json:"path"`
	RelPath string `json:"rel_path"`
	Name    string `json:"name"`
}

// ViolationKind names the rule that produced a violation.
type ViolationKind string

const (
	KindBannedExtension     ViolationKind = "BannedExtension"
	KindBannedFile          ViolationKind = "BannedFile"
	KindScopedLanguage      ViolationKind = "ScopedLanguage"
	KindMissingCompanion    ViolationKind = "MissingCompanion"
	KindMissingCoreLanguage ViolationKind = "MissingCoreLanguage"
)

// Severity separates per-file violations from whole-run ones.
type Severity string

const (
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Violation is one reported policy non-compliance.
type Violation struct {
	File     string        `json:"file"`
	Reason   string        `json:"reason"`
	Fix      string        `json:"fix"`
	Kind     ViolationKind `json:"kind"`
	Severity Severity      `json:"severity"`
}

// ScanResult accumulates the outcome of a single policy run.
type ScanResult struct {
	Root                   string      `json:"root"`
	Policy                 string      `json:"policy"`
	Preset                 string      `json:"preset,omitempty"`
	CoreLanguage           string      `json:"core_language"`
	CoreDirectories        []string    `json:"core_directories"`
	CommitHash             string      `json:"commit_hash,omitempty"`
	FilesScanned           int         `json:"files_scanned"`
	Violations             []Violation `json:"violations"`
	CoreLanguageFilesFound bool        `json:"core_language_files_found"`
}

// Passed reports whether the run produced no violations.
func (r *ScanResult) Passed() bool { return len(r.Violations) == 0 }

// Add appends a violation in the order it was found.
func (r *ScanResult) Add(v Violation) { r.Violations = append(r.Violations, v) }

// MarkCoreFound records that a core-language file was seen. It never resets.
func (r *ScanResult) MarkCoreFound() { r.CoreLanguageFilesFound = true }

// CountBySeverity returns the number of violations with the given severity.
func (r *ScanResult) CountBySeverity(severity Severity) int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == severity {
			n++
		}
	}
	return n
}

// Validation statuses.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// ValidationResult is the outcome of checking an explicit list of files
// with the per-file rules only.
type ValidationResult struct {
	FilesChecked int         `json:"files_checked"`
	Skipped      []string    `json:"skipped,omitempty"`
	Violations   []Violation `json:"violations"`
	Status       string      `json:"status"`
}
