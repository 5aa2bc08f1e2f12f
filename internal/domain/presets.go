package domain

import (
	"fmt"
	"strings"
)

// Built-in preset names.
const (
	PresetStrict     = "strict"
	PresetPermissive = "permissive"

	// DefaultPreset is used when neither the config file nor the command line names one.
	DefaultPreset = PresetStrict
)

// ValidPresets enumerates all built-in presets in display order.
var ValidPresets = []string{PresetStrict, PresetPermissive}

var lockfiles = []string{"package-lock.json", "yarn.lock", "pnpm-lock.yaml", "bun.lockb"}

func coreWAT() CoreLanguage {
	return CoreLanguage{
		Name:          "WebAssembly Text (WAT)",
		Extensions:    []string{".wat"},
		Directories:   []string{"src/"},
		MissingReason: "CRITICAL: No {core} files found in {core_dirs}",
		MissingFix:    "Add {core_exts} files to {core_dirs} - the SSG MUST be pure WAT",
	}
}

func saltPython() ScopedRule {
	return ScopedRule{
		Language:        "Python",
		Extensions:      []string{".py"},
		AllowedPrefixes: []string{"salt/", "saltstack/", "_salt/"},
		Reason:          "Python outside SaltStack (banned)",
		Fix:             "Use ReScript or Rust instead",
	}
}

func watCompanion() CompanionRule {
	return CompanionRule{
		Artifact: ".wasm",
		Source:   ".wat",
		Reason:   "WASM without WAT source",
		Fix:      "All WASM must be compiled from hand-written WAT. No Rust/AssemblyScript.",
	}
}

func defaultIgnoreDirs() []string {
	return []string{"node_modules", "_site", "target", "_build"}
}

// PresetConfig returns the built-in configuration for the named preset.
func PresetConfig(name string) (ProjectConfig, error) {
	switch name {
	case PresetStrict:
		return strictPreset(), nil
	case PresetPermissive:
		return permissivePreset(), nil
	default:
		return ProjectConfig{}, fmt.Errorf("unknown preset %q (valid: %s)", name, presetList())
	}
}

func strictPreset() ProjectConfig {
	return ProjectConfig{
		Preset:     PresetStrict,
		Style:      StyleBanner,
		IgnoreDirs: defaultIgnoreDirs(),
		Policy: RuleSet{
			Name: "wagasm-ssg",
			Core: coreWAT(),
			BannedExtensions: ExtensionBan{
				Extensions: []BannedExtension{
					{Ext: ".ts", Fix: "Write pure WAT for SSG logic, ReScript for host only"},
					{Ext: ".tsx"},
					{Ext: ".go", Fix: "Use Rust instead"},
					{Ext: ".as", Fix: "FORBIDDEN: AssemblyScript not allowed. Write pure WAT."},
				},
				Exempt:     []string{".d.ts"},
				Reason:     "Banned extension {ext} - {name} is PURE WAT only",
				DefaultFix: "Use ReScript instead",
			},
			BannedFiles: FileBan{
				Names:  append(append([]string{}, lockfiles...), "asconfig.json"),
				Reason: "Node.js/npm/AssemblyScript artifact (banned)",
				Fix:    "Remove. No AssemblyScript. Use Deno for runtime.",
			},
			Scoped: []ScopedRule{
				saltPython(),
				{
					Language:        "ReScript",
					Extensions:      []string{".res"},
					AllowedPrefixes: []string{"runtime/", "adapters/", "tests/"},
					Reason:          "ReScript outside runtime/adapters",
					Fix:             "Core SSG logic must be in {core}. ReScript is ONLY for host I/O.",
				},
			},
			Companions: []CompanionRule{watCompanion()},
		},
	}
}

func permissivePreset() ProjectConfig {
	return ProjectConfig{
		Preset:     PresetPermissive,
		Style:      StyleLog,
		IgnoreDirs: defaultIgnoreDirs(),
		Policy: RuleSet{
			Name: "wagasm-ssg",
			Core: coreWAT(),
			BannedExtensions: ExtensionBan{
				Extensions: []BannedExtension{
					{Ext: ".ts"},
					{Ext: ".tsx"},
					{Ext: ".go", Fix: "Use Rust instead"},
				},
				Exempt:     []string{".d.ts"},
				Reason:     "Banned extension {ext}",
				DefaultFix: "Use ReScript instead",
			},
			BannedFiles: FileBan{
				Names:  append([]string{}, lockfiles...),
				Reason: "Node.js/npm artifact (banned)",
				Fix:    "Remove and use Deno instead",
			},
			Scoped:     []ScopedRule{saltPython()},
			Companions: []CompanionRule{watCompanion()},
		},
	}
}

// IsKnownPreset reports whether name is a built-in preset.
func IsKnownPreset(name string) bool {
	for _, p := range ValidPresets {
		if p == name {
			return true
		}
	}
	return false
}

func presetList() string { return strings.Join(ValidPresets, ", ") }
