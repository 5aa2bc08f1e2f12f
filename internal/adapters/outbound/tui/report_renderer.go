package tui

import (
	"fmt"
	"strings"

	"github.com/langgate/langgate/internal/domain"
)

const logPrefix = "langgate: "

// RenderLog renders a terse report with every line prefixed "langgate: ".
func RenderLog(result *domain.ScanResult) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		b.WriteString(logPrefix)
		fmt.Fprintf(&b, format, args...)
		b.WriteString("\n")
	}

	header := fmt.Sprintf("policy %s", result.Policy)
	if result.Preset != "" {
		header += fmt.Sprintf(" (preset %s)", result.Preset)
	}
	header += fmt.Sprintf(", core %s in %s", result.CoreLanguage, strings.Join(result.CoreDirectories, ", "))
	line("%s", header)
	if result.CommitHash != "" {
		line("commit %s", result.CommitHash)
	}

	if result.Passed() {
		line("%s %d file(s) scanned, core language %s present in %s",
			passStyle.Render("PASS"), result.FilesScanned, result.CoreLanguage,
			strings.Join(result.CoreDirectories, ", "))
		return b.String()
	}

	for _, v := range result.Violations {
		tag := failStyle.Render("FAIL")
		if v.Severity == domain.SeverityCritical {
			tag = criticalStyle.Render("CRITICAL")
		}
		line("%s %s [%s]", tag, v.File, KindLabel(v.Kind))
		line("  reason: %s", v.Reason)
		line("  fix: %s", v.Fix)
	}

	summary := fmt.Sprintf("%d violation(s)", len(result.Violations))
	if n := result.CountBySeverity(domain.SeverityCritical); n > 0 {
		summary += fmt.Sprintf(", %d critical", n)
	}
	line("%s, %d file(s) scanned", summary, result.FilesScanned)

	return b.String()
}

// RenderBanner renders a boxed header followed by File/Issue/Fix blocks and
// a pass/fail summary line.
func RenderBanner(result *domain.ScanResult) string {
	var b strings.Builder

	title := headerStyle.Render(strings.ToUpper(result.Policy) + " LANGUAGE POLICY CHECK")
	core := titleStyle.Render("Core Language: " + result.CoreLanguage)
	meta := dimStyle.Render(fmt.Sprintf("%d file(s) scanned", result.FilesScanned))
	if result.Preset != "" {
		meta = dimStyle.Render(fmt.Sprintf("preset %s  ·  %d file(s) scanned", result.Preset, result.FilesScanned))
	}
	body := title + "\n" + core + "\n" + meta
	if result.CommitHash != "" {
		body += "\n" + dimStyle.Render("commit "+shortHash(result.CommitHash))
	}

	b.WriteString(boxStyle.Render(body))
	b.WriteString("\n\n")

	dirs := strings.Join(result.CoreDirectories, ", ")
	if result.Passed() {
		b.WriteString(passStyle.Render(fmt.Sprintf("✓ Core language (%s) files present in %s", result.CoreLanguage, dirs)) + "\n")
		b.WriteString(passStyle.Render("✓ No banned files, extensions or misplaced languages detected") + "\n")
		b.WriteString(passStyle.Render("✓ All policy checks passed!") + "\n")
		return b.String()
	}

	b.WriteString(failStyle.Render(fmt.Sprintf("✗ %d violation(s) found:", len(result.Violations))))
	b.WriteString("\n\n")

	for _, v := range result.Violations {
		issue := v.Reason
		if v.Severity == domain.SeverityCritical {
			issue = criticalStyle.Render(v.Reason)
		}
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("File:"), fileStyle.Render(v.File))
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Issue:"), issue)
		fmt.Fprintf(&b, "  %s %s\n\n", labelStyle.Render("Fix:"), v.Fix)
	}

	return b.String()
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
