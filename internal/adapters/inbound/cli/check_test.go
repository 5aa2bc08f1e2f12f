package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/langgate/langgate/internal/adapters/inbound/cli"
	"github.com/langgate/langgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheck_PassingTree(t *testing.T) {
	dir := writeTree(t, "src/main.wat", "salt/deploy.py", "runtime/host.res")

	out, _, err := run(t, "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "WAGASM-SSG LANGUAGE POLICY CHECK")
	assert.Contains(t, out, "✓ All policy checks passed!")
}

func TestCheck_FailingTree(t *testing.T) {
	dir := writeTree(t, "src/main.wat", "app.ts", "package-lock.json", "salt/deploy.py", "tool.py")

	out, _, err := run(t, "--path", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPolicyViolations))
	assert.Contains(t, err.Error(), "3 violation(s)")
	assert.Contains(t, out, "✗ 3 violation(s) found:")
	assert.Contains(t, out, "File: tool.py")
}

func TestCheck_MissingCoreLanguage(t *testing.T) {
	dir := writeTree(t, "README.md")

	out, _, err := run(t, "--path", dir, "--style", "log")
	require.ErrorIs(t, err, domain.ErrPolicyViolations)
	assert.Contains(t, out, "CRITICAL src/ [missing core language]")
}

func TestCheck_JSON(t *testing.T) {
	dir := writeTree(t, "src/main.wat", "app.ts")

	out, _, err := run(t, "--path", dir, "--json")
	require.ErrorIs(t, err, domain.ErrPolicyViolations)

	var result domain.ScanResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be valid JSON")
	assert.Equal(t, 2, result.FilesScanned)
	assert.True(t, result.CoreLanguageFilesFound)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, "app.ts", result.Violations[0].File)
}

func TestCheck_JSONPassHasEmptyViolations(t *testing.T) {
	dir := writeTree(t, "src/main.wat")

	out, _, err := run(t, "--path", dir, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"violations": []`)
}

func TestCheck_LogStyle(t *testing.T) {
	dir := writeTree(t, "src/main.wat")

	out, _, err := run(t, "--path", dir, "--style", "log")
	require.NoError(t, err)
	assert.Contains(t, out, "langgate: PASS 1 file(s) scanned")
}

func TestCheck_UnknownStyle(t *testing.T) {
	dir := writeTree(t, "src/main.wat")

	_, _, err := run(t, "--path", dir, "--style", "fancy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown style")
	assert.False(t, errors.Is(err, domain.ErrPolicyViolations))
}

func TestCheck_PresetFlag(t *testing.T) {
	dir := writeTree(t, "src/main.wat", "asconfig.json")

	_, _, err := run(t, "--path", dir)
	require.ErrorIs(t, err, domain.ErrPolicyViolations, "strict bans asconfig.json")

	out, _, err := run(t, "--path", dir, "--preset", "permissive")
	require.NoError(t, err)
	assert.Contains(t, out, "langgate: PASS", "permissive defaults to the log style")
}

func TestCheck_PresetFromEnv(t *testing.T) {
	dir := writeTree(t, "src/main.wat", "asconfig.json")
	t.Setenv("LANGGATE_PRESET", "permissive")

	_, _, err := run(t, "--path", dir)
	require.NoError(t, err)
}

func TestCheck_ConfigFileInRoot(t *testing.T) {
	dir := writeTree(t, "src/main.wat", "tool.py")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".langgate.yaml"), []byte("style: log\npolicy:\n  scoped: []\n"), 0644))

	out, _, err := run(t, "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "langgate: PASS")
}

func TestCheck_InvalidConfigIsFatal(t *testing.T) {
	dir := writeTree(t, "src/main.wat")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".langgate.yaml"), []byte("stlye: log\n"), 0644))

	out, _, err := run(t, "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
	assert.False(t, errors.Is(err, domain.ErrPolicyViolations))
	assert.Empty(t, out, "no report on fatal errors")
}

func TestCheck_MissingPath(t *testing.T) {
	_, _, err := run(t, "--path", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check failed")
	assert.Contains(t, err.Error(), "scan root")
}

func TestCheck_Verbose(t *testing.T) {
	dir := writeTree(t, "src/main.wat")

	_, stderr, err := run(t, "--path", dir, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "langgate: root ")
	assert.Contains(t, stderr, "1 file(s) scanned, 0 violation(s)")

	_, stderr, err = run(t, "--path", dir)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestCheck_RejectsPositionalArgs(t *testing.T) {
	_, _, err := run(t, "somewhere")
	require.Error(t, err)
}

func TestCheck_ExplicitConfigFile(t *testing.T) {
	dir := writeTree(t, "src/main.wat", "tool.py")
	cfgPath := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("style: log\npolicy:\n  scoped: []\n"), 0644))

	out, _, err := run(t, "--path", dir, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "langgate: PASS")

	_, _, err = run(t, "--path", dir, "--config", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
