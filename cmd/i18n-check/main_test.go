package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Done-0/i18n-check/pkg/config"
)

func TestRunAnalysisReturnsExitErrorForMissingPath(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist")

	err := runAnalysis(missing, nil, config.AllL10NChecks)
	require.Error(t, err)

	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.code)
}

func TestRunAnalysisReturnsExitErrorForFilePath(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "not-a-folder.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	err := runAnalysis(filePath, nil, config.AllL10NChecks)
	require.Error(t, err)

	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.code)
}

func TestRunAnalysisSucceedsOnValidDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.cpp"),
		[]byte(`void f(){ show("Please save your work before exiting."); }`), 0o644))

	err := runAnalysis(dir, nil, config.AllL10NChecks)
	assert.NoError(t, err)
}

func TestRootCommandRequiresExactlyOnePositionalArg(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
}

func TestRootCommandAcceptsRepeatableIgnoreFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.cpp"), []byte("void f(){}"), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{dir, "-i", "vendor", "--ignore", "build"})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestResolveStyleDefaultsToAllChecks(t *testing.T) {
	style, err := resolveStyle(nil, true, false)
	require.NoError(t, err)
	assert.Equal(t, config.AllL10NChecks, style)
}

func TestResolveStyleNarrowsToNamedChecks(t *testing.T) {
	style, err := resolveStyle([]string{"check_l10n_strings", "check_tabs"}, true, false)
	require.NoError(t, err)
	assert.True(t, style.Has(config.CheckL10NStrings))
	assert.True(t, style.Has(config.CheckTabs))
	assert.False(t, style.Has(config.CheckFonts))
}

func TestResolveStyleRejectsUnknownCheckName(t *testing.T) {
	_, err := resolveStyle([]string{"check_does_not_exist"}, true, false)
	assert.Error(t, err)
}

func TestRootCommandAcceptsRepeatableCheckFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.cpp"),
		[]byte(`void f(){ show("Please save your work before exiting."); }`), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{dir, "--check", "check_not_available_for_l10n", "--all-l10n-checks=false"})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestRootCommandRejectsUnknownCheckFlagWithExitError(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCommand()
	cmd.SetArgs([]string{dir, "--check", "check_does_not_exist"})
	err := cmd.Execute()
	require.Error(t, err)

	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.code)
}

func TestPseudoTranslateSubcommandRewritesPoFilesOnly(t *testing.T) {
	dir := t.TempDir()
	poPath := filepath.Join(dir, "messages.po")
	require.NoError(t, os.WriteFile(poPath, []byte(
		"msgid \"hello\"\nmsgstr \"hello\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.cpp"), []byte("void f(){}"), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"pseudo-translate", dir, "--method", "upper_case"})
	err := cmd.Execute()
	require.NoError(t, err)

	rewritten, err := os.ReadFile(poPath)
	require.NoError(t, err)
	assert.Contains(t, string(rewritten), "HELLO")
}

func TestReviewSubcommandIsEquivalentToRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.cpp"), []byte("void f(){}"), 0o644))

	cmd := newRootCommand()
	cmd.SetArgs([]string{"review", dir})
	err := cmd.Execute()
	assert.NoError(t, err)
}
