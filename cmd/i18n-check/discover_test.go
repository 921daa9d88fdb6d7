package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, relPath string) string {
	t.Helper()
	full := filepath.Join(dir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("content"), 0o644))
	return full
}

func TestCollectFilesFindsSupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	cpp := writeTestFile(t, dir, "src/widget.cpp")
	writeTestFile(t, dir, "src/readme.md")
	po := writeTestFile(t, dir, "locale/fr.po")

	files, err := collectFiles(dir, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{cpp, po}, files)
}

func TestCollectFilesSkipsIgnoredFolderSubtree(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "vendor/third_party.cpp")
	kept := writeTestFile(t, dir, "src/widget.cpp")

	files, err := collectFiles(dir, []string{filepath.Join(dir, "vendor")})
	require.NoError(t, err)
	assert.Equal(t, []string{kept}, files)
}

func TestIsUnderAnyMatchesExactDirAndSubtree(t *testing.T) {
	dirs := []string{"/repo/vendor"}
	assert.True(t, isUnderAny("/repo/vendor", dirs))
	assert.True(t, isUnderAny("/repo/vendor/pkg/file.cpp", dirs))
	assert.False(t, isUnderAny("/repo/vendored/file.cpp", dirs))
}
