//go:build mage

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalkFilesSkipsHiddenAndUnderscoreDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, "pkg", "a.go"), "package pkg\n")
	writeFile(t, filepath.Join(root, ".git", "config"), "x\n")
	writeFile(t, filepath.Join(root, "_examples", "b.go"), "package b\n")

	var got []string
	err := walkFiles(root, func(path string) error {
		rel, err := filepath.Rel(root, path)
		got = append(got, rel)
		return err
	})
	require.NoError(t, err)

	sort.Strings(got)
	assert.Equal(t, []string{"main.go", filepath.Join("pkg", "a.go")}, got)
}

func TestCountInto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	writeFile(t, path, "# Title\n\n   \nsome  words here\n\ttrailing\n")

	var lines, words int
	require.NoError(t, countInto(&lines, path, bufio.ScanLines))
	require.NoError(t, countInto(&words, path, bufio.ScanWords))
	assert.Equal(t, 3, lines)
	assert.Equal(t, 6, words)

	assert.Error(t, countInto(&lines, filepath.Join(t.TempDir(), "missing.md"), bufio.ScanLines))
}
