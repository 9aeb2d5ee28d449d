// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"archive/zip"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// WriteTree creates files below root on fsys. Keys are slash-separated paths
// relative to root; a key ending in "/" creates an empty directory.
func WriteTree(t testing.TB, fsys afero.Fs, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := fsys.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", path, err)
			}
			continue
		}
		WriteFile(t, fsys, path, content)
	}
}

// WriteFile writes content to path on fsys, creating parent directories.
func WriteFile(t testing.TB, fsys afero.Fs, path, content string) {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// ZipEntries returns the entry names of the zip archive at path, in archive order.
func ZipEntries(t testing.TB, fsys afero.Fs, path string) []string {
	t.Helper()

	zr := openZip(t, fsys, path)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

// ZipFileContent returns the content of entry name in the zip archive at path.
func ZipFileContent(t testing.TB, fsys afero.Fs, path, name string) string {
	t.Helper()

	zr := openZip(t, fsys, path)
	idx := slices.IndexFunc(zr.File, func(f *zip.File) bool { return f.Name == name })
	if idx < 0 {
		t.Fatalf("entry %s not found in %s", name, path)
	}

	rc, err := zr.File[idx].Open()
	if err != nil {
		t.Fatalf("failed to open entry %s: %v", name, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("failed to read entry %s: %v", name, err)
	}
	return string(data)
}

func openZip(t testing.TB, fsys afero.Fs, path string) *zip.Reader {
	t.Helper()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("failed to read archive %s: %v", path, err)
	}
	zr, err := zip.NewReader(strings.NewReader(string(data)), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open archive %s: %v", path, err)
	}
	return zr
}
