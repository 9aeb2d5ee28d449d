// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modpack/modpack/internal/testutil"

	"github.com/spf13/afero"
)

var errInjected = errors.New("injected failure")

type (
	// faultyFs fails file creation for any path with the given suffix.
	faultyFs struct {
		afero.Fs
		createSuffix string
		writeSuffix  string
	}

	// faultyFile fails every write.
	faultyFile struct {
		afero.File
	}
)

func (f *faultyFs) Create(name string) (afero.File, error) {
	return f.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

func (f *faultyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.createSuffix != "" && flag&os.O_CREATE != 0 && strings.HasSuffix(name, f.createSuffix) {
		return nil, &os.PathError{Op: "open", Path: name, Err: errInjected}
	}
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	if f.writeSuffix != "" && strings.HasSuffix(name, f.writeSuffix) {
		return &faultyFile{File: file}, nil
	}
	return file, nil
}

func (f *faultyFile) Write([]byte) (int, error) {
	return 0, errInjected
}

func manifestJSON(name, version string) string {
	return fmt.Sprintf(`{"name": %q, "version": %q, "title": "Test Mod", "factorio_version": "2.0"}`, name, version)
}

func newMemRepo(t *testing.T, root string, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	testutil.WriteTree(t, fsys, root, files)
	return fsys
}

// leftoverStaging returns staging directories still present on fsys.
func leftoverStaging(t *testing.T, fsys afero.Fs) []string {
	t.Helper()

	matches, err := afero.Glob(fsys, filepath.Join(os.TempDir(), stagingPrefix+"*"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	return matches
}
