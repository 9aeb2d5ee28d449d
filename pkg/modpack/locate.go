// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FindManifests returns the manifest candidates under root: root/<manifestName>
// first, then <child>/<manifestName> for each immediate child directory in
// lexical order. Hidden child directories are searched like any other; the
// search never goes deeper than one level. Symlinked directories are followed.
func FindManifests(fsys afero.Fs, root, manifestName string) ([]string, error) {
	var found []string

	if rootManifest := filepath.Join(root, manifestName); isRegularFile(fsys, rootManifest) {
		found = append(found, rootManifest)
	}

	entries, err := afero.ReadDir(fsys, root)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if !isDir(fsys, dir) {
			continue
		}
		if candidate := filepath.Join(dir, manifestName); isRegularFile(fsys, candidate) {
			found = append(found, candidate)
		}
	}

	return found, nil
}

// Locate returns the single manifest under root. Zero or several candidates
// is a *ConfigurationError; the layout is never guessed.
func Locate(fsys afero.Fs, root, manifestName string) (string, error) {
	found, err := FindManifests(fsys, root, manifestName)
	if err != nil {
		return "", &ConfigurationError{
			Problem: ProblemManifestNotFound,
			Path:    root,
			Message: fmt.Sprintf("could not search %s for %s", root, manifestName),
			Cause:   err,
		}
	}

	switch len(found) {
	case 0:
		return "", &ConfigurationError{
			Problem: ProblemManifestNotFound,
			Path:    root,
			Message: fmt.Sprintf("no manifest found: could not locate %s in the repository", manifestName),
		}
	case 1:
		return found[0], nil
	default:
		rel := make([]string, len(found))
		for i, p := range found {
			rel[i] = relativeTo(root, p)
		}
		return "", &ConfigurationError{
			Problem:    ProblemAmbiguousLayout,
			Path:       root,
			Candidates: found,
			Message: fmt.Sprintf("ambiguous project layout: multiple %s files found (%s); remove the extras to continue",
				manifestName, strings.Join(rel, ", ")),
		}
	}
}

func isRegularFile(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// relativeTo returns path relative to base, or path unchanged when it is not below base.
func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
