// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/modpack/modpack/internal/platform"
	"github.com/modpack/modpack/pkg/cueutil"
	"github.com/modpack/modpack/pkg/modinfo"

	"github.com/spf13/afero"
)

// Validate parses the manifest at manifestPath and checks that its containing
// directory is named exactly after the manifest's "name". A mismatch is never
// corrected.
func Validate(fsys afero.Fs, manifestPath string) (*Mod, error) {
	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, &ConfigurationError{
			Problem: ProblemInvalidManifest,
			Path:    manifestPath,
			Message: "could not resolve manifest path",
			Cause:   err,
		}
	}

	m, err := modinfo.ParseFile(fsys, absPath)
	if err != nil {
		return nil, classifyManifestError(absPath, err)
	}

	modRoot := filepath.Dir(absPath)
	if dirName := filepath.Base(modRoot); dirName != m.Name {
		return nil, &ConfigurationError{
			Problem: ProblemDirectoryMismatch,
			Path:    modRoot,
			Message: fmt.Sprintf("the mod directory should be named '%s', not '%s'", m.Name, dirName),
		}
	}

	if !platform.IsPortableName(m.Name) {
		slog.Warn("mod name is not a portable file name; the archive may not extract on every platform",
			"name", m.Name)
	}

	if !m.HasReleaseVersion() {
		slog.Warn("mod version is not MAJOR.MINOR.PATCH; the mod portal may reject it",
			"name", m.Name, "version", m.Version)
	}

	slog.Debug("manifest validated",
		"name", m.Name,
		"version", m.Version,
		"title", m.Title,
		"factorio_version", m.FactorioVersion,
		"root", modRoot)

	return &Mod{Root: modRoot, Manifest: m}, nil
}

// classifyManifestError maps modinfo failures onto the error taxonomy.
func classifyManifestError(path string, err error) error {
	fileName := filepath.Base(path)

	var syntaxErr *cueutil.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ParseError{Path: path, Cause: err}
	}

	var verr *cueutil.ValidationError
	if errors.As(err, &verr) {
		var missing []string
		for _, field := range modinfo.RequiredFields {
			if verr.HasPath(field) {
				missing = append(missing, "'"+field+"'")
			}
		}

		msg := fmt.Sprintf("%s is not a valid manifest object", fileName)
		if len(missing) > 0 {
			msg = fmt.Sprintf("%s must define both 'name' and 'version' as non-empty strings (invalid: %s)",
				fileName, strings.Join(missing, ", "))
		}

		return &ConfigurationError{
			Problem: ProblemInvalidManifest,
			Path:    path,
			Message: msg,
			Cause:   err,
		}
	}

	return &ConfigurationError{
		Problem: ProblemInvalidManifest,
		Path:    path,
		Message: fmt.Sprintf("could not read %s", fileName),
		Cause:   err,
	}
}
