// SPDX-License-Identifier: MPL-2.0

package modinfo

import (
	_ "embed"
	"fmt"

	"github.com/modpack/modpack/pkg/cueutil"

	"cuelang.org/go/cue"
	"github.com/spf13/afero"
)

// FileName is the manifest file name searched for by default.
const FileName = "info.json"

// RequiredFields lists the manifest keys that must be present and non-empty.
var RequiredFields = []string{"name", "version"}

//go:embed manifest_schema.cue
var manifestSchema []byte

// Manifest is the decoded content of an info.json file.
// It is read once and never mutated.
type Manifest struct {
	// Name is the mod identifier. The directory holding the manifest must carry this name.
	Name string `json:"name"`
	// Version is the mod version, normally MAJOR.MINOR.PATCH.
	Version string `json:"version"`

	// The descriptive fields below are filled from the "title", "author",
	// "description" and "factorio_version" keys when those hold strings, and
	// left empty otherwise.

	// Title is the human-readable mod title.
	Title string `json:"-"`
	// Author is the mod author.
	Author string `json:"-"`
	// Description is a short summary.
	Description string `json:"-"`
	// FactorioVersion is the targeted game version.
	FactorioVersion string `json:"-"`

	// FilePath is where the manifest was read from (not part of the document).
	FilePath string `json:"-"`
}

// Parse decodes and validates manifest bytes.
//
// Malformed JSON yields a *cueutil.SyntaxError. A document that is not an
// object, or whose required fields are missing, empty or not strings, yields
// a *cueutil.ValidationError. Descriptive keys of any other type never fail
// the parse.
func Parse(data []byte, filename string) (*Manifest, error) {
	result, err := cueutil.ParseAndDecode[Manifest](
		manifestSchema,
		data,
		"#Manifest",
		cueutil.WithFilename(filename),
		cueutil.WithFormat(cueutil.FormatJSON),
	)
	if err != nil {
		return nil, err
	}

	m := result.Value
	m.FilePath = filename
	m.Title = stringField(result.Unified, "title")
	m.Author = stringField(result.Unified, "author")
	m.Description = stringField(result.Unified, "description")
	m.FactorioVersion = stringField(result.Unified, "factorio_version")
	return m, nil
}

// stringField returns the string value of field, or "" when it is absent or
// holds anything else.
func stringField(v cue.Value, field string) string {
	s, err := v.LookupPath(cue.MakePath(cue.Str(field))).String()
	if err != nil {
		return ""
	}
	return s
}

// ParseFile reads path from fsys and parses it.
func ParseFile(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data, path)
}

// PackageName returns "<name>_<version>", the archive base name the game expects.
func (m *Manifest) PackageName() string {
	return m.Name + "_" + m.Version
}

// ArchiveName returns the archive file name, "<name>_<version>.zip".
func (m *Manifest) ArchiveName() string {
	return m.PackageName() + ".zip"
}

// DisplayName returns the title when set, otherwise the name.
func (m *Manifest) DisplayName() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}
