// SPDX-License-Identifier: MPL-2.0

package modpack

import "github.com/modpack/modpack/pkg/modinfo"

// Mod is a validated mod: its root directory and the manifest read from it.
// Root's base name always equals Manifest.Name.
type Mod struct {
	// Root is the absolute path of the directory containing the manifest.
	Root string
	// Manifest is the parsed manifest.
	Manifest *modinfo.Manifest
}

// Name returns the manifest name.
func (m *Mod) Name() string { return m.Manifest.Name }

// Version returns the manifest version.
func (m *Mod) Version() string { return m.Manifest.Version }

// ArchiveName returns "<name>_<version>.zip".
func (m *Mod) ArchiveName() string { return m.Manifest.ArchiveName() }
