// SPDX-License-Identifier: MPL-2.0

package modinfo

import "golang.org/x/mod/semver"

// HasReleaseVersion reports whether Version is a plain MAJOR.MINOR.PATCH
// triple, the only form the game's mod portal accepts. Pre-release and build
// suffixes, shortened forms ("1.2") and a leading "v" all report false.
func (m *Manifest) HasReleaseVersion() bool {
	if m.Version == "" || m.Version[0] == 'v' {
		return false
	}
	v := "v" + m.Version
	if !semver.IsValid(v) || semver.Canonical(v) != v {
		return false
	}
	return semver.Prerelease(v) == "" && semver.Build(v) == ""
}
