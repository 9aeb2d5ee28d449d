// SPDX-License-Identifier: MPL-2.0

package modinfo

import "testing"

func TestManifest_HasReleaseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    bool
	}{
		{"1.2.3", true},
		{"0.0.1", true},
		{"10.20.30", true},
		{"1.2", false},
		{"1", false},
		{"v1.2.3", false},
		{"1.2.3-beta", false},
		{"1.2.3+build", false},
		{"01.2.3", false},
		{"latest", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			t.Parallel()

			m := &Manifest{Name: "foo", Version: tt.version}
			if got := m.HasReleaseVersion(); got != tt.want {
				t.Errorf("HasReleaseVersion(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}
