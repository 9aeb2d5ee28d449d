// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestIsWindowsReservedName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"CON", true},
		{"con", true},
		{"Aux", true},
		{"nul.txt", true},
		{"com1.tar.gz", true},
		{"LPT9", true},
		{"COM10", false},
		{"console", false},
		{"my-mod", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsWindowsReservedName(tt.name); got != tt.want {
				t.Errorf("IsWindowsReservedName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsPortableName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"my-mod", true},
		{"Krastorio2", true},
		{"mod with spaces", true},
		{"", false},
		{".", false},
		{"..", false},
		{"a/b", false},
		{`a\b`, false},
		{"what?", false},
		{"trailing.", false},
		{"trailing ", false},
		{"tab\there", false},
		{"prn", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsPortableName(tt.name); got != tt.want {
				t.Errorf("IsPortableName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
