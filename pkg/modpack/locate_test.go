// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/modpack/modpack/pkg/modinfo"
)

func TestFindManifests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files map[string]string
		want  []string
	}{
		{
			name:  "root manifest",
			files: map[string]string{"info.json": "{}"},
			want:  []string{"/repo/info.json"},
		},
		{
			name:  "single child manifest",
			files: map[string]string{"foo/info.json": "{}", "README.md": "readme"},
			want:  []string{"/repo/foo/info.json"},
		},
		{
			name: "root first then children in lexical order",
			files: map[string]string{
				"info.json":       "{}",
				"zeta/info.json":  "{}",
				"alpha/info.json": "{}",
			},
			want: []string{"/repo/info.json", "/repo/alpha/info.json", "/repo/zeta/info.json"},
		},
		{
			name:  "deeper manifests are ignored",
			files: map[string]string{"a/b/info.json": "{}"},
			want:  nil,
		},
		{
			name:  "hidden directories are searched",
			files: map[string]string{".backup/info.json": "{}", "foo/info.json": "{}"},
			want:  []string{"/repo/.backup/info.json", "/repo/foo/info.json"},
		},
		{
			name:  "manifest must be a file",
			files: map[string]string{"info.json/": "", "foo/info.json/": ""},
			want:  nil,
		},
		{
			name:  "empty repository",
			files: map[string]string{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := newMemRepo(t, "/repo", tt.files)
			got, err := FindManifests(fsys, "/repo", modinfo.FileName)
			if err != nil {
				t.Fatalf("FindManifests() error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FindManifests() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()

	t.Run("exactly one", func(t *testing.T) {
		t.Parallel()

		fsys := newMemRepo(t, "/repo", map[string]string{"foo/info.json": "{}"})
		got, err := Locate(fsys, "/repo", modinfo.FileName)
		if err != nil {
			t.Fatalf("Locate() error: %v", err)
		}
		if got != "/repo/foo/info.json" {
			t.Errorf("Locate() = %q", got)
		}
	})

	t.Run("none", func(t *testing.T) {
		t.Parallel()

		fsys := newMemRepo(t, "/repo", map[string]string{"src/main.lua": ""})
		_, err := Locate(fsys, "/repo", modinfo.FileName)
		if !errors.Is(err, ErrConfiguration) {
			t.Fatalf("Locate() error = %v, want ErrConfiguration", err)
		}
		if ProblemOf(err) != ProblemManifestNotFound {
			t.Errorf("ProblemOf() = %v, want %v", ProblemOf(err), ProblemManifestNotFound)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		t.Parallel()

		fsys := newMemRepo(t, "/repo", map[string]string{
			"info.json":     "{}",
			"foo/info.json": "{}",
		})
		_, err := Locate(fsys, "/repo", modinfo.FileName)

		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Locate() error = %v, want *ConfigurationError", err)
		}
		if cfgErr.Problem != ProblemAmbiguousLayout {
			t.Errorf("Problem = %v, want %v", cfgErr.Problem, ProblemAmbiguousLayout)
		}
		if len(cfgErr.Candidates) != 2 {
			t.Errorf("Candidates = %v, want 2 entries", cfgErr.Candidates)
		}
		if !strings.Contains(err.Error(), "ambiguous project layout") || !strings.Contains(err.Error(), "foo/info.json") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("hidden directory makes layout ambiguous", func(t *testing.T) {
		t.Parallel()

		fsys := newMemRepo(t, "/repo", map[string]string{
			"foo/info.json":  "{}",
			".hid/info.json": "{}",
		})
		got, err := Locate(fsys, "/repo", modinfo.FileName)
		if ProblemOf(err) != ProblemAmbiguousLayout {
			t.Fatalf("Locate() = %q, error = %v, want ambiguous layout", got, err)
		}
		if !strings.Contains(err.Error(), ".hid/info.json") {
			t.Errorf("Error() = %q, want it to list the hidden candidate", err.Error())
		}
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		fsys := newMemRepo(t, "/repo", nil)
		_, err := Locate(fsys, "/nowhere", modinfo.FileName)
		if ProblemOf(err) != ProblemManifestNotFound {
			t.Errorf("Locate() error = %v, want manifest-not-found", err)
		}
	})

	t.Run("custom manifest name", func(t *testing.T) {
		t.Parallel()

		fsys := newMemRepo(t, "/repo", map[string]string{"foo/mod.json": "{}", "bar/info.json": "{}"})
		got, err := Locate(fsys, "/repo", "mod.json")
		if err != nil {
			t.Fatalf("Locate() error: %v", err)
		}
		if got != "/repo/foo/mod.json" {
			t.Errorf("Locate() = %q", got)
		}
	})
}
