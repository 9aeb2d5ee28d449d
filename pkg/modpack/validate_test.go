// SPDX-License-Identifier: MPL-2.0

package modpack

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		content      string
		wantErr      error
		wantProblem  Problem
		wantContains string
	}{
		{
			name:    "valid",
			path:    "/repo/foo/info.json",
			content: manifestJSON("foo", "1.2.3"),
		},
		{
			name:    "non release version is accepted",
			path:    "/repo/foo/info.json",
			content: manifestJSON("foo", "1.2"),
		},
		{
			name:    "windows device name is accepted",
			path:    "/repo/aux/info.json",
			content: manifestJSON("aux", "1.0.0"),
		},
		{
			name:    "null title is accepted",
			path:    "/repo/foo/info.json",
			content: `{"name": "foo", "version": "1.2.3", "title": null}`,
		},
		{
			name:    "array description is accepted",
			path:    "/repo/foo/info.json",
			content: `{"name": "foo", "version": "1.2.3", "description": ["a", "b"]}`,
		},
		{
			name:         "directory mismatch",
			path:         "/repo/bar/info.json",
			content:      manifestJSON("foo", "1.2.3"),
			wantErr:      ErrConfiguration,
			wantProblem:  ProblemDirectoryMismatch,
			wantContains: "the mod directory should be named 'foo', not 'bar'",
		},
		{
			name:         "case differs",
			path:         "/repo/Foo/info.json",
			content:      manifestJSON("foo", "1.2.3"),
			wantErr:      ErrConfiguration,
			wantProblem:  ProblemDirectoryMismatch,
			wantContains: "not 'Foo'",
		},
		{
			name:    "invalid json",
			path:    "/repo/foo/info.json",
			content: `{"name": "foo", "version": `,
			wantErr: ErrParse,
		},
		{
			name:         "missing version",
			path:         "/repo/foo/info.json",
			content:      `{"name": "foo"}`,
			wantErr:      ErrConfiguration,
			wantProblem:  ProblemInvalidManifest,
			wantContains: "'version'",
		},
		{
			name:         "empty name",
			path:         "/repo/foo/info.json",
			content:      `{"name": "", "version": "1.0.0"}`,
			wantErr:      ErrConfiguration,
			wantProblem:  ProblemInvalidManifest,
			wantContains: "'name'",
		},
		{
			name:    "conflicting duplicate name",
			path:    "/repo/foo/info.json",
			content: `{"name": "bar", "version": "1.2.3", "name": "foo"}`,
			wantErr: ErrParse,
		},
		{
			name:        "array document",
			path:        "/repo/foo/info.json",
			content:     `[]`,
			wantErr:     ErrConfiguration,
			wantProblem: ProblemInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := newMemRepo(t, "/", map[string]string{strings.TrimPrefix(tt.path, "/"): tt.content})
			mod, err := Validate(fsys, tt.path)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				if mod.Root != "/repo/foo" || mod.Name() != "foo" {
					t.Errorf("Validate() = %+v", mod)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantProblem != 0 && ProblemOf(err) != tt.wantProblem {
				t.Errorf("ProblemOf() = %v, want %v", ProblemOf(err), tt.wantProblem)
			}
			if tt.wantContains != "" && !strings.Contains(err.Error(), tt.wantContains) {
				t.Errorf("Error() = %q, want it to contain %q", err.Error(), tt.wantContains)
			}
		})
	}
}

func TestValidateUnreadable(t *testing.T) {
	t.Parallel()

	fsys := newMemRepo(t, "/repo", nil)
	_, err := Validate(fsys, "/repo/foo/info.json")
	if ProblemOf(err) != ProblemInvalidManifest {
		t.Errorf("Validate() error = %v, want invalid-manifest", err)
	}
}

func TestModAccessors(t *testing.T) {
	t.Parallel()

	fsys := newMemRepo(t, "/repo", map[string]string{"foo/info.json": manifestJSON("foo", "0.4.1")})
	mod, err := Validate(fsys, "/repo/foo/info.json")
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if mod.Version() != "0.4.1" {
		t.Errorf("Version() = %q", mod.Version())
	}
	if mod.ArchiveName() != "foo_0.4.1.zip" {
		t.Errorf("ArchiveName() = %q", mod.ArchiveName())
	}
}
