// SPDX-License-Identifier: MPL-2.0

package modinfo

import (
	"errors"
	"testing"

	"github.com/modpack/modpack/pkg/cueutil"

	"github.com/spf13/afero"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantErr     bool
		wantSyntax  bool
		wantMissing string
	}{
		{name: "minimal", input: `{"name": "foo", "version": "1.2.3"}`},
		{
			name: "full factorio manifest",
			input: `{
				"name": "foo",
				"version": "0.1.0",
				"title": "Foo",
				"author": "someone",
				"factorio_version": "2.0",
				"dependencies": ["base >= 2.0"],
				"quality_required": false
			}`,
		},
		{name: "malformed", input: `{"name": "foo"`, wantErr: true, wantSyntax: true},
		{name: "trailing comma", input: `{"name": "foo", "version": "1",}`, wantErr: true, wantSyntax: true},
		{name: "missing name", input: `{"version": "1.0.0"}`, wantErr: true, wantMissing: "name"},
		{name: "missing version", input: `{"name": "foo"}`, wantErr: true, wantMissing: "version"},
		{name: "empty name", input: `{"name": "", "version": "1.0.0"}`, wantErr: true, wantMissing: "name"},
		{name: "empty version", input: `{"name": "foo", "version": ""}`, wantErr: true, wantMissing: "version"},
		{name: "numeric version", input: `{"name": "foo", "version": 1}`, wantErr: true, wantMissing: "version"},
		{name: "not an object", input: `"foo"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := Parse([]byte(tt.input), FileName)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Parse() unexpected error: %v", err)
				}
				if m.Name != "foo" {
					t.Errorf("Name = %q, want foo", m.Name)
				}
				if m.FilePath != FileName {
					t.Errorf("FilePath = %q, want %q", m.FilePath, FileName)
				}
				return
			}

			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}

			var syntaxErr *cueutil.SyntaxError
			if tt.wantSyntax != errors.As(err, &syntaxErr) {
				t.Errorf("Parse() error = %v (%T), syntax error expected: %v", err, err, tt.wantSyntax)
			}

			if tt.wantMissing != "" {
				var verr *cueutil.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Parse() error = %v, want *cueutil.ValidationError", err)
				}
				if !verr.HasPath(tt.wantMissing) {
					t.Errorf("ValidationError %q does not name field %q", verr, tt.wantMissing)
				}
			}
		})
	}
}

func TestParse_OptionalFields(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(`{"name":"foo","version":"1.0.0","title":"Foo Mod","author":"me","factorio_version":"2.0"}`), "x/info.json")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if m.Title != "Foo Mod" || m.Author != "me" || m.FactorioVersion != "2.0" {
		t.Errorf("optional fields not decoded: %+v", m)
	}
	if m.DisplayName() != "Foo Mod" {
		t.Errorf("DisplayName() = %q, want Foo Mod", m.DisplayName())
	}
}

func TestParse_LooseDescriptiveFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		check func(*Manifest) bool
	}{
		{
			name:  "null title",
			input: `{"name":"foo","version":"1.0.0","title":null}`,
			check: func(m *Manifest) bool { return m.Title == "" && m.DisplayName() == "foo" },
		},
		{
			name:  "array description",
			input: `{"name":"foo","version":"1.0.0","description":["a","b"]}`,
			check: func(m *Manifest) bool { return m.Description == "" },
		},
		{
			name:  "numeric author next to string title",
			input: `{"name":"foo","version":"1.0.0","author":42,"title":"Foo"}`,
			check: func(m *Manifest) bool { return m.Author == "" && m.Title == "Foo" },
		},
		{
			name:  "object factorio version",
			input: `{"name":"foo","version":"1.0.0","factorio_version":{"major":2}}`,
			check: func(m *Manifest) bool { return m.FactorioVersion == "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := Parse([]byte(tt.input), FileName)
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if m.Name != "foo" || m.Version != "1.0.0" {
				t.Errorf("required fields = %q/%q", m.Name, m.Version)
			}
			if !tt.check(m) {
				t.Errorf("descriptive fields = %+v", m)
			}
		})
	}
}

// Duplicate keys unify: identical values collapse, differing values conflict.
func TestParse_DuplicateKeys(t *testing.T) {
	t.Parallel()

	m, err := Parse([]byte(`{"name":"foo","version":"1.0.0","name":"foo"}`), FileName)
	if err != nil {
		t.Fatalf("Parse() identical duplicate: unexpected error: %v", err)
	}
	if m.Name != "foo" {
		t.Errorf("Name = %q, want foo", m.Name)
	}

	_, err = Parse([]byte(`{"name":"bar","version":"1.0.0","name":"foo"}`), FileName)
	var syntaxErr *cueutil.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Parse() conflicting duplicate: error = %v (%T), want *cueutil.SyntaxError", err, err)
	}
}

func TestManifest_Names(t *testing.T) {
	t.Parallel()

	m := &Manifest{Name: "foo", Version: "1.2.3"}
	if got := m.PackageName(); got != "foo_1.2.3" {
		t.Errorf("PackageName() = %q, want foo_1.2.3", got)
	}
	if got := m.ArchiveName(); got != "foo_1.2.3.zip" {
		t.Errorf("ArchiveName() = %q, want foo_1.2.3.zip", got)
	}
	if got := m.DisplayName(); got != "foo" {
		t.Errorf("DisplayName() = %q, want foo", got)
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/repo/foo/info.json", []byte(`{"name":"foo","version":"1.0.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := ParseFile(fsys, "/repo/foo/info.json")
	if err != nil {
		t.Fatalf("ParseFile() unexpected error: %v", err)
	}
	if m.FilePath != "/repo/foo/info.json" {
		t.Errorf("FilePath = %q", m.FilePath)
	}

	if _, err := ParseFile(fsys, "/repo/missing/info.json"); err == nil {
		t.Error("ParseFile() expected error for missing file")
	}
}
